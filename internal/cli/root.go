package cli

import (
	"fmt"
	"os"

	"github.com/riskibarqy/football-ai/internal/app"
	"github.com/riskibarqy/football-ai/internal/config"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/usecase"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile       string
	competitionID int64
	seasonID      int64
	matchID       int64

	appOptions []app.Option
	container  *app.Container
}

func (o *rootOptions) ref() usecase.MatchRef {
	return usecase.MatchRef{CompetitionID: o.competitionID, SeasonID: o.seasonID, MatchID: o.matchID}
}

// load builds the container on first use so that --help needs no configuration.
func (o *rootOptions) load(cmd *cobra.Command) (*app.Container, error) {
	if o.container != nil {
		return o.container, nil
	}
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.NewJSONTo(cmd.ErrOrStderr(), cfg.LogLevel)
	container, err := app.NewContainer(cfg, logger, o.appOptions...)
	if err != nil {
		return nil, err
	}
	o.container = container
	return container, nil
}

// NewRootCommand builds the football command tree. opts replace the wired
// dependencies, mainly for tests.
func NewRootCommand(opts ...app.Option) *cobra.Command {
	o := &rootOptions{appOptions: opts}

	root := &cobra.Command{
		Use:           "football",
		Short:         "Football match analysis over StatsBomb open data",
		Long:          "Inspect scores, team and player stats of StatsBomb matches and chat with an analyst agent about them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&o.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().Int64Var(&o.competitionID, "competition", 0, "StatsBomb competition id")
	root.PersistentFlags().Int64Var(&o.seasonID, "season", 0, "StatsBomb season id")
	root.PersistentFlags().Int64Var(&o.matchID, "match", 0, "StatsBomb match id")

	root.AddCommand(
		newCompetitionsCommand(o),
		newMatchesCommand(o),
		newScoreCommand(o),
		newTeamStatsCommand(o),
		newPlayerStatsCommand(o),
		newChatCommand(o),
	)
	return root
}

// Execute runs the command tree with the process arguments.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
