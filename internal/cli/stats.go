package cli

import (
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/spf13/cobra"
)

func newCompetitionsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "competitions",
		Short: "List available competitions and seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			items, err := c.Matches.ListCompetitions(cmd.Context())
			if err != nil {
				return err
			}
			return PrintCompetitions(cmd.OutOrStdout(), items)
		},
	}
}

func newMatchesCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "List the matches of a competition season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			items, err := c.Matches.ListMatches(cmd.Context(), o.competitionID, o.seasonID)
			if err != nil {
				return err
			}
			return PrintMatches(cmd.OutOrStdout(), items)
		},
	}
}

func newScoreCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Reconstruct the score of a match from its events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			summary, err := c.Stats.ScoreSummary(cmd.Context(), o.ref())
			if err != nil {
				return err
			}
			return PrintScore(cmd.OutOrStdout(), summary)
		},
	}
}

func newTeamStatsCommand(o *rootOptions) *cobra.Command {
	var offsides bool
	cmd := &cobra.Command{
		Use:   "team-stats",
		Short: "Count shots, passes, fouls, corners and cards per team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			stats, err := c.Stats.TeamStats(cmd.Context(), o.matchID, offsides)
			if err != nil {
				return err
			}
			events, err := c.Matches.Events(cmd.Context(), o.matchID)
			if err != nil {
				return err
			}
			return PrintTeamStats(cmd.OutOrStdout(), stats, matchstats.DefaultStatConfig(offsides).Labels(), matchstats.Teams(events))
		},
	}
	cmd.Flags().BoolVar(&offsides, "offsides", true, "include offsides")
	return cmd
}

func newPlayerStatsCommand(o *rootOptions) *cobra.Command {
	var (
		player string
		window string
	)
	cmd := &cobra.Command{
		Use:   "player-stats",
		Short: "Show player stats for a match time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeWindow, err := matchstats.ParseTimeWindow(window)
			if err != nil {
				return err
			}
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			if player != "" {
				stats, err := c.Stats.PlayerStats(cmd.Context(), o.matchID, player, timeWindow)
				if err != nil {
					return err
				}
				return PrintPlayerStats(cmd.OutOrStdout(), map[string]matchstats.PlayerStats{player: stats})
			}
			stats, err := c.Stats.AllPlayerStats(cmd.Context(), o.matchID, timeWindow)
			if err != nil {
				return err
			}
			return PrintPlayerStats(cmd.OutOrStdout(), stats)
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player name; all players when empty")
	cmd.Flags().StringVar(&window, "time", string(matchstats.WholeMatch), "whole_match, first_half, second_half or overtime")
	return cmd
}
