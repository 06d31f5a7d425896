package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/app"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	matchmock "github.com/riskibarqy/football-ai/internal/mocks/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cannedModel struct {
	reply string
}

func (m cannedModel) Generate(_ context.Context, _ agent.Request, onText func(string)) (agent.Response, error) {
	if onText != nil {
		onText("thinking")
	}
	return agent.Response{Text: m.reply, StopReason: "end_turn"}, nil
}

func newTestRepository(t *testing.T) *matchmock.Repository {
	t.Helper()

	repo := matchmock.NewRepository(t)
	repo.On("ListCompetitions", mock.Anything).Return([]match.Competition{{
		CompetitionID:   43,
		SeasonID:        106,
		CountryName:     "International",
		CompetitionName: "FIFA World Cup",
		SeasonName:      "2022",
	}}, nil).Maybe()
	repo.On("ListMatches", mock.Anything, int64(43), int64(106)).Return([]match.Match{{
		MatchID:       3869685,
		CompetitionID: 43,
		SeasonID:      106,
		HomeTeam:      "Argentina",
		AwayTeam:      "France",
		HomeScore:     3,
		AwayScore:     3,
	}}, nil).Maybe()
	repo.On("ListEvents", mock.Anything, int64(3869685)).Return([]match.Event{
		{Type: match.TypePass, Team: "Argentina", Player: "Lionel Messi", Minute: 3},
		{Type: match.TypeShot, Team: "Argentina", Player: "Lionel Messi", Minute: 22, ShotOutcome: match.OutcomeGoal},
		{Type: match.TypeShot, Team: "France", Player: "Kylian Mbappé", Minute: 80, ShotOutcome: match.OutcomeGoal},
	}, nil).Maybe()
	return repo
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("APP_ENV", "dev")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "error")

	cmd := NewRootCommand(app.WithRepository(newTestRepository(t)), app.WithModel(cannedModel{reply: "Argentina won on penalties."}))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	missing := filepath.Join(t.TempDir(), "missing.env")
	cmd.SetArgs(append([]string{"--env-file", missing}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompetitionsCommand(t *testing.T) {
	out, err := runCommand(t, "", "competitions")
	require.NoError(t, err)
	assert.Contains(t, out, "FIFA World Cup")
}

func TestMatchesCommand(t *testing.T) {
	out, err := runCommand(t, "", "matches", "--competition", "43", "--season", "106")
	require.NoError(t, err)
	assert.Contains(t, out, "3869685")
	assert.Contains(t, out, "Argentina")
}

func TestScoreCommand(t *testing.T) {
	out, err := runCommand(t, "", "score", "--competition", "43", "--season", "106", "--match", "3869685")
	require.NoError(t, err)
	assert.Contains(t, out, "Argentina 1 - 1 France")
}

func TestPlayerStatsCommand(t *testing.T) {
	out, err := runCommand(t, "", "player-stats", "--match", "3869685", "--player", "Lionel Messi")
	require.NoError(t, err)
	assert.Contains(t, out, "Lionel Messi")
}

func TestPlayerStatsCommand_RejectsUnknownWindow(t *testing.T) {
	_, err := runCommand(t, "", "player-stats", "--match", "3869685", "--time", "extra_time_3")
	require.Error(t, err)
}

func TestTeamStatsCommand(t *testing.T) {
	out, err := runCommand(t, "", "team-stats", "--match", "3869685")
	require.NoError(t, err)
	assert.Contains(t, out, "Offsides")
}

func TestChatCommand_AnswersAndExports(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "history.json")

	out, err := runCommand(t, "Who won?\n/quit\n",
		"chat", "--competition", "43", "--season", "106", "--match", "3869685", "--export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Chatting about Argentina vs France.")
	assert.Contains(t, out, "Argentina won on penalties.")

	raw, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Who won?")
}

func TestChatCommand_ClearSkipsExport(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "history.json")

	out, err := runCommand(t, "Who won?\n/clear\n",
		"chat", "--competition", "43", "--season", "106", "--match", "3869685", "--export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Conversation cleared.")

	_, err = os.Stat(exportPath)
	assert.True(t, os.IsNotExist(err))
}
