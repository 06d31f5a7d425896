package cli

import (
	"bytes"
	"testing"

	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintScore_ShowsPenaltiesWhenPresent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := PrintScore(&buf, matchstats.ScoreSummary{
		HomeTeamName:        "Argentina",
		HomeTeamOpenPlay:    3,
		HomeTeamPenalty:     4,
		HomeTeamPlayerGoals: "Lionel Messi (23'), Ángel Di María (36'), Lionel Messi (108')",
		AwayTeamName:        "France",
		AwayTeamOpenPlay:    3,
		AwayTeamPenalty:     2,
		AwayTeamPlayerGoals: "Kylian Mbappé (80'), Kylian Mbappé (81'), Kylian Mbappé (118')",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Argentina 3 (4) - 3 (2) France")
	assert.Contains(t, out, "Kylian Mbappé (118')")
}

func TestPrintScore_OmitsEmptyShootout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintScore(&buf, matchstats.ScoreSummary{
		HomeTeamName:     "Spain",
		HomeTeamOpenPlay: 1,
		AwayTeamName:     "Netherlands",
	}))
	assert.Contains(t, buf.String(), "Spain 1 - 0 Netherlands")
}

func TestPrintTeamStats_RowsFollowLabels(t *testing.T) {
	t.Parallel()

	stats := matchstats.TeamStatsMap{
		"Argentina": {"Shots": 20, "Offsides": 4},
		"France":    {"Shots": 10, "Offsides": 5},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTeamStats(&buf, stats, []string{"Shots", "Offsides"}, []string{"Argentina", "France"}))

	out := buf.String()
	assert.Contains(t, out, "20")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Shots")), bytes.Index(buf.Bytes(), []byte("Offsides")))
}

func TestPrintPlayerStats_SortsByName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintPlayerStats(&buf, map[string]matchstats.PlayerStats{
		"Lionel Messi":  {PassesCompleted: 52, PassesAttempted: 61},
		"Kylian Mbappé": {Shots: 8, ShotsOnTarget: 5},
	}))

	out := buf.Bytes()
	assert.Less(t, bytes.Index(out, []byte("Kylian Mbappé")), bytes.Index(out, []byte("Lionel Messi")))
	assert.Contains(t, buf.String(), "61")
}

func TestPrintMatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintMatches(&buf, []match.Match{{
		MatchID:   3869685,
		MatchDate: "2022-12-18",
		HomeTeam:  "Argentina",
		AwayTeam:  "France",
		HomeScore: 3,
		AwayScore: 3,
	}}))

	out := buf.String()
	assert.Contains(t, out, "3869685")
	assert.Contains(t, out, "3-3")
}
