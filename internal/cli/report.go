package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintScore renders the reconstructed score and its scorers.
func PrintScore(w io.Writer, s matchstats.ScoreSummary) error {
	home := strconv.Itoa(s.HomeTeamOpenPlay)
	away := strconv.Itoa(s.AwayTeamOpenPlay)
	if s.HasPenalties() {
		home = fmt.Sprintf("%s (%d)", home, s.HomeTeamPenalty)
		away = fmt.Sprintf("%s (%d)", away, s.AwayTeamPenalty)
	}
	fmt.Fprintf(w, "\n%s %s - %s %s\n\n", s.HomeTeamName, home, away, s.AwayTeamName)

	table := newTable(w)
	table.Header("TEAM", "OPEN PLAY", "PENALTIES", "SCORERS")
	if err := table.Append(s.HomeTeamName, strconv.Itoa(s.HomeTeamOpenPlay), strconv.Itoa(s.HomeTeamPenalty), s.HomeTeamPlayerGoals); err != nil {
		return err
	}
	if err := table.Append(s.AwayTeamName, strconv.Itoa(s.AwayTeamOpenPlay), strconv.Itoa(s.AwayTeamPenalty), s.AwayTeamPlayerGoals); err != nil {
		return err
	}
	return table.Render()
}

// PrintTeamStats renders one column per team, one row per stat label in
// configuration order.
func PrintTeamStats(w io.Writer, stats matchstats.TeamStatsMap, labels []string, teams []string) error {
	table := newTable(w)
	header := make([]any, 0, len(teams)+1)
	header = append(header, "STAT")
	for _, team := range teams {
		header = append(header, team)
	}
	table.Header(header...)

	for _, label := range labels {
		row := make([]any, 0, len(teams)+1)
		row = append(row, label)
		for _, team := range teams {
			row = append(row, strconv.Itoa(stats[team][label]))
		}
		if err := table.Append(row...); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintPlayerStats renders players sorted by name.
func PrintPlayerStats(w io.Writer, stats map[string]matchstats.PlayerStats) error {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w)
	table.Header("PLAYER", "PASS", "PASS_ATT", "SHOTS", "ON_TGT", "FOULS", "FOULED", "TACKLES", "INT", "DRIB", "DRIB_ATT")
	for _, name := range names {
		s := stats[name]
		if err := table.Append(
			name,
			strconv.Itoa(s.PassesCompleted),
			strconv.Itoa(s.PassesAttempted),
			strconv.Itoa(s.Shots),
			strconv.Itoa(s.ShotsOnTarget),
			strconv.Itoa(s.FoulsCommitted),
			strconv.Itoa(s.FoulsWon),
			strconv.Itoa(s.Tackles),
			strconv.Itoa(s.Interceptions),
			strconv.Itoa(s.DribblesSuccessful),
			strconv.Itoa(s.DribblesAttempted),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func PrintCompetitions(w io.Writer, items []match.Competition) error {
	table := newTable(w)
	table.Header("COMPETITION_ID", "SEASON_ID", "COUNTRY", "COMPETITION", "SEASON", "GENDER")
	for _, c := range items {
		if err := table.Append(
			strconv.FormatInt(c.CompetitionID, 10),
			strconv.FormatInt(c.SeasonID, 10),
			c.CountryName,
			c.CompetitionName,
			c.SeasonName,
			c.CompetitionGender,
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func PrintMatches(w io.Writer, items []match.Match) error {
	table := newTable(w)
	table.Header("MATCH_ID", "DATE", "STAGE", "HOME", "SCORE", "AWAY")
	for _, m := range items {
		if err := table.Append(
			strconv.FormatInt(m.MatchID, 10),
			m.MatchDate,
			m.CompetitionStage,
			m.HomeTeam,
			fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore),
			m.AwayTeam,
		); err != nil {
			return err
		}
	}
	return table.Render()
}
