package matchstats

import (
	"github.com/riskibarqy/football-ai/internal/domain/match"
)

// StatRule decides which events a team statistic counts.
type StatRule interface {
	Count(events []match.Event) int
}

// ExactType counts events whose type equals TypeName.
type ExactType struct {
	TypeName string
}

func (r ExactType) Count(events []match.Event) int {
	n := 0
	for _, e := range events {
		if e.Type == r.TypeName {
			n++
		}
	}
	return n
}

// FieldCondition matches a single field against a required value.
type FieldCondition struct {
	Field string
	Value string
}

// FieldEquals sums, over its conditions, the events matching each one. A field the
// events never carry contributes zero.
type FieldEquals struct {
	Conditions []FieldCondition
}

func (r FieldEquals) Count(events []match.Event) int {
	n := 0
	for _, cond := range r.Conditions {
		for _, e := range events {
			if v, ok := e.Field(cond.Field); ok && v == cond.Value {
				n++
			}
		}
	}
	return n
}

// FieldIs is shorthand for a FieldEquals rule built from field/value pairs.
func FieldIs(pairs ...string) FieldEquals {
	conds := make([]FieldCondition, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		conds = append(conds, FieldCondition{Field: pairs[i], Value: pairs[i+1]})
	}
	return FieldEquals{Conditions: conds}
}

// NamedRule binds a display label to a rule.
type NamedRule struct {
	Label string
	Rule  StatRule
}

// StatConfig is an ordered set of labelled rules.
type StatConfig []NamedRule

// Labels returns the configured labels in order.
func (c StatConfig) Labels() []string {
	out := make([]string, 0, len(c))
	for _, r := range c {
		out = append(out, r.Label)
	}
	return out
}

// DefaultStatConfig covers shots, passes, fouls, corners and cards; offsides are
// optional because not every feed records them.
func DefaultStatConfig(withOffsides bool) StatConfig {
	cfg := StatConfig{
		{Label: "Shots", Rule: ExactType{TypeName: match.TypeShot}},
		{Label: "Passes", Rule: ExactType{TypeName: match.TypePass}},
		{Label: "Fouls Committed", Rule: FieldIs(match.FieldType, match.TypeFoulCommitted)},
		{Label: "Corners", Rule: FieldIs(match.FieldPassType, match.PassTypeCorner)},
		{Label: "Yellow Cards", Rule: FieldIs(
			match.FieldFoulCommittedCard, match.CardYellow,
			match.FieldBadBehaviorCard, match.CardYellow,
		)},
		{Label: "Red Cards", Rule: FieldIs(
			match.FieldFoulCommittedCard, match.CardRed,
			match.FieldBadBehaviorCard, match.CardRed,
		)},
	}
	if withOffsides {
		cfg = append(cfg, NamedRule{Label: "Offsides", Rule: ExactType{TypeName: match.TypeOffside}})
	}
	return cfg
}

// TeamStatsMap maps team name to stat label to count.
type TeamStatsMap map[string]map[string]int

// Teams lists distinct team names in event order.
func Teams(events []match.Event) []string {
	seen := make(map[string]struct{}, 2)
	out := make([]string, 0, 2)
	for _, e := range events {
		if e.Team == "" {
			continue
		}
		if _, ok := seen[e.Team]; ok {
			continue
		}
		seen[e.Team] = struct{}{}
		out = append(out, e.Team)
	}
	return out
}

// ComputeTeamStats applies every rule of cfg to each team's events.
func ComputeTeamStats(events []match.Event, cfg StatConfig) TeamStatsMap {
	byTeam := make(map[string][]match.Event, 2)
	for _, e := range events {
		if e.Team == "" {
			continue
		}
		byTeam[e.Team] = append(byTeam[e.Team], e)
	}

	out := make(TeamStatsMap, len(byTeam))
	for _, team := range Teams(events) {
		stats := make(map[string]int, len(cfg))
		for _, rule := range cfg {
			if rule.Rule == nil {
				stats[rule.Label] = 0
				continue
			}
			stats[rule.Label] = rule.Rule.Count(byTeam[team])
		}
		out[team] = stats
	}
	return out
}
