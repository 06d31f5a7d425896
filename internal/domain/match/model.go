package match

// Event type names as reported by the provider.
const (
	TypePass            = "Pass"
	TypeShot            = "Shot"
	TypeFoulCommitted   = "Foul Committed"
	TypeFoulWon         = "Foul Won"
	TypeTackle          = "Tackle"
	TypeInterception    = "Interception"
	TypeDribble         = "Dribble"
	TypeOwnGoalAgainst  = "Own Goal Against"
	TypeOwnGoalFor      = "Own Goal For"
	TypeOffside         = "Offside"
	OutcomeGoal         = "Goal"
	OutcomeOnTarget     = "On Target"
	OutcomeComplete     = "Complete"
	PassTypeCorner      = "Corner"
	CardYellow          = "Yellow Card"
	CardRed             = "Red Card"
	StartReasonStarting = "Starting XI"
)

// Field names addressable by team stat rules.
const (
	FieldType              = "type"
	FieldTeam              = "team"
	FieldPlayer            = "player"
	FieldPassOutcome       = "pass_outcome"
	FieldPassType          = "pass_type"
	FieldShotOutcome       = "shot_outcome"
	FieldShotType          = "shot_type"
	FieldDribbleOutcome    = "dribble_outcome"
	FieldFoulCommittedCard = "foul_committed_card"
	FieldBadBehaviorCard   = "bad_behavior_card"
)

// Event is one on-pitch occurrence. Optional fields are empty when the provider
// did not record them; an empty PassOutcome means the pass was completed.
type Event struct {
	ID                string `json:"id"`
	Index             int    `json:"index"`
	MatchID           int64  `json:"match_id"`
	Period            int    `json:"period"`
	Minute            int    `json:"minute"`
	Second            int    `json:"second"`
	Type              string `json:"type"`
	Team              string `json:"team"`
	Player            string `json:"player,omitempty"`
	PassOutcome       string `json:"pass_outcome,omitempty"`
	PassType          string `json:"pass_type,omitempty"`
	ShotOutcome       string `json:"shot_outcome,omitempty"`
	ShotType          string `json:"shot_type,omitempty"`
	DribbleOutcome    string `json:"dribble_outcome,omitempty"`
	FoulCommittedCard string `json:"foul_committed_card,omitempty"`
	BadBehaviorCard   string `json:"bad_behavior_card,omitempty"`
}

// Field looks up a named attribute. The second result is false when the event does
// not carry the field at all.
func (e Event) Field(name string) (string, bool) {
	var v string
	switch name {
	case FieldType:
		v = e.Type
	case FieldTeam:
		v = e.Team
	case FieldPlayer:
		v = e.Player
	case FieldPassOutcome:
		v = e.PassOutcome
	case FieldPassType:
		v = e.PassType
	case FieldShotOutcome:
		v = e.ShotOutcome
	case FieldShotType:
		v = e.ShotType
	case FieldDribbleOutcome:
		v = e.DribbleOutcome
	case FieldFoulCommittedCard:
		v = e.FoulCommittedCard
	case FieldBadBehaviorCard:
		v = e.BadBehaviorCard
	default:
		return "", false
	}
	return v, v != ""
}

type Competition struct {
	CompetitionID     int64  `json:"competition_id"`
	SeasonID          int64  `json:"season_id"`
	CountryName       string `json:"country_name"`
	CompetitionName   string `json:"competition_name"`
	CompetitionGender string `json:"competition_gender"`
	SeasonName        string `json:"season_name"`
}

type Match struct {
	MatchID          int64  `json:"match_id" yaml:"match_id"`
	MatchDate        string `json:"match_date" yaml:"match_date"`
	KickOff          string `json:"kick_off" yaml:"kick_off"`
	CompetitionID    int64  `json:"competition_id" yaml:"-"`
	Competition      string `json:"competition" yaml:"competition"`
	SeasonID         int64  `json:"season_id" yaml:"-"`
	Season           string `json:"season" yaml:"season"`
	HomeTeam         string `json:"home_team" yaml:"home_team"`
	AwayTeam         string `json:"away_team" yaml:"away_team"`
	HomeScore        int    `json:"home_score" yaml:"home_score"`
	AwayScore        int    `json:"away_score" yaml:"away_score"`
	MatchStatus      string `json:"match_status" yaml:"match_status"`
	MatchWeek        int    `json:"match_week" yaml:"match_week"`
	CompetitionStage string `json:"competition_stage" yaml:"competition_stage"`
	Stadium          string `json:"stadium,omitempty" yaml:"stadium,omitempty"`
	Referee          string `json:"referee,omitempty" yaml:"referee,omitempty"`
}

// Name renders "Home vs Away".
func (m Match) Name() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

type TeamLineup struct {
	TeamID   int64          `json:"team_id"`
	TeamName string         `json:"team_name"`
	Players  []LineupPlayer `json:"lineup"`
}

type LineupPlayer struct {
	PlayerID     int64            `json:"player_id"`
	PlayerName   string           `json:"player_name"`
	Nickname     string           `json:"player_nickname,omitempty"`
	JerseyNumber int              `json:"jersey_number"`
	Country      string           `json:"country,omitempty"`
	Positions    []LineupPosition `json:"positions"`
	Cards        []LineupCard     `json:"cards,omitempty"`
}

type LineupPosition struct {
	Position    string `json:"position"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	StartReason string `json:"start_reason"`
	EndReason   string `json:"end_reason,omitempty"`
}

type LineupCard struct {
	Time     string `json:"time"`
	CardType string `json:"card_type"`
	Reason   string `json:"reason,omitempty"`
}

// StartingPlayer is one member of a starting XI.
type StartingPlayer struct {
	Player       string `json:"player" yaml:"player"`
	Position     string `json:"position" yaml:"position"`
	JerseyNumber int    `json:"jersey_number" yaml:"jersey_number"`
}
