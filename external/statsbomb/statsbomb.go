package statsbomb

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type competitionItem struct {
	CompetitionID     int64  `json:"competition_id"`
	SeasonID          int64  `json:"season_id"`
	CountryName       string `json:"country_name"`
	CompetitionName   string `json:"competition_name"`
	CompetitionGender string `json:"competition_gender"`
	SeasonName        string `json:"season_name"`
}

type matchItem struct {
	MatchID     int64  `json:"match_id"`
	MatchDate   string `json:"match_date"`
	KickOff     string `json:"kick_off"`
	Competition struct {
		CompetitionID   int64  `json:"competition_id"`
		CountryName     string `json:"country_name"`
		CompetitionName string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		SeasonID   int64  `json:"season_id"`
		SeasonName string `json:"season_name"`
	} `json:"season"`
	HomeTeam struct {
		ID   int64  `json:"home_team_id"`
		Name string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		ID   int64  `json:"away_team_id"`
		Name string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore        *int      `json:"home_score"`
	AwayScore        *int      `json:"away_score"`
	MatchStatus      string    `json:"match_status"`
	MatchWeek        int       `json:"match_week"`
	CompetitionStage namedRef  `json:"competition_stage"`
	Stadium          *namedRef `json:"stadium"`
	Referee          *namedRef `json:"referee"`
}

type outcomeDetail struct {
	Outcome *namedRef `json:"outcome"`
	Type    *namedRef `json:"type"`
}

type cardDetail struct {
	Card *namedRef `json:"card"`
}

type eventItem struct {
	ID            string         `json:"id"`
	Index         int            `json:"index"`
	Period        int            `json:"period"`
	Minute        int            `json:"minute"`
	Second        int            `json:"second"`
	Type          namedRef       `json:"type"`
	Team          namedRef       `json:"team"`
	Player        *namedRef      `json:"player"`
	Pass          *outcomeDetail `json:"pass"`
	Shot          *outcomeDetail `json:"shot"`
	Dribble       *outcomeDetail `json:"dribble"`
	FoulCommitted *cardDetail    `json:"foul_committed"`
	BadBehaviour  *cardDetail    `json:"bad_behaviour"`
}

type lineupItem struct {
	TeamID   int64              `json:"team_id"`
	TeamName string             `json:"team_name"`
	Lineup   []lineupPlayerItem `json:"lineup"`
}

type lineupPlayerItem struct {
	PlayerID     int64     `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Nickname     string    `json:"player_nickname"`
	JerseyNumber int       `json:"jersey_number"`
	Country      *namedRef `json:"country"`
	Cards        []struct {
		Time     string `json:"time"`
		CardType string `json:"card_type"`
		Reason   string `json:"reason"`
	} `json:"cards"`
	Positions []struct {
		Position    string `json:"position"`
		From        string `json:"from"`
		To          string `json:"to"`
		StartReason string `json:"start_reason"`
		EndReason   string `json:"end_reason"`
	} `json:"positions"`
}
