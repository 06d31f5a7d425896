package match

import "sort"

// StartingXI keeps, per team, the players whose first recorded position started the
// match, ordered by jersey number.
func StartingXI(lineups []TeamLineup) map[string][]StartingPlayer {
	out := make(map[string][]StartingPlayer, len(lineups))
	for _, team := range lineups {
		players := make([]LineupPlayer, len(team.Players))
		copy(players, team.Players)
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].JerseyNumber < players[j].JerseyNumber
		})

		starters := make([]StartingPlayer, 0, 11)
		for _, p := range players {
			if len(p.Positions) == 0 || p.Positions[0].StartReason != StartReasonStarting {
				continue
			}
			starters = append(starters, StartingPlayer{
				Player:       p.PlayerName,
				Position:     p.Positions[0].Position,
				JerseyNumber: p.JerseyNumber,
			})
		}
		out[team.TeamName] = starters
	}
	return out
}
