package match

import "testing"

func TestStartingXI_FiltersAndOrdersByJersey(t *testing.T) {
	lineups := []TeamLineup{
		{
			TeamName: "Argentina",
			Players: []LineupPlayer{
				{PlayerName: "Lionel Messi", JerseyNumber: 10, Positions: []LineupPosition{{Position: "Right Wing", StartReason: StartReasonStarting}}},
				{PlayerName: "Paulo Dybala", JerseyNumber: 21, Positions: []LineupPosition{{Position: "Center Forward", StartReason: "Substitution - On (Tactical)"}}},
				{PlayerName: "Emiliano Martínez", JerseyNumber: 23, Positions: []LineupPosition{{Position: "Goalkeeper", StartReason: StartReasonStarting}}},
				{PlayerName: "Nahuel Molina", JerseyNumber: 26, Positions: []LineupPosition{{Position: "Right Back", StartReason: StartReasonStarting}}},
				{PlayerName: "Unused Sub", JerseyNumber: 1},
				{PlayerName: "Ángel Di María", JerseyNumber: 11, Positions: []LineupPosition{{Position: "Left Wing", StartReason: StartReasonStarting}}},
			},
		},
	}

	got := StartingXI(lineups)["Argentina"]
	if len(got) != 4 {
		t.Fatalf("expected 4 starters, got %d: %+v", len(got), got)
	}
	wantOrder := []int{10, 11, 23, 26}
	for i, jersey := range wantOrder {
		if got[i].JerseyNumber != jersey {
			t.Fatalf("unexpected order at %d: %+v", i, got)
		}
	}
	if got[0].Position != "Right Wing" || got[0].Player != "Lionel Messi" {
		t.Fatalf("unexpected first starter %+v", got[0])
	}
	if lineups[0].Players[0].PlayerName != "Lionel Messi" || lineups[0].Players[1].JerseyNumber != 21 {
		t.Fatalf("input lineup must not be reordered")
	}
}

func TestEvent_Field(t *testing.T) {
	e := Event{Type: TypePass, PassType: PassTypeCorner}

	if v, ok := e.Field(FieldPassType); !ok || v != PassTypeCorner {
		t.Fatalf("expected pass_type=Corner, got %q ok=%v", v, ok)
	}
	if _, ok := e.Field(FieldShotOutcome); ok {
		t.Fatalf("expected unset shot_outcome to be absent")
	}
	if _, ok := e.Field("xg"); ok {
		t.Fatalf("expected unknown field to be absent")
	}
}
