package games

import (
	"testing"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

func TestParseGameIDRoundTrip(t *testing.T) {
	for id := Reel; id <= CardCompare; id++ {
		parsed, err := ParseGameID(id.String())
		if err != nil {
			t.Fatalf("parsing %q: %v", id.String(), err)
		}
		if parsed != id {
			t.Errorf("round trip of %q gave %q", id, parsed)
		}
	}

	if _, err := ParseGameID("coinflip"); err == nil {
		t.Error("expected error for unknown game name")
	}
}

func TestForGameCoversAllGames(t *testing.T) {
	for id := Reel; id <= CardCompare; id++ {
		if ForGame(id) == nil {
			t.Errorf("no generator for %s", id)
		}
	}
}

func TestParseParams(t *testing.T) {
	cases := []struct {
		game    GameID
		data    string
		wantErr bool
		valid   bool
	}{
		{Reel, "", false, true},
		{Wheel, `{"choice":1}`, false, true},
		{Wheel, `{"choice":3}`, false, false},
		{Wheel, `not json`, true, false},
		{ClimbCart, `{"cash_out":"2.0"}`, false, true},
		{ClimbCart, `{"cash_out":"1.0"}`, false, false},
		{ClimbCart, ``, false, false},
		{TieredClimb, `{"difficulty":2}`, false, true},
		{TieredClimb, `{"difficulty":5}`, false, false},
		{NumberMatch, ``, false, true},
		{NumberMatch, `{"picks":[1,2,3,4]}`, false, true},
		{NumberMatch, `{"picks":[1,2,3]}`, false, false},
		{NumberMatch, `{"picks":[1,2,3,3]}`, false, false},
		{NumberMatch, `{"picks":[1,2,3,41]}`, false, false},
	}

	for _, tc := range cases {
		p, err := ParseParams(tc.game, tc.data)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s %q: expected parse error", tc.game, tc.data)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: unexpected parse error %v", tc.game, tc.data, err)
			continue
		}
		if gotValid := p.Validate() == nil; gotValid != tc.valid {
			t.Errorf("%s %q: expected valid=%v, got %v", tc.game, tc.data, tc.valid, gotValid)
		}
	}
}

func TestUnderOverScenarios(t *testing.T) {
	g := &UnderOverGame{}
	wager := decimal.NewFromInt(50)

	// draw 49 is a win paying double
	out, err := g.Resolve(wager, NoParams{}, &rng.Script{Ints: []int{49}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Class != underOverClassUnder {
		t.Errorf("expected class %q, got %q", underOverClassUnder, out.Class)
	}
	if !out.Payout.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected payout 100, got %s", out.Payout)
	}

	// 50 itself loses
	out, err = g.Resolve(wager, NoParams{}, &rng.Script{Ints: []int{50}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Class != underOverClassOver || !out.Payout.IsZero() {
		t.Errorf("expected losing outcome on 50, got class %q payout %s", out.Class, out.Payout)
	}
}

func TestUnderOverDrawBounds(t *testing.T) {
	g := &UnderOverGame{}
	src := rng.NewStream("client", "server", 7)

	for i := 0; i < 500; i++ {
		out, err := g.Resolve(decimal.NewFromInt(1), NoParams{}, src)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		rolled := out.Detail.(UnderOverDetail).Rolled
		if rolled < 0 || rolled > 100 {
			t.Fatalf("rolled %d outside [0, 100]", rolled)
		}
	}
}

func TestBucketDropPositional(t *testing.T) {
	g := &BucketDropGame{}
	wager := decimal.NewFromInt(10)

	// center bucket pays double
	out, err := g.Resolve(wager, NoParams{}, &rng.Script{Ints: []int{4}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !out.Payout.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected payout 20 from center bucket, got %s", out.Payout)
	}

	// edge bucket pays a fifth
	out, err = g.Resolve(wager, NoParams{}, &rng.Script{Ints: []int{0}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !out.Payout.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected payout 2 from edge bucket, got %s", out.Payout)
	}
}
