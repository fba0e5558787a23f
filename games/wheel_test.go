package games

import (
	"testing"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

func TestWheelColor(t *testing.T) {
	cases := []struct {
		roll int
		want string
	}{
		{0, "green"},
		{1, "red"},
		{2, "black"},
		{3, "red"},
		{10, "black"},
		{19, "red"},
		{36, "red"},
		{35, "black"},
	}

	for _, tc := range cases {
		if got := wheelColor(tc.roll); got != tc.want {
			t.Errorf("roll %d: expected %s, got %s", tc.roll, tc.want, got)
		}
	}
}

func TestWheelRedWinPaysDouble(t *testing.T) {
	g := &WheelGame{}

	// draw 3 is red, chosen red: wager 100 pays 200
	out, err := g.Resolve(decimal.NewFromInt(100), &WheelParams{Choice: WheelChoiceRed}, &rng.Script{Ints: []int{3}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Class != wheelClassEvenMoney {
		t.Errorf("expected class %q, got %q", wheelClassEvenMoney, out.Class)
	}
	if !out.Payout.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected payout 200, got %s", out.Payout)
	}
}

func TestWheelGreenMiss(t *testing.T) {
	g := &WheelGame{}

	// draw 1 is red, chosen green: total loss
	out, err := g.Resolve(decimal.NewFromInt(100), &WheelParams{Choice: WheelChoiceGreen}, &rng.Script{Ints: []int{1}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Class != wheelClassLoss {
		t.Errorf("expected class %q, got %q", wheelClassLoss, out.Class)
	}
	if !out.Payout.IsZero() {
		t.Errorf("expected zero payout, got %s", out.Payout)
	}
}

func TestWheelGreenHitPays14(t *testing.T) {
	g := &WheelGame{}

	out, err := g.Resolve(decimal.NewFromInt(100), &WheelParams{Choice: WheelChoiceGreen}, &rng.Script{Ints: []int{0}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Class != wheelClassGreen {
		t.Errorf("expected class %q, got %q", wheelClassGreen, out.Class)
	}
	if !out.Payout.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("expected payout 1400, got %s", out.Payout)
	}
}

func TestWheelDrawBounds(t *testing.T) {
	g := &WheelGame{}
	src := rng.NewStream("client", "server", 23)

	for i := 0; i < 500; i++ {
		out, err := g.Resolve(decimal.NewFromInt(1), &WheelParams{Choice: WheelChoiceBlack}, src)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		roll := out.Detail.(WheelDetail).Roll
		if roll < 0 || roll > 36 {
			t.Fatalf("roll %d outside [0, 36]", roll)
		}
	}
}

func TestWheelParamsValidate(t *testing.T) {
	for _, choice := range []int{0, 1, 2} {
		p := &WheelParams{Choice: choice}
		if err := p.Validate(); err != nil {
			t.Errorf("choice %d: unexpected error %v", choice, err)
		}
	}
	for _, choice := range []int{-1, 3} {
		p := &WheelParams{Choice: choice}
		if err := p.Validate(); err == nil {
			t.Errorf("choice %d: expected validation error", choice)
		}
	}
}
