package games

import (
	"testing"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

func TestClassifyCards(t *testing.T) {
	cases := []struct {
		player, dealer int
		class          string
	}{
		{22, 18, cardClassPlayerBust},
		{23, 23, cardClassPlayerBust},
		{21, 18, cardClassNatural},
		{21, 22, cardClassNatural},
		{21, 21, cardClassStandOff},
		{20, 22, cardClassDealerBust},
		{12, 23, cardClassDealerBust},
		{20, 18, cardClassPlayerHigh},
		{18, 18, cardClassStandOff},
		{18, 20, cardClassStandOff},
	}

	for _, c := range cases {
		if got := classifyCards(c.player, c.dealer); got != c.class {
			t.Errorf("classifyCards(%d, %d) = %q, want %q", c.player, c.dealer, got, c.class)
		}
	}
}

func TestCardCompareNaturalPays(t *testing.T) {
	g := &CardCompareGame{}

	script := &rng.Script{Ints: []int{21, 18}}
	out, err := g.Resolve(decimal.NewFromInt(100), NoParams{}, script)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if out.Class != cardClassNatural {
		t.Errorf("expected class %q, got %q", cardClassNatural, out.Class)
	}
	if !out.Payout.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected payout 250, got %s", out.Payout)
	}
	if out.Text != "YOU WON!" {
		t.Errorf("unexpected text %q", out.Text)
	}
}

func TestCardComparePlayerBustLoses(t *testing.T) {
	g := &CardCompareGame{}

	// both bust: the player's bust is checked first and loses
	script := &rng.Script{Ints: []int{22, 23}}
	out, err := g.Resolve(decimal.NewFromInt(100), NoParams{}, script)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if out.Class != cardClassPlayerBust {
		t.Errorf("expected class %q, got %q", cardClassPlayerBust, out.Class)
	}
	if !out.Payout.IsZero() {
		t.Errorf("expected zero payout, got %s", out.Payout)
	}
	if out.Text != "DEALER WINS" {
		t.Errorf("unexpected text %q", out.Text)
	}
}

func TestCardCompareDealerBustPaysEven(t *testing.T) {
	g := &CardCompareGame{}

	script := &rng.Script{Ints: []int{17, 22}}
	out, err := g.Resolve(decimal.NewFromInt(50), NoParams{}, script)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if out.Class != cardClassDealerBust {
		t.Errorf("expected class %q, got %q", cardClassDealerBust, out.Class)
	}
	if !out.Payout.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected payout 100, got %s", out.Payout)
	}
}

func TestCardCompareScoreBounds(t *testing.T) {
	g := &CardCompareGame{}
	src := rng.NewStream("client", "server", 61)

	for i := 0; i < 200; i++ {
		out, err := g.Resolve(decimal.NewFromInt(1), NoParams{}, src)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		detail := out.Detail.(CardCompareDetail)
		if detail.PlayerScore < cardScoreMin || detail.PlayerScore > cardScoreMax {
			t.Fatalf("player score %d outside [%d, %d]", detail.PlayerScore, cardScoreMin, cardScoreMax)
		}
		if detail.DealerScore < cardScoreMin || detail.DealerScore > cardScoreMax {
			t.Fatalf("dealer score %d outside [%d, %d]", detail.DealerScore, cardScoreMin, cardScoreMax)
		}
	}
}
