package games

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	reelSymbolCount  = 7
	reelTopSymbol    = 6 // lucky seven
	reelSecondSymbol = 0 // diamond
)

const (
	reelClassThreeTop    = "three_top"
	reelClassThreeSecond = "three_second"
	reelClassThreeOther  = "three_other"
	reelClassTwoOfAKind  = "two_of_a_kind"
	reelClassNoMatch     = "no_match"
)

// ReelGame spins three reels of seven symbols and pays on pairs and
// triples.
type ReelGame struct{}

type ReelDetail struct {
	Symbols [3]int `json:"symbols"`
}

func (g *ReelGame) Resolve(wager decimal.Decimal, _ Params, src rng.Source) (Outcome, error) {
	var symbols [3]int
	for i := range symbols {
		symbols[i] = src.IntRange(0, reelSymbolCount-1)
	}

	class := classifyReel(symbols)
	mult := Lookup(Reel, class)

	return Outcome{
		Game:       Reel,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       fmt.Sprintf("SYMBOLS: %d-%d-%d", symbols[0], symbols[1], symbols[2]),
		Detail:     ReelDetail{Symbols: symbols},
	}, nil
}

func classifyReel(s [3]int) string {
	if s[0] == s[1] && s[1] == s[2] {
		switch s[0] {
		case reelTopSymbol:
			return reelClassThreeTop
		case reelSecondSymbol:
			return reelClassThreeSecond
		}
		return reelClassThreeOther
	}
	if s[0] == s[1] || s[1] == s[2] || s[0] == s[2] {
		return reelClassTwoOfAKind
	}
	return reelClassNoMatch
}
