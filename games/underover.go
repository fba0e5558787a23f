package games

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const underOverTarget = 50

const (
	underOverClassUnder = "under"
	underOverClassOver  = "over"
)

// UnderOverGame rolls 0-100 inclusive and pays even money on a roll
// strictly under 50.
type UnderOverGame struct{}

type UnderOverDetail struct {
	Rolled int `json:"rolled"`
}

func (g *UnderOverGame) Resolve(wager decimal.Decimal, _ Params, src rng.Source) (Outcome, error) {
	rolled := src.IntRange(0, 100)

	class := underOverClassOver
	if rolled < underOverTarget {
		class = underOverClassUnder
	}
	mult := Lookup(UnderOver, class)

	return Outcome{
		Game:       UnderOver,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       fmt.Sprintf("ROLLED: %d", rolled),
		Detail:     UnderOverDetail{Rolled: rolled},
	}, nil
}
