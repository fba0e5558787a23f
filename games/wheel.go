package games

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	WheelChoiceRed = iota
	WheelChoiceBlack
	WheelChoiceGreen
)

const (
	wheelClassEvenMoney = "even_money"
	wheelClassGreen     = "green"
	wheelClassLoss      = "loss"
)

// 0 is the single green pocket; these pockets are red, the rest black.
var wheelRedPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type WheelParams struct {
	Choice int `json:"choice"` // 0 red, 1 black, 2 green
}

func (p *WheelParams) Validate() error {
	if p.Choice < WheelChoiceRed || p.Choice > WheelChoiceGreen {
		return errors.New("choice must be 0 (red), 1 (black) or 2 (green)")
	}
	return nil
}

// WheelGame spins a 37-pocket color wheel against the player's chosen
// color.
type WheelGame struct{}

type WheelDetail struct {
	Roll   int    `json:"roll"`
	Color  string `json:"color"`
	Choice int    `json:"choice"`
}

func (g *WheelGame) Resolve(wager decimal.Decimal, params Params, src rng.Source) (Outcome, error) {
	p, ok := params.(*WheelParams)
	if !ok {
		return Outcome{}, fmt.Errorf("wheel: unexpected params type %T", params)
	}

	roll := src.IntRange(0, 36)
	color := wheelColor(roll)

	class := wheelClassLoss
	switch {
	case p.Choice == WheelChoiceGreen && color == "green":
		class = wheelClassGreen
	case p.Choice == WheelChoiceRed && color == "red",
		p.Choice == WheelChoiceBlack && color == "black":
		class = wheelClassEvenMoney
	}
	mult := Lookup(Wheel, class)

	return Outcome{
		Game:       Wheel,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       fmt.Sprintf("RESULT: %d (%s)", roll, strings.ToUpper(color)),
		Detail:     WheelDetail{Roll: roll, Color: color, Choice: p.Choice},
	}, nil
}

func wheelColor(roll int) string {
	switch {
	case roll == 0:
		return "green"
	case wheelRedPockets[roll]:
		return "red"
	}
	return "black"
}
