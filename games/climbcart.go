package games

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	climbCartClassCrashed   = "crashed"
	climbCartClassCashedOut = "cashed_out"
)

type ClimbCartParams struct {
	CashOut decimal.Decimal `json:"cash_out"`
}

func (p *ClimbCartParams) Validate() error {
	if p.CashOut.LessThanOrEqual(decimal.NewFromInt(1)) {
		return errors.New("cash_out target must be greater than 1.0")
	}
	return nil
}

// ClimbCartGame draws a crash point from an exponential-like
// distribution; the player wins when their cash-out target is at or
// under it, paying the target itself as the multiplier.
type ClimbCartGame struct{}

type ClimbCartDetail struct {
	CrashPoint decimal.Decimal `json:"crash_point"`
	CashOut    decimal.Decimal `json:"cash_out"`
}

func (g *ClimbCartGame) Resolve(wager decimal.Decimal, params Params, src rng.Source) (Outcome, error) {
	p, ok := params.(*ClimbCartParams)
	if !ok {
		return Outcome{}, fmt.Errorf("climbcart: unexpected params type %T", params)
	}

	u := src.Float64()
	crash := 0.99 / (1 - u)
	if crash < 1.0 {
		crash = 1.0
	}
	crashPoint := decimal.NewFromFloat(crash).Round(2)

	if p.CashOut.GreaterThan(crashPoint) {
		mult := Lookup(ClimbCart, climbCartClassCrashed)
		return Outcome{
			Game:       ClimbCart,
			Class:      climbCartClassCrashed,
			Multiplier: mult,
			Payout:     wager.Mul(mult),
			Text:       fmt.Sprintf("CRASHED @ %sx", crashPoint),
			Detail:     ClimbCartDetail{CrashPoint: crashPoint, CashOut: p.CashOut},
		}, nil
	}

	return Outcome{
		Game:       ClimbCart,
		Class:      climbCartClassCashedOut,
		Multiplier: p.CashOut,
		Payout:     wager.Mul(p.CashOut),
		Text:       fmt.Sprintf("CASHED OUT @ %sx", p.CashOut),
		Detail:     ClimbCartDetail{CrashPoint: crashPoint, CashOut: p.CashOut},
	}, nil
}
