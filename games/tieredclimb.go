package games

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const climbMaxLevels = 10

var (
	climbDifficultyNames  = [3]string{"easy", "medium", "hard"}
	climbSuccessRates     = [3]float64{0.8, 0.6, 0.4}
	climbLevelMultipliers = [3]decimal.Decimal{
		decimal.RequireFromString("1.2"),
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("2.0"),
	}
)

func climbClass(difficulty, level int) string {
	return fmt.Sprintf("%s_level_%d", climbDifficultyNames[difficulty], level)
}

type TieredClimbParams struct {
	Difficulty int `json:"difficulty"` // 0 easy, 1 medium, 2 hard
}

func (p *TieredClimbParams) Validate() error {
	if p.Difficulty < 0 || p.Difficulty >= len(climbDifficultyNames) {
		return fmt.Errorf("difficulty must be 0-%d", len(climbDifficultyNames)-1)
	}
	return nil
}

// TieredClimbGame runs a Bernoulli trial per level at the
// difficulty's success rate, compounding the per-level multiplier
// until the first failure or the ten-level cap.
type TieredClimbGame struct{}

type TieredClimbDetail struct {
	Difficulty int `json:"difficulty"`
	Level      int `json:"level"`
}

func (g *TieredClimbGame) Resolve(wager decimal.Decimal, params Params, src rng.Source) (Outcome, error) {
	p, ok := params.(*TieredClimbParams)
	if !ok {
		return Outcome{}, fmt.Errorf("tieredclimb: unexpected params type %T", params)
	}

	rate := climbSuccessRates[p.Difficulty]
	level := 0
	for level < climbMaxLevels && src.Float64() < rate {
		level++
	}

	class := climbClass(p.Difficulty, level)
	mult := Lookup(TieredClimb, class)

	text := fmt.Sprintf("LEVEL: %d", level)
	if level == 0 {
		text = "FELL AT START"
	}

	return Outcome{
		Game:       TieredClimb,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       text,
		Detail:     TieredClimbDetail{Difficulty: p.Difficulty, Level: level},
	}, nil
}
