package games

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Paytables map an outcome class to its payout multiplier. They are
// built once at process start and never mutated. A class without an
// entry is a generator/table mismatch, so Lookup panics rather than
// returning a zero multiplier.

var paytables map[GameID]map[string]decimal.Decimal

func init() {
	paytables = map[GameID]map[string]decimal.Decimal{
		Reel: {
			reelClassThreeTop:    decimal.NewFromInt(10),
			reelClassThreeSecond: decimal.NewFromInt(5),
			reelClassThreeOther:  decimal.NewFromInt(3),
			reelClassTwoOfAKind:  decimal.RequireFromString("1.5"),
			reelClassNoMatch:     decimal.Zero,
		},
		UnderOver: {
			underOverClassUnder: decimal.NewFromInt(2),
			underOverClassOver:  decimal.Zero,
		},
		Wheel: {
			wheelClassEvenMoney: decimal.NewFromInt(2),
			wheelClassGreen:     decimal.NewFromInt(14),
			wheelClassLoss:      decimal.Zero,
		},
		ClimbCart: {
			// a cashed-out round pays the caller's own target, which
			// never lives in the table
			climbCartClassCrashed: decimal.Zero,
		},
		GridHazard:  gridHazardTable(),
		BucketDrop:  bucketDropTable(),
		NumberMatch: {
			matchClass(0): decimal.Zero,
			matchClass(1): decimal.RequireFromString("0.5"),
			matchClass(2): decimal.NewFromInt(2),
			matchClass(3): decimal.NewFromInt(10),
			matchClass(4): decimal.NewFromInt(20),
		},
		TieredClimb: tieredClimbTable(),
		CardCompare: {
			cardClassPlayerBust: decimal.Zero,
			cardClassDealerBust: decimal.NewFromInt(2),
			cardClassPlayerHigh: decimal.NewFromInt(2),
			cardClassNatural:    decimal.RequireFromString("2.5"),
			cardClassStandOff:   decimal.Zero,
		},
	}
}

// 1 + 0.2 per safe reveal, reveal counts run 1 through 10 so the
// exploded case can leave 0 through 9 safe cells behind.
func gridHazardTable() map[string]decimal.Decimal {
	table := map[string]decimal.Decimal{
		gridClassExploded: decimal.Zero,
	}
	step := decimal.RequireFromString("0.2")
	for n := 0; n <= gridMaxReveals; n++ {
		table[gridSafeClass(n)] = decimal.NewFromInt(1).Add(step.Mul(decimal.NewFromInt(int64(n))))
	}
	return table
}

func bucketDropTable() map[string]decimal.Decimal {
	multipliers := []string{"0.2", "0.5", "1", "1.5", "2", "1.5", "1", "0.5", "0.2"}
	table := make(map[string]decimal.Decimal, len(multipliers))
	for i, m := range multipliers {
		table[bucketClass(i)] = decimal.RequireFromString(m)
	}
	return table
}

// per-level multiplier compounds on every climbed level; level 0
// pays nothing at any difficulty.
func tieredClimbTable() map[string]decimal.Decimal {
	table := make(map[string]decimal.Decimal, 3*(climbMaxLevels+1))
	for d := range climbDifficultyNames {
		levelMult := climbLevelMultipliers[d]
		for level := 0; level <= climbMaxLevels; level++ {
			if level == 0 {
				table[climbClass(d, 0)] = decimal.Zero
				continue
			}
			table[climbClass(d, level)] = levelMult.Pow(decimal.NewFromInt(int64(level)))
		}
	}
	return table
}

// Paytable returns a copy of one game's class-to-multiplier table.
func Paytable(id GameID) map[string]decimal.Decimal {
	table, ok := paytables[id]
	if !ok {
		panic(fmt.Sprintf("games: no paytable for %s", id))
	}
	out := make(map[string]decimal.Decimal, len(table))
	for class, mult := range table {
		out[class] = mult
	}
	return out
}

// Lookup resolves an outcome class to its multiplier. An unknown
// class is a programming-contract violation, never a runtime
// condition.
func Lookup(id GameID, class string) decimal.Decimal {
	table, ok := paytables[id]
	if !ok {
		panic(fmt.Sprintf("games: no paytable for %s", id))
	}
	mult, ok := table[class]
	if !ok {
		panic(fmt.Sprintf("games: unknown outcome class %q for %s", class, id))
	}
	return mult
}
