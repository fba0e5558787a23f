package games

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	gridCells      = 25
	gridHazards    = 3
	gridMaxReveals = 10
)

const gridClassExploded = "exploded"

func gridSafeClass(safeReveals int) string {
	return fmt.Sprintf("safe_%d", safeReveals)
}

// GridHazardGame hides three hazards in a 25-cell grid, reveals a
// random number of cells and stops at the first hazard hit.
type GridHazardGame struct{}

type GridHazardDetail struct {
	Hazards     []int `json:"hazards"`
	Revealed    []int `json:"revealed"`
	Exploded    bool  `json:"exploded"`
	SafeReveals int   `json:"safe_reveals"`
}

func (g *GridHazardGame) Resolve(wager decimal.Decimal, _ Params, src rng.Source) (Outcome, error) {
	hazardSet := make(map[int]bool, gridHazards)
	hazards := make([]int, 0, gridHazards)
	for len(hazards) < gridHazards {
		pos := src.IntRange(0, gridCells-1)
		if hazardSet[pos] {
			continue
		}
		hazardSet[pos] = true
		hazards = append(hazards, pos)
	}

	revealCount := src.IntRange(1, gridMaxReveals)
	revealedSet := make(map[int]bool, revealCount)
	revealed := make([]int, 0, revealCount)
	exploded := false
	for len(revealed) < revealCount {
		pos := src.IntRange(0, gridCells-1)
		if revealedSet[pos] {
			continue
		}
		revealedSet[pos] = true
		revealed = append(revealed, pos)
		if hazardSet[pos] {
			exploded = true
			break
		}
	}

	safeReveals := len(revealed)
	if exploded {
		safeReveals--
	}

	class := gridSafeClass(safeReveals)
	text := fmt.Sprintf("SAFE (%d revealed)", safeReveals)
	if exploded {
		class = gridClassExploded
		text = "BOOM"
	}
	mult := Lookup(GridHazard, class)

	return Outcome{
		Game:       GridHazard,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       text,
		Detail: GridHazardDetail{
			Hazards:     hazards,
			Revealed:    revealed,
			Exploded:    exploded,
			SafeReveals: safeReveals,
		},
	}, nil
}
