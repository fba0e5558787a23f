package games

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const (
	matchPoolSize  = 40
	matchPickCount = 4
	matchDrawCount = 10
)

func matchClass(matches int) string {
	return fmt.Sprintf("match_%d", matches)
}

type NumberMatchParams struct {
	// Picks are optional; when empty the game draws them for the
	// player.
	Picks []int `json:"picks"`
}

func (p *NumberMatchParams) Validate() error {
	if len(p.Picks) == 0 {
		return nil
	}
	if len(p.Picks) != matchPickCount {
		return fmt.Errorf("picks must contain exactly %d numbers", matchPickCount)
	}
	seen := make(map[int]bool, matchPickCount)
	for _, n := range p.Picks {
		if n < 1 || n > matchPoolSize {
			return fmt.Errorf("pick %d outside 1-%d", n, matchPoolSize)
		}
		if seen[n] {
			return errors.New("picks must be distinct")
		}
		seen[n] = true
	}
	return nil
}

// NumberMatchGame draws ten numbers from a pool of forty and pays by
// how many of the player's four picks were drawn.
type NumberMatchGame struct{}

type NumberMatchDetail struct {
	Picks   []int `json:"picks"`
	Drawn   []int `json:"drawn"`
	Matches int   `json:"matches"`
}

func (g *NumberMatchGame) Resolve(wager decimal.Decimal, params Params, src rng.Source) (Outcome, error) {
	p, ok := params.(*NumberMatchParams)
	if !ok {
		return Outcome{}, fmt.Errorf("numbermatch: unexpected params type %T", params)
	}

	picks := p.Picks
	if len(picks) == 0 {
		picks = drawDistinct(src, matchPickCount)
	}
	drawn := drawDistinct(src, matchDrawCount)

	drawnSet := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		drawnSet[n] = true
	}
	matches := 0
	for _, n := range picks {
		if drawnSet[n] {
			matches++
		}
	}

	class := matchClass(matches)
	mult := Lookup(NumberMatch, class)

	return Outcome{
		Game:       NumberMatch,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       fmt.Sprintf("MATCHES: %d", matches),
		Detail:     NumberMatchDetail{Picks: picks, Drawn: drawn, Matches: matches},
	}, nil
}

func drawDistinct(src rng.Source, count int) []int {
	set := make(map[int]bool, count)
	out := make([]int, 0, count)
	for len(out) < count {
		n := src.IntRange(1, matchPoolSize)
		if set[n] {
			continue
		}
		set[n] = true
		out = append(out, n)
	}
	return out
}
