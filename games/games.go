package games

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

// GameID enumerates the nine arcade games. The set is closed; every
// switch over it is exhaustive and panics on an unknown value.
type GameID uint8

const (
	Reel GameID = iota
	UnderOver
	Wheel
	ClimbCart
	GridHazard
	BucketDrop
	NumberMatch
	TieredClimb
	CardCompare
)

var gameNames = [...]string{
	Reel:        "reel",
	UnderOver:   "underover",
	Wheel:       "wheel",
	ClimbCart:   "climbcart",
	GridHazard:  "gridhazard",
	BucketDrop:  "bucketdrop",
	NumberMatch: "numbermatch",
	TieredClimb: "tieredclimb",
	CardCompare: "cardcompare",
}

func (id GameID) String() string {
	if int(id) >= len(gameNames) {
		panic(fmt.Sprintf("games: unknown game id %d", uint8(id)))
	}
	return gameNames[id]
}

// AllGames lists every game id in declaration order.
func AllGames() []GameID {
	ids := make([]GameID, len(gameNames))
	for i := range gameNames {
		ids[i] = GameID(i)
	}
	return ids
}

func ParseGameID(name string) (GameID, error) {
	for id, known := range gameNames {
		if known == name {
			return GameID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown game %q", name)
}

// Params is a game's wager parameters, already decoded from the
// request payload. Validate reports the first out-of-domain field;
// generators never re-validate.
type Params interface {
	Validate() error
}

// NoParams is the parameter set of the games that take none.
type NoParams struct{}

func (NoParams) Validate() error { return nil }

// Outcome is the settled result of a single round: the raw draw
// detail, the outcome class it fell into, the multiplier that class
// pays and the resulting payout. Text is a short display string for
// the presentation layer and carries no game logic.
type Outcome struct {
	Game       GameID          `json:"game"`
	Class      string          `json:"class"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
	Text       string          `json:"text"`
	Detail     any             `json:"detail"`
}

// Generator resolves one wager into an Outcome, drawing all
// randomness from src. Implementations are pure: same params and
// draws, same outcome.
type Generator interface {
	Resolve(wager decimal.Decimal, params Params, src rng.Source) (Outcome, error)
}

func ForGame(id GameID) Generator {
	switch id {
	case Reel:
		return &ReelGame{}
	case UnderOver:
		return &UnderOverGame{}
	case Wheel:
		return &WheelGame{}
	case ClimbCart:
		return &ClimbCartGame{}
	case GridHazard:
		return &GridHazardGame{}
	case BucketDrop:
		return &BucketDropGame{}
	case NumberMatch:
		return &NumberMatchGame{}
	case TieredClimb:
		return &TieredClimbGame{}
	case CardCompare:
		return &CardCompareGame{}
	}
	panic(fmt.Sprintf("games: no generator for game id %d", uint8(id)))
}

// ParseParams decodes the game-specific parameter payload. An empty
// payload is treated as "{}" so games with optional or no parameters
// accept it.
func ParseParams(id GameID, data string) (Params, error) {
	if data == "" {
		data = "{}"
	}

	switch id {
	case Wheel:
		var p WheelParams
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("parsing wheel params: %w", err)
		}
		return &p, nil
	case ClimbCart:
		var p ClimbCartParams
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("parsing climbcart params: %w", err)
		}
		return &p, nil
	case NumberMatch:
		var p NumberMatchParams
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("parsing numbermatch params: %w", err)
		}
		return &p, nil
	case TieredClimb:
		var p TieredClimbParams
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("parsing tieredclimb params: %w", err)
		}
		return &p, nil
	case Reel, UnderOver, GridHazard, BucketDrop, CardCompare:
		return NoParams{}, nil
	}
	panic(fmt.Sprintf("games: no params for game id %d", uint8(id)))
}
