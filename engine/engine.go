package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gemrush.io/backend/games"
	"gemrush.io/backend/ledger"
	"gemrush.io/backend/rng"
)

var (
	ErrInvalidWager          = errors.New("wager must be positive")
	ErrInvalidParameters     = errors.New("invalid game parameters")
	ErrGameAlreadyInProgress = errors.New("game already in progress")
	ErrGameExecutionFailed   = errors.New("game execution failed")
)

// SourceFactory builds the randomness source for one round.
type SourceFactory func(playerID uint) rng.Source

// Recorder persists a settled round. Recording is best effort; a
// failed write never affects the settlement itself.
type Recorder interface {
	RecordRound(playerID uint, wager decimal.Decimal, outcome games.Outcome) error
}

// session is one player's settlement state. inFlight serializes
// rounds: a second Execute while one is running is rejected, not
// queued. mu makes debit-resolve-credit one critical section; every
// other balance operation takes it too, so a round in flight is never
// observed half-settled.
type session struct {
	ledger   *ledger.Ledger
	inFlight atomic.Bool
	mu       sync.Mutex
}

// Engine settles wagers against per-player credit ledgers. Sessions
// are created lazily with the configured starting balance.
type Engine struct {
	mu       sync.Mutex
	sessions map[uint]*session

	starting  decimal.Decimal
	newSource SourceFactory
	recorder  Recorder
}

// New builds an engine. newSource may be nil to use a hash-chain
// stream seeded per round; recorder may be nil to skip persistence.
func New(startingCredits decimal.Decimal, newSource SourceFactory, recorder Recorder) *Engine {
	if startingCredits.IsNegative() {
		panic(fmt.Sprintf("engine: negative starting credits %s", startingCredits))
	}
	if newSource == nil {
		newSource = defaultSource
	}
	return &Engine{
		sessions:  make(map[uint]*session),
		starting:  startingCredits,
		newSource: newSource,
		recorder:  recorder,
	}
}

func defaultSource(playerID uint) rng.Source {
	return rng.NewStream(uuid.NewString(), fmt.Sprintf("%d", playerID), uint64(time.Now().UnixMilli()))
}

func (e *Engine) session(playerID uint) *session {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[playerID]
	if !ok {
		s = &session{ledger: ledger.New(e.starting)}
		e.sessions[playerID] = s
	}
	return s
}

// Execute runs one round: validate the wager and parameters, debit
// the stake, resolve the game and credit the payout. The stake is
// refunded in full when resolution fails, so the ledger never loses
// credits to a broken round.
func (e *Engine) Execute(playerID uint, game games.GameID, wager decimal.Decimal, rawParams string) (games.Outcome, error) {
	if !wager.IsPositive() {
		return games.Outcome{}, ErrInvalidWager
	}
	params, err := games.ParseParams(game, rawParams)
	if err != nil {
		return games.Outcome{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	if err := params.Validate(); err != nil {
		return games.Outcome{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	s := e.session(playerID)
	if !s.inFlight.CompareAndSwap(false, true) {
		return games.Outcome{}, ErrGameAlreadyInProgress
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.Debit(wager); err != nil {
		return games.Outcome{}, err
	}

	outcome, err := e.resolve(playerID, game, wager, params)
	if err != nil {
		s.ledger.Credit(wager)
		slog.Error("game execution failed",
			"game", game.String(),
			"player", playerID,
			"error", err)
		return games.Outcome{}, ErrGameExecutionFailed
	}

	if outcome.Payout.IsPositive() {
		s.ledger.Credit(outcome.Payout)
	}

	if e.recorder != nil {
		if err := e.recorder.RecordRound(playerID, wager, outcome); err != nil {
			slog.Error("recording round",
				"game", game.String(),
				"player", playerID,
				"error", err)
		}
	}

	slog.Info("round settled",
		"game", game.String(),
		"player", playerID,
		"wager", wager.String(),
		"class", outcome.Class,
		"payout", outcome.Payout.String())

	return outcome, nil
}

// resolve runs the generator behind a recover so a panicking game
// surfaces as an error and the caller can refund the stake.
func (e *Engine) resolve(playerID uint, game games.GameID, wager decimal.Decimal, params games.Params) (outcome games.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	return games.ForGame(game).Resolve(wager, params, e.newSource(playerID))
}

// Balance reads a player's settled balance. It takes the session
// mutex, so a round in flight is never observed between its debit and
// the paired credit or refund.
func (e *Engine) Balance(playerID uint) decimal.Decimal {
	s := e.session(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Balance()
}

// Deposit adds credits to a player's ledger outside of settlement.
func (e *Engine) Deposit(playerID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("deposit must be positive")
	}

	s := e.session(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Credit(amount)
	return nil
}

// Withdraw removes credits from a player's ledger outside of
// settlement. Fails with ledger.ErrInsufficientCredits when the
// balance cannot cover it.
func (e *Engine) Withdraw(playerID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("withdrawal must be positive")
	}

	s := e.session(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Debit(amount)
}
