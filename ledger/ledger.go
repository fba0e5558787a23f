package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrInsufficientCredits = errors.New("insufficient credits")

// Ledger owns a single player's credit balance. Every mutation goes
// through Debit or Credit and each one is all-or-nothing; the balance
// is never observed negative.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

func New(initial decimal.Decimal) *Ledger {
	if initial.IsNegative() {
		panic(fmt.Sprintf("ledger: negative initial balance %s", initial))
	}
	return &Ledger{balance: initial}
}

// Debit subtracts amount from the balance, rejecting the whole
// operation when amount exceeds it.
func (l *Ledger) Debit(amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.GreaterThan(l.balance) {
		return ErrInsufficientCredits
	}
	l.balance = l.balance.Sub(amount)

	return nil
}

// Credit adds amount to the balance. Amounts are produced internally
// and are always non-negative.
func (l *Ledger) Credit(amount decimal.Decimal) {
	if amount.IsNegative() {
		panic(fmt.Sprintf("ledger: negative credit %s", amount))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance = l.balance.Add(amount)
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance
}
