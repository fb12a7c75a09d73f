package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Service defines the interface for the shelter's money ledger
type Service interface {
	AddMoney(ctx context.Context, amount int, source string) error
	SpendMoney(ctx context.Context, amount int, reason string) bool
	CanAfford(amount int) bool
	Budget() int
	State() domain.EconomyState

	Snapshot() Ledger
	Restore(l Ledger)
}

// Ledger is the full economy state, used for snapshots
type Ledger struct {
	Budget       int
	TotalEarned  int
	TotalSpent   int
	Transactions []domain.Transaction
}

func (l Ledger) clone() Ledger {
	c := l
	c.Transactions = append([]domain.Transaction(nil), l.Transactions...)
	return c
}

type service struct {
	ledger Ledger
	now    func() time.Time
}

// Option configures the economy service
type Option func(*service)

// WithClock injects the clock used to timestamp transactions
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a ledger holding the starting budget, which counts as earned
func NewService(startingBudget int, opts ...Option) Service {
	s := &service{
		ledger: Ledger{Budget: startingBudget, TotalEarned: startingBudget},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddMoney credits the budget unconditionally
func (s *service) AddMoney(ctx context.Context, amount int, source string) error {
	if amount <= 0 {
		return fmt.Errorf(ErrMsgInvalidAmountFmt, amount, source, domain.ErrInvalidAmount)
	}
	s.ledger.Budget += amount
	s.ledger.TotalEarned += amount
	s.record(amount, domain.TransactionEarned, source)

	log := logger.FromContext(ctx)
	log.Debug(LogMsgMoneyAdded, "amount", amount, "source", source, "budget", s.ledger.Budget)
	return nil
}

// SpendMoney debits the budget iff it covers the amount
func (s *service) SpendMoney(ctx context.Context, amount int, reason string) bool {
	log := logger.FromContext(ctx)
	if amount <= 0 || !s.CanAfford(amount) {
		log.Debug(LogMsgSpendRejected, "amount", amount, "reason", reason, "budget", s.ledger.Budget)
		return false
	}
	s.ledger.Budget -= amount
	s.ledger.TotalSpent += amount
	s.record(amount, domain.TransactionSpent, reason)

	log.Debug(LogMsgMoneySpent, "amount", amount, "reason", reason, "budget", s.ledger.Budget)
	return true
}

func (s *service) CanAfford(amount int) bool {
	return s.ledger.Budget >= amount
}

func (s *service) Budget() int {
	return s.ledger.Budget
}

func (s *service) State() domain.EconomyState {
	c := s.ledger.clone()
	return domain.EconomyState{
		Budget:           c.Budget,
		TotalMoneyEarned: c.TotalEarned,
		TotalMoneySpent:  c.TotalSpent,
		Transactions:     c.Transactions,
	}
}

func (s *service) Snapshot() Ledger {
	return s.ledger.clone()
}

func (s *service) Restore(l Ledger) {
	s.ledger = l.clone()
}

func (s *service) record(amount int, direction domain.TransactionDirection, source string) {
	s.ledger.Transactions = append(s.ledger.Transactions, domain.Transaction{
		Amount:    amount,
		Direction: direction,
		Source:    source,
		Timestamp: s.now(),
	})
}
