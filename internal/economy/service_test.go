package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestService() Service {
	return NewService(500, WithClock(func() time.Time { return fixedNow }))
}

func TestNewService_StartingBudget(t *testing.T) {
	st := newTestService().State()
	assert.Equal(t, 500, st.Budget)
	assert.Equal(t, 500, st.TotalMoneyEarned)
	assert.Zero(t, st.TotalMoneySpent)
	assert.Empty(t, st.Transactions)
}

func TestAddMoney(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddMoney(ctx, 150, domain.MoneySourceAdoption))

	st := svc.State()
	assert.Equal(t, 650, st.Budget)
	assert.Equal(t, 650, st.TotalMoneyEarned)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, domain.Transaction{Amount: 150, Direction: domain.TransactionEarned, Source: domain.MoneySourceAdoption, Timestamp: fixedNow}, st.Transactions[0])

	for _, amount := range []int{0, -5} {
		err := svc.AddMoney(ctx, amount, "bogus")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.Equal(t, 650, svc.Budget())
}

func TestSpendMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   bool
		budget int
	}{
		{"partial", 120, true, 380},
		{"exact budget", 500, true, 0},
		{"over budget", 501, false, 500},
		{"zero", 0, false, 500},
		{"negative", -10, false, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			assert.Equal(t, tt.want, svc.SpendMoney(context.Background(), tt.amount, "purchase_toys"))
			assert.Equal(t, tt.budget, svc.Budget())
			if !tt.want {
				assert.Empty(t, svc.State().Transactions, "rejected spends are not recorded")
			}
		})
	}
}

func TestCanAfford(t *testing.T) {
	svc := newTestService()
	assert.True(t, svc.CanAfford(500))
	assert.False(t, svc.CanAfford(501))
}

func TestSnapshotRestore(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	snap := svc.Snapshot()

	require.NoError(t, svc.AddMoney(ctx, 100, domain.MoneySourceDonation))
	require.True(t, svc.SpendMoney(ctx, 50, "purchase_toys"))
	svc.Restore(snap)

	st := svc.State()
	assert.Equal(t, 500, st.Budget)
	assert.Zero(t, st.TotalMoneySpent)
	assert.Empty(t, st.Transactions)
}

func TestPricing(t *testing.T) {
	item := domain.ShopItem{ID: "toys", Price: 25}
	assert.Equal(t, 75, BuyCost(item, 3))
	assert.Equal(t, 34, SellValue(item, 2), "17 per unit after flooring")

	q, cost := AffordableQuantity(5, 30, 100)
	assert.Equal(t, 3, q)
	assert.Equal(t, 90, cost)

	q, cost = AffordableQuantity(2, 30, 100)
	assert.Equal(t, 2, q)
	assert.Equal(t, 60, cost)

	q, _ = AffordableQuantity(2, 30, 10)
	assert.Zero(t, q)

	q, cost = AffordableQuantity(4, 0, 0)
	assert.Equal(t, 4, q)
	assert.Zero(t, cost)
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.NoError(t, ValidateQuantity(MaxTransactionQuantity))
	assert.ErrorIs(t, ValidateQuantity(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, ValidateQuantity(MaxTransactionQuantity+1), domain.ErrInvalidInput)
}

func TestCheckPurchase(t *testing.T) {
	feeder := domain.ShopItem{ID: "auto_feeder", Price: 300, RequiresLevel: 5, UnlockDay: 7, MaxQuantity: 1}
	ok := PurchaseCheck{Quantity: 1, PlayerLevel: 5, Day: 7, Budget: 300}

	tests := []struct {
		name      string
		mutate    func(c *PurchaseCheck)
		want      domain.FailureReason
		shortfall *domain.Shortfall
	}{
		{"eligible", func(c *PurchaseCheck) {}, domain.ReasonNone, nil},
		{"bad quantity", func(c *PurchaseCheck) { c.Quantity = 0 }, domain.ReasonInvalidInput, nil},
		{"level too low", func(c *PurchaseCheck) { c.PlayerLevel = 2 }, domain.ReasonLevelTooLow, &domain.Shortfall{Resource: "level", Needed: 5, Available: 2}},
		{"locked", func(c *PurchaseCheck) { c.Day = 3 }, domain.ReasonItemLocked, &domain.Shortfall{Resource: "day", Needed: 7, Available: 3}},
		{"max quantity", func(c *PurchaseCheck) { c.Owned = 1 }, domain.ReasonMaxQuantityReached, &domain.Shortfall{Resource: "quantity", Needed: 2, Available: 1}},
		{"funds", func(c *PurchaseCheck) { c.Budget = 299 }, domain.ReasonInsufficientFunds, &domain.Shortfall{Resource: "money", Needed: 300, Available: 299}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mutate(&c)
			reason, shortfall := CheckPurchase(feeder, c)
			assert.Equal(t, tt.want, reason)
			assert.Equal(t, tt.shortfall, shortfall)
		})
	}
}
