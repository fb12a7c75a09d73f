package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestService() Service {
	return NewService(catalog.MustDefault(), WithClock(func() time.Time { return fixedNow }))
}

func TestNewService_StartingInventory(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, 5, svc.Quantity(domain.ItemBasicFood))
	assert.True(t, svc.Has(domain.ItemToys, 1))
	assert.True(t, svc.Has(domain.ItemMedicalSupplies, 1))
	assert.True(t, svc.Has(domain.ItemGroomingSupplies, 1))
	assert.False(t, svc.Has(domain.ItemEnergyDrink, 1))
	assert.Empty(t, svc.State().Equipment)
}

func TestNewService_DoesNotShareCatalogMap(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.Add(context.Background(), domain.ItemBasicFood, 1))
	assert.Equal(t, 5, catalog.MustDefault().StartingInventory[domain.ItemBasicFood])
}

func TestAdd(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, domain.ItemEnergyDrink, 2))
	assert.Equal(t, 2, svc.Quantity(domain.ItemEnergyDrink))

	assert.ErrorIs(t, svc.Add(ctx, domain.ItemEnergyDrink, 4), domain.ErrMaxQuantityReached)
	assert.Equal(t, 2, svc.Quantity(domain.ItemEnergyDrink))

	assert.ErrorIs(t, svc.Add(ctx, "unicorn", 1), domain.ErrItemNotFound)
	assert.ErrorIs(t, svc.Add(ctx, domain.ItemEnergyDrink, 0), domain.ErrInvalidInput)
}

func TestRemove(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, domain.ItemBasicFood, 2))
	assert.Equal(t, 3, svc.Quantity(domain.ItemBasicFood))

	assert.ErrorIs(t, svc.Remove(ctx, domain.ItemBasicFood, 4), domain.ErrInsufficientQuantity)
	assert.Equal(t, 3, svc.Quantity(domain.ItemBasicFood))

	require.NoError(t, svc.Remove(ctx, domain.ItemBasicFood, 3))
	_, present := svc.State().Items[domain.ItemBasicFood]
	assert.False(t, present)
}

func TestInstall(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Install(ctx, "coffee_machine"), domain.ErrInsufficientQuantity)
	assert.ErrorIs(t, svc.Install(ctx, domain.ItemToys), domain.ErrItemNotUsable)

	require.NoError(t, svc.Add(ctx, "coffee_machine", 1))
	require.NoError(t, svc.Install(ctx, "coffee_machine"))
	require.NoError(t, svc.Install(ctx, "coffee_machine"))
	assert.Equal(t, []string{"coffee_machine"}, svc.State().Equipment)
	assert.Equal(t, 2, svc.DailyEnergyBonus())

	require.NoError(t, svc.Remove(ctx, "coffee_machine", 1))
	assert.False(t, svc.IsInstalled("coffee_machine"), "removing the last unit uninstalls")
	assert.Zero(t, svc.DailyEnergyBonus())
}

func TestEquipmentEffects(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, id := range []string{"comfy_leash", "grooming_kit", "medical_kit", "comfort_beds", "training_treats"} {
		require.NoError(t, svc.Add(ctx, id, 1))
		require.NoError(t, svc.Install(ctx, id))
	}

	assert.Equal(t, 1, svc.ActionCostReduction(domain.ActionWalk))
	assert.Equal(t, 1, svc.ActionCostReduction(domain.ActionMedical))
	assert.Zero(t, svc.ActionCostReduction(domain.ActionFeed))

	assert.InDelta(t, 1.5, svc.ActionEffectMultiplier(domain.ActionGroom), 1e-9)
	assert.InDelta(t, 1.4, svc.ActionEffectMultiplier(domain.ActionMedical), 1e-9)
	assert.InDelta(t, 1.3, svc.ActionEffectMultiplier(domain.ActionTrain), 1e-9)
	assert.InDelta(t, 1.0, svc.ActionEffectMultiplier(domain.ActionPlay), 1e-9)

	assert.Equal(t, 1, svc.MaxAnimalEnergyBonus())
}

func TestRecordPurchaseAndValue(t *testing.T) {
	svc := newTestService()
	svc.RecordPurchase(domain.ItemToys, 2, 50, 3)

	purchases := svc.State().Purchases
	require.Len(t, purchases, 1)
	assert.Equal(t, domain.PurchaseRecord{ItemID: domain.ItemToys, Quantity: 2, TotalCost: 50, Day: 3, Timestamp: fixedNow}, purchases[0])

	// 5*50 + 25 + 45 + 35
	assert.Equal(t, 355, svc.Value())
}

func TestSnapshotRestore(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	snap := svc.Snapshot()

	require.NoError(t, svc.Add(ctx, "coffee_machine", 1))
	require.NoError(t, svc.Install(ctx, "coffee_machine"))
	require.NoError(t, svc.Remove(ctx, domain.ItemBasicFood, 5))
	svc.RecordPurchase("coffee_machine", 1, 200, 1)

	svc.Restore(snap)

	assert.Equal(t, 5, svc.Quantity(domain.ItemBasicFood))
	assert.False(t, svc.IsInstalled("coffee_machine"))
	assert.Empty(t, svc.State().Purchases)
}
