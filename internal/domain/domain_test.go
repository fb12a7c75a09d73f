package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionType(t *testing.T) {
	at, ok := ParseActionType(" Walk ")
	require.True(t, ok)
	assert.Equal(t, ActionWalk, at)

	_, ok = ParseActionType("fly")
	assert.False(t, ok)
}

func TestPlayerSkills_LevelAndSet(t *testing.T) {
	var skills PlayerSkills
	for i, s := range AllSkills {
		require.True(t, skills.Set(s, i+1))
	}
	for i, s := range AllSkills {
		level, ok := skills.Level(s)
		require.True(t, ok)
		assert.Equal(t, i+1, level)
	}

	assert.False(t, skills.Set(Skill("juggling"), 3))
	_, ok := skills.Level(Skill("juggling"))
	assert.False(t, ok)
}

func TestParseSkill(t *testing.T) {
	s, ok := ParseSkill("fundraising")
	require.True(t, ok)
	assert.Equal(t, SkillFundraising, s)

	_, ok = ParseSkill("cooking")
	assert.False(t, ok)
}

func TestAnimalClone_IsDeep(t *testing.T) {
	now := time.Now()
	a := Animal{ID: "a", LastFed: &now, Temperament: []string{"calm"}}

	c := a.Clone()
	c.Temperament[0] = "wild"
	*c.LastFed = now.Add(time.Hour)

	assert.Equal(t, "calm", a.Temperament[0])
	assert.Equal(t, now, *a.LastFed)
}

func TestFailureReason_Err(t *testing.T) {
	assert.NoError(t, ReasonNone.Err())
	assert.ErrorIs(t, ReasonAnimalNotFound.Err(), ErrAnimalNotFound)
	assert.ErrorIs(t, ReasonShelterFull.Err(), ErrShelterFull)
	assert.ErrorIs(t, FailureReason("bogus").Err(), ErrInvalidInput)
}

func TestActionOutcome_Err(t *testing.T) {
	ok := ActionOutcome{Success: true}
	assert.NoError(t, ok.Err())

	failed := ActionOutcome{
		Reason:    ReasonInsufficientPlayerEnergy,
		Shortfall: &Shortfall{Resource: "player_energy", Needed: 3, Available: 1},
	}
	err := failed.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientPlayerEnergy))
	assert.Contains(t, err.Error(), "needed 3, available 1")
}

func TestShopItem_SellPrice(t *testing.T) {
	assert.Equal(t, 17, ShopItem{Price: 25}.SellPrice())
	assert.Equal(t, 35, ShopItem{Price: 50}.SellPrice())
}

func TestStatDelta_IsZero(t *testing.T) {
	assert.True(t, StatDelta{}.IsZero())
	assert.False(t, StatDelta{Happiness: 1}.IsZero())
}

func TestShopItem_IsEquipment(t *testing.T) {
	assert.True(t, ShopItem{Effects: ItemEffects{DailyEnergyBonus: 2}}.IsEquipment())
	assert.True(t, ShopItem{Effects: ItemEffects{ImproveActionEffect: []ActionModifier{{Action: ActionTrain, Multiplier: 1.3}}}}.IsEquipment())
	assert.False(t, ShopItem{Consumable: true, Effects: ItemEffects{DailyEnergyBonus: 2}}.IsEquipment())
	assert.False(t, ShopItem{ID: "toys"}.IsEquipment())
}
