package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

func TestDefinition_EveryActionResolves(t *testing.T) {
	for _, at := range domain.AllActionTypes {
		t.Run(string(at), func(t *testing.T) {
			def, ok := Definition(at)
			require.True(t, ok)
			assert.Equal(t, at, def.Type)
			assert.NotEmpty(t, def.Name)
			assert.GreaterOrEqual(t, def.Cost.PlayerEnergy, 0)
			assert.GreaterOrEqual(t, def.Cost.AnimalEnergy, 0)
		})
	}
}

func TestDefinition_UnknownAction(t *testing.T) {
	_, ok := Definition(domain.ActionType("juggle"))
	assert.False(t, ok)
}

func TestDefinition_CostTable(t *testing.T) {
	tests := []struct {
		action domain.ActionType
		player int
		animal int
		exp    int
	}{
		{domain.ActionFeed, 1, 0, 1},
		{domain.ActionWalk, 2, 2, 2},
		{domain.ActionPlay, 2, 2, 2},
		{domain.ActionMedical, 3, 1, 4},
		{domain.ActionExercise, 4, 4, 3},
		{domain.ActionGroom, 2, 1, 2},
		{domain.ActionTrain, 3, 3, 4},
		{domain.ActionSocialize, 2, 2, 3},
		{domain.ActionIdle, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			def, ok := Definition(tt.action)
			require.True(t, ok)
			assert.Equal(t, tt.player, def.Cost.PlayerEnergy)
			assert.Equal(t, tt.animal, def.Cost.AnimalEnergy)
			assert.Equal(t, tt.exp, def.Effect.ExperienceOrDefault())
		})
	}
}

func TestDefinition_Requirements(t *testing.T) {
	medical, _ := Definition(domain.ActionMedical)
	assert.Equal(t, []string{domain.ItemMedicalSupplies}, medical.Cost.RequiredItems)
	assert.Equal(t, 10, medical.Cost.MoneyRequired)
	assert.True(t, medical.Effect.CuresSickness)

	train, _ := Definition(domain.ActionTrain)
	require.NotNil(t, train.Cost.SkillRequirement)
	assert.Equal(t, domain.SkillAnimalPsychology, train.Cost.SkillRequirement.Skill)
	assert.Equal(t, 2, train.Cost.SkillRequirement.Level)

	play, _ := Definition(domain.ActionPlay)
	assert.InDelta(t, 0.1, play.Effect.CriticalSuccessChance, 1e-9)
}

func TestActions_CatalogOrder(t *testing.T) {
	defs := Actions()
	require.Len(t, defs, len(domain.AllActionTypes))
	for i, def := range defs {
		assert.Equal(t, domain.AllActionTypes[i], def.Type)
	}
}

func TestDefault_EmbeddedTables(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Breeds, 16)
	assert.Len(t, c.Names, 10)
	assert.Len(t, c.GoalTemplates, 3)
	assert.Len(t, c.RandomEvents, 3)
	assert.Len(t, c.ShopItems, 14)
	assert.Equal(t, 5, c.StartingInventory[domain.ItemBasicFood])

	for _, id := range []string{GoalBasicCare, GoalAdoptionReady, GoalEfficiencyMaster} {
		_, ok := c.GoalTemplate(id)
		assert.True(t, ok, id)
	}

	care, _ := c.GoalTemplate(GoalBasicCare)
	assert.Equal(t, 1, care.Requirements.SpecificActions[domain.ActionFeed])
	assert.Equal(t, 1, care.Requirements.SpecificActions[domain.ActionWalk])

	leash, ok := c.ShopItem("comfy_leash")
	require.True(t, ok)
	require.Len(t, leash.Effects.ReduceActionCost, 1)
	assert.Equal(t, domain.ActionWalk, leash.Effects.ReduceActionCost[0].Action)

	shiba, ok := c.Breed("shiba_inu")
	require.True(t, ok)
	assert.Equal(t, domain.SizeSmall, shiba.Size)

	_, ok = c.Breed("dragon")
	assert.False(t, ok)
}

func TestMustDefault_SameInstance(t *testing.T) {
	assert.Same(t, MustDefault(), MustDefault())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		docs [][]byte
	}{
		{"malformed yaml", [][]byte{[]byte("breeds: [")}},
		{"empty", [][]byte{[]byte("{}")}},
		{"duplicate item", [][]byte{animalsYAML, goalsYAML, shopYAML, []byte(`
items:
  - id: toys
    name: More Toys
    category: supplies
    price: 10
`)}},
		{"unknown goal action", [][]byte{animalsYAML, shopYAML, []byte(`
goals:
  - id: juggling
    title: Juggling
    type: care
    difficulty: easy
    requirements:
      specific_actions:
        juggle: 1
events:
  - type: donation
    title: Gift
`)}},
		{"bad category", [][]byte{animalsYAML, goalsYAML, []byte(`
items:
  - id: rock
    name: Rock
    category: geology
    price: 1
`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.docs...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
		})
	}
}
