package catalog

import "github.com/osse101/ShelterSim_Go/internal/domain"

// SkillRequirement gates an action behind a minimum skill level
type SkillRequirement struct {
	Skill domain.Skill
	Level int
}

// ActionCost is what performing an action consumes or requires
type ActionCost struct {
	PlayerEnergy     int
	AnimalEnergy     int
	RequiredItems    []string
	MoneyRequired    int
	SkillRequirement *SkillRequirement
}

// ActionEffect is what a successful action does to an animal and the player
type ActionEffect struct {
	Health                int
	Happiness             int
	AdoptionReadiness     int
	Experience            int
	CuresSickness         bool
	PreventsIllness       bool
	ImprovesTemperament   bool
	CriticalSuccessChance float64
}

// ExperienceOrDefault returns the experience granted, defaulting to 1
func (e ActionEffect) ExperienceOrDefault() int {
	if e.Experience <= 0 {
		return DefaultActionExperience
	}
	return e.Experience
}

// Delta returns the stat changes of the effect
func (e ActionEffect) Delta() domain.StatDelta {
	return domain.StatDelta{
		Health:            e.Health,
		Happiness:         e.Happiness,
		AdoptionReadiness: e.AdoptionReadiness,
	}
}

// ActionDefinition is the static description of one care action
type ActionDefinition struct {
	Type        domain.ActionType
	Name        string
	Description string
	Cost        ActionCost
	Effect      ActionEffect
}

// Definition resolves an action type. Every member of the closed set has a case;
// anything else reports false.
func Definition(t domain.ActionType) (ActionDefinition, bool) {
	switch t {
	case domain.ActionFeed:
		return ActionDefinition{
			Type:        t,
			Name:        "Feed",
			Description: "Give the animal a nutritious meal",
			Cost:        ActionCost{PlayerEnergy: 1, AnimalEnergy: 0},
			Effect:      ActionEffect{Health: 10, Happiness: 5, Experience: 1},
		}, true
	case domain.ActionWalk:
		return ActionDefinition{
			Type:        t,
			Name:        "Walk",
			Description: "Take the animal for a walk around the neighborhood",
			Cost:        ActionCost{PlayerEnergy: 2, AnimalEnergy: 2},
			Effect:      ActionEffect{Health: 5, Happiness: 15, AdoptionReadiness: 3, Experience: 2},
		}, true
	case domain.ActionPlay:
		return ActionDefinition{
			Type:        t,
			Name:        "Play",
			Description: "Play games and have fun together",
			Cost:        ActionCost{PlayerEnergy: 2, AnimalEnergy: 2, RequiredItems: []string{domain.ItemToys}},
			Effect:      ActionEffect{Happiness: 20, AdoptionReadiness: 5, Experience: 2, CriticalSuccessChance: 0.1},
		}, true
	case domain.ActionMedical:
		return ActionDefinition{
			Type:        t,
			Name:        "Medical Care",
			Description: "Provide medical treatment and checkups",
			Cost: ActionCost{
				PlayerEnergy:  3,
				AnimalEnergy:  1,
				RequiredItems: []string{domain.ItemMedicalSupplies},
				MoneyRequired: 10,
			},
			Effect: ActionEffect{Health: 25, AdoptionReadiness: 2, Experience: 4, CuresSickness: true, PreventsIllness: true},
		}, true
	case domain.ActionExercise:
		return ActionDefinition{
			Type:        t,
			Name:        "Exercise",
			Description: "An intense workout session",
			Cost:        ActionCost{PlayerEnergy: 4, AnimalEnergy: 4},
			Effect:      ActionEffect{Health: 15, Happiness: 25, AdoptionReadiness: 8, Experience: 3},
		}, true
	case domain.ActionGroom:
		return ActionDefinition{
			Type:        t,
			Name:        "Groom",
			Description: "Brush, bathe and pamper the animal",
			Cost:        ActionCost{PlayerEnergy: 2, AnimalEnergy: 1, RequiredItems: []string{domain.ItemGroomingSupplies}},
			Effect:      ActionEffect{Health: 5, Happiness: 10, AdoptionReadiness: 15, Experience: 2},
		}, true
	case domain.ActionTrain:
		return ActionDefinition{
			Type:        t,
			Name:        "Train",
			Description: "Teach basic commands and manners",
			Cost: ActionCost{
				PlayerEnergy:     3,
				AnimalEnergy:     3,
				SkillRequirement: &SkillRequirement{Skill: domain.SkillAnimalPsychology, Level: 2},
			},
			Effect: ActionEffect{AdoptionReadiness: 20, Experience: 4, ImprovesTemperament: true},
		}, true
	case domain.ActionSocialize:
		return ActionDefinition{
			Type:        t,
			Name:        "Socialize",
			Description: "Help the animal get comfortable with people and other animals",
			Cost:        ActionCost{PlayerEnergy: 2, AnimalEnergy: 2},
			Effect:      ActionEffect{Happiness: 15, AdoptionReadiness: 10, Experience: 3, ImprovesTemperament: true},
		}, true
	case domain.ActionIdle:
		return ActionDefinition{
			Type:        t,
			Name:        "Rest",
			Description: "Spend quiet time together",
		}, true
	}
	return ActionDefinition{}, false
}

// Actions returns every action definition in catalog order
func Actions() []ActionDefinition {
	defs := make([]ActionDefinition, 0, len(domain.AllActionTypes))
	for _, t := range domain.AllActionTypes {
		if def, ok := Definition(t); ok {
			defs = append(defs, def)
		}
	}
	return defs
}
