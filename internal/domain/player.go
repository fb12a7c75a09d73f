package domain

// Skill names one of the player's five trainable skills
type Skill string

const (
	SkillVeterinary        Skill = "veterinarySkill"
	SkillExerciseTraining  Skill = "exerciseTraining"
	SkillAnimalPsychology  Skill = "animalPsychology"
	SkillShelterManagement Skill = "shelterManagement"
	SkillFundraising       Skill = "fundraising"
)

// AllSkills lists every skill
var AllSkills = []Skill{
	SkillVeterinary,
	SkillExerciseTraining,
	SkillAnimalPsychology,
	SkillShelterManagement,
	SkillFundraising,
}

// Skill bounds
const (
	SkillMin = 0
	SkillMax = 10
)

// Reputation bounds
const (
	ReputationMin = 0
	ReputationMax = 100
)

// PlayerSkills holds every skill level (0-10)
type PlayerSkills struct {
	VeterinarySkill   int `json:"veterinary_skill"`
	ExerciseTraining  int `json:"exercise_training"`
	AnimalPsychology  int `json:"animal_psychology"`
	ShelterManagement int `json:"shelter_management"`
	Fundraising       int `json:"fundraising"`
}

// Level returns the level of a skill and whether the skill exists
func (s PlayerSkills) Level(skill Skill) (int, bool) {
	switch skill {
	case SkillVeterinary:
		return s.VeterinarySkill, true
	case SkillExerciseTraining:
		return s.ExerciseTraining, true
	case SkillAnimalPsychology:
		return s.AnimalPsychology, true
	case SkillShelterManagement:
		return s.ShelterManagement, true
	case SkillFundraising:
		return s.Fundraising, true
	}
	return 0, false
}

// Set assigns a skill level and reports whether the skill exists
func (s *PlayerSkills) Set(skill Skill, level int) bool {
	switch skill {
	case SkillVeterinary:
		s.VeterinarySkill = level
	case SkillExerciseTraining:
		s.ExerciseTraining = level
	case SkillAnimalPsychology:
		s.AnimalPsychology = level
	case SkillShelterManagement:
		s.ShelterManagement = level
	case SkillFundraising:
		s.Fundraising = level
	default:
		return false
	}
	return true
}

// ParseSkill converts a user supplied name into a Skill
func ParseSkill(name string) (Skill, bool) {
	for _, s := range AllSkills {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Player is the singleton representing the user
type Player struct {
	Energy           int `json:"energy"`
	MaxEnergy        int `json:"max_energy"`
	EnergySpentToday int `json:"energy_spent_today"`

	Level                 int `json:"level"`
	Experience            int `json:"experience"`
	ExperienceToNextLevel int `json:"experience_to_next_level"`
	SkillPoints           int `json:"skill_points"`

	Skills PlayerSkills `json:"skills"`

	TotalAnimalsHelped int `json:"total_animals_helped"`
	TotalAdoptions     int `json:"total_adoptions"`
	DaysActive         int `json:"days_active"`
	Reputation         int `json:"reputation"`
}

// LevelResult reports whether an experience grant crossed a level threshold
type LevelResult struct {
	LeveledUp         bool `json:"leveled_up"`
	OldLevel          int  `json:"old_level"`
	NewLevel          int  `json:"new_level"`
	SkillPointsEarned int  `json:"skill_points_earned"`
}
