package domain

import "time"

// GoalType categorizes a daily goal
type GoalType string

const (
	GoalTypeCare       GoalType = "care"
	GoalTypeEfficiency GoalType = "efficiency"
	GoalTypeAdoption   GoalType = "adoption"
)

// Difficulty tags a goal
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GoalRequirements are the parameters of a goal's completion predicate
type GoalRequirements struct {
	SpecificActions  map[ActionType]int `yaml:"specific_actions" json:"specific_actions,omitempty"`
	ActionsRequired  int                `yaml:"actions_required" json:"actions_required,omitempty"`
	EnergyEfficiency float64            `yaml:"energy_efficiency" json:"energy_efficiency,omitempty"`
	AdoptionsNeeded  int                `yaml:"adoptions_needed" json:"adoptions_needed,omitempty"`
}

// GoalRewards is the reward bundle granted on completion
type GoalRewards struct {
	Money       int      `yaml:"money" json:"money,omitempty"`
	Experience  int      `yaml:"experience" json:"experience,omitempty"`
	Reputation  int      `yaml:"reputation" json:"reputation,omitempty"`
	EnergyBonus int      `yaml:"energy_bonus" json:"energy_bonus,omitempty"`
	Items       []string `yaml:"items" json:"items,omitempty"`
}

// GoalTemplate is the catalog definition a daily goal is instantiated from
type GoalTemplate struct {
	ID           string           `yaml:"id" validate:"required"`
	Title        string           `yaml:"title" validate:"required"`
	Description  string           `yaml:"description"`
	Type         GoalType         `yaml:"type" validate:"required,oneof=care efficiency adoption"`
	Requirements GoalRequirements `yaml:"requirements"`
	Rewards      GoalRewards      `yaml:"rewards"`
	Difficulty   Difficulty       `yaml:"difficulty" validate:"required,oneof=easy medium hard"`
	Optional     bool             `yaml:"optional"`
}

// DailyGoal is a goal instance for one specific day
type DailyGoal struct {
	ID           string           `json:"id"`
	TemplateID   string           `json:"template_id"`
	Day          int              `json:"day"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Type         GoalType         `json:"type"`
	Requirements GoalRequirements `json:"requirements"`
	Rewards      GoalRewards      `json:"rewards"`
	Difficulty   Difficulty       `json:"difficulty"`
	Optional     bool             `json:"optional"`
}

// DayEventType identifies a random day event
type DayEventType string

const (
	DayEventDonation        DayEventType = "donation"
	DayEventNewAnimal       DayEventType = "new_animal"
	DayEventAdoptionInquiry DayEventType = "adoption_inquiry"
)

// DayEventEffects are the effects of a random event
type DayEventEffects struct {
	Money      int `yaml:"money" json:"money,omitempty"`
	Reputation int `yaml:"reputation" json:"reputation,omitempty"`
	NewAnimals int `yaml:"new_animals" json:"new_animals,omitempty"`
}

// DayEventTemplate is a row of the random event table
type DayEventTemplate struct {
	Type        DayEventType    `yaml:"type" validate:"required,oneof=donation new_animal adoption_inquiry"`
	Title       string          `yaml:"title" validate:"required"`
	Description string          `yaml:"description"`
	Effects     DayEventEffects `yaml:"effects"`
}

// DayEvent is an event that happened on a specific day
type DayEvent struct {
	ID          string          `json:"id"`
	Day         int             `json:"day"`
	Type        DayEventType    `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Effects     DayEventEffects `json:"effects"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Grade is the letter grade given at day end
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// DayPhase is the state of the day cycle state machine
type DayPhase string

const (
	DayPhaseActive DayPhase = "active"
	DayPhaseEnded  DayPhase = "ended"
)

// DayHistory is the frozen record of a closed day
type DayHistory struct {
	Day              int     `json:"day" csv:"day"`
	ActionsPerformed int     `json:"actions_performed" csv:"actions"`
	AnimalsHelped    int     `json:"animals_helped" csv:"animals_helped"`
	GoalsCompleted   int     `json:"goals_completed" csv:"goals_completed"`
	GoalsTotal       int     `json:"goals_total" csv:"goals_total"`
	MoneyEarned      int     `json:"money_earned" csv:"money_earned"`
	MoneySpent       int     `json:"money_spent" csv:"money_spent"`
	Adoptions        int     `json:"adoptions" csv:"adoptions"`
	NewAnimals       int     `json:"new_animals" csv:"new_animals"`
	PlayerEnergyUsed int     `json:"player_energy_used" csv:"player_energy_used"`
	PlayerMaxEnergy  int     `json:"player_max_energy" csv:"player_max_energy"`
	AnimalEnergyUsed int     `json:"animal_energy_used" csv:"animal_energy_used"`
	ExperienceGained int     `json:"experience_gained" csv:"experience_gained"`
	Efficiency       float64 `json:"efficiency" csv:"efficiency"`
	Grade            Grade   `json:"grade" csv:"grade"`
}

// DayEndSummary is returned when a day is closed
type DayEndSummary struct {
	Day                int         `json:"day"`
	History            DayHistory  `json:"history"`
	Grade              Grade       `json:"grade"`
	PerformanceMessage string      `json:"performance_message"`
	Efficiency         float64     `json:"efficiency"`
	CompletedGoals     []DailyGoal `json:"completed_goals"`
	TotalGoals         int         `json:"total_goals"`
	ExperienceGained   int         `json:"experience_gained"`
	CareStreak         int         `json:"care_streak"`
	TomorrowGoals      []DailyGoal `json:"tomorrow_goals"`
	Tips               []string    `json:"tips,omitempty"`
}

// DayContext carries figures owned by other stores into the day-end record
type DayContext struct {
	PlayerEnergyUsed int
	PlayerMaxEnergy  int
	AnimalEnergyUsed int
}

// DayState is a read-only view of the day cycle
type DayState struct {
	CurrentDay            int                `json:"current_day"`
	Phase                 DayPhase           `json:"phase"`
	IsNightTime           bool               `json:"is_night_time"`
	Goals                 []DailyGoal        `json:"goals"`
	CompletedGoals        []string           `json:"completed_goals"`
	ActionsPerformedToday int                `json:"actions_performed_today"`
	ActionBreakdown       map[ActionType]int `json:"action_breakdown"`
	AnimalsHelpedToday    []string           `json:"animals_helped_today"`
	MoneyEarnedToday      int                `json:"money_earned_today"`
	MoneySpentToday       int                `json:"money_spent_today"`
	AdoptionsToday        int                `json:"adoptions_today"`
	NewAnimalsToday       int                `json:"new_animals_today"`
	ExperienceToday       int                `json:"experience_today"`
	ActiveEvents          []DayEvent         `json:"active_events"`
	History               []DayHistory       `json:"history"`
}

// WeeklyStats aggregates the most recent closed days
type WeeklyStats struct {
	Days               int           `json:"days"`
	TotalActions       int           `json:"total_actions"`
	AverageActions     float64       `json:"average_actions"`
	ActionsStdDev      float64       `json:"actions_std_dev"`
	TotalAnimalsHelped int           `json:"total_animals_helped"`
	TotalMoneyEarned   int           `json:"total_money_earned"`
	TotalMoneySpent    int           `json:"total_money_spent"`
	Adoptions          int           `json:"adoptions"`
	AverageEfficiency  float64       `json:"average_efficiency"`
	BestDay            int           `json:"best_day"`
	GradeCounts        map[Grade]int `json:"grade_counts"`
}
