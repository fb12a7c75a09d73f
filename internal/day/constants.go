package day

// Day numbering
const (
	FirstDay = 1
)

// Goal generation
const (
	AdoptionGoalFromDay   = 3
	EfficiencyGoalFromDay = 5
	EfficiencyGoalChance  = 0.4
	GoalIDFormat          = "%s_day%d"
)

// Efficiency is actions performed over a fixed baseline of daily energy
const (
	EfficiencyBaseline = 10.0
)

// Grade thresholds
const (
	GradeAEfficiency = 1.2
	GradeAHelped     = 3
	GradeAGoals      = 2
	GradeBEfficiency = 1.0
	GradeBHelped     = 2
	GradeBGoals      = 1
	GradeCEfficiency = 0.8
	GradeCHelped     = 1
	GradeDHelped     = 1
)

// Care streak thresholds, evaluated per history day
const (
	StreakMinAnimalsHelped = 2
	StreakMinActions       = 6
)

// Weekly stats window
const (
	WeeklyWindow = 7
)

// DefaultRandomEventChance is the chance of a random event at day start
const DefaultRandomEventChance = 0.3

// Performance messages per grade
const (
	PerformanceMsgA       = "Outstanding work! Your animals are thriving under your excellent care."
	PerformanceMsgB       = "Great job! You're providing quality care for your animals."
	PerformanceMsgC       = "Good effort! Your animals are getting the care they need."
	PerformanceMsgD       = "You're helping your animals, but there's room for improvement."
	PerformanceMsgF       = "Your animals need more attention. Try to spend more time caring for them."
	PerformanceMsgDefault = "Keep up the good work!"
)

// Log messages
const (
	LogMsgFirstDay      = "Day cycle initialized"
	LogMsgDayStarted    = "Day started"
	LogMsgDayEnded      = "Day ended"
	LogMsgGoalCompleted = "Daily goal completed"
	LogMsgRandomEvent   = "Random event triggered"
)
