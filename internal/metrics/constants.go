package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric
const Namespace = "shelter"

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Gameplay metric names
const (
	MetricNameActions           = "actions_total"
	MetricNameCriticalSuccesses = "critical_successes_total"
	MetricNameGoalsCompleted    = "goals_completed_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNamePlayerLevel       = "player_level"
	MetricNameDaysEnded         = "days_ended_total"
	MetricNameRandomEvents      = "random_events_total"
)

// Animal metric names
const (
	MetricNameAdoptions       = "adoptions_total"
	MetricNameAnimalsAdmitted = "animals_admitted_total"
	MetricNameAnimalsSick     = "animals_fell_sick_total"
)

// Business metric names
const (
	MetricNameItemsSold   = "items_sold_total"
	MetricNameItemsBought = "items_bought_total"
	MetricNameItemsUsed   = "items_used_total"
	MetricNameMoneyEarned = "money_earned_total"
	MetricNameMoneySpent  = "money_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEventsPublished   = "Total number of events published"
	HelpTextActions           = "Total number of care actions attempted, by action and result"
	HelpTextCriticalSuccesses = "Total number of critical successes"
	HelpTextGoalsCompleted    = "Total number of daily goals completed"
	HelpTextLevelUps          = "Total number of player level ups"
	HelpTextPlayerLevel       = "Current player level"
	HelpTextDaysEnded         = "Total number of days ended, by grade"
	HelpTextRandomEvents      = "Total number of random day events"
	HelpTextAdoptions         = "Total number of adoptions"
	HelpTextAnimalsAdmitted   = "Total number of animals admitted, by source"
	HelpTextAnimalsSick       = "Total number of animals that fell sick"
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextItemsBought       = "Total number of items bought"
	HelpTextItemsUsed         = "Total number of items used"
	HelpTextMoneyEarned       = "Total money earned from adoptions and sales"
	HelpTextMoneySpent        = "Total money spent buying items"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType     = "type"
	LabelAction   = "action"
	LabelResult   = "result"
	LabelTemplate = "template"
	LabelGrade    = "grade"
	LabelItem     = "item"
	LabelSource   = "source"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
