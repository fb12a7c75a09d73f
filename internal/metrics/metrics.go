package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of shelter metrics registered on one registry
type Metrics struct {
	Registry *prometheus.Registry

	EventsPublished *prometheus.CounterVec

	Actions           *prometheus.CounterVec
	CriticalSuccesses *prometheus.CounterVec
	GoalsCompleted    *prometheus.CounterVec
	LevelUps          prometheus.Counter
	PlayerLevel       prometheus.Gauge
	DaysEnded         *prometheus.CounterVec
	RandomEvents      *prometheus.CounterVec

	Adoptions       prometheus.Counter
	AnimalsAdmitted *prometheus.CounterVec
	AnimalsSick     prometheus.Counter

	ItemsSold   *prometheus.CounterVec
	ItemsBought *prometheus.CounterVec
	ItemsUsed   *prometheus.CounterVec
	MoneyEarned prometheus.Counter
	MoneySpent  prometheus.Counter
}

// New registers every shelter metric on a fresh registry, so several games can
// live in one process
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Name: name, Help: help}, labels)
	}
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: name, Help: help})
	}

	return &Metrics{
		Registry: reg,

		EventsPublished: counterVec(MetricNameEventsPublished, HelpTextEventsPublished, LabelType),

		Actions:           counterVec(MetricNameActions, HelpTextActions, LabelAction, LabelResult),
		CriticalSuccesses: counterVec(MetricNameCriticalSuccesses, HelpTextCriticalSuccesses, LabelAction),
		GoalsCompleted:    counterVec(MetricNameGoalsCompleted, HelpTextGoalsCompleted, LabelTemplate),
		LevelUps:          counter(MetricNameLevelUps, HelpTextLevelUps),
		PlayerLevel: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNamePlayerLevel,
			Help:      HelpTextPlayerLevel,
		}),
		DaysEnded:    counterVec(MetricNameDaysEnded, HelpTextDaysEnded, LabelGrade),
		RandomEvents: counterVec(MetricNameRandomEvents, HelpTextRandomEvents, LabelType),

		Adoptions:       counter(MetricNameAdoptions, HelpTextAdoptions),
		AnimalsAdmitted: counterVec(MetricNameAnimalsAdmitted, HelpTextAnimalsAdmitted, LabelSource),
		AnimalsSick:     counter(MetricNameAnimalsSick, HelpTextAnimalsSick),

		ItemsSold:   counterVec(MetricNameItemsSold, HelpTextItemsSold, LabelItem),
		ItemsBought: counterVec(MetricNameItemsBought, HelpTextItemsBought, LabelItem),
		ItemsUsed:   counterVec(MetricNameItemsUsed, HelpTextItemsUsed, LabelItem),
		MoneyEarned: counter(MetricNameMoneyEarned, HelpTextMoneyEarned),
		MoneySpent:  counter(MetricNameMoneySpent, HelpTextMoneySpent),
	}
}
