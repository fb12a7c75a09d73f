package domain

// ShelterStats are the derived shelter-wide statistics
type ShelterStats struct {
	Occupancy        int                  `json:"occupancy"`
	Capacity         int                  `json:"capacity"`
	OccupancyPercent float64              `json:"occupancy_percent"`
	AverageHealth    float64              `json:"average_health"`
	AverageHappiness float64              `json:"average_happiness"`
	AverageReadiness float64              `json:"average_readiness"`
	HealthStdDev     float64              `json:"health_std_dev"`
	NeedsMedical     int                  `json:"needs_medical"`
	StatusCounts     map[AnimalStatus]int `json:"status_counts"`

	Lifetime LifetimeStats `json:"lifetime"`
}

// LifetimeStats are counters accumulated from published events
type LifetimeStats struct {
	ActionsPerformed  int                `json:"actions_performed"`
	ActionsFailed     int                `json:"actions_failed"`
	CriticalSuccesses int                `json:"critical_successes"`
	ActionCounts      map[ActionType]int `json:"action_counts"`
	GoalsCompleted    int                `json:"goals_completed"`
	Adoptions         int                `json:"adoptions"`
	AdoptionFees      int                `json:"adoption_fees"`
	AnimalsAdmitted   int                `json:"animals_admitted"`
	AnimalsFellSick   int                `json:"animals_fell_sick"`
	DaysCompleted     int                `json:"days_completed"`
	BestCareStreak    int                `json:"best_care_streak"`
	RandomEvents      int                `json:"random_events"`
}
