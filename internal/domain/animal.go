package domain

import "time"

// AnimalType is the species of an animal
type AnimalType string

const (
	AnimalTypeDog AnimalType = "dog"
)

// AnimalSize is the size bracket of a breed
type AnimalSize string

const (
	SizeSmall  AnimalSize = "small"
	SizeMedium AnimalSize = "medium"
	SizeLarge  AnimalSize = "large"
)

// AnimalAge is the age bracket of an animal
type AnimalAge string

const (
	AgePuppy  AnimalAge = "puppy"
	AgeAdult  AnimalAge = "adult"
	AgeSenior AnimalAge = "senior"
)

// AnimalStatus is derived from an animal's stats
type AnimalStatus string

const (
	StatusIntake           AnimalStatus = "intake"
	StatusNeedsCare        AnimalStatus = "needs_care"
	StatusSick             AnimalStatus = "sick"
	StatusHealthy          AnimalStatus = "healthy"
	StatusReadyForAdoption AnimalStatus = "ready_for_adoption"
)

// Stat bounds
const (
	StatMin = 0
	StatMax = 100
)

// Animal represents one rescue animal in the shelter
type Animal struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  AnimalType `json:"type"`
	Breed string     `json:"breed"`
	Size  AnimalSize `json:"size"`
	Age   AnimalAge  `json:"age"`

	Health            int `json:"health"`
	Happiness         int `json:"happiness"`
	AdoptionReadiness int `json:"adoption_readiness"`

	Energy           int `json:"energy"`
	MaxEnergy        int `json:"max_energy"`
	EnergySpentToday int `json:"energy_spent_today"`

	NeedsMedical bool       `json:"needs_medical"`
	LastFed      *time.Time `json:"last_fed,omitempty"`
	LastWalked   *time.Time `json:"last_walked,omitempty"`
	LastGroomed  *time.Time `json:"last_groomed,omitempty"`
	LastFedDay   int        `json:"last_fed_day,omitempty"` // day number of the most recent feeding, 0 if never fed
	ProtectedDay int        `json:"protected_day,omitempty"` // no sickness roll during this day's maintenance

	AdoptionFee   int `json:"adoption_fee"`
	DaysInShelter int `json:"days_in_shelter"`

	Status       AnimalStatus `json:"status"`
	SpecialNeeds []string     `json:"special_needs"`
	Temperament  []string     `json:"temperament"`
	Backstory    string       `json:"backstory,omitempty"`
	ArrivalDate  time.Time    `json:"arrival_date"`
}

// Clone returns a deep copy of the animal
func (a Animal) Clone() Animal {
	c := a
	c.LastFed = cloneTime(a.LastFed)
	c.LastWalked = cloneTime(a.LastWalked)
	c.LastGroomed = cloneTime(a.LastGroomed)
	c.SpecialNeeds = append([]string(nil), a.SpecialNeeds...)
	c.Temperament = append([]string(nil), a.Temperament...)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// AnimalDraft is the shape accepted for direct admission
type AnimalDraft struct {
	Name              string       `json:"name" validate:"required,max=40"`
	Type              AnimalType   `json:"type" validate:"omitempty,oneof=dog"`
	Breed             string       `json:"breed" validate:"required"`
	Size              AnimalSize   `json:"size" validate:"required,oneof=small medium large"`
	Age               AnimalAge    `json:"age" validate:"required,oneof=puppy adult senior"`
	Health            int          `json:"health" validate:"min=0,max=100"`
	Happiness         int          `json:"happiness" validate:"min=0,max=100"`
	AdoptionReadiness int          `json:"adoption_readiness" validate:"min=0,max=100"`
	Energy            int          `json:"energy" validate:"min=0,ltefield=MaxEnergy"`
	MaxEnergy         int          `json:"max_energy" validate:"min=1,max=12"`
	NeedsMedical      bool         `json:"needs_medical"`
	AdoptionFee       int          `json:"adoption_fee" validate:"min=0"`
	Status            AnimalStatus `json:"status" validate:"omitempty,oneof=intake needs_care sick healthy ready_for_adoption"`
	SpecialNeeds      []string     `json:"special_needs"`
	Temperament       []string     `json:"temperament"`
	Backstory         string       `json:"backstory"`
}

// StatDelta is a change to the three bounded animal stats
type StatDelta struct {
	Health            int `json:"health"`
	Happiness         int `json:"happiness"`
	AdoptionReadiness int `json:"adoption_readiness"`
}

// IsZero reports whether the delta changes nothing
func (d StatDelta) IsZero() bool {
	return d.Health == 0 && d.Happiness == 0 && d.AdoptionReadiness == 0
}

// Breed describes catalog metadata for an animal breed
type Breed struct {
	Key                string     `yaml:"key" validate:"required"`
	Name               string     `yaml:"name" validate:"required"`
	Type               AnimalType `yaml:"type" validate:"required,oneof=dog"`
	Size               AnimalSize `yaml:"size" validate:"required,oneof=small medium large"`
	BaseEnergy         int        `yaml:"base_energy" validate:"min=0,max=12"`
	HealthTendency     float64    `yaml:"health_tendency" validate:"gt=0"`
	HappinessTendency  float64    `yaml:"happiness_tendency" validate:"gt=0"`
	AdoptionDifficulty float64    `yaml:"adoption_difficulty" validate:"gt=0"`
	SpecialTraits      []string   `yaml:"special_traits"`
}

// AdoptionResult reports the outcome of an adoption attempt on the population
type AdoptionResult struct {
	Success     bool          `json:"success"`
	AnimalID    string        `json:"animal_id"`
	AnimalName  string        `json:"animal_name,omitempty"`
	AdoptionFee int           `json:"adoption_fee"`
	Reason      FailureReason `json:"reason,omitempty"`
}

// Eligibility is the answer to "can this action be applied now"
type Eligibility struct {
	Allowed   bool          `json:"allowed"`
	Reason    FailureReason `json:"reason,omitempty"`
	Shortfall *Shortfall    `json:"shortfall,omitempty"`
}
