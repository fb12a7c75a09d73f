package animal

import (
	"context"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// DailyMaintenance applies hunger and happiness decay, rolls sickness for
// every animal and recomputes status. Health decays by 5 for animals fed on
// the given day and by 15 otherwise.
func (s *service) DailyMaintenance(ctx context.Context, day int) MaintenanceReport {
	log := logger.FromContext(ctx)
	report := MaintenanceReport{Day: day}

	for i := range s.animals {
		a := &s.animals[i]

		decay := HungryHealthDecay
		if a.LastFedDay == day && day > 0 {
			decay = FedHealthDecay
		}
		a.Health = utils.ClampInt(a.Health-decay, domain.StatMin, domain.StatMax)
		a.Happiness = utils.ClampInt(a.Happiness-HappinessDecay, domain.StatMin, domain.StatMax)

		fellSick := false
		if a.ProtectedDay != day || day == 0 {
			chance := float64(max(0, 100-a.Health)) / SicknessDivisor
			if s.rnd() < chance {
				a.NeedsMedical = true
				a.Health = max(SicknessHealthFloor, a.Health-SicknessHealthLoss)
				fellSick = true
			}
		}

		a.Status = statusOf(*a)
		report.Maintained++
		if fellSick {
			report.FellSick = append(report.FellSick, a.Clone())
			log.Info(LogMsgAnimalFellSick, "animal_id", a.ID, "name", a.Name, "health", a.Health)
		}
	}

	log.Debug(LogMsgMaintenanceDone, "day", day, "animals", report.Maintained, "fell_sick", len(report.FellSick))
	return report
}

// ResetDailyEnergy refills every animal and advances its days in shelter
func (s *service) ResetDailyEnergy(ctx context.Context) {
	for i := range s.animals {
		a := &s.animals[i]
		a.Energy = a.MaxEnergy
		a.EnergySpentToday = 0
		a.DaysInShelter++
	}
}

// RestoreEnergy adds energy up to the animal's maximum and recomputes status
func (s *service) RestoreEnergy(id string, amount int) (domain.Animal, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Animal{}, fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, id)
	}
	if amount <= 0 {
		return domain.Animal{}, fmt.Errorf("%w: restore amount %d", domain.ErrInvalidAmount, amount)
	}
	a := &s.animals[i]
	a.Energy = min(a.MaxEnergy, a.Energy+amount)
	a.Status = statusOf(*a)
	return a.Clone(), nil
}

// BoostMaxEnergy raises the max energy of every current animal and of every
// animal admitted later
func (s *service) BoostMaxEnergy(ctx context.Context, amount int) {
	if amount <= 0 {
		return
	}
	for i := range s.animals {
		s.animals[i].MaxEnergy += amount
		s.animals[i].Energy += amount
	}
	s.maxEnergyBonus += amount

	log := logger.FromContext(ctx)
	log.Info(LogMsgMaxEnergyBoosted, "amount", amount, "total_bonus", s.maxEnergyBonus)
}
