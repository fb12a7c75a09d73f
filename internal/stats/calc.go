package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// Shelter derives the population part of the shelter statistics
func Shelter(animals []domain.Animal, capacity int) domain.ShelterStats {
	out := domain.ShelterStats{
		Occupancy:    len(animals),
		Capacity:     capacity,
		StatusCounts: map[domain.AnimalStatus]int{},
	}
	if capacity > 0 {
		out.OccupancyPercent = float64(len(animals)) / float64(capacity) * percentScale
	}
	if len(animals) == 0 {
		return out
	}

	health := make([]float64, len(animals))
	happiness := make([]float64, len(animals))
	readiness := make([]float64, len(animals))
	for i, a := range animals {
		health[i] = float64(a.Health)
		happiness[i] = float64(a.Happiness)
		readiness[i] = float64(a.AdoptionReadiness)
		out.StatusCounts[a.Status]++
		if a.NeedsMedical {
			out.NeedsMedical++
		}
	}
	out.AverageHealth = stat.Mean(health, nil)
	out.AverageHappiness = stat.Mean(happiness, nil)
	out.AverageReadiness = stat.Mean(readiness, nil)
	out.HealthStdDev = stdDev(health)
	return out
}

// Weekly aggregates closed days; callers pass the window they want
func Weekly(history []domain.DayHistory) domain.WeeklyStats {
	out := domain.WeeklyStats{
		Days:        len(history),
		GradeCounts: map[domain.Grade]int{},
	}
	if len(history) == 0 {
		return out
	}

	actions := make([]float64, len(history))
	eff := make([]float64, len(history))
	for i, h := range history {
		actions[i] = float64(h.ActionsPerformed)
		eff[i] = h.Efficiency
		out.TotalAnimalsHelped += h.AnimalsHelped
		out.TotalMoneyEarned += h.MoneyEarned
		out.TotalMoneySpent += h.MoneySpent
		out.Adoptions += h.Adoptions
		out.GradeCounts[h.Grade]++
	}
	out.TotalActions = int(floats.Sum(actions))
	out.AverageActions = stat.Mean(actions, nil)
	out.ActionsStdDev = stdDev(actions)
	out.AverageEfficiency = stat.Mean(eff, nil)
	out.BestDay = history[floats.MaxIdx(actions)].Day
	return out
}

// stdDev is the sample standard deviation, zero below two samples
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
