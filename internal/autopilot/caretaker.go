package autopilot

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/shelter"
)

// Game is the part of a shelter session the caretaker drives
type Game interface {
	Animals() []domain.Animal
	AdoptableAnimals() []domain.Animal
	DayState() domain.DayState
	Occupancy() float64
	CanPerformAction(animalID string, action domain.ActionType) domain.Eligibility
	PerformAction(ctx context.Context, animalID string, action domain.ActionType) shelter.ActionResult
	Adopt(ctx context.Context, animalID string) shelter.AdoptionOutcome
	RescueAnimal(ctx context.Context) shelter.RescueOutcome
	EndDay(ctx context.Context) (domain.DayEndSummary, error)
	StartNewDay(ctx context.Context) (shelter.DayStart, error)
}

// DayReport is what the caretaker did during one day
type DayReport struct {
	Day       int                  `json:"day"`
	Actions   int                  `json:"actions"`
	Adoptions int                  `json:"adoptions"`
	Rescues   int                  `json:"rescues"`
	Summary   domain.DayEndSummary `json:"summary"`
}

// Caretaker plays a shelter greedily: it keeps the kennels full, places every
// ready animal and spends all energy on the neediest animals first
type Caretaker struct {
	game Game
}

// NewCaretaker creates a caretaker for a game
func NewCaretaker(game Game) *Caretaker {
	return &Caretaker{game: game}
}

// careOrder is tried per animal until one action is allowed
var careOrder = []domain.ActionType{
	domain.ActionWalk,
	domain.ActionSocialize,
	domain.ActionExercise,
	domain.ActionPlay,
	domain.ActionGroom,
	domain.ActionTrain,
}

// Run plays the given number of days. Every day but the last is followed by
// the next morning, so the game is left at night.
func (c *Caretaker) Run(ctx context.Context, days int) ([]DayReport, error) {
	reports := make([]DayReport, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := c.PlayDay(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)

		if i < days-1 {
			if _, err := c.game.StartNewDay(ctx); err != nil {
				return reports, fmt.Errorf("failed to start day %d: %w", report.Day+1, err)
			}
		}
	}

	logger.FromContext(ctx).Info(LogMsgRunCompleted, "days", len(reports))
	return reports, nil
}

// PlayDay runs one active day to its end
func (c *Caretaker) PlayDay(ctx context.Context) (DayReport, error) {
	log := logger.FromContext(ctx)
	report := DayReport{Day: c.game.DayState().CurrentDay}

	if c.game.Occupancy() < fullOccupancy {
		if out := c.game.RescueAnimal(ctx); out.Success {
			report.Rescues++
			log.Debug(LogMsgRescued, "animal", out.Animal.Name)
		}
	}

	report.Adoptions += c.adoptReady(ctx)
	report.Actions = c.care(ctx, report.Day)
	report.Adoptions += c.adoptReady(ctx)

	summary, err := c.game.EndDay(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to end day %d: %w", report.Day, err)
	}
	report.Summary = summary

	log.Info(LogMsgDayPlayed,
		"day", report.Day,
		"grade", summary.Grade,
		"actions", report.Actions,
		"adoptions", report.Adoptions)
	return report, nil
}

func (c *Caretaker) adoptReady(ctx context.Context) int {
	placed := 0
	for _, a := range c.game.AdoptableAnimals() {
		if out := c.game.Adopt(ctx, a.ID); out.Success {
			placed++
			logger.FromContext(ctx).Debug(LogMsgAdopted, "animal", a.Name, "fee", out.AdoptionFee)
		}
	}
	return placed
}

// care performs actions until no animal can take any more
func (c *Caretaker) care(ctx context.Context, day int) int {
	performed := 0
	for performed < MaxActionsPerDay {
		animalID, action, ok := c.nextAction(day)
		if !ok {
			break
		}
		res := c.game.PerformAction(ctx, animalID, action)
		if !res.Success {
			logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "reason", res.Reason)
			break
		}
		performed++
	}
	return performed
}

// nextAction picks the first allowed action for the neediest animal
func (c *Caretaker) nextAction(day int) (string, domain.ActionType, bool) {
	animals := c.game.Animals()
	sort.SliceStable(animals, func(i, j int) bool {
		return needScore(animals[i]) < needScore(animals[j])
	})

	for _, a := range animals {
		for _, action := range candidates(a, day) {
			if c.game.CanPerformAction(a.ID, action).Allowed {
				return a.ID, action, true
			}
		}
	}
	return "", "", false
}

func candidates(a domain.Animal, day int) []domain.ActionType {
	out := make([]domain.ActionType, 0, len(careOrder)+2)
	if a.NeedsMedical || a.Health < criticalHealth {
		out = append(out, domain.ActionMedical)
	}
	if a.LastFedDay != day {
		out = append(out, domain.ActionFeed)
	}
	return append(out, careOrder...)
}

// needScore is lower for animals that need more attention
func needScore(a domain.Animal) int {
	return a.Health + a.Happiness + a.AdoptionReadiness
}
