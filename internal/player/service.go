package player

import (
	"context"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// Service tracks the player's energy, experience, skills and reputation
type Service interface {
	Get() domain.Player

	// Energy
	UseEnergy(amount int) bool
	CanUseEnergy(amount int) bool
	RestoreEnergy(amount int) int
	ResetDailyEnergy(ctx context.Context, bonus int)

	// Progression
	GainExperience(ctx context.Context, amount int) domain.LevelResult
	ImproveSkill(ctx context.Context, skill domain.Skill, amount int) error
	SpendSkillPoint(ctx context.Context, skill domain.Skill) error
	SkillLevel(skill domain.Skill) int
	ActionEnergyDiscount(action domain.ActionType) int

	// Counters and reputation
	IncrementAnimalsHelped()
	IncrementAdoptions()
	UpdateReputation(delta int) int

	EfficiencyTips() []string

	// Transactions
	Snapshot() domain.Player
	Restore(p domain.Player)
}

type service struct {
	player          domain.Player
	carryOverLevels bool
}

// NewService creates a player at level 1 with a full energy pool. With
// carryOverLevels a single grant may cross several level thresholds.
func NewService(carryOverLevels bool) Service {
	return &service{
		player: domain.Player{
			Energy:                BaseMaxEnergy,
			MaxEnergy:             BaseMaxEnergy,
			Level:                 StartingLevel,
			ExperienceToNextLevel: StartingExperienceToLevel,
			Reputation:            StartingReputation,
		},
		carryOverLevels: carryOverLevels,
	}
}

// Get returns a copy of the player
func (s *service) Get() domain.Player {
	return s.player
}

// Snapshot captures the player for a transaction
func (s *service) Snapshot() domain.Player {
	return s.player
}

// Restore puts a snapshot back
func (s *service) Restore(p domain.Player) {
	s.player = p
}

// UseEnergy debits the pool iff enough energy is left
func (s *service) UseEnergy(amount int) bool {
	if amount < 0 || s.player.Energy < amount {
		return false
	}
	s.player.Energy -= amount
	s.player.EnergySpentToday += amount
	return true
}

func (s *service) CanUseEnergy(amount int) bool {
	return amount >= 0 && s.player.Energy >= amount
}

// RestoreEnergy adds energy up to the maximum and returns how much was added
func (s *service) RestoreEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.player.Energy
	s.player.Energy = min(s.player.MaxEnergy, s.player.Energy+amount)
	return s.player.Energy - before
}

// ResetDailyEnergy recomputes the maximum from shelter management plus any
// equipment bonus and refills the pool
func (s *service) ResetDailyEnergy(ctx context.Context, bonus int) {
	s.player.MaxEnergy = BaseMaxEnergy + s.player.Skills.ShelterManagement/ShelterManagementPerEnergy + max(0, bonus)
	s.player.Energy = s.player.MaxEnergy
	s.player.EnergySpentToday = 0
	s.player.DaysActive++

	log := logger.FromContext(ctx)
	log.Debug(LogMsgEnergyReset, "max_energy", s.player.MaxEnergy, "days_active", s.player.DaysActive)
}

// GainExperience adds experience and levels up when the threshold is met.
// Without carry-over at most one level is gained per call.
func (s *service) GainExperience(ctx context.Context, amount int) domain.LevelResult {
	result := domain.LevelResult{OldLevel: s.player.Level, NewLevel: s.player.Level}
	if amount <= 0 {
		return result
	}

	s.player.Experience += amount
	for s.player.Experience >= s.player.ExperienceToNextLevel {
		s.player.Level++
		s.player.ExperienceToNextLevel = s.player.Level * ExperiencePerLevel
		s.player.SkillPoints += SkillPointsPerLevel
		result.SkillPointsEarned += SkillPointsPerLevel
		if !s.carryOverLevels {
			break
		}
	}

	result.NewLevel = s.player.Level
	result.LeveledUp = result.NewLevel > result.OldLevel
	if result.LeveledUp {
		log := logger.FromContext(ctx)
		log.Info(LogMsgLevelUp, "old_level", result.OldLevel, "new_level", result.NewLevel,
			"experience", s.player.Experience, "next_threshold", s.player.ExperienceToNextLevel)
	}
	return result
}

// ImproveSkill adds to a skill, clamped to [0,10]
func (s *service) ImproveSkill(ctx context.Context, skill domain.Skill, amount int) error {
	level, ok := s.player.Skills.Level(skill)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSkill, skill)
	}
	next := utils.ClampInt(level+amount, domain.SkillMin, domain.SkillMax)
	s.player.Skills.Set(skill, next)

	log := logger.FromContext(ctx)
	log.Debug(LogMsgSkillImproved, "skill", skill, "level", next)
	return nil
}

// SpendSkillPoint raises a skill by one level for one skill point
func (s *service) SpendSkillPoint(ctx context.Context, skill domain.Skill) error {
	level, ok := s.player.Skills.Level(skill)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSkill, skill)
	}
	if s.player.SkillPoints <= 0 {
		return domain.ErrNoSkillPoints
	}
	if level >= domain.SkillMax {
		return fmt.Errorf("%w: %s is already at %d", domain.ErrInvalidInput, skill, domain.SkillMax)
	}
	s.player.SkillPoints--
	s.player.Skills.Set(skill, level+1)

	log := logger.FromContext(ctx)
	log.Info(LogMsgSkillPointUsed, "skill", skill, "level", level+1, "points_left", s.player.SkillPoints)
	return nil
}

func (s *service) SkillLevel(skill domain.Skill) int {
	level, _ := s.player.Skills.Level(skill)
	return level
}

// ActionEnergyDiscount is the skill-derived player energy discount, at most 2
func (s *service) ActionEnergyDiscount(action domain.ActionType) int {
	sk := s.player.Skills
	var discount int
	switch action {
	case domain.ActionMedical:
		discount = sk.VeterinarySkill / VeterinaryDiscountDivisor
	case domain.ActionWalk, domain.ActionExercise:
		discount = sk.ExerciseTraining / ExerciseDiscountDivisor
	case domain.ActionPlay, domain.ActionSocialize:
		discount = sk.AnimalPsychology / PsychologyDiscountDivisor
	case domain.ActionFeed, domain.ActionGroom, domain.ActionTrain, domain.ActionIdle:
		discount = sk.ShelterManagement / ManagementDiscountDivisor
	default:
		discount = sk.ShelterManagement / ManagementDiscountDivisor
	}
	return min(discount, MaxActionEnergyDiscount)
}

func (s *service) IncrementAnimalsHelped() {
	s.player.TotalAnimalsHelped++
}

func (s *service) IncrementAdoptions() {
	s.player.TotalAdoptions++
}

// UpdateReputation applies a delta clamped to [0,100] and returns the new value
func (s *service) UpdateReputation(delta int) int {
	s.player.Reputation = utils.ClampInt(s.player.Reputation+delta, domain.ReputationMin, domain.ReputationMax)
	return s.player.Reputation
}

// EfficiencyTips suggests how to stretch the energy pool
func (s *service) EfficiencyTips() []string {
	p := s.player
	var tips []string
	if p.Skills.ShelterManagement < TipManagementBelow {
		tips = append(tips, TipImproveManagement)
	}
	if p.Skills.VeterinarySkill < TipVeterinaryBelow && p.Energy < TipVeterinaryEnergyBelow {
		tips = append(tips, TipImproveVeterinary)
	}
	if p.Energy <= TipLowEnergyAtMost {
		tips = append(tips, TipLowEnergy)
	}
	if float64(p.EnergySpentToday) > float64(p.MaxEnergy)*TipEfficientSpendShare {
		tips = append(tips, TipEfficientDay)
	}
	return tips
}
