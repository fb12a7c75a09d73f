package shelter

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/ShelterSim_Go/internal/animal"
	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// PerformAction runs one care action on one animal. Every gate is checked
// before anything is mutated; once mutation starts, any failure restores the
// player, the animal, the day and the ledger to where they were.
func (g *Game) PerformAction(ctx context.Context, animalID string, action domain.ActionType) ActionResult {
	g.mu.Lock()
	defer g.unlock(ctx)

	log := logger.FromContext(ctx)
	day := g.currentDay()

	result := g.performAction(ctx, animalID, action, day)
	if result.Success {
		log.Debug(LogMsgActionCompleted, "animal_id", animalID, "action", action,
			"energy_cost", result.PlayerEnergyCost, "goals", len(result.CompletedGoals))
	} else {
		log.Warn(LogMsgActionRejected, "animal_id", animalID, "action", action, "reason", result.Reason)
		g.publish(ctx, event.NewActionFailedEvent(day, animalID, action, result.Reason))
	}

	if _, ok := g.animals.Get(animalID); ok {
		g.feedback.Add(animalID, ActionFeedback{
			Action:          action,
			Success:         result.Success,
			Reason:          result.Reason,
			CriticalSuccess: result.CriticalSuccess,
			Message:         result.Message,
			Day:             day,
			At:              g.now(),
		})
	}
	return result
}

func (g *Game) performAction(ctx context.Context, animalID string, action domain.ActionType, day int) ActionResult {
	result := ActionResult{ActionOutcome: domain.ActionOutcome{Action: action, AnimalID: animalID}}
	fail := func(reason domain.FailureReason, shortfall *domain.Shortfall) ActionResult {
		result.Success = false
		result.Reason = reason
		result.Shortfall = shortfall
		result.Message = failureMessage(reason, shortfall)
		result.Rewards = Rewards{}
		return result
	}

	// 1. resolve
	def, ok := catalog.Definition(action)
	if !ok {
		return fail(domain.ReasonInvalidAction, nil)
	}
	if !g.days.IsActive() {
		return fail(domain.ReasonInvalidPhase, nil)
	}

	// 2. effective cost
	cost := g.effectiveCost(def)
	result.PlayerEnergyCost = cost

	// 3. player energy gate
	if !g.player.CanUseEnergy(cost) {
		return fail(domain.ReasonInsufficientPlayerEnergy, &domain.Shortfall{
			Resource:  ResourcePlayerEnergy,
			Needed:    cost,
			Available: g.player.Get().Energy,
		})
	}

	// 4. animal gate, then declared requirements when enforced
	if elig := g.animals.CanApplyAction(animalID, action); !elig.Allowed {
		return fail(elig.Reason, elig.Shortfall)
	}
	if g.rules.EnforceActionRequirements {
		if reason, shortfall := g.checkRequirements(def); reason != domain.ReasonNone {
			return fail(reason, shortfall)
		}
	}

	t := g.begin()
	defer safeRollback(ctx, t)

	// 5. debit the player; the gate above makes a failure here a bug
	if !g.player.UseEnergy(cost) {
		panic(fmt.Sprintf(ErrMsgEnergyInvariantFmt, cost))
	}
	if g.rules.EnforceActionRequirements && def.Cost.MoneyRequired > 0 {
		if !g.economy.SpendMoney(ctx, def.Cost.MoneyRequired, domain.MoneySourceActionPrefix+string(action)) {
			return fail(domain.ReasonInsufficientFunds, &domain.Shortfall{
				Resource:  ResourceMoney,
				Needed:    def.Cost.MoneyRequired,
				Available: g.economy.Budget(),
			})
		}
		g.days.RecordMoney(def.Cost.MoneyRequired, domain.TransactionSpent)
	}

	// 6. apply to the animal; the deferred rollback refunds the player on failure
	outcome := g.animals.ApplyAction(ctx, animalID, action, animal.Modifiers{
		EffectMultiplier: g.inventory.ActionEffectMultiplier(action),
		Day:              day,
	})
	if !outcome.Success {
		return fail(outcome.Reason, outcome.Shortfall)
	}
	result.ActionOutcome = outcome

	// 7. experience, day tracking and goal rewards
	a, _ := g.animals.Get(animalID)
	if !slices.Contains(g.days.State().AnimalsHelpedToday, animalID) {
		g.player.IncrementAnimalsHelped()
	}
	if lvl := g.player.GainExperience(ctx, outcome.ExperienceGained); lvl.LeveledUp {
		result.LevelUps = append(result.LevelUps, lvl)
		t.emit(event.NewLevelUpEvent(day, lvl, SourceAction))
	}
	g.days.RecordExperience(outcome.ExperienceGained)

	t.emit(event.NewActionPerformedEvent(day, event.ActionPerformedPayloadV1{
		AnimalID:         animalID,
		AnimalName:       a.Name,
		Action:           action,
		PlayerEnergyCost: cost,
		AnimalEnergyCost: def.Cost.AnimalEnergy,
		Effects:          outcome.Effects,
		CriticalSuccess:  outcome.CriticalSuccess,
		Experience:       outcome.ExperienceGained,
	}))

	completed := g.days.RecordAction(ctx, action, animalID)
	if err := g.grantGoalRewards(ctx, t, day, completed, &result.Rewards); err != nil {
		return fail(reasonFor(err), nil)
	}

	// 8. commit; events reach subscribers only now
	if err := t.Commit(ctx); err != nil {
		return fail(reasonFor(err), nil)
	}
	result.Events = t.events
	g.refreshStats(ctx)
	return result
}

// effectiveCost applies the skill discount and equipment reductions
func (g *Game) effectiveCost(def catalog.ActionDefinition) int {
	discount := g.player.ActionEnergyDiscount(def.Type) + g.inventory.ActionCostReduction(def.Type)
	return max(0, def.Cost.PlayerEnergy-discount)
}

// checkRequirements verifies declared items, skill and money without consuming anything
func (g *Game) checkRequirements(def catalog.ActionDefinition) (domain.FailureReason, *domain.Shortfall) {
	for _, item := range def.Cost.RequiredItems {
		if !g.inventory.Has(item, 1) {
			return domain.ReasonMissingRequiredItem, &domain.Shortfall{
				Resource:  item,
				Needed:    1,
				Available: g.inventory.Quantity(item),
			}
		}
	}
	if req := def.Cost.SkillRequirement; req != nil {
		if level := g.player.SkillLevel(req.Skill); level < req.Level {
			return domain.ReasonInsufficientSkill, &domain.Shortfall{
				Resource:  string(req.Skill),
				Needed:    req.Level,
				Available: level,
			}
		}
	}
	if money := def.Cost.MoneyRequired; money > 0 && !g.economy.CanAfford(money) {
		return domain.ReasonInsufficientFunds, &domain.Shortfall{
			Resource:  ResourceMoney,
			Needed:    money,
			Available: g.economy.Budget(),
		}
	}
	return domain.ReasonNone, nil
}

// grantGoalRewards applies the reward bundle of every newly completed goal.
// Goal money was already counted in today's earnings by the day cycle.
func (g *Game) grantGoalRewards(ctx context.Context, t *tx, day int, goalIDs []string, out *Rewards) error {
	log := logger.FromContext(ctx)

	for _, id := range goalIDs {
		goal, ok := g.days.Goal(id)
		if !ok {
			return fmt.Errorf(ErrMsgGoalRewardFmt, id, domain.ErrGoalNotFound)
		}
		r := goal.Rewards

		if r.Money > 0 {
			if err := g.economy.AddMoney(ctx, r.Money, domain.MoneySourceGoalPrefix+id); err != nil {
				return fmt.Errorf(ErrMsgGoalRewardFmt, id, err)
			}
		}
		if r.Experience > 0 {
			if lvl := g.player.GainExperience(ctx, r.Experience); lvl.LeveledUp {
				out.LevelUps = append(out.LevelUps, lvl)
				t.emit(event.NewLevelUpEvent(day, lvl, SourceGoal))
			}
			g.days.RecordExperience(r.Experience)
		}
		if r.Reputation != 0 {
			g.player.UpdateReputation(r.Reputation)
		}
		if r.EnergyBonus > 0 {
			g.player.RestoreEnergy(r.EnergyBonus)
		}
		for _, item := range r.Items {
			err := g.inventory.Add(ctx, item, 1)
			if errors.Is(err, domain.ErrMaxQuantityReached) {
				log.Warn(LogMsgRewardItemCapped, "goal_id", id, "item_id", item)
				continue
			}
			if err != nil {
				return fmt.Errorf(ErrMsgGoalRewardFmt, id, err)
			}
		}

		out.CompletedGoals = append(out.CompletedGoals, goal)
		t.emit(event.NewGoalCompletedEvent(goal))
	}
	return nil
}

func failureMessage(reason domain.FailureReason, shortfall *domain.Shortfall) string {
	if shortfall != nil {
		return fmt.Sprintf(MsgShortfallFmt, shortfall.Needed, shortfall.Resource, shortfall.Available)
	}
	return fmt.Sprintf(MsgFailedFmt, reason)
}
