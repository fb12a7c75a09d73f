package providers

import (
	"context"
	"embed"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/scenario"
	"github.com/osse101/ShelterSim_Go/internal/scenario/capabilities"
	"github.com/osse101/ShelterSim_Go/internal/shelter"
)

const (
	FeatureShelter = "shelter"

	// DefaultScenarioSeed keeps scenarios without a seed reproducible
	DefaultScenarioSeed = 1

	// StarterAliasFmt names the animals a scenario opens with
	StarterAliasFmt = "starter_%d"

	// Step parameters
	ParamAnimal   = "animal"
	ParamAction   = "action"
	ParamAlias    = "alias"
	ParamItem     = "item"
	ParamQuantity = "quantity"
	ParamSkill    = "skill"

	// Output keys added next to the game's own result fields
	OutputError = "error"
	OutputAlias = "alias"
)

//go:embed scenarios/*.yaml
var scenarioFS embed.FS

// ShelterProvider implements the scenario.Provider interface for a shelter game
type ShelterProvider struct {
	scenarios []scenario.Scenario
	opts      []shelter.Option
}

// NewShelterProvider loads the embedded scenarios. Options are appended to the
// ones derived from each scenario's setup.
func NewShelterProvider(opts ...shelter.Option) (*ShelterProvider, error) {
	scenarios, err := scenario.LoadFS(scenarioFS, "scenarios")
	if err != nil {
		return nil, err
	}
	for i := range scenarios {
		if scenarios[i].Feature == "" {
			scenarios[i].Feature = FeatureShelter
		}
	}
	return &ShelterProvider{scenarios: scenarios, opts: opts}, nil
}

// Feature returns the feature name
func (p *ShelterProvider) Feature() string {
	return FeatureShelter
}

// Capabilities returns the capabilities this provider supports
func (p *ShelterProvider) Capabilities() []scenario.CapabilityType {
	return []scenario.CapabilityType{
		scenario.CapabilityTimeWarp,
		scenario.CapabilityEventInjector,
	}
}

// GetCapabilityInfo returns detailed capability information
func (p *ShelterProvider) GetCapabilityInfo() []scenario.CapabilityInfo {
	return []scenario.CapabilityInfo{
		capabilities.TimeWarpCapabilityInfo(),
		capabilities.EventInjectorCapabilityInfo(),
	}
}

// SupportsAction returns true if the provider supports the given action
func (p *ShelterProvider) SupportsAction(action scenario.ActionType) bool {
	switch action {
	case scenario.ActionAssert,
		scenario.ActionPerformAction,
		scenario.ActionAdopt,
		scenario.ActionRescue,
		scenario.ActionImproveSkill,
		scenario.ActionPurchase,
		scenario.ActionSell,
		scenario.ActionUseItem,
		scenario.ActionEndDay,
		scenario.ActionStartNewDay,
		scenario.ActionAdvanceDays,
		scenario.ActionAdmit:
		return true
	default:
		return false
	}
}

// PrebuiltScenarios returns the embedded scenarios
func (p *ShelterProvider) PrebuiltScenarios() []scenario.Scenario {
	return p.scenarios
}

// Setup builds a fresh game on the scenario's simulated clock
func (p *ShelterProvider) Setup(ctx context.Context, setup scenario.Setup, state *scenario.ExecutionState) error {
	cfg := config.Default()
	cfg.Seed = setup.Seed
	if cfg.Seed == 0 {
		cfg.Seed = DefaultScenarioSeed
	}
	if setup.Capacity > 0 {
		cfg.Capacity = setup.Capacity
	}
	if setup.StartingBudget != nil {
		cfg.StartingBudget = *setup.StartingBudget
	}
	cfg.RandomEventChance = setup.RandomEventChance
	cfg.Rules = setup.Rules

	opts := []shelter.Option{
		shelter.WithClock(state.Clock.Now),
		shelter.WithStartingAnimals(setup.StartingAnimals),
	}
	if setup.FixedRoll != nil {
		roll := *setup.FixedRoll
		opts = append(opts, shelter.WithRandom(func() float64 { return roll }))
	}
	opts = append(opts, p.opts...)

	g, err := shelter.NewGame(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	state.Game = g
	for i, a := range g.Animals() {
		state.Animals[fmt.Sprintf(StarterAliasFmt, i+1)] = a.ID
	}
	return nil
}

// ExecuteStep executes a single step. Rejections by the game are reported in
// the output for assertions to check; only bad parameters fail the step.
func (p *ShelterProvider) ExecuteStep(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (*scenario.StepResult, error) {
	if state.Game == nil {
		return nil, scenario.ErrGameNotInitialized
	}
	result := scenario.NewStepResult(step.Name, 0, step.Action)

	var (
		output interface{}
		err    error
	)
	switch step.Action {
	case scenario.ActionAssert:
		output = map[string]interface{}{}
	case scenario.ActionPerformAction:
		output, err = p.executePerformAction(ctx, step, state)
	case scenario.ActionAdopt:
		output, err = p.executeAdopt(ctx, step, state)
	case scenario.ActionRescue:
		output = p.executeRescue(ctx, step, state)
	case scenario.ActionAdmit:
		output, err = p.executeAdmit(ctx, step, state)
	case scenario.ActionImproveSkill:
		output, err = p.executeImproveSkill(ctx, step, state)
	case scenario.ActionPurchase:
		output, err = p.executePurchase(ctx, step, state)
	case scenario.ActionSell:
		output, err = p.executeSell(ctx, step, state)
	case scenario.ActionUseItem:
		output, err = p.executeUseItem(ctx, step, state)
	case scenario.ActionEndDay:
		output = p.executeEndDay(ctx, state)
	case scenario.ActionStartNewDay:
		output = p.executeStartNewDay(ctx, state)
	case scenario.ActionAdvanceDays:
		output, err = p.executeAdvanceDays(ctx, step, state)
	default:
		return nil, fmt.Errorf("%w: %s", scenario.ErrInvalidAction, step.Action)
	}
	if err != nil {
		return nil, scenario.WrapProviderError(FeatureShelter, step.Action, err)
	}

	fields, _ := scenario.Plain(output).(map[string]interface{})
	for k, v := range fields {
		result.AddOutput(k, v)
	}
	state.SetResult(step.Name, result.Output)

	logger.FromContext(ctx).Debug("Scenario step executed",
		"step", step.Name,
		"action", step.Action,
		"success", result.Output["success"])
	return result, nil
}

func (p *ShelterProvider) executePerformAction(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	animalID, err := requireAnimal(step, state)
	if err != nil {
		return nil, err
	}
	action := capabilities.GetStringParam(step.Parameters, ParamAction, "")
	if action == "" {
		return nil, scenario.NewParameterError(ParamAction, "is required")
	}
	return state.Game.PerformAction(ctx, animalID, domain.ActionType(action)), nil
}

func (p *ShelterProvider) executeAdopt(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	animalID, err := requireAnimal(step, state)
	if err != nil {
		return nil, err
	}
	return state.Game.Adopt(ctx, animalID), nil
}

func (p *ShelterProvider) executeRescue(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) interface{} {
	out := state.Game.RescueAnimal(ctx)
	alias := capabilities.GetStringParam(step.Parameters, ParamAlias, "")
	if out.Success && alias != "" {
		state.Animals[alias] = out.Animal.ID
	}
	return withAlias(out, alias)
}

func (p *ShelterProvider) executeAdmit(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	params, err := capabilities.ParseAdmitParams(step.Parameters)
	if err != nil {
		return nil, err
	}
	out := state.Game.AdmitAnimal(ctx, params.Draft)
	if out.Success {
		state.Animals[params.Alias] = out.Animal.ID
	}
	return withAlias(out, params.Alias), nil
}

func (p *ShelterProvider) executeImproveSkill(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	skill := capabilities.GetStringParam(step.Parameters, ParamSkill, "")
	if skill == "" {
		return nil, scenario.NewParameterError(ParamSkill, "is required")
	}
	err := state.Game.ImproveSkill(ctx, domain.Skill(skill))

	out := map[string]interface{}{
		"success": err == nil,
		"skill":   skill,
		"player":  state.Game.Player(),
	}
	if err != nil {
		out[OutputError] = err.Error()
	}
	return out, nil
}

func (p *ShelterProvider) executePurchase(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	item, err := requireItem(step)
	if err != nil {
		return nil, err
	}
	qty := capabilities.GetIntParam(step.Parameters, ParamQuantity, 1)
	return state.Game.PurchaseItem(ctx, item, qty), nil
}

func (p *ShelterProvider) executeSell(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	item, err := requireItem(step)
	if err != nil {
		return nil, err
	}
	qty := capabilities.GetIntParam(step.Parameters, ParamQuantity, 1)
	return state.Game.SellItem(ctx, item, qty), nil
}

func (p *ShelterProvider) executeUseItem(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	item, err := requireItem(step)
	if err != nil {
		return nil, err
	}
	animalID := capabilities.GetStringParam(step.Parameters, ParamAnimal, "")
	if animalID != "" {
		animalID = state.ResolveAnimal(animalID)
	}
	return state.Game.UseItem(ctx, item, animalID), nil
}

func (p *ShelterProvider) executeEndDay(ctx context.Context, state *scenario.ExecutionState) interface{} {
	summary, err := state.Game.EndDay(ctx)
	return withError(summary, err)
}

func (p *ShelterProvider) executeStartNewDay(ctx context.Context, state *scenario.ExecutionState) interface{} {
	if state.Game.DayState().IsNightTime {
		state.Clock.NextMorning()
	}
	start, err := state.Game.StartNewDay(ctx)
	return withError(start, err)
}

func (p *ShelterProvider) executeAdvanceDays(ctx context.Context, step scenario.Step, state *scenario.ExecutionState) (interface{}, error) {
	params, err := capabilities.ParseAdvanceDaysParams(step.Parameters)
	if err != nil {
		return nil, err
	}

	grades := make([]domain.Grade, 0, params.Days)
	for i := 0; i < params.Days; i++ {
		if !state.Game.DayState().IsNightTime {
			summary, err := state.Game.EndDay(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to end day: %w", err)
			}
			grades = append(grades, summary.Grade)
		}
		state.Clock.NextMorning()
		if _, err := state.Game.StartNewDay(ctx); err != nil {
			return nil, fmt.Errorf("failed to start day: %w", err)
		}
	}

	return map[string]interface{}{
		"success":       true,
		"days_advanced": params.Days,
		"day":           state.Game.DayState().CurrentDay,
		"grades":        grades,
	}, nil
}

func requireAnimal(step scenario.Step, state *scenario.ExecutionState) (string, error) {
	ref := capabilities.GetStringParam(step.Parameters, ParamAnimal, "")
	if ref == "" {
		return "", scenario.NewParameterError(ParamAnimal, "is required")
	}
	return state.ResolveAnimal(ref), nil
}

func requireItem(step scenario.Step) (string, error) {
	item := capabilities.GetStringParam(step.Parameters, ParamItem, "")
	if item == "" {
		return "", scenario.NewParameterError(ParamItem, "is required")
	}
	return item, nil
}

// withError flattens a result and adds the error text, empty on success
func withError(v interface{}, err error) map[string]interface{} {
	fields, _ := scenario.Plain(v).(map[string]interface{})
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["success"] = err == nil
	fields[OutputError] = ""
	if err != nil {
		fields[OutputError] = err.Error()
	}
	return fields
}

func withAlias(v interface{}, alias string) map[string]interface{} {
	fields, _ := scenario.Plain(v).(map[string]interface{})
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if alias != "" {
		fields[OutputAlias] = alias
	}
	return fields
}
