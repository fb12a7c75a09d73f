package capabilities

import (
	"encoding/json"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/scenario"
)

// Defaults for fields an admit step leaves out
const (
	DefaultAdmitBreed     = "mixed"
	DefaultAdmitStat      = 50
	DefaultAdmitMaxEnergy = 8
	DefaultAdmitFee       = 100
)

// EventInjectorCapabilityInfo returns the capability info for event injection
func EventInjectorCapabilityInfo() scenario.CapabilityInfo {
	return scenario.CapabilityInfo{
		Type:        scenario.CapabilityEventInjector,
		Name:        "Event Injector",
		Description: "Places animals with known stats into the shelter instead of relying on random rescues",
		Actions: []scenario.ActionInfo{
			{
				Action:      scenario.ActionAdmit,
				Name:        "Admit Animal",
				Description: "Admits an animal built from the given fields and registers it under an alias",
				Parameters: []scenario.ParameterInfo{
					{Name: "alias", Type: "string", Required: false, Description: "Name later steps use to refer to the animal (default: its name)"},
					{Name: "name", Type: "string", Required: true, Description: "Animal name"},
					{Name: "breed", Type: "string", Required: false, Description: "Breed (default: mixed)"},
					{Name: "size", Type: "string", Required: false, Description: "small, medium or large (default: medium)"},
					{Name: "age", Type: "string", Required: false, Description: "puppy, adult or senior (default: adult)"},
					{Name: "health", Type: "number", Required: false, Description: "0 to 100 (default: 50)"},
					{Name: "happiness", Type: "number", Required: false, Description: "0 to 100 (default: 50)"},
					{Name: "adoption_readiness", Type: "number", Required: false, Description: "0 to 100 (default: 50)"},
					{Name: "energy", Type: "number", Required: false, Description: "Current energy (default: max_energy)"},
					{Name: "max_energy", Type: "number", Required: false, Description: "1 to 12 (default: 8)"},
					{Name: "needs_medical", Type: "bool", Required: false, Description: "Whether the animal needs treatment"},
					{Name: "adoption_fee", Type: "number", Required: false, Description: "Fee paid on adoption (default: 100)"},
				},
				Example: map[string]interface{}{
					"alias":              "rex",
					"name":               "Rex",
					"health":             85,
					"happiness":          75,
					"adoption_readiness": 78,
				},
			},
			{
				Action:      scenario.ActionRescue,
				Name:        "Rescue Animal",
				Description: "Takes in a randomly generated animal, as the rescue command does",
				Parameters: []scenario.ParameterInfo{
					{Name: "alias", Type: "string", Required: false, Description: "Name later steps use to refer to the animal"},
				},
			},
		},
	}
}

// AdmitParams represents parameters for an admit action
type AdmitParams struct {
	Alias string
	Draft domain.AnimalDraft
}

// ParseAdmitParams builds an animal draft from step parameters, filling in
// defaults for omitted fields. Range checks are left to admission.
func ParseAdmitParams(params map[string]interface{}) (*AdmitParams, error) {
	name := GetStringParam(params, "name", "")
	if name == "" {
		return nil, scenario.NewParameterError("name", "is required")
	}

	fields := map[string]interface{}{
		"breed":              DefaultAdmitBreed,
		"size":               string(domain.SizeMedium),
		"age":                string(domain.AgeAdult),
		"health":             DefaultAdmitStat,
		"happiness":          DefaultAdmitStat,
		"adoption_readiness": DefaultAdmitStat,
		"max_energy":         DefaultAdmitMaxEnergy,
		"adoption_fee":       DefaultAdmitFee,
	}
	for k, v := range params {
		if k == "alias" {
			continue
		}
		fields[k] = v
	}
	if _, ok := params["energy"]; !ok {
		fields["energy"] = fields["max_energy"]
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, scenario.NewParameterErrorWithCause("parameters", "cannot be encoded", err)
	}
	var draft domain.AnimalDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, scenario.NewParameterErrorWithCause("parameters", "do not describe an animal", err)
	}

	return &AdmitParams{
		Alias: GetStringParam(params, "alias", name),
		Draft: draft,
	}, nil
}
