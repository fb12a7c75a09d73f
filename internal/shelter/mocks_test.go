package shelter

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ShelterSim_Go/internal/animal"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/economy"
)

// MockAnimalService delegates to a real population except for the methods
// a test wants to control
type MockAnimalService struct {
	animal.Service
	mock.Mock
}

func (m *MockAnimalService) ApplyAction(ctx context.Context, id string, action domain.ActionType, mods animal.Modifiers) domain.ActionOutcome {
	args := m.Called(ctx, id, action, mods)
	return args.Get(0).(domain.ActionOutcome)
}

func (m *MockAnimalService) Restore(state animal.State) {
	m.Called(state)
	m.Service.Restore(state)
}

// MockEconomyService delegates to a real ledger but lets AddMoney fail
type MockEconomyService struct {
	economy.Service
	mock.Mock
}

func (m *MockEconomyService) AddMoney(ctx context.Context, amount int, source string) error {
	args := m.Called(ctx, amount, source)
	if err := args.Error(0); err != nil {
		return err
	}
	return m.Service.AddMoney(ctx, amount, source)
}
