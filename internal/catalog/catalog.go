package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/validation"
)

//go:embed data/animals.yaml
var animalsYAML []byte

//go:embed data/goals.yaml
var goalsYAML []byte

//go:embed data/shop.yaml
var shopYAML []byte

// Catalog holds the static tables the simulation draws from
type Catalog struct {
	Breeds            []domain.Breed            `yaml:"breeds" validate:"required,min=1,dive"`
	Names             []string                  `yaml:"names" validate:"required,min=1,dive,required"`
	GoalTemplates     []domain.GoalTemplate     `yaml:"goals" validate:"required,min=1,dive"`
	RandomEvents      []domain.DayEventTemplate `yaml:"events" validate:"required,min=1,dive"`
	ShopItems         []domain.ShopItem         `yaml:"items" validate:"required,min=1,dive"`
	StartingInventory map[string]int            `yaml:"starting_inventory"`

	breedIndex map[string]int
	goalIndex  map[string]int
	itemIndex  map[string]int
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the embedded catalog, parsed once
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(animalsYAML, goalsYAML, shopYAML)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog and panics if it is malformed
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses and validates catalog documents. Each document may carry any
// subset of the top level keys; later documents extend earlier ones.
func Load(docs ...[]byte) (*Catalog, error) {
	c := &Catalog{StartingInventory: make(map[string]int)}
	for i, doc := range docs {
		var part Catalog
		if err := yaml.Unmarshal(doc, &part); err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", domain.ErrInvalidCatalog, i, err)
		}
		c.Breeds = append(c.Breeds, part.Breeds...)
		c.Names = append(c.Names, part.Names...)
		c.GoalTemplates = append(c.GoalTemplates, part.GoalTemplates...)
		c.RandomEvents = append(c.RandomEvents, part.RandomEvents...)
		c.ShopItems = append(c.ShopItems, part.ShopItems...)
		for id, qty := range part.StartingInventory {
			c.StartingInventory[id] = qty
		}
	}

	if err := validation.ValidateStruct(c); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, validation.Summary(err))
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	c.breedIndex = make(map[string]int, len(c.Breeds))
	for i, b := range c.Breeds {
		if _, dup := c.breedIndex[b.Key]; dup {
			return fmt.Errorf("%w: duplicate breed %q", domain.ErrInvalidCatalog, b.Key)
		}
		c.breedIndex[b.Key] = i
	}

	c.goalIndex = make(map[string]int, len(c.GoalTemplates))
	for i, g := range c.GoalTemplates {
		if _, dup := c.goalIndex[g.ID]; dup {
			return fmt.Errorf("%w: duplicate goal template %q", domain.ErrInvalidCatalog, g.ID)
		}
		for action := range g.Requirements.SpecificActions {
			if _, ok := Definition(action); !ok {
				return fmt.Errorf("%w: goal %q requires unknown action %q", domain.ErrInvalidCatalog, g.ID, action)
			}
		}
		c.goalIndex[g.ID] = i
	}

	c.itemIndex = make(map[string]int, len(c.ShopItems))
	for i, item := range c.ShopItems {
		if _, dup := c.itemIndex[item.ID]; dup {
			return fmt.Errorf("%w: duplicate shop item %q", domain.ErrInvalidCatalog, item.ID)
		}
		c.itemIndex[item.ID] = i
	}

	for _, g := range c.GoalTemplates {
		for _, id := range g.Rewards.Items {
			if _, ok := c.itemIndex[id]; !ok {
				return fmt.Errorf("%w: goal %q rewards unknown item %q", domain.ErrInvalidCatalog, g.ID, id)
			}
		}
	}
	for id := range c.StartingInventory {
		if _, ok := c.itemIndex[id]; !ok {
			return fmt.Errorf("%w: starting inventory has unknown item %q", domain.ErrInvalidCatalog, id)
		}
	}
	return nil
}

// Breed looks up a breed by key
func (c *Catalog) Breed(key string) (domain.Breed, bool) {
	i, ok := c.breedIndex[key]
	if !ok {
		return domain.Breed{}, false
	}
	return c.Breeds[i], true
}

// GoalTemplate looks up a goal template by id
func (c *Catalog) GoalTemplate(id string) (domain.GoalTemplate, bool) {
	i, ok := c.goalIndex[id]
	if !ok {
		return domain.GoalTemplate{}, false
	}
	return c.GoalTemplates[i], true
}

// ShopItem looks up a shop item by id
func (c *Catalog) ShopItem(id string) (domain.ShopItem, bool) {
	i, ok := c.itemIndex[id]
	if !ok {
		return domain.ShopItem{}, false
	}
	return c.ShopItems[i], true
}
