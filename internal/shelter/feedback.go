package shelter

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// FeedbackSchemaVersion is bumped when ActionFeedback changes shape
const FeedbackSchemaVersion = "1.0"

// ActionFeedback is one remembered action result for an animal
type ActionFeedback struct {
	Action          domain.ActionType    `json:"action"`
	Success         bool                 `json:"success"`
	Reason          domain.FailureReason `json:"reason,omitempty"`
	CriticalSuccess bool                 `json:"critical_success"`
	Message         string               `json:"message"`
	Day             int                  `json:"day"`
	At              time.Time            `json:"at"`
}

type cachedFeedback struct {
	Version string
	Results []ActionFeedback
}

// feedbackCache keeps the most recent action results of the most recently
// handled animals
type feedbackCache struct {
	lru      *lru.Cache[string, *cachedFeedback]
	perEntry int
}

func newFeedbackCache(size, perEntry int) (*feedbackCache, error) {
	c, err := lru.New[string, *cachedFeedback](size)
	if err != nil {
		return nil, err
	}
	return &feedbackCache{lru: c, perEntry: perEntry}, nil
}

// Get returns the results for an animal, newest last
func (c *feedbackCache) Get(animalID string) []ActionFeedback {
	entry, found := c.lru.Get(animalID)
	if !found {
		return nil
	}
	if entry.Version != FeedbackSchemaVersion {
		c.lru.Remove(animalID)
		return nil
	}
	return append([]ActionFeedback(nil), entry.Results...)
}

// Add appends a result, keeping at most perEntry results per animal
func (c *feedbackCache) Add(animalID string, fb ActionFeedback) {
	results := c.Get(animalID)
	results = append(results, fb)
	if len(results) > c.perEntry {
		results = results[len(results)-c.perEntry:]
	}
	c.lru.Add(animalID, &cachedFeedback{Version: FeedbackSchemaVersion, Results: results})
}

// Invalidate forgets an animal, used when it leaves the shelter
func (c *feedbackCache) Invalidate(animalID string) {
	c.lru.Remove(animalID)
}

func (c *feedbackCache) Len() int {
	return c.lru.Len()
}
