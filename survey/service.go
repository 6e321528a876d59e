// Package survey holds the survey core: authoring, response collection and
// results aggregation over the entity store boundary.
package survey

import (
	"time"

	"github.com/google/uuid"

	"github.com/KunalBhamoriya/survey-maker/store"
)

// Service implements the survey operations. All state lives in the store;
// the service itself is safe for concurrent use.
type Service struct {
	store store.Store

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewService(st store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
