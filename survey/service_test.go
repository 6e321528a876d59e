package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/KunalBhamoriya/survey-maker/model"
	"github.com/KunalBhamoriya/survey-maker/store"
)

// stubStore keeps entities in memory and records deletions, so tests can
// check cascade behavior without a database.
type stubStore struct {
	surveys   map[string]model.Survey
	responses []model.Response
	owners    map[string]string // owner id -> display name

	failWith error
}

func newStubStore() *stubStore {
	return &stubStore{
		surveys: map[string]model.Survey{},
		owners:  map[string]string{},
	}
}

func (s *stubStore) InsertSurvey(ctx context.Context, survey model.Survey) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.surveys[survey.ID] = survey
	return nil
}

func (s *stubStore) FindSurveyByID(ctx context.Context, id string) (model.Survey, error) {
	if s.failWith != nil {
		return model.Survey{}, s.failWith
	}
	survey, ok := s.surveys[id]
	if !ok {
		return model.Survey{}, store.ErrNotFound
	}
	return survey, nil
}

func (s *stubStore) ListSurveys(ctx context.Context) ([]model.SurveyListing, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	listings := []model.SurveyListing{}
	for _, survey := range s.surveys {
		listings = append(listings, model.SurveyListing{
			Survey:    survey,
			OwnerName: s.owners[survey.OwnerID],
		})
	}
	for i := range listings {
		for j := i + 1; j < len(listings); j++ {
			if listings[j].CreatedAt.After(listings[i].CreatedAt) {
				listings[i], listings[j] = listings[j], listings[i]
			}
		}
	}
	return listings, nil
}

func (s *stubStore) DeleteSurveyByID(ctx context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.surveys[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.surveys, id)
	return nil
}

func (s *stubStore) InsertResponse(ctx context.Context, response model.Response) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.responses = append(s.responses, response)
	return nil
}

func (s *stubStore) FindResponsesBySurveyID(ctx context.Context, surveyID string) ([]model.Response, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	matching := []model.Response{}
	for _, r := range s.responses {
		if r.SurveyID == surveyID {
			matching = append(matching, r)
		}
	}
	return matching, nil
}

func (s *stubStore) DeleteResponsesBySurveyID(ctx context.Context, surveyID string) error {
	if s.failWith != nil {
		return s.failWith
	}
	kept := s.responses[:0]
	for _, r := range s.responses {
		if r.SurveyID != surveyID {
			kept = append(kept, r)
		}
	}
	s.responses = kept
	return nil
}

// newTestService returns a service over st with deterministic ids (id-1,
// id-2, ...) and a fixed clock.
func newTestService(st store.Store) *Service {
	svc := NewService(st)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	svc.now = func() time.Time {
		return time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	}
	return svc
}
