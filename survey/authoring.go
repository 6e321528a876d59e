package survey

import (
	"context"
	"strings"

	"github.com/KunalBhamoriya/survey-maker/model"
)

// Create validates and persists a new survey owned by ownerID. The survey
// id and creation time are server-assigned; question ids come from the
// author and must be unique within the survey.
func (s *Service) Create(ctx context.Context, ownerID, title, description string, questions []model.Question) (model.Survey, error) {
	if strings.TrimSpace(title) == "" {
		return model.Survey{}, ValidationError{Msg: "title must not be empty"}
	}
	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q.ID] {
			return model.Survey{}, ValidationError{Msg: "duplicate question id " + q.ID}
		}
		seen[q.ID] = true
	}

	survey := model.Survey{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Questions:   questions,
		OwnerID:     ownerID,
		CreatedAt:   s.now(),
	}
	err := s.store.InsertSurvey(ctx, survey)
	if err != nil {
		return model.Survey{}, storeFail(err, "create survey")
	}
	return survey, nil
}

func (s *Service) Get(ctx context.Context, id string) (model.Survey, error) {
	survey, err := s.store.FindSurveyByID(ctx, id)
	if err != nil {
		return model.Survey{}, storeFail(err, "get survey")
	}
	return survey, nil
}

// List returns all surveys, newest first, joined with owner display names.
func (s *Service) List(ctx context.Context) ([]model.SurveyListing, error) {
	listings, err := s.store.ListSurveys(ctx)
	if err != nil {
		return nil, storeFail(err, "list surveys")
	}
	return listings, nil
}

// Delete removes the survey and every response referencing it. Only the
// owner may delete. The survey row goes first: a crash in between leaves
// orphaned responses, which aggregation already ignores, whereas the
// reverse order could leave a live survey with its responses gone.
func (s *Service) Delete(ctx context.Context, id, requestingUserID string) error {
	survey, err := s.store.FindSurveyByID(ctx, id)
	if err != nil {
		return storeFail(err, "delete survey")
	}
	if survey.OwnerID != requestingUserID {
		return ErrForbidden
	}

	err = s.store.DeleteSurveyByID(ctx, id)
	if err != nil {
		return storeFail(err, "delete survey")
	}
	err = s.store.DeleteResponsesBySurveyID(ctx, id)
	if err != nil {
		return storeFail(err, "delete survey responses")
	}
	return nil
}
