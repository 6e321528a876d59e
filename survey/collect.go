package survey

import (
	"context"

	"github.com/KunalBhamoriya/survey-maker/model"
)

// Submit records one response against the survey. Answers are stored as
// received, without per-question validation: malformed or extra keys are
// kept and dealt with defensively at aggregation time. Any caller may
// submit; there is no ownership check.
func (s *Service) Submit(ctx context.Context, surveyID string, answers map[string]any) (model.Response, error) {
	_, err := s.store.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return model.Response{}, storeFail(err, "submit response")
	}

	if answers == nil {
		answers = map[string]any{}
	}
	response := model.Response{
		ID:          s.newID(),
		SurveyID:    surveyID,
		Answers:     answers,
		SubmittedAt: s.now(),
	}
	err = s.store.InsertResponse(ctx, response)
	if err != nil {
		return model.Response{}, storeFail(err, "submit response")
	}
	return response, nil
}
