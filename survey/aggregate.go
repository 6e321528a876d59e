package survey

import (
	"context"
	"math"

	"github.com/KunalBhamoriya/survey-maker/model"
)

// OptionCount is the tally for one declared option of a choice question.
// Percentage is already rounded to one decimal place for display.
type OptionCount struct {
	Option     string  `json:"option"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// QuestionResult carries the aggregate for one question. Text questions
// fill Texts, choice questions fill Options, unknown types fill neither.
type QuestionResult struct {
	Question model.Question `json:"question"`
	Texts    []string       `json:"texts,omitempty"`
	Options  []OptionCount  `json:"options,omitempty"`
}

type SurveyResults struct {
	Survey         model.Survey     `json:"survey"`
	Responses      []model.Response `json:"responses"`
	TotalResponses int              `json:"totalResponses"`
	Questions      []QuestionResult `json:"questions"`
}

// Results aggregates every response to the survey into per-question
// distributions, in survey question order. The percentage denominator is
// always the total number of responses to the survey, not the number that
// answered the particular question.
func (s *Service) Results(ctx context.Context, surveyID string) (SurveyResults, error) {
	survey, err := s.store.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return SurveyResults{}, storeFail(err, "get results")
	}
	responses, err := s.store.FindResponsesBySurveyID(ctx, surveyID)
	if err != nil {
		return SurveyResults{}, storeFail(err, "get results")
	}

	results := SurveyResults{
		Survey:         survey,
		Responses:      responses,
		TotalResponses: len(responses),
		Questions:      make([]QuestionResult, 0, len(survey.Questions)),
	}
	for _, q := range survey.Questions {
		qr := QuestionResult{Question: q}
		switch q.Type {
		case model.QuestionText:
			qr.Texts = textAnswers(q.ID, responses)
		case model.QuestionRadio:
			qr.Options = tally(q, responses, scalarMatch)
		case model.QuestionCheckbox:
			qr.Options = tally(q, responses, memberMatch)
		}
		results.Questions = append(results.Questions, qr)
	}
	return results, nil
}

// textAnswers collects the raw scalar answers in response order, skipping
// absent and empty values rather than showing blanks.
func textAnswers(questionID string, responses []model.Response) []string {
	var texts []string
	for _, r := range responses {
		if v, ok := model.AnswerString(r.Answers[questionID]); ok && v != "" {
			texts = append(texts, v)
		}
	}
	return texts
}

type matchFunc func(answer any, option string) bool

func scalarMatch(answer any, option string) bool {
	v, ok := model.AnswerString(answer)
	return ok && v == option
}

func memberMatch(answer any, option string) bool {
	return model.AnswerSet(answer)[option]
}

// tally counts, for each declared option in order, the responses whose
// answer matches it. Answers naming no declared option still count toward
// the denominator but toward no option.
func tally(q model.Question, responses []model.Response, match matchFunc) []OptionCount {
	total := len(responses)
	counts := make([]OptionCount, 0, len(q.Options))
	for _, option := range q.Options {
		count := 0
		for _, r := range responses {
			answer, ok := r.Answers[q.ID]
			if ok && match(answer, option) {
				count++
			}
		}
		percentage := 0.0
		if total > 0 {
			percentage = round1(float64(count) / float64(total) * 100)
		}
		counts = append(counts, OptionCount{Option: option, Count: count, Percentage: percentage})
	}
	return counts
}

// round1 rounds half-up to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
