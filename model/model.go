package model

import "time"

// Question types with defined aggregation behavior. Other type strings are
// stored as-is but produce no tally.
const (
	QuestionText     = "text"
	QuestionRadio    = "radio"
	QuestionCheckbox = "checkbox"
)

type Survey struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	OwnerID     string     `json:"ownerId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// Question ids are assigned by the survey author and are only unique within
// the owning survey.
type Question struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// SurveyListing is a Survey joined with display info about its owner.
// Read-side projection only, never written back.
type SurveyListing struct {
	Survey
	OwnerName string `json:"ownerName"`
}

// Response answers are stored without structural validation: keys are
// question ids, values are whatever the respondent sent. Their shape is
// checked defensively at aggregation time, not at submission time.
type Response struct {
	ID          string         `json:"id,omitempty"`
	SurveyID    string         `json:"surveyId"`
	Answers     map[string]any `json:"answers"`
	SubmittedAt time.Time      `json:"submittedAt,omitempty"`
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// AnswerString reports the answer as a scalar string value.
func AnswerString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AnswerSet normalizes an answer to a set of selected options. Sequences
// collapse duplicates, a stray scalar becomes a singleton set, anything
// else is an empty set.
func AnswerSet(v any) map[string]bool {
	set := map[string]bool{}
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				set[s] = true
			}
		}
	case []string:
		for _, s := range v {
			set[s] = true
		}
	case string:
		set[v] = true
	}
	return set
}
