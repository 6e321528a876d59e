package store

import (
	"context"
	"errors"

	"github.com/KunalBhamoriya/survey-maker/model"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the entity store boundary the services depend on. It is the
// only shared resource between requests; implementations handle their own
// concurrency control.
type Store interface {
	InsertSurvey(ctx context.Context, survey model.Survey) error
	FindSurveyByID(ctx context.Context, id string) (model.Survey, error)
	// ListSurveys returns all surveys ordered by creation time descending,
	// each joined with its owner's display name.
	ListSurveys(ctx context.Context) ([]model.SurveyListing, error)
	DeleteSurveyByID(ctx context.Context, id string) error

	InsertResponse(ctx context.Context, response model.Response) error
	// FindResponsesBySurveyID returns responses in submission order.
	FindResponsesBySurveyID(ctx context.Context, surveyID string) ([]model.Response, error)
	DeleteResponsesBySurveyID(ctx context.Context, surveyID string) error
}
