package routes

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/KunalBhamoriya/survey-maker/httpx"
	"github.com/KunalBhamoriya/survey-maker/log"
	"github.com/KunalBhamoriya/survey-maker/survey"
)

// serviceError maps the survey error taxonomy onto HTTP statuses.
// Store failures stay opaque to the client and get logged instead.
func serviceError(w http.ResponseWriter, code string, id any, err error) {
	var validation survey.ValidationError
	switch {
	case errors.As(err, &validation):
		httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, code, "%s", validation.Msg)
	case errors.Is(err, survey.ErrNotFound):
		httpx.LogNotFound(w, code, id)
	case errors.Is(err, survey.ErrForbidden):
		httpx.LogStatus(w, http.StatusForbidden, log.DebugLevel, code)
	default:
		httpx.LogInternalError(w, code, err)
	}
}
