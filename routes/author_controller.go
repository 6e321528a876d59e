package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/KunalBhamoriya/survey-maker/app"
	"github.com/KunalBhamoriya/survey-maker/httpx"
	"github.com/KunalBhamoriya/survey-maker/log"
	"github.com/KunalBhamoriya/survey-maker/model"
	"github.com/KunalBhamoriya/survey-maker/routes/middlewares"
)

func CreateSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := model.Survey{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		survey, err := app.Create(r.Context(), middlewares.UserID(r), body.Title, body.Description, body.Questions)
		if err != nil {
			serviceError(w, "create_survey", body.Title, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, survey)
	}
}

func DeleteSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		err := app.Delete(r.Context(), surveyId, middlewares.UserID(r))
		if err != nil {
			serviceError(w, "delete_survey", surveyId, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
