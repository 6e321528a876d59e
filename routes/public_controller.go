package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/KunalBhamoriya/survey-maker/app"
	"github.com/KunalBhamoriya/survey-maker/httpx"
	"github.com/KunalBhamoriya/survey-maker/log"
)

func ListSurveys(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveys, err := app.List(r.Context())
		if err != nil {
			serviceError(w, "get_surveys", nil, err)
			return
		}

		render.JSON(w, r, map[string]any{
			"surveys": surveys,
		})
	}
}

func GetSurveyById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		survey, err := app.Get(r.Context(), surveyId)
		if err != nil {
			serviceError(w, "get_survey", surveyId, err)
			return
		}

		render.JSON(w, r, survey)
	}
}

type submitBody struct {
	Answers map[string]any `json:"answers"`
}

func SubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		body := submitBody{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		response, err := app.Submit(r.Context(), surveyId, body.Answers)
		if err != nil {
			serviceError(w, "submit_response", surveyId, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, response)
	}
}

func GetSurveyResults(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId := chi.URLParam(r, "id")

		results, err := app.Results(r.Context(), surveyId)
		if err != nil {
			serviceError(w, "get_results", surveyId, err)
			return
		}

		render.JSON(w, r, results)
	}
}
