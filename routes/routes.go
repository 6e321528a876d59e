package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KunalBhamoriya/survey-maker/app"
	"github.com/KunalBhamoriya/survey-maker/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// anyone may browse surveys, submit responses and read results
	api.Get("/surveys", ListSurveys(app))
	api.Get("/surveys/{id}", GetSurveyById(app))
	api.Post("/surveys/{id}/responses", SubmitResponse(app))
	api.Get("/surveys/{id}/results", GetSurveyResults(app))

	// authoring requires an authenticated owner
	api.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticated(app.TokenSecret))

		r.Post("/surveys", CreateSurvey(app))
		r.Delete("/surveys/{id}", DeleteSurvey(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}
