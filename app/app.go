package app

import (
	"github.com/go-chi/oauth"

	"github.com/KunalBhamoriya/survey-maker/config"
	"github.com/KunalBhamoriya/survey-maker/survey"
)

type App struct {
	*survey.Service
	*oauth.BearerServer
	config.Config
}
