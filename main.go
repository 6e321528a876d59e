package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KunalBhamoriya/survey-maker/app"
	"github.com/KunalBhamoriya/survey-maker/config"
	"github.com/KunalBhamoriya/survey-maker/database"
	"github.com/KunalBhamoriya/survey-maker/httpx"
	"github.com/KunalBhamoriya/survey-maker/log"
	"github.com/KunalBhamoriya/survey-maker/model"
	"github.com/KunalBhamoriya/survey-maker/routes"
	"github.com/KunalBhamoriya/survey-maker/store"
	"github.com/KunalBhamoriya/survey-maker/survey"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	st := store.NewSqlite(db)

	if cfg.CreateUser != "" {
		err = createUser(st, cfg.CreateUser)
		if err != nil {
			log.Fatal("main.create_user:", err)
		}
		return
	}

	app := app.App{
		Service:      survey.NewService(st),
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func createUser(st *store.Sqlite, account string) error {
	username, password, ok := strings.Cut(account, ":")
	if !ok || username == "" || password == "" {
		return errors.New("expected -create-user username:password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = st.CreateUser(context.Background(), model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	log.Info("created user " + username)
	return nil
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
