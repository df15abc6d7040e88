package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register /debug/pprof handlers
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/kanisa-app/kanisa/apps/api/echo"
	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/activity"
	"github.com/kanisa-app/kanisa/core/course"
	"github.com/kanisa-app/kanisa/core/leaderboard"
	"github.com/kanisa-app/kanisa/core/quiz"
	"github.com/kanisa-app/kanisa/core/session"
	"github.com/kanisa-app/kanisa/core/user"
	emailsvc "github.com/kanisa-app/kanisa/services/email"
	logsvc "github.com/kanisa-app/kanisa/services/logger"
	"github.com/kanisa-app/kanisa/storage/database"
	"github.com/kanisa-app/kanisa/storage/database/inmem"
	sqlxrepos "github.com/kanisa-app/kanisa/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up storage; course content, the leaderboard seed and activities
	// always come from the embedded dataset, user and score records move to
	// Postgres when a database is configured
	memDB, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening dataset: %v", err), err)
	}

	userRepo := inmemdb.NewUserRepository(memDB)
	boardRepo := inmemdb.NewLeaderboardRepository(memDB)
	if conf.Database.Enabled {
		db, err := setUpDB(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		defer func() {
			if err = db.Close(); err != nil {
				logger.Error("failed to close database", err)
			}
		}()
		userRepo = sqlxrepos.NewUserRepository(db)
		boardRepo = sqlxrepos.NewLeaderboardRepository(db)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	usrSvc := user.NewService(userRepo, mailSvc, conf)
	auth := session.NewAuthenticator(usrSvc, conf)
	courseSvc := course.NewService(inmemdb.NewCourseRepository(memDB))
	boardSvc := leaderboard.NewService(boardRepo)
	activitySvc := activity.NewService(inmemdb.NewActivityRepository(memDB))
	attempts := quiz.NewAttemptStore()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := core.Validate
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:        conf,
		Logger:      logger,
		UserSvc:     usrSvc,
		Auth:        auth,
		CourseSvc:   courseSvc,
		Attempts:    attempts,
		BoardSvc:    boardSvc,
		ActivitySvc: activitySvc,
		Validate:    validate,
		Translator:  translator,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
