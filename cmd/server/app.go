package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsecheck-app/pulsecheck-api/internal/config"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain/wellness"
	"github.com/pulsecheck-app/pulsecheck-api/internal/platform/postgres"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service/auth"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	assessmentStore store.AssessmentStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	recommendationService service.RecommendationService
	reportService         service.ReportService
}

// newApplication connects to the database and builds the store, service and
// derivation-pipeline dependencies.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, logger, bcrypt.DefaultCost)
	assessmentStore := postgres.NewAssessmentStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	// The rule engine is shared between the per-user recommendation path and
	// the monthly report so both consume the same thresholds.
	params := wellness.NewParams(wellness.ParamsConfig{
		StressThreshold:   cfg.Wellness.StressThreshold,
		WorkloadThreshold: cfg.Wellness.WorkloadThreshold,
		LowMoodThreshold:  cfg.Wellness.LowMoodThreshold,
		LookbackDays:      cfg.Wellness.LookbackDays,
	})
	engine := wellness.NewEngine(wellness.DefaultRules(params))

	recommendationService := service.NewRecommendationService(
		assessmentStore,
		engine,
		wellness.DefaultTemplates(),
		params.LookbackDays,
		logger,
	)
	reportService := service.NewReportService(
		assessmentStore,
		wellness.NewComposer(engine, wellness.DefaultSentences()),
		logger,
	)

	return &application{
		config:                cfg,
		logger:                logger,
		db:                    db,
		userStore:             userStore,
		assessmentStore:       assessmentStore,
		jwtService:            jwtService,
		passwordVerifier:      auth.NewBcryptVerifier(),
		recommendationService: recommendationService,
		reportService:         reportService,
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
