package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/healthjournal/internal/config"
	"github.com/templui/healthjournal/internal/db"
	"github.com/templui/healthjournal/internal/repository"
	"github.com/templui/healthjournal/internal/service"
	"github.com/templui/healthjournal/internal/storage"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	GoalService       *service.GoalService
	MedicationService *service.MedicationService
	MoodService       *service.MoodService
	SymptomService    *service.SymptomService
	AssetService      *service.AssetService // nil when no bucket is configured
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database, cfg.StoreTimeout)
	medicationRepository := repository.NewMedicationRepository(database, cfg.StoreTimeout)
	moodRepository := repository.NewMoodRepository(database, cfg.StoreTimeout)
	symptomRepository := repository.NewSymptomRepository(database, cfg.StoreTimeout)

	// Storage
	assetHost, err := storage.New(ctx, cfg)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var assetService *service.AssetService
	if assetHost != nil {
		assetService = service.NewAssetService(assetHost, cfg.UploadMaxBytes)
	}

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry),
		GoalService:       service.NewGoalService(goalRepository),
		MedicationService: service.NewMedicationService(medicationRepository),
		MoodService:       service.NewMoodService(moodRepository),
		SymptomService:    service.NewSymptomService(symptomRepository),
		AssetService:      assetService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
