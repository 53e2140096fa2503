package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/enhance/openai"
	"resume-editor/internal/export"
	"resume-editor/internal/parse"
	"resume-editor/internal/session"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/server"
	"resume-editor/internal/shared/storage/db"
	"resume-editor/internal/shared/storage/object"
	localstore "resume-editor/internal/shared/storage/object/local"
	s3store "resume-editor/internal/shared/storage/object/s3"
	"resume-editor/internal/store"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	ResumesRepo    store.Repo
	Sessions       *session.Manager
	ExportService  *export.Service
	SessionService *session.Service
	SessionHandler *session.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	objects, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  objects,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		SessionHandler: app.SessionHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	var resumesRepo store.Repo
	if app.DB != nil {
		resumesRepo = &store.PGRepo{DB: app.DB}
	} else {
		resumesRepo = store.NewMemoryRepo()
	}

	enhancer := enhance.Enhancer(enhance.Rewriter{})
	if app.Config.EnhancerProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.EnhancerModel)
		if err != nil {
			return err
		}
		enhancer = client
	}

	var parser parse.Parser
	if app.Config.ParserProvider == "stub" {
		parser = parse.Stub{Delay: app.Config.ParseStubDelay}
	} else {
		parser = parse.TextParser{}
	}

	exportSvc := export.NewService(resumesRepo, app.Store)
	sessions := session.NewManager()
	sessionSvc := &session.Service{
		Sessions: sessions,
		Parser:   parser,
		Enhance:  &enhance.Orchestrator{Enhancer: enhancer},
		Export:   exportSvc,
		Objects:  app.Store,
	}

	app.ResumesRepo = resumesRepo
	app.Sessions = sessions
	app.ExportService = exportSvc
	app.SessionService = sessionSvc
	app.SessionHandler = session.NewHandler(sessionSvc)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
