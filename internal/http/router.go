package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/http/handlers"
	"github.com/geocoder89/runtrack/internal/http/middlewares"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/geocoder89/runtrack/internal/repo/postgres"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(cfg config.Config, log *slog.Logger, pool *pgxpool.Pool, prom *observability.Prom, metricsHandler http.Handler) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(otelgin.Middleware("runtrack"))
	r.Use(RequestLogger(log))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(1 << 20))

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// wire up repositories
	usersRepo := postgres.NewUsersRepo(pool, prom)
	runsRepo := postgres.NewRunsRepo(pool, prom)
	goalsRepo := postgres.NewGoalsRepo(pool, prom)
	goalTypesRepo := postgres.NewGoalTypesRepo(pool, prom)

	// wire up handlers
	authHandler := handlers.NewAuthHandler(usersRepo, log, prom)
	usersHandler := handlers.NewUsersHandler(usersRepo)
	runsHandler := handlers.NewRunsHandler(runsRepo)
	goalsHandler := handlers.NewGoalsHandler(goalsRepo)
	goalTypesHandler := handlers.NewGoalTypesHandler(goalTypesRepo)

	api := r.Group("/api")

	api.POST("/users/login", authHandler.Login)

	api.GET("/users", usersHandler.ListUsers)
	api.GET("/users/:id", usersHandler.GetUserByID)
	api.POST("/users", usersHandler.CreateUser)
	api.PUT("/users/:id", usersHandler.UpdateUser)
	api.DELETE("/users/:id", usersHandler.DeleteUser)
	api.PUT("/users/:id/restore", usersHandler.RestoreUser)

	api.GET("/runs", runsHandler.ListRuns)
	api.GET("/runs/:id", runsHandler.GetRunByID)
	api.POST("/runs", runsHandler.CreateRun)
	api.PUT("/runs/:id", runsHandler.UpdateRun)
	api.DELETE("/runs/:id", runsHandler.DeleteRun)
	api.PUT("/runs/:id/restore", runsHandler.RestoreRun)

	// per-user collections live under /users/:id, the gin route tree cannot
	// mix a static segment with a wildcard at the same position
	api.GET("/users/:id/runs", runsHandler.ListRunsByUser)
	api.GET("/users/:id/runs/deleted", runsHandler.ListDeletedRunsByUser)
	api.GET("/users/:id/runs/recent", runsHandler.ListRecentRunsByUser)

	api.GET("/goals", goalsHandler.ListGoals)
	api.GET("/goals/:id", goalsHandler.GetGoalByID)
	api.POST("/goals", goalsHandler.CreateGoal)
	api.PUT("/goals/:id", goalsHandler.UpdateGoal)
	api.DELETE("/goals/:id", goalsHandler.DeleteGoal)
	api.PUT("/goals/:id/restore", goalsHandler.RestoreGoal)
	api.GET("/users/:id/goals", goalsHandler.ListGoalsByUser)
	api.GET("/users/:id/goals/deleted", goalsHandler.ListDeletedGoalsByUser)

	api.GET("/goaltypes", goalTypesHandler.ListGoalTypes)
	api.GET("/goaltypes/:id", goalTypesHandler.GetGoalTypeByID)
	api.POST("/goaltypes", goalTypesHandler.CreateGoalType)
	api.PUT("/goaltypes/:id", goalTypesHandler.UpdateGoalType)
	api.DELETE("/goaltypes/:id", goalTypesHandler.DeleteGoalType)

	return r
}
