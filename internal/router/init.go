package router

import (
	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/internal/container"
	pginfra "github.com/fitleague/fitleague/internal/infrastructure/postgres"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/router/modules"
)

type deps struct {
	userHandler        *handlers.UserHandler
	goalHandler        *handlers.GoalHandler
	eventHandler       *handlers.EventHandler
	teamHandler        *handlers.TeamHandler
	leaderboardHandler *handlers.LeaderboardHandler
}

func buildDeps() deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	goalRepo := pginfra.NewGoalRepository(pool)
	eventRepo := pginfra.NewEventRepository(pool)
	teamRepo := pginfra.NewTeamRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
		container.GetES(),
		cfg.ESUsersIndex,
	)
	goalSvc := application.NewGoalService(goalRepo, userRepo, logger)
	eventSvc := application.NewEventService(
		eventRepo,
		goalRepo,
		container.GetCalendar(),
		scorePublisher(),
		logger,
	)
	teamSvc := application.NewTeamService(teamRepo, userRepo, logger)
	leaderboardSvc := application.NewLeaderboardService(
		userRepo,
		goalRepo,
		eventRepo,
		teamRepo,
		container.GetCalendar(),
		container.GetRedis(),
		logger,
		cfg.LeaderboardCacheTTL,
	)

	return deps{
		userHandler:        handlers.NewUserHandler(userSvc, logger),
		goalHandler:        handlers.NewGoalHandler(goalSvc, logger),
		eventHandler:       handlers.NewEventHandler(eventSvc, logger),
		teamHandler:        handlers.NewTeamHandler(teamSvc, logger),
		leaderboardHandler: handlers.NewLeaderboardHandler(leaderboardSvc, logger),
	}
}

// scorePublisher hides the nil-interface pitfall: a nil *RabbitPublisher
// wrapped in the interface would not compare equal to nil inside the service.
func scorePublisher() application.ScorePublisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	d := buildDeps()
	r.Add(modules.NewUserModule(d.userHandler))
	r.Add(modules.NewGoalModule(d.goalHandler))
	r.Add(modules.NewEventModule(d.eventHandler))
	r.Add(modules.NewTeamModule(d.teamHandler))
	r.Add(modules.NewLeaderboardModule(d.leaderboardHandler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
