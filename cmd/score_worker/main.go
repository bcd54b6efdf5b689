package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fitleague/fitleague/config"
	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/internal/domain/scoring"
	pginfra "github.com/fitleague/fitleague/internal/infrastructure/postgres"
	"github.com/fitleague/fitleague/pkg/helpers"
)

// The score worker drains the score queue and refreshes the cached
// leaderboard after every event change. Messages are redundant triggers,
// never the source of truth; the refresh always recomputes from Postgres.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-score-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQScoreQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	cal, err := scoring.NewCalendar(cfg.ReferenceTimezone)
	if err != nil {
		log.Fatalf("invalid REFERENCE_TIMEZONE %q: %v", cfg.ReferenceTimezone, err)
	}

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	consumer, msgs, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQScoreQueue, 16)
	if err != nil {
		log.Fatalf("amqp consume: %v", err)
	}
	defer consumer.Close()

	leaderboard := application.NewLeaderboardService(
		pginfra.NewUserRepository(pool),
		pginfra.NewGoalRepository(pool),
		pginfra.NewEventRepository(pool),
		pginfra.NewTeamRepository(pool),
		cal,
		rdb,
		logger,
		cfg.LeaderboardCacheTTL,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var sm application.ScoreMessage
			if err := json.Unmarshal(msg.Body, &sm); err != nil {
				logger.WithError(err).Warn("bad score message")
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 30*time.Second)
			_, err := leaderboard.Refresh(c)
			cancel()
			if err != nil {
				logger.WithError(err).WithField("event_id", sm.EventID).Error("leaderboard refresh failed")
				_ = msg.Nack(false, true)
				continue
			}
			logger.WithField("type", sm.Type).WithField("event_id", sm.EventID).Debug("leaderboard refreshed")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("score worker listening on queue=%s", cfg.RabbitMQScoreQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
