package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/domain/entity"
	repo "github.com/fitleague/fitleague/internal/domain/repository"
	"github.com/fitleague/fitleague/internal/domain/scoring"
	"github.com/fitleague/fitleague/pkg/helpers"
)

const leaderboardCacheKey = "leaderboard:v1"

// UserStanding is one individual row on the leaderboard.
type UserStanding struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	GamerTag  string `json:"gamer_tag,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Score     int    `json:"score"`
}

// TeamStanding is one team row on the leaderboard.
type TeamStanding struct {
	TeamID    string `json:"team_id"`
	TeamName  string `json:"team_name"`
	UserIDOne string `json:"user_id_one"`
	UserIDTwo string `json:"user_id_two"`
	Score     int    `json:"score"`
}

// Leaderboard is the full ranked view served to clients.
type Leaderboard struct {
	Users       []UserStanding `json:"users"`
	Teams       []TeamStanding `json:"teams"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// LeaderboardService computes ranked scores from full store snapshots and
// caches the result in Redis. The scoring itself is pure; this service only
// assembles snapshots and handles caching.
type LeaderboardService struct {
	Users    repo.UserRepository
	Goals    repo.GoalRepository
	Events   repo.EventRepository
	Teams    repo.TeamRepository
	Calendar *scoring.Calendar
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewLeaderboardService(users repo.UserRepository, goals repo.GoalRepository, events repo.EventRepository, teams repo.TeamRepository, cal *scoring.Calendar, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *LeaderboardService {
	return &LeaderboardService{
		Users:    users,
		Goals:    goals,
		Events:   events,
		Teams:    teams,
		Calendar: cal,
		Redis:    rdb,
		Logger:   logger,
		CacheTTL: cacheTTL,
	}
}

// Get returns the cached leaderboard when fresh, recomputing on a miss.
func (s *LeaderboardService) Get(ctx context.Context) (*Leaderboard, error) {
	if s.Redis != nil {
		var cached Leaderboard
		hit, err := helpers.RedisGetJSON(ctx, s.Redis, leaderboardCacheKey, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("leaderboard cache read failed")
		}
		if hit {
			return &cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the leaderboard from the store and replaces the cache.
// The score worker calls this when a score message arrives.
func (s *LeaderboardService) Refresh(ctx context.Context) (*Leaderboard, error) {
	lb, err := s.compute()
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, leaderboardCacheKey, lb, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("leaderboard cache write failed")
		}
	}
	return lb, nil
}

// Invalidate drops the cached leaderboard so the next read recomputes.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, leaderboardCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("leaderboard cache invalidate failed")
	}
}

func (s *LeaderboardService) compute() (*Leaderboard, error) {
	users, err := s.Users.List()
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals.List()
	if err != nil {
		return nil, err
	}
	events, err := s.Events.List()
	if err != nil {
		return nil, err
	}
	teams, err := s.Teams.List()
	if err != nil {
		return nil, err
	}

	goalsByUser := make(map[string][]entity.Goal)
	for _, g := range goals {
		goalsByUser[g.UserID] = append(goalsByUser[g.UserID], g)
	}
	eventsByUser := make(map[string][]entity.Event)
	for _, e := range events {
		eventsByUser[e.UserID] = append(eventsByUser[e.UserID], e)
	}

	userRows := make([]UserStanding, 0, len(users))
	for i := range users {
		u := &users[i]
		score := s.Calendar.UserScore(u, goalsByUser[u.ID], eventsByUser[u.ID])
		userRows = append(userRows, UserStanding{
			UserID:    u.ID,
			Name:      u.FullName(),
			GamerTag:  u.GamerTag,
			AvatarURL: u.AvatarURL,
			Score:     score,
		})
	}
	sort.SliceStable(userRows, func(i, j int) bool {
		if userRows[i].Score != userRows[j].Score {
			return userRows[i].Score > userRows[j].Score
		}
		return strings.ToLower(userRows[i].Name) < strings.ToLower(userRows[j].Name)
	})

	teamRows := make([]TeamStanding, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		// Combined member events; a deleted member simply has no entry in
		// eventsByUser and contributes nothing.
		combined := append(append([]entity.Event{}, eventsByUser[t.UserIDOne]...), eventsByUser[t.UserIDTwo]...)
		score := s.Calendar.TeamScore(t, goals, combined)
		teamRows = append(teamRows, TeamStanding{
			TeamID:    t.ID,
			TeamName:  t.TeamName,
			UserIDOne: t.UserIDOne,
			UserIDTwo: t.UserIDTwo,
			Score:     score,
		})
	}
	sort.SliceStable(teamRows, func(i, j int) bool {
		if teamRows[i].Score != teamRows[j].Score {
			return teamRows[i].Score > teamRows[j].Score
		}
		return strings.ToLower(teamRows[i].TeamName) < strings.ToLower(teamRows[j].TeamName)
	})

	return &Leaderboard{Users: userRows, Teams: teamRows, GeneratedAt: time.Now().UTC()}, nil
}
