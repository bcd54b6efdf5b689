package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fitleague/fitleague/internal/domain/entity"
	repo "github.com/fitleague/fitleague/internal/domain/repository"
	"github.com/fitleague/fitleague/internal/domain/scoring"
)

// In-memory repositories backing service tests. They mirror the store's
// constraint behavior (duplicate day, duplicate goal type) so services can be
// exercised without Postgres.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) List() ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeGoalRepo struct {
	mu    sync.Mutex
	goals map[string]entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[string]entity.Goal{}}
}

func (r *fakeGoalRepo) Create(g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.goals {
		if ex.UserID == g.UserID && ex.GoalType == g.GoalType {
			return repo.ErrDuplicateGoalType
		}
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	r.goals[g.ID] = *g
	return nil
}

func (r *fakeGoalRepo) GetByID(id string) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &g, nil
}

func (r *fakeGoalRepo) ListByUser(userID string) ([]entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) List() ([]entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[g.ID]; !ok {
		return repo.ErrNotFound
	}
	for _, ex := range r.goals {
		if ex.ID != g.ID && ex.UserID == g.UserID && ex.GoalType == g.GoalType {
			return repo.ErrDuplicateGoalType
		}
	}
	r.goals[g.ID] = *g
	return nil
}

func (r *fakeGoalRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}

type fakeEventRepo struct {
	mu       sync.Mutex
	events   map[string]entity.Event
	calendar *scoring.Calendar
}

func newFakeEventRepo(cal *scoring.Calendar) *fakeEventRepo {
	return &fakeEventRepo{events: map[string]entity.Event{}, calendar: cal}
}

func (r *fakeEventRepo) Create(e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := r.calendar.DayKey(e.DateTime)
	for _, ex := range r.events {
		if ex.UserID == e.UserID && ex.GoalID == e.GoalID && r.calendar.DayKey(ex.DateTime) == day {
			return repo.ErrDuplicateDay
		}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.events[e.ID] = *e
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) ListByUser(userID string) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Event
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListByGoal(goalID string) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Event
	for _, e := range r.events {
		if e.GoalID == goalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListByUserAndGoal(userID, goalID string) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Event
	for _, e := range r.events {
		if e.UserID == userID && e.GoalID == goalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) List() ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams map[string]entity.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]entity.Team{}}
}

func (r *fakeTeamRepo) Create(t *entity.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.teams[t.ID] = *t
	return nil
}

func (r *fakeTeamRepo) GetByID(id string) (*entity.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTeamRepo) ListByUser(userID string) ([]entity.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Team
	for _, t := range r.teams {
		if t.HasMember(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) List() ([]entity.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(t *entity.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[t.ID]; !ok {
		return repo.ErrNotFound
	}
	r.teams[t.ID] = *t
	return nil
}

func (r *fakeTeamRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

// fakePublisher records score messages in order.
type fakePublisher struct {
	mu       sync.Mutex
	messages []ScoreMessage
	err      error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if msg, ok := body.(ScoreMessage); ok {
		p.messages = append(p.messages, msg)
	}
	return nil
}

func (p *fakePublisher) all() []ScoreMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ScoreMessage, len(p.messages))
	copy(out, p.messages)
	return out
}
