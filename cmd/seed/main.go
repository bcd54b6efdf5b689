package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fitleague/fitleague/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	aliceID := seedUser(db, "Alice", "Nguyen", "alice@fitleague.dev", "trailblazer")
	bobID := seedUser(db, "Bob", "Marsh", "bob@fitleague.dev", "ironbob")
	fmt.Printf("seeded users: alice=%s bob=%s\n", aliceID, bobID)

	aliceRun := seedGoal(db, aliceID, "Morning 5k", "Run five kilometers before work", "endurance")
	aliceLift := seedGoal(db, aliceID, "Squat bodyweight", "Work up to a bodyweight squat", "strength")
	bobDiet := seedGoal(db, bobID, "No late snacks", "Kitchen closes at 8pm", "diet")
	bobRun := seedGoal(db, bobID, "Couch to 5k", "Three runs a week", "endurance")
	fmt.Printf("seeded goals: %s %s %s %s\n", aliceRun, aliceLift, bobDiet, bobRun)

	teamID := seedTeam(db, aliceID, bobID, "Sweat Equity")
	fmt.Printf("seeded team: %s\n", teamID)

	// One event each for yesterday so the leaderboard has something to rank
	// without blocking today's logging.
	yesterday := time.Now().Add(-24 * time.Hour)
	seedEvent(db, aliceID, aliceRun, yesterday, "easy pace")
	seedEvent(db, bobID, bobRun, yesterday, "first outing")
	fmt.Println("seeded events for yesterday")
}

func seedUser(db *sql.DB, first, last, email, tag string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, gamer_tag)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(email)) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name
		RETURNING id
	`, first, last, email, tag).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}

func seedGoal(db *sql.DB, userID, name, description, goalType string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO goals (user_id, goal_name, goal_description, goal_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, goal_type) DO UPDATE SET goal_name = EXCLUDED.goal_name
		RETURNING id
	`, userID, name, description, goalType).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed goal %s: %v", name, err)
	}
	return id
}

func seedTeam(db *sql.DB, userOne, userTwo, name string) string {
	var id string
	err := db.QueryRow(`SELECT id FROM teams WHERE user_id_one = $1 AND user_id_two = $2`, userOne, userTwo).Scan(&id)
	if err == nil {
		return id
	}
	err = db.QueryRow(`
		INSERT INTO teams (user_id_one, user_id_two, team_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userOne, userTwo, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed team %s: %v", name, err)
	}
	return id
}

func seedEvent(db *sql.DB, userID, goalID string, at time.Time, note string) {
	_, err := db.Exec(`
		INSERT INTO events (user_id, goal_id, date_time, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, goal_id, reference_day(date_time)) DO NOTHING
	`, userID, goalID, at, note)
	if err != nil {
		log.Fatalf("failed to seed event: %v", err)
	}
}
