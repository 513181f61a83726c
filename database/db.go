package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// ─── Models ──────────────────────────────────────────────────────────────────

// TravelRequest is a persisted budget request: one record per stayed-at
// destination. Multi-city trips save two sibling records sharing a GroupID.
type TravelRequest struct {
	ID               string    `json:"id"`
	GroupID          string    `json:"group_id"`
	UserID           string    `json:"user_id"`
	SubmittedBy      string    `json:"submitted_by"`
	Division         string    `json:"division"`
	Purpose          string    `json:"purpose"`
	TargetAudience   string    `json:"target_audience"`
	DepartureCountry string    `json:"departure_country"`
	DepartureCity    string    `json:"departure_city"`
	Country          string    `json:"country"`
	City             string    `json:"city"`
	FareClass        string    `json:"fare_class"`
	TargetDate       string    `json:"target_date"`
	TravelDays       int       `json:"travel_days"`
	NumberOfPeople   int       `json:"number_of_people"`
	Airfare          float64   `json:"airfare"`
	AirfareSource    string    `json:"airfare_source"`
	AirfareSourceURL string    `json:"airfare_source_url"`
	HotelPerDay      float64   `json:"hotel_per_day"`
	DmaPerDay        float64   `json:"dma_per_day"`
	TotalCost        float64   `json:"total_cost"`
	Contingency      float64   `json:"contingency"`
	OverallBudget    float64   `json:"overall_budget"`
	CreatedAt        time.Time `json:"created_at"`
}

// ─── Init ─────────────────────────────────────────────────────────────────────

func InitDB() {
	dsn := buildDSN()

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Retry connection up to 10 times (the managed DB may take a moment)
	for i := 0; i < 10; i++ {
		if err = DB.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("❌ Failed to connect to database after retries: %v", err)
	}

	migrate()
	log.Println("✅ Database connected and migrated")
}

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "travelbudget")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func migrate() {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS travel_requests (
			id                 TEXT PRIMARY KEY,
			group_id           TEXT NOT NULL,
			user_id            TEXT NOT NULL,
			submitted_by       TEXT NOT NULL,
			division           TEXT NOT NULL,
			purpose            TEXT,
			target_audience    TEXT,
			departure_country  TEXT NOT NULL,
			departure_city     TEXT NOT NULL,
			country            TEXT NOT NULL,
			city               TEXT NOT NULL,
			fare_class         TEXT NOT NULL,
			target_date        TEXT NOT NULL,
			travel_days        INTEGER NOT NULL,
			number_of_people   INTEGER NOT NULL DEFAULT 1,
			airfare            NUMERIC(12,2) NOT NULL,
			airfare_source     TEXT,
			airfare_source_url TEXT,
			hotel_per_day      NUMERIC(12,2) NOT NULL,
			dma_per_day        NUMERIC(12,2) NOT NULL,
			total_cost         NUMERIC(12,2) NOT NULL,
			contingency        NUMERIC(12,2) NOT NULL,
			overall_budget     NUMERIC(12,2) NOT NULL,
			created_at         TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_travel_requests_user
			ON travel_requests(user_id, created_at DESC)`,

		`CREATE INDEX IF NOT EXISTS idx_travel_requests_group
			ON travel_requests(group_id)`,
	}

	for _, m := range migrations {
		if _, err := DB.Exec(m); err != nil {
			log.Fatalf("❌ Migration failed: %v\nSQL: %s", err, m)
		}
	}
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

const requestColumns = `id, group_id, user_id, submitted_by, division, purpose,
	target_audience, departure_country, departure_city, country, city,
	fare_class, target_date, travel_days, number_of_people, airfare,
	airfare_source, airfare_source_url, hotel_per_day, dma_per_day,
	total_cost, contingency, overall_budget, created_at`

func SaveRequest(r *TravelRequest) error {
	_, err := DB.Exec(`
		INSERT INTO travel_requests (
			id, group_id, user_id, submitted_by, division, purpose,
			target_audience, departure_country, departure_city, country, city,
			fare_class, target_date, travel_days, number_of_people, airfare,
			airfare_source, airfare_source_url, hotel_per_day, dma_per_day,
			total_cost, contingency, overall_budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		r.ID, r.GroupID, r.UserID, r.SubmittedBy, r.Division, r.Purpose,
		r.TargetAudience, r.DepartureCountry, r.DepartureCity, r.Country, r.City,
		r.FareClass, r.TargetDate, r.TravelDays, r.NumberOfPeople, r.Airfare,
		r.AirfareSource, r.AirfareSourceURL, r.HotelPerDay, r.DmaPerDay,
		r.TotalCost, r.Contingency, r.OverallBudget)
	return err
}

func scanRequest(row interface{ Scan(...any) error }) (*TravelRequest, error) {
	r := &TravelRequest{}
	err := row.Scan(&r.ID, &r.GroupID, &r.UserID, &r.SubmittedBy, &r.Division,
		&r.Purpose, &r.TargetAudience, &r.DepartureCountry, &r.DepartureCity,
		&r.Country, &r.City, &r.FareClass, &r.TargetDate, &r.TravelDays,
		&r.NumberOfPeople, &r.Airfare, &r.AirfareSource, &r.AirfareSourceURL,
		&r.HotelPerDay, &r.DmaPerDay, &r.TotalCost, &r.Contingency,
		&r.OverallBudget, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func GetRequest(id, userID string) (*TravelRequest, error) {
	row := DB.QueryRow(`
		SELECT `+requestColumns+`
		FROM travel_requests WHERE id = $1 AND user_id = $2`, id, userID)
	return scanRequest(row)
}

// ListRequests returns a user's saved requests, newest first. An empty
// division lists all divisions.
func ListRequests(userID, division string) ([]*TravelRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM travel_requests WHERE user_id = $1`
	args := []any{userID}
	if division != "" {
		query += ` AND division = $2`
		args = append(args, division)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*TravelRequest{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// UpdateRequest replaces a record's trip fields and budget figures.
// Last write wins; there is no version check.
func UpdateRequest(r *TravelRequest) error {
	res, err := DB.Exec(`
		UPDATE travel_requests SET
			submitted_by = $1, division = $2, purpose = $3, target_audience = $4,
			departure_country = $5, departure_city = $6, country = $7, city = $8,
			fare_class = $9, target_date = $10, travel_days = $11,
			number_of_people = $12, airfare = $13, airfare_source = $14,
			airfare_source_url = $15, hotel_per_day = $16, dma_per_day = $17,
			total_cost = $18, contingency = $19, overall_budget = $20
		WHERE id = $21 AND user_id = $22`,
		r.SubmittedBy, r.Division, r.Purpose, r.TargetAudience,
		r.DepartureCountry, r.DepartureCity, r.Country, r.City,
		r.FareClass, r.TargetDate, r.TravelDays,
		r.NumberOfPeople, r.Airfare, r.AirfareSource,
		r.AirfareSourceURL, r.HotelPerDay, r.DmaPerDay,
		r.TotalCost, r.Contingency, r.OverallBudget,
		r.ID, r.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteRequest(id, userID string) error {
	res, err := DB.Exec(`
		DELETE FROM travel_requests WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
