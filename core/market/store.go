// Package market stores app market data in SQLite and mines it for
// opportunities, trends, and competition reports.
package market

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// App is one observed market entry.
type App struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	PriceModel  string    `json:"price_model"`
	Price       float64   `json:"price"`
	Downloads   int       `json:"downloads"`
	LastUpdated time.Time `json:"last_updated"`
	Keywords    []string  `json:"keywords"`
}

const schema = `
CREATE TABLE IF NOT EXISTS market_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS market_apps (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL,
	category     TEXT NOT NULL,
	rating       REAL NOT NULL,
	reviews      INTEGER NOT NULL,
	price_model  TEXT NOT NULL,
	price        REAL NOT NULL,
	downloads    INTEGER NOT NULL,
	last_updated TEXT NOT NULL,
	keywords     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_market_apps_category ON market_apps(category);
`

// Store is the SQLite-backed market database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the market database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open market db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init market schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// LastUpdated reports when the market snapshot was last replaced.
func (s *Store) LastUpdated() (time.Time, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM market_meta WHERE key = 'last_updated'`).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read last_updated: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse last_updated: %w", err)
	}
	return ts, true, nil
}

// Replace swaps the full app snapshot in one transaction.
func (s *Store) Replace(apps []App, updatedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM market_apps`); err != nil {
		return fmt.Errorf("clear apps: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO market_apps
			(id, name, description, category, rating, reviews, price_model, price, downloads, last_updated, keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, app := range apps {
		keywords, err := json.Marshal(app.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords for %s: %w", app.ID, err)
		}
		if _, err := stmt.Exec(
			app.ID, app.Name, app.Description, app.Category,
			app.Rating, app.Reviews, app.PriceModel, app.Price,
			app.Downloads, app.LastUpdated.Format(time.RFC3339), string(keywords),
		); err != nil {
			return fmt.Errorf("insert app %s: %w", app.ID, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO market_meta (key, value) VALUES ('last_updated', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		updatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("set last_updated: %w", err)
	}

	return tx.Commit()
}

// Apps returns the full snapshot ordered by id.
func (s *Store) Apps() ([]App, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, category, rating, reviews, price_model, price, downloads, last_updated, keywords
		FROM market_apps ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query apps: %w", err)
	}
	defer rows.Close()

	var apps []App
	for rows.Next() {
		var app App
		var updated, keywords string
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Description, &app.Category,
			&app.Rating, &app.Reviews, &app.PriceModel, &app.Price,
			&app.Downloads, &updated, &keywords,
		); err != nil {
			return nil, fmt.Errorf("scan app: %w", err)
		}
		if app.LastUpdated, err = time.Parse(time.RFC3339, updated); err != nil {
			return nil, fmt.Errorf("parse app timestamp: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &app.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
