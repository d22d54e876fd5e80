package history

import (
	"fmt"
	"time"
)

// Conversion is one recorded conversion.
type Conversion struct {
	ID         int64     `json:"id"`
	FromSystem string    `json:"from_system"`
	FromDate   string    `json:"from_date"`
	ToSystem   string    `json:"to_system"`
	ToDate     string    `json:"to_date"`
	JDN        int64     `json:"jdn"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recorder defines the history operations the service layer depends on.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type Recorder interface {
	Record(c Conversion) error
	Recent(limit int) ([]Conversion, error)
	Count() (int, error)
	Close() error
}

// Verify *DB satisfies Recorder at compile time.
var _ Recorder = (*DB)(nil)

// Record appends one conversion.
func (db *DB) Record(c Conversion) error {
	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := db.conn.Exec(`
		INSERT INTO conversions (from_system, from_date, to_system, to_date, jdn, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.FromSystem, c.FromDate, c.ToSystem, c.ToDate, c.JDN, created)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns the newest conversions, most recent first.
func (db *DB) Recent(limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, from_system, from_date, to_system, to_date, jdn, created_at
		FROM conversions
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.FromSystem, &c.FromDate, &c.ToSystem, &c.ToDate, &c.JDN, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded conversions.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}
