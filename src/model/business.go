package model

import (
	"database/sql"
	"errors"
	"time"
)

var ErrBusinessNotFound = errors.New("business not found")

// Business associates a user with an industry identifier. The industry
// selects the benchmark constants used by the scoring engine.
type Business struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBusiness inserts a new business. The caller assigns the ID.
func (b *Business) CreateBusiness(db *sql.DB) error {
	stmt, err := db.Prepare(`INSERT INTO businesses (id, user_id, name, industry) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(b.ID, b.UserID, b.Name, b.Industry)
	return err
}

// GetBusinessByID retrieves a business by its ID.
func GetBusinessByID(db *sql.DB, id string) (*Business, error) {
	row := db.QueryRow(`SELECT id, user_id, name, industry FROM businesses WHERE id = ?`, id)
	var b Business
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Industry)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetBusinessesByUser lists all businesses owned by a user.
func GetBusinessesByUser(db *sql.DB, userID int64) ([]Business, error) {
	rows, err := db.Query(`SELECT id, user_id, name, industry FROM businesses WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []Business
	for rows.Next() {
		var b Business
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Industry); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

// UpdateIndustry changes the industry a business is benchmarked against.
func (b *Business) UpdateIndustry(db *sql.DB, industry string) error {
	_, err := db.Exec(`UPDATE businesses SET industry = ? WHERE id = ?`, industry, b.ID)
	if err == nil {
		b.Industry = industry
	}
	return err
}
