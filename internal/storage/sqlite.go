package storage

import (
	"database/sql"
	"embed"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/maaaruch/tally/internal/domain"
)

//go:embed schema.sql
var embeddedSchema embed.FS

// MemoryDSN opens a private in-memory database. Keep the pool at one
// connection: every new connection gets an empty database.
const MemoryDSN = ":memory:"

var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open returns a store over a fresh in-memory database with the schema applied.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite3", MemoryDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := New(db)
	if err := s.InitSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InitSchema() error {
	if _, err := s.db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return err
	}

	b, err := embeddedSchema.ReadFile("schema.sql")
	if err != nil {
		return err
	}

	schema := strings.TrimSpace(string(b))
	_, err = s.db.Exec(schema)
	return err
}

// ---------- Candidates ----------

// SeedCandidates inserts the ballot; position keeps configuration order.
func (s *Store) SeedCandidates(candidates []domain.Candidate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, c := range candidates {
		if _, err := tx.Exec(`INSERT INTO candidates(id, name, position) VALUES (?, ?, ?)`, c.ID, c.Name, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) CandidateName(candidateID int) (string, error) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM candidates WHERE id = ?`, candidateID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return name, nil
}

// ---------- Votes / Results ----------

func (s *Store) RecordVote(sessionID string, candidateID int, createdAt time.Time) error {
	_, err := s.db.Exec(`
INSERT INTO votes(session_id, candidate_id, created_at)
VALUES (?, ?, ?)
`, sessionID, candidateID, createdAt)
	return err
}

func (s *Store) VoteCount(sessionID string) (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(1) FROM votes WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) Results(sessionID string) ([]domain.CandidateResult, error) {
	rows, err := s.db.Query(`
SELECT c.id, c.name, COUNT(v.id) as votes
FROM candidates c
LEFT JOIN votes v ON v.candidate_id = c.id AND v.session_id = ?
GROUP BY c.id, c.name, c.position
ORDER BY c.position
`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.CandidateResult
	for rows.Next() {
		var r domain.CandidateResult
		if err := rows.Scan(&r.ID, &r.Name, &r.Votes); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
