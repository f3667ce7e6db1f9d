// Package gamestore persists finished game records to a local sqlite
// database so the shell can show recent results across sessions.
package gamestore

import (
	"database/sql"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	played_at TIMESTAMP NOT NULL,
	winner TEXT NOT NULL,
	black_score INTEGER NOT NULL,
	white_score INTEGER NOT NULL,
	moves TEXT NOT NULL,
	checksum INTEGER NOT NULL
);`

// GameRecord is one finished game: the result and the full move list in
// display notation.
type GameRecord struct {
	PlayedAt   time.Time
	Winner     string
	BlackScore int
	WhiteScore int
	Moves      string
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Msgf("opened game store at %v", path)
	return &Store{db: db}, nil
}

// SaveGame inserts a record. The checksum column is an xxhash of the
// move list, handy for spotting duplicate games when analyzing the table.
func (s *Store) SaveGame(rec GameRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO games (played_at, winner, black_score, white_score, moves, checksum)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.PlayedAt, rec.Winner, rec.BlackScore, rec.WhiteScore, rec.Moves,
		int64(xxhash.Sum64String(rec.Moves)))
	return err
}

// RecentGames returns up to limit records, most recent first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT played_at, winner, black_score, white_score, moves
		 FROM games ORDER BY played_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var recs []GameRecord
	for rows.Next() {
		var rec GameRecord
		if err := rows.Scan(&rec.PlayedAt, &rec.Winner, &rec.BlackScore,
			&rec.WhiteScore, &rec.Moves); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
