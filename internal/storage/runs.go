package storage

import (
	"fmt"
	"time"
)

// Run is one finished level.
type Run struct {
	ID          int64
	Level       int
	Score       int
	Bonus       int
	Elapsed     float64 // seconds, penalties included
	TimeLimit   float64
	GatesPassed int
	GatesMissed int
	Crashes     int
	CreatedAt   time.Time
}

// SaveRun records a finished level and the score it ended with.
// The run and the score are written in one transaction.
func (s *Store) SaveRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs
		 (level, score, bonus, elapsed_secs, time_limit_secs, gates_passed, gates_missed, crashes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Level,
		run.Score,
		run.Bonus,
		run.Elapsed,
		run.TimeLimit,
		run.GatesPassed,
		run.GatesMissed,
		run.Crashes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", GameID, run.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// BestRuns returns the highest scoring runs of a level, fastest first on
// equal score. Level 0 means every level.
func (s *Store) BestRuns(level, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, score, bonus, elapsed_secs, time_limit_secs,
		        gates_passed, gates_missed, crashes, created_at
		 FROM runs
		 WHERE ? = 0 OR level = ?
		 ORDER BY score DESC, elapsed_secs ASC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Level,
			&r.Score,
			&r.Bonus,
			&r.Elapsed,
			&r.TimeLimit,
			&r.GatesPassed,
			&r.GatesMissed,
			&r.Crashes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
