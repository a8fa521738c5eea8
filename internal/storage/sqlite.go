package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nmorais/ritmo/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	tracking_type TEXT NOT NULL DEFAULT 'boolean'
		CHECK (tracking_type IN ('boolean', 'numerical')),
	start_date TEXT NOT NULL,
	end_date TEXT
);

CREATE TABLE IF NOT EXISTS habit_days (
	habit_id TEXT NOT NULL REFERENCES habits(id),
	day TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (habit_id, day)
);

CREATE INDEX IF NOT EXISTS idx_habit_days_day ON habit_days(day);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return models.NewStoreError("init", fmt.Errorf("failed to create data directory: %w", err))
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return models.NewStoreError("init", fmt.Errorf("failed to open database: %w", err))
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return models.NewStoreError("init", fmt.Errorf("failed to create schema: %w", err))
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ritmo init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return models.NewStoreError("load", fmt.Errorf("failed to open database: %w", err))
	}
	s.db = db

	// The schema is idempotent, so re-applying it on load keeps databases
	// created by older versions usable.
	if _, err := s.db.Exec(schema); err != nil {
		return models.NewStoreError("load", fmt.Errorf("failed to ensure schema: %w", err))
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the raw connection for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) WithTx(fn func(tx Tx) error) error {
	if s.db == nil {
		return models.NewStoreError("tx", fmt.Errorf("storage not loaded"))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.NewStoreError("tx", err)
	}
	defer tx.Rollback()

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return models.NewStoreError("tx", err)
	}
	return nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) InsertHabit(h models.Habit) error {
	var endDate sql.NullString
	if h.EndDate != "" {
		endDate = sql.NullString{String: h.EndDate, Valid: true}
	}

	_, err := t.tx.Exec(`
		INSERT INTO habits (id, name, description, tracking_type, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Description, h.TrackingType, h.StartDate, endDate,
	)
	if err != nil {
		return models.NewStoreError("insert habit", err)
	}
	return nil
}

func (t *sqliteTx) GetHabitByName(name string) (models.Habit, bool, error) {
	row := t.tx.QueryRow(`
		SELECT id, name, description, tracking_type, start_date, end_date
		FROM habits WHERE name = ?`, name)

	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, false, nil
	}
	if err != nil {
		return models.Habit{}, false, models.NewStoreError("get habit", err)
	}
	return h, true, nil
}

func (t *sqliteTx) UpdateHabit(h models.Habit) error {
	var endDate sql.NullString
	if h.EndDate != "" {
		endDate = sql.NullString{String: h.EndDate, Valid: true}
	}

	res, err := t.tx.Exec(`
		UPDATE habits
		SET name = ?, description = ?, tracking_type = ?, start_date = ?, end_date = ?
		WHERE id = ?`,
		h.Name, h.Description, h.TrackingType, h.StartDate, endDate, h.ID,
	)
	if err != nil {
		return models.NewStoreError("update habit", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrHabitNotFound
	}
	return nil
}

func (t *sqliteTx) DeleteHabit(id string) error {
	res, err := t.tx.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return models.NewStoreError("delete habit", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrHabitNotFound
	}
	return nil
}

func (t *sqliteTx) ListHabits() ([]models.Habit, error) {
	rows, err := t.tx.Query(`
		SELECT id, name, description, tracking_type, start_date, end_date
		FROM habits ORDER BY name`)
	if err != nil {
		return nil, models.NewStoreError("list habits", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, models.NewStoreError("list habits", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("list habits", err)
	}
	return habits, nil
}

func (t *sqliteTx) GetRecord(habitID, day string) (models.CompletionRecord, bool, error) {
	var r models.CompletionRecord
	err := t.tx.QueryRow(`
		SELECT habit_id, day, completed, completed_count
		FROM habit_days WHERE habit_id = ? AND day = ?`, habitID, day,
	).Scan(&r.HabitID, &r.Day, &r.Completed, &r.CompletedCount)
	if err == sql.ErrNoRows {
		return models.CompletionRecord{}, false, nil
	}
	if err != nil {
		return models.CompletionRecord{}, false, models.NewStoreError("get record", err)
	}
	return r, true, nil
}

func (t *sqliteTx) InsertRecord(r models.CompletionRecord) error {
	_, err := t.tx.Exec(`
		INSERT INTO habit_days (habit_id, day, completed, completed_count)
		VALUES (?, ?, ?, ?)`,
		r.HabitID, r.Day, r.Completed, r.CompletedCount,
	)
	if err != nil {
		return models.NewStoreError("insert record", err)
	}
	return nil
}

func (t *sqliteTx) UpdateRecord(r models.CompletionRecord) error {
	_, err := t.tx.Exec(`
		UPDATE habit_days SET completed = ?, completed_count = ?
		WHERE habit_id = ? AND day = ?`,
		r.Completed, r.CompletedCount, r.HabitID, r.Day,
	)
	if err != nil {
		return models.NewStoreError("update record", err)
	}
	return nil
}

func (t *sqliteTx) DeleteRecord(habitID, day string) error {
	_, err := t.tx.Exec("DELETE FROM habit_days WHERE habit_id = ? AND day = ?", habitID, day)
	if err != nil {
		return models.NewStoreError("delete record", err)
	}
	return nil
}

func (t *sqliteTx) DeleteRecordsForHabit(habitID string) error {
	_, err := t.tx.Exec("DELETE FROM habit_days WHERE habit_id = ?", habitID)
	if err != nil {
		return models.NewStoreError("delete records", err)
	}
	return nil
}

func (t *sqliteTx) RecordsForDay(day string) ([]models.CompletionRecord, error) {
	rows, err := t.tx.Query(`
		SELECT habit_id, day, completed, completed_count
		FROM habit_days WHERE day = ?`, day)
	if err != nil {
		return nil, models.NewStoreError("records for day", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var r models.CompletionRecord
		if err := rows.Scan(&r.HabitID, &r.Day, &r.Completed, &r.CompletedCount); err != nil {
			return nil, models.NewStoreError("records for day", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("records for day", err)
	}
	return records, nil
}

func (t *sqliteTx) AllRecords() ([]models.CompletionRecord, error) {
	rows, err := t.tx.Query(`
		SELECT habit_id, day, completed, completed_count
		FROM habit_days ORDER BY habit_id, day`)
	if err != nil {
		return nil, models.NewStoreError("all records", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var r models.CompletionRecord
		if err := rows.Scan(&r.HabitID, &r.Day, &r.Completed, &r.CompletedCount); err != nil {
			return nil, models.NewStoreError("all records", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("all records", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var endDate sql.NullString
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.TrackingType, &h.StartDate, &endDate); err != nil {
		return models.Habit{}, err
	}
	if endDate.Valid {
		h.EndDate = endDate.String
	}
	return h, nil
}
