// Package storage persists habits and their completion records.
//
// Concurrency note:
//   - A Store is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple ritmo processes against the same database file at the
//     same time is not supported; writes are last-writer-wins at the
//     transaction level.
package storage

import "github.com/nmorais/ritmo/internal/models"

// Store is the persistence boundary of the core. Every public operation of
// the registry and the ledger executes inside a single WithTx call so a
// failure partway through leaves no partial state.
type Store interface {
	// Init creates the database file (and its directory) if absent and
	// ensures the schema exists.
	Init() error
	// Load opens an already-initialized database.
	Load() error
	Close() error

	// WithTx runs fn inside one transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(fn func(tx Tx) error) error

	// Path returns the database file path.
	Path() string
}

// Tx exposes the row-level primitives available inside a transaction.
type Tx interface {
	InsertHabit(h models.Habit) error
	GetHabitByName(name string) (models.Habit, bool, error)
	UpdateHabit(h models.Habit) error
	DeleteHabit(id string) error
	ListHabits() ([]models.Habit, error)

	GetRecord(habitID, day string) (models.CompletionRecord, bool, error)
	InsertRecord(r models.CompletionRecord) error
	UpdateRecord(r models.CompletionRecord) error
	DeleteRecord(habitID, day string) error
	DeleteRecordsForHabit(habitID string) error
	RecordsForDay(day string) ([]models.CompletionRecord, error)
	AllRecords() ([]models.CompletionRecord, error)
}
