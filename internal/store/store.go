package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/saadjs/apexfuel/internal/model"
)

// Document keys. Each key holds one wholesale JSON document; every mutation
// rewrites the full document for its collection.
const (
	keyLogs           = "logs"
	keyFoods          = "foods"
	keyChecklists     = "checklists"
	keyLastActiveDate = "last_active_date"
)

// Store is the persistent document store backing the ledger, the food
// library, and the pit-stop checklists. It is constructed explicitly and
// injected into the service layer; nothing reads it before Initialize has
// marked it ready.
type Store struct {
	db    *sql.DB
	log   *zap.Logger
	ready bool
}

func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	s := &Store{db: db, log: logger}
	if err := s.applyMigrations(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// MarkReady flips the load-then-ready gate. Called exactly once, by
// service.Initialize, after the day rollover has been applied.
func (s *Store) MarkReady() {
	s.ready = true
}

func (s *Store) Ready() bool {
	return s.ready
}

// Logs returns the full date-keyed log map. A missing or unreadable document
// degrades to an empty map; logging data loss is preferable to refusing to
// start.
func (s *Store) Logs() (map[string]model.DailyLog, error) {
	raw, ok, err := s.getDocument(keyLogs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]model.DailyLog{}, nil
	}
	logs := map[string]model.DailyLog{}
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		s.log.Warn("logs document is corrupt, starting from an empty ledger", zap.Error(err))
		return map[string]model.DailyLog{}, nil
	}
	return logs, nil
}

func (s *Store) PutLogs(logs map[string]model.DailyLog) error {
	return s.putJSON(keyLogs, logs)
}

// Foods returns the food library, falling back to the built-in defaults when
// no document has been persisted yet or the persisted one cannot be decoded.
// The second return reports whether a readable document existed.
func (s *Store) Foods() ([]model.FoodItem, bool, error) {
	raw, ok, err := s.getDocument(keyFoods)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return DefaultFoods(), false, nil
	}
	var foods []model.FoodItem
	if err := json.Unmarshal([]byte(raw), &foods); err != nil {
		s.log.Warn("foods document is corrupt, falling back to default library", zap.Error(err))
		return DefaultFoods(), false, nil
	}
	if foods == nil {
		foods = []model.FoodItem{}
	}
	return foods, true, nil
}

func (s *Store) PutFoods(foods []model.FoodItem) error {
	return s.putJSON(keyFoods, foods)
}

// Checklists returns the persisted checklist categories. The second return
// reports whether a document existed at all, which Initialize uses to tell a
// first run apart from a normal load.
func (s *Store) Checklists() ([]model.ChecklistCategory, bool, error) {
	raw, ok, err := s.getDocument(keyChecklists)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return DefaultChecklists(), false, nil
	}
	var cats []model.ChecklistCategory
	if err := json.Unmarshal([]byte(raw), &cats); err != nil {
		s.log.Warn("checklists document is corrupt, falling back to defaults", zap.Error(err))
		return DefaultChecklists(), false, nil
	}
	if cats == nil {
		cats = []model.ChecklistCategory{}
	}
	return cats, true, nil
}

// PutChecklists writes the checklist document and stamps the last-active-date
// marker in the same transaction: the marker tracks the most recent
// successful checklist persistence.
func (s *Store) PutChecklists(cats []model.ChecklistCategory, today string) error {
	b, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("marshal checklists document: %w", err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin checklists tx: %w", err)
	}
	if err := upsertDocument(tx, keyChecklists, string(b)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := upsertDocument(tx, keyLastActiveDate, today); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit checklists tx: %w", err)
	}
	return nil
}

// LastActiveDate returns the date of the last checklist persistence. Absent
// means first run, which the rollover policy treats as stale.
func (s *Store) LastActiveDate() (string, bool, error) {
	return s.getDocument(keyLastActiveDate)
}

func (s *Store) putJSON(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", key, err)
	}
	if _, err := s.db.Exec(`
INSERT INTO documents(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(b)); err != nil {
		return fmt.Errorf("write %s document: %w", key, err)
	}
	return nil
}

func (s *Store) getDocument(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s document: %w", key, err)
	}
	return value, true, nil
}

func upsertDocument(tx *sql.Tx, key, value string) error {
	if _, err := tx.Exec(`
INSERT INTO documents(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value); err != nil {
		return fmt.Errorf("write %s document: %w", key, err)
	}
	return nil
}
