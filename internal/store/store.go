package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mlejeune/soiree-tui/internal/engine"
	"github.com/mlejeune/soiree-tui/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error    { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB  { return d.gorm }

// Open connects to the local session database per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("missing database path")
	}
	gdb, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// embedded sqlite; a single connection avoids writer lock contention
	sdb.SetMaxOpenConns(1)
	sdb.SetConnMaxLifetime(30 * time.Minute)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// SessionRepo persists one Snapshot per game. Two processes pointed at the
// same file follow last-writer-wins; nothing stronger is needed.
type SessionRepo struct{ db *DB }

func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Save(ctx context.Context, game string, sn engine.Snapshot) error {
	payload, err := json.Marshal(sn)
	if err != nil {
		return wrap(err, "encode session")
	}
	err = r.db.gorm.WithContext(ctx).Exec(`INSERT INTO sessions(id, game, version, payload, updated_at) VALUES (?,?,?,?,?)
		ON CONFLICT(game) DO UPDATE SET version=excluded.version, payload=excluded.payload, updated_at=excluded.updated_at`,
		uuid.New(), game, sn.Version, string(payload), time.Now().UTC()).Error
	return wrap(err, "save session")
}

// Load returns the stored snapshot for game. Missing rows, stale versions
// and malformed payloads all come back as (zero, false, nil): the game
// starts fresh instead of failing on old state.
func (r *SessionRepo) Load(ctx context.Context, game string) (engine.Snapshot, bool, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`SELECT version, payload FROM sessions WHERE game = ?`, game).Row()
	var (
		version int
		payload string
	)
	if err := row.Scan(&version, &payload); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return engine.Snapshot{}, false, nil
		}
		return engine.Snapshot{}, false, wrap(err, "load session")
	}
	if version != engine.SnapshotVersion {
		return engine.Snapshot{}, false, nil
	}
	var sn engine.Snapshot
	if err := json.Unmarshal([]byte(payload), &sn); err != nil || sn.Version != engine.SnapshotVersion {
		return engine.Snapshot{}, false, nil
	}
	return sn, true, nil
}

// Clear drops the stored snapshot for game (hard reset).
func (r *SessionRepo) Clear(ctx context.Context, game string) error {
	return wrap(r.db.gorm.WithContext(ctx).Exec(`DELETE FROM sessions WHERE game = ?`, game).Error, "clear session")
}

// PrefsRepo stores small key-value preferences, e.g. the riddle browser's
// preferred locale.
type PrefsRepo struct{ db *DB }

func NewPrefsRepo(db *DB) *PrefsRepo { return &PrefsRepo{db: db} }

func (r *PrefsRepo) Set(ctx context.Context, key, value string) error {
	err := r.db.gorm.WithContext(ctx).Exec(`INSERT INTO prefs(key, value) VALUES (?,?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value).Error
	return wrap(err, "save pref")
}

func (r *PrefsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`SELECT value FROM prefs WHERE key = ?`, key).Row()
	var value string
	if err := row.Scan(&value); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, wrap(err, "load pref")
	}
	return value, true, nil
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
