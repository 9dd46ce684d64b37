package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator handles DB schema migrations using golang-migrate.
type Migrator struct {
	dbPath string
}

func NewMigrator(dbPath string) (*Migrator, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("missing database path")
	}
	return &Migrator{dbPath: dbPath}, nil
}

func (m *Migrator) sourceURL() (string, error) {
	// Point to local db/migrations directory
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	p := filepath.Join(wd, "db", "migrations")
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

func (m *Migrator) Up(ctx context.Context) error {
	src, err := m.sourceURL()
	if err != nil {
		return err
	}
	mig, closer, err := m.migrateInstance(src)
	if err != nil {
		return err
	}
	defer closer()
	if err := mig.Up(); err != nil {
		if err == migrate.ErrNoChange {
			return ErrNoChange
		}
		return err
	}
	return nil
}

func (m *Migrator) Down(ctx context.Context) error {
	src, err := m.sourceURL()
	if err != nil {
		return err
	}
	mig, closer, err := m.migrateInstance(src)
	if err != nil {
		return err
	}
	defer closer()
	if err := mig.Steps(-1); err != nil {
		if err == migrate.ErrNoChange {
			return ErrNoChange
		}
		return err
	}
	return nil
}

func (m *Migrator) migrateInstance(src string) (*migrate.Migrate, func(), error) {
	mig, err := migrate.New(src, "sqlite3://"+m.dbPath)
	if err != nil {
		return nil, func() {}, err
	}
	return mig, func() { mig.Close() }, nil
}
