package store

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Migrator handles archive schema migrations using golang-migrate.
type Migrator struct {
	dsn string
}

func NewMigrator(dsn string) (*Migrator, error) {
	if dsn == "" {
		return nil, errors.New("missing DSN")
	}
	return &Migrator{dsn: dsn}, nil
}

func (m *Migrator) sourceURL() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.Join(wd, "db", "migrations")}
	return u.String(), nil
}

func (m *Migrator) Up(ctx context.Context) error {
	mig, closer, err := m.instance()
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
	mig, closer, err := m.instance()
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

func (m *Migrator) instance() (*migrate.Migrate, func(), error) {
	src, err := m.sourceURL()
	if err != nil {
		return nil, nil, err
	}
	mig, err := migrate.New(src, m.dsn)
	if err != nil {
		return nil, nil, errors.Wrap(err, "init migrations")
	}
	return mig, func() { _, _ = mig.Close() }, nil
}
