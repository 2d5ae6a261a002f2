// Package store is the optional mission archive. Completed playthroughs
// (player, score, collected facts) are recorded in PostgreSQL when a DSN
// is configured; live game state itself is never persisted.
package store

import (
	"context"
	"database/sql"
	errs "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Adinayykka/Space-Weather/internal/engine"
	"github.com/Adinayykka/Space-Weather/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }

// Open connects to the archive database per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(5)
	sdb.SetMaxIdleConns(2)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping archive")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// MissionRecord is one finished playthrough.
type MissionRecord struct {
	ID            uuid.UUID
	PlayerName    string
	PlayerSurname string
	Gender        string
	Score         int
	QuizLength    int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// FactRecord is one directory entry archived with its mission.
type FactRecord struct {
	ID        uuid.UUID
	MissionID uuid.UUID
	Title     string
	Content   string
	LoggedAt  time.Time
}

type MissionRepo struct{ db *DB }

func NewMissionRepo(db *DB) *MissionRepo { return &MissionRepo{db: db} }

func (r *MissionRepo) Insert(ctx context.Context, tx *gorm.DB, rec MissionRecord) (uuid.UUID, error) {
	id := uuid.New()
	err := tx.WithContext(ctx).Exec(
		`INSERT INTO missions(id, player_name, player_surname, gender, score, quiz_length, started_at, finished_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		id, rec.PlayerName, rec.PlayerSurname, rec.Gender, rec.Score, rec.QuizLength, rec.StartedAt, rec.FinishedAt,
	).Error
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "insert mission")
	}
	return id, nil
}

// ListRecent returns the newest finished missions, most recent first.
func (r *MissionRepo) ListRecent(ctx context.Context, limit int) ([]MissionRecord, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, player_name, player_surname, gender, score, quiz_length, started_at, finished_at
		 FROM missions ORDER BY finished_at DESC LIMIT ?`, limit,
	).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "list missions")
	}
	defer rows.Close()
	var out []MissionRecord
	for rows.Next() {
		var m MissionRecord
		if err := rows.Scan(&m.ID, &m.PlayerName, &m.PlayerSurname, &m.Gender, &m.Score, &m.QuizLength, &m.StartedAt, &m.FinishedAt); err != nil {
			return nil, errors.Wrap(err, "scan mission")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type FactRepo struct{ db *DB }

func NewFactRepo(db *DB) *FactRepo { return &FactRepo{db: db} }

func (r *FactRepo) BulkInsert(ctx context.Context, tx *gorm.DB, missionID uuid.UUID, entries []engine.DirectoryEntry) error {
	for _, e := range entries {
		err := tx.WithContext(ctx).Exec(
			`INSERT INTO mission_facts(id, mission_id, title, content, logged_at) VALUES (?,?,?,?,?)`,
			uuid.New(), missionID, e.Title, e.Content, e.LoggedAt,
		).Error
		if err != nil {
			return errors.Wrap(err, "insert fact")
		}
	}
	return nil
}

// SaveMission archives a finished playthrough and its directory in one
// transaction.
func (d *DB) SaveMission(ctx context.Context, rec MissionRecord, facts []engine.DirectoryEntry) (uuid.UUID, error) {
	var id uuid.UUID
	missions := NewMissionRepo(d)
	factRepo := NewFactRepo(d)
	err := d.WithTx(ctx, func(tx *gorm.DB) error {
		var err error
		id, err = missions.Insert(ctx, tx, rec)
		if err != nil {
			return err
		}
		return factRepo.BulkInsert(ctx, tx, id, facts)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
