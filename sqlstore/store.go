// Package sqlstore keeps a MySQL ledger of issued GUIDs.
//
// Each row records one GUID under a caller chosen tag. The GUID column is
// the primary key, so recording the same identifier twice is reported as
// ErrDuplicate instead of silently succeeding.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/guid"
)

// errDupEntry is the MySQL server error number for a duplicate key
const errDupEntry = 1062

var (
	// ErrDuplicate indicates the GUID is already present in the ledger
	ErrDuplicate = errors.New("sqlstore: GUID already recorded")

	// ErrNilID indicates an attempt to record the invalid all-zero GUID
	ErrNilID = errors.New("sqlstore: refusing to record nil GUID")
)

const schema = `
	CREATE TABLE IF NOT EXISTS guid_ledger (
		id CHAR(36) NOT NULL PRIMARY KEY,
		tag VARCHAR(128) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		INDEX idx_guid_ledger_tag (tag)
	)
`

// Config describes how to reach the ledger database.
type Config struct {
	Addr     string `json:"addr" yaml:"addr"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// DefaultConfig returns a Config for a local server with conservative pool
// settings.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:3306",
		Database:        "guid",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	}
}

// Validate reports the first missing setting.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("sqlstore: addr is required")
	case c.Database == "":
		return errors.New("sqlstore: database is required")
	case c.MaxOpenConns < 0 || c.MaxIdleConns < 0:
		return errors.New("sqlstore: pool sizes must be >= 0")
	}
	return nil
}

// DSN builds the go-sql-driver/mysql data source name for c.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = c.Addr
	mc.User = c.User
	mc.Passwd = c.Password
	mc.DBName = c.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Store is a GUID ledger backed by a *sql.DB.
type Store struct {
	db *sql.DB
}

// Open connects to the database described by cfg. The connection is
// established lazily by database/sql; use Ping to check it.
func Open(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return New(db), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the ledger table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlstore: create schema: %w", err)
	}
	return nil
}

// Record inserts id under tag.
func (s *Store) Record(ctx context.Context, tag string, id guid.GUID) error {
	if !id.Valid() {
		return ErrNilID
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO guid_ledger (id, tag, created_at) VALUES (?, ?, ?)",
		id, tag, time.Now().UTC())
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, id)
		}
		return fmt.Errorf("sqlstore: record %s: %w", id, err)
	}
	return nil
}

// RecordBatch inserts every id under tag in a single transaction. Either all
// of them are recorded or none are.
func (s *Store) RecordBatch(ctx context.Context, tag string, ids []guid.GUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO guid_ledger (id, tag, created_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlstore: prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, id := range ids {
		if !id.Valid() {
			return ErrNilID
		}
		if _, err := stmt.ExecContext(ctx, id, tag, now); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: %s", ErrDuplicate, id)
			}
			return fmt.Errorf("sqlstore: record %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit: %w", err)
	}
	return nil
}

// Exists reports whether id has been recorded.
func (s *Store) Exists(ctx context.Context, id guid.GUID) (bool, error) {
	var found guid.GUID
	err := s.db.QueryRowContext(ctx, "SELECT id FROM guid_ledger WHERE id = ?", id).Scan(&found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("sqlstore: lookup %s: %w", id, err)
	}
	return found == id, nil
}

// Tag returns the tag id was recorded under.
func (s *Store) Tag(ctx context.Context, id guid.GUID) (string, error) {
	var tag string
	err := s.db.QueryRowContext(ctx, "SELECT tag FROM guid_ledger WHERE id = ?", id).Scan(&tag)
	if err != nil {
		return "", fmt.Errorf("sqlstore: lookup %s: %w", id, err)
	}
	return tag, nil
}

// Count returns how many GUIDs are recorded under tag.
func (s *Store) Count(ctx context.Context, tag string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM guid_ledger WHERE tag = ?", tag).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: count %q: %w", tag, err)
	}
	return n, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == errDupEntry
}
