package sqlite

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"summitbooking/config"
	"summitbooking/migrations"
	"summitbooking/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Connection wraps the local SQLite database. Read and Write share one pool;
// the split mirrors the repository contract. The mutex serializes the
// multi-statement booking sequence so two writers can never interleave on
// the trips and bookings tables.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB

	mu sync.Mutex
}

func New(config *config.Config) *Connection {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		config.DB.SQLite.Path,
		config.DB.SQLite.BusyTimeoutMS,
	)

	conn, err := Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.DB.SQLite.Path).Msg("Failed to open database")
	}

	log.Info().Str("path", config.DB.SQLite.Path).Msg("Connected to database")

	return conn
}

// Open opens a SQLite database at the given DSN. The pool is capped at one
// connection: SQLite allows a single writer and an in-memory database exists
// per connection.
func Open(dsn string) (*Connection, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	return &Connection{Read: db, Write: db}, nil
}

// NewMemory opens a fresh in-memory database with the full schema applied.
// Used by tests and available to callers that want a scratch store.
func NewMemory() (*Connection, error) {
	conn, err := Open(":memory:")
	if err != nil {
		return nil, err
	}

	script, err := migrations.FS.ReadFile("sqlite/000001_init.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	for _, stmt := range strings.Split(string(script), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := conn.Write.Exec(stmt); err != nil {
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return conn, nil
}

// WithTx runs fn inside a single transaction on the write handle, holding
// the writer lock for the duration. A non-nil error from fn rolls the whole
// transaction back.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return c.Read.Close()
}

// IsUniqueViolation reports whether err is a unique-constraint failure from
// the driver, such as a duplicate email or booking reference.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), constant.SQLiteUniqueViolation)
}
