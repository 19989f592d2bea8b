package postgres

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
)

// Connector owns a single lazily-opened database handle. Connect is
// idempotent: repeat calls return the handle opened on first use. Close
// resets the connector to its disconnected state, so a closed connector
// reconnects on the next Connect.
type Connector struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

// FromDB wraps an already-open handle. Used by tests to inject sqlmock.
func FromDB(db *sql.DB) *Connector {
	return &Connector{db: db}
}

func (c *Connector) Connect() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := sql.Open("postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	c.db = db
	return c.db, nil
}

func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}
