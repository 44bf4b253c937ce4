package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"zazachat/internal/app/chat"
	"zazachat/internal/pkg/logx"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// roomStateKey is the fixed key the whole room map lives under. There is no
// schema version field; any shape change is a breaking change.
const roomStateKey = 1

// PostgresStore persists the room map as a single JSONB value in a one-row
// table. It keeps the same wholesale Load/SaveAll contract as FileStore.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database, runs the embedded migrations,
// and returns the store. Connection failure is an error; a missing or corrupt
// state row is not.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database DSN: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer sqlDB.Close()

	if err := runMigrations(sqlDB); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// runMigrations applies all pending migrations from the embedded file system.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Load reads the full room map from the state row. No row or undecodable
// data is recovered as an empty map.
func (p *PostgresStore) Load() (map[string]*chat.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var data []byte
	err := p.pool.QueryRow(ctx, "SELECT data FROM room_state WHERE id = $1", roomStateKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return make(map[string]*chat.Room), nil
		}
		return nil, fmt.Errorf("failed to read room state: %w", err)
	}

	rooms := make(map[string]*chat.Room)
	if err := json.Unmarshal(data, &rooms); err != nil {
		logx.Warn("Room state row corrupt. Recovering with empty map.", "error", err)
		return make(map[string]*chat.Room), nil
	}

	return rooms, nil
}

// SaveAll rewrites the entire room map into the state row.
func (p *PostgresStore) SaveAll(rooms map[string]*chat.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to encode room map: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = p.pool.Exec(ctx,
		`INSERT INTO room_state (id, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		roomStateKey, data)
	if err != nil {
		return fmt.Errorf("failed to write room state: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}
