package db

import (
	"context"
	"database/sql"
	"time"
)

type DB struct {
	*sql.DB
}

// IsAlive reports whether the database connection is currently usable.
// Backs the /status endpoint only.
func (d *DB) IsAlive(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.PingContext(ctx) == nil
}

// CountUsers returns the number of registered users.
func (d *DB) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// CountFiles returns the number of file records.
func (d *DB) CountFiles(ctx context.Context) (int64, error) {
	var n int64
	err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n)
	return n, err
}
