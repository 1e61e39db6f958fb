package db

import (
	"context"
	"database/sql"
)

const migration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    password_hash text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));

CREATE TABLE IF NOT EXISTS files (
    id bigserial PRIMARY KEY,
    user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name text NOT NULL,
    type text NOT NULL,
    parent_id bigint NOT NULL DEFAULT 0,
    is_public boolean NOT NULL DEFAULT false,
    local_path text,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS files_user_parent_idx
ON files (user_id, parent_id, id);
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, migration)
	return err
}
