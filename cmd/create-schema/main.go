package main

import (
	"context"

	"github.com/ilyahahaha/vneshtata-new/internal/config"
	"github.com/ilyahahaha/vneshtata-new/internal/database"
	"github.com/ilyahahaha/vneshtata-new/internal/log"
)

// Creates the vneshtata tables. Safe to re-run: every statement is
// IF NOT EXISTS. User IDs are user-editable, so every foreign key on
// users(id) cascades updates.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	statements := []struct {
		name string
		sql  string
	}{
		{
			name: "users",
			sql: `CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash BYTEA NOT NULL,
    picture       TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			name: "profiles",
			sql: `CREATE TABLE IF NOT EXISTS profiles (
    user_id   TEXT PRIMARY KEY REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    status    TEXT NOT NULL DEFAULT '',
    position  TEXT NOT NULL DEFAULT '',
    company   TEXT NOT NULL DEFAULT '',
    country   TEXT NOT NULL DEFAULT 'Not selected',
    education TEXT NOT NULL DEFAULT '',
    about     TEXT NOT NULL DEFAULT ''
);`,
		},
		{
			name: "employments",
			sql: `CREATE TABLE IF NOT EXISTS employments (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    company     TEXT NOT NULL,
    position    TEXT NOT NULL,
    employed_on TIMESTAMPTZ NOT NULL
);`,
		},
		{
			name: "employments user index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_employments_user ON employments(user_id);`,
		},
		{
			name: "follows",
			sql: `CREATE TABLE IF NOT EXISTS follows (
    follower_id  TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    following_id TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    PRIMARY KEY (follower_id, following_id)
);`,
		},
		{
			name: "follows following index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_follows_following ON follows(following_id);`,
		},
		{
			name: "posts",
			sql: `CREATE TABLE IF NOT EXISTS posts (
    id         TEXT PRIMARY KEY,
    author_id  TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			name: "posts author index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_posts_author_created ON posts(author_id, created_at DESC);`,
		},
		{
			name: "likes",
			sql: `CREATE TABLE IF NOT EXISTS likes (
    post_id     TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    liked_by_id TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    PRIMARY KEY (post_id, liked_by_id)
);`,
		},
		{
			name: "comments",
			sql: `CREATE TABLE IF NOT EXISTS comments (
    id         TEXT PRIMARY KEY,
    post_id    TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    author_id  TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			name: "comments post index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created_at);`,
		},
		{
			name: "messages",
			sql: `CREATE TABLE IF NOT EXISTS messages (
    id          TEXT PRIMARY KEY,
    sender_id   TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    receiver_id TEXT NOT NULL REFERENCES users(id) ON UPDATE CASCADE ON DELETE CASCADE,
    content     TEXT NOT NULL,
    sent_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			name: "messages conversation index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_messages_pair_sent ON messages(sender_id, receiver_id, sent_at DESC);`,
		},
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt.sql); err != nil {
			logger.Fatal().Err(err).Str("statement", stmt.name).Msg("schema statement failed")
		}
		logger.Info().Str("statement", stmt.name).Msg("applied")
	}

	logger.Info().Msg("schema created")
}
