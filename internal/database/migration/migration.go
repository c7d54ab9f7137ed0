package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created last; its presence means the schema is complete.
const sentinelTable = "public.favorites"

var steps = []migrationStep{
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id         BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name       VARCHAR(255)  NOT NULL,
  path       VARCHAR(1024) NOT NULL,
  parent_id  BIGINT        NULL REFERENCES folders (id) ON DELETE CASCADE,
  created_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_folders_parent_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_parent_id ON folders (parent_id);`,
	},
	{
		Name: "create_index_folders_path",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_path ON folders (path);`,
	},
	{
		Name: "create_table_files",
		SQL: `CREATE TABLE IF NOT EXISTS files (
  id         BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name       VARCHAR(255)  NOT NULL,
  path       VARCHAR(1024) NOT NULL,
  folder_id  BIGINT        NULL REFERENCES folders (id) ON DELETE CASCADE,
  extension  VARCHAR(32)   NULL,
  size       BIGINT        NOT NULL DEFAULT 0 CHECK (size >= 0),
  mime_type  VARCHAR(255)  NULL,
  created_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_files_folder_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_files_folder_id ON files (folder_id);`,
	},
	{
		Name: "create_index_files_extension",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_files_extension ON files (extension);`,
	},
	{
		Name: "create_table_file_versions",
		SQL: `CREATE TABLE IF NOT EXISTS file_versions (
  id         BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  file_id    BIGINT      NOT NULL REFERENCES files (id) ON DELETE CASCADE,
  version    INT         NOT NULL,
  size       BIGINT      NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_file_versions_file_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_file_versions_file_id ON file_versions (file_id);`,
	},
	{
		Name: "seed_folders",
		SQL: `INSERT INTO folders (id, name, path, parent_id) VALUES
  (1, 'Root', '/', NULL),
  (2, 'Documents', '/Documents', 1),
  (3, 'Pictures', '/Pictures', 1),
  (4, 'Videos', '/Videos', 1),
  (5, 'Work', '/Documents/Work', 2),
  (6, 'Personal', '/Documents/Personal', 2)
ON CONFLICT (id) DO NOTHING;`,
	},
	{
		Name: "seed_files",
		SQL: `INSERT INTO files (id, name, path, folder_id, extension, size, mime_type) VALUES
  (1, 'report.pdf', '/Documents/Work/report.pdf', 5, 'pdf', 2048576, 'application/pdf'),
  (2, 'presentation.pptx', '/Documents/Work/presentation.pptx', 5, 'pptx', 5242880, 'application/vnd.openxmlformats-officedocument.presentationml.presentation'),
  (3, 'notes.txt', '/Documents/Personal/notes.txt', 6, 'txt', 4096, 'text/plain'),
  (4, 'photo.jpg', '/Pictures/photo.jpg', 3, 'jpg', 1048576, 'image/jpeg'),
  (5, 'vacation.mp4', '/Videos/vacation.mp4', 4, 'mp4', 104857600, 'video/mp4')
ON CONFLICT (id) DO NOTHING;`,
	},
	{
		// Seeds use explicit ids; move the identity sequences past them.
		Name: "sync_identity_sequences",
		SQL: `SELECT setval(pg_get_serial_sequence('folders', 'id'), (SELECT COALESCE(MAX(id), 0) + 1 FROM folders), false),
       setval(pg_get_serial_sequence('files', 'id'), (SELECT COALESCE(MAX(id), 0) + 1 FROM files), false);`,
	},
	{
		Name: "create_table_favorites",
		SQL: `CREATE TABLE IF NOT EXISTS favorites (
  id         BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  item_type  VARCHAR(16) NOT NULL CHECK (item_type IN ('file', 'folder')),
  item_id    BIGINT      NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT uq_favorites_item UNIQUE (item_type, item_id)
);`,
	},
}

// EnsureMigrated creates the schema and seed data unless the sentinel table already exists.
// Every step is idempotent, so a run interrupted before the sentinel is created can be repeated.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.InfoContext(ctx, "checking schema", "event", "db_migration_check", "status", "starting")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.ErrorContext(ctx, "migration failed",
			"event", "db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.InfoContext(ctx, "schema already exists, skipping migration",
			"event", "db_migration_skip",
			"status", "success",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.InfoContext(ctx, "running migration", "event", "db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.ErrorContext(ctx, "migration failed",
				"event", "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.DebugContext(ctx, "migration step applied",
			"event", "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.InfoContext(ctx, "migration completed",
		"event", "db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
