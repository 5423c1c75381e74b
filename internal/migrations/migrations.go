// Package migrations applies the SQL files shipped under db/migrations to a
// PostgreSQL database, sequentially and one transaction per step, recording
// progress in the single-row schema_version table tern uses.
package migrations

import (
	"context"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/frezix0/todo-api/internal"
	"github.com/jmoiron/sqlx"
)

// separator splits a migration file into its apply and revert halves.
const separator = "---- create above / drop below ----"

var filenameRx = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// Migration is one step of the schema history.
type Migration struct {
	Version int32
	Name    string
	UpSQL   string
	DownSQL string
}

// Reversible indicates whether the migration carries a drop section.
func (m Migration) Reversible() bool {
	return m.DownSQL != ""
}

// Load reads every *.sql file in fsys. File names must look like
// 0001_create_categories.sql and versions must form the sequence 1..N.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "fs.Glob")
	}

	migrations := make([]Migration, 0, len(names))

	for _, name := range names {
		matches := filenameRx.FindStringSubmatch(name)
		if matches == nil {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unexpected file name: %s", name)
		}

		version, err := strconv.ParseInt(matches[1], 10, 32)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "strconv.ParseInt")
		}

		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "fs.ReadFile")
		}

		up, down := splitSQL(string(contents))

		migrations = append(migrations, Migration{
			Version: int32(version),
			Name:    matches[2],
			UpSQL:   up,
			DownSQL: down,
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i, m := range migrations {
		if m.Version != int32(i+1) {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "out of sequence migration: %04d_%s", m.Version, m.Name)
		}
	}

	return migrations, nil
}

func splitSQL(contents string) (up, down string) {
	before, after, found := strings.Cut(contents, separator)
	if !found {
		return strings.TrimSpace(contents), ""
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// Runner walks the schema history up and down.
type Runner struct {
	db         *sqlx.DB
	migrations []Migration
}

// NewRunner instantiates a Runner, migrations are expected to come from Load.
func NewRunner(db *sqlx.DB, migrations []Migration) *Runner {
	return &Runner{
		db:         db,
		migrations: migrations,
	}
}

// Current returns the version the database is at, creating and seeding the
// tracking table when missing.
func (r *Runner) Current(ctx context.Context) (int32, error) {
	if _, err := r.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version integer NOT NULL)`); err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "db.ExecContext")
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO schema_version (version) SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM schema_version)`); err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "db.ExecContext")
	}

	var version int32

	if err := r.db.GetContext(ctx, &version, `SELECT version FROM schema_version`); err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnkown, "db.GetContext")
	}

	if version > int32(len(r.migrations)) {
		return 0, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "database at version %d but only %d migrations exist", version, len(r.migrations))
	}

	return version, nil
}

// Up applies pending migrations in order until target is reached, a negative
// target means latest. A failing step rolls back and stops the walk, already
// finished steps stay applied.
func (r *Runner) Up(ctx context.Context, target int32) ([]Migration, error) {
	current, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}

	if target < 0 {
		target = int32(len(r.migrations))
	}

	if target > int32(len(r.migrations)) {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown target version: %d", target)
	}

	applied := []Migration{}

	for _, m := range r.migrations {
		if m.Version <= current || m.Version > target {
			continue
		}

		if err := r.step(ctx, m.UpSQL, m.Version); err != nil {
			return applied, err
		}

		applied = append(applied, m)
	}

	return applied, nil
}

// Down reverts applied migrations in reverse order until target is reached,
// refusing to start when any step on the way down has no drop section.
func (r *Runner) Down(ctx context.Context, target int32) ([]Migration, error) {
	current, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}

	if target < 0 || target > current {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown target version: %d", target)
	}

	for v := current; v > target; v-- {
		if !r.migrations[v-1].Reversible() {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "irreversible migration: %04d_%s", v, r.migrations[v-1].Name)
		}
	}

	reverted := []Migration{}

	for v := current; v > target; v-- {
		m := r.migrations[v-1]

		if err := r.step(ctx, m.DownSQL, m.Version-1); err != nil {
			return reverted, err
		}

		reverted = append(reverted, m)
	}

	return reverted, nil
}

func (r *Runner) step(ctx context.Context, sql string, version int32) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "db.BeginTxx")
	}
	defer tx.Rollback()

	if sql != "" {
		if _, err := tx.ExecContext(ctx, sql); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.ExecContext")
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE schema_version SET version = $1`, version); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.ExecContext")
	}

	if err := tx.Commit(); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnkown, "tx.Commit")
	}

	return nil
}
