package migrations_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frezix0/todo-api/internal/migrations"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func expectCurrent(mock sqlmock.Sqlmock, version int32) {
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_version (version integer NOT NULL)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_version (version) SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM schema_version)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version FROM schema_version`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(version))
}

func testMigrations() []migrations.Migration {
	return []migrations.Migration{
		{
			Version: 1,
			Name:    "create_categories",
			UpSQL:   "CREATE TABLE categories (id bigserial PRIMARY KEY)",
			DownSQL: "DROP TABLE categories",
		},
		{
			Version: 2,
			Name:    "create_todos",
			UpSQL:   "CREATE TABLE todos (id bigserial PRIMARY KEY)",
			DownSQL: "DROP TABLE todos",
		},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0002_create_todos.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE todos ();\n\n---- create above / drop below ----\n\nDROP TABLE todos;\n"),
		},
		"0001_create_categories.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE categories ();\n"),
		},
	}

	got, err := migrations.Load(fsys)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int32(1), got[0].Version)
	assert.Equal(t, "create_categories", got[0].Name)
	assert.Equal(t, "CREATE TABLE categories ();", got[0].UpSQL)
	assert.False(t, got[0].Reversible())

	assert.Equal(t, int32(2), got[1].Version)
	assert.Equal(t, "CREATE TABLE todos ();", got[1].UpSQL)
	assert.Equal(t, "DROP TABLE todos;", got[1].DownSQL)
	assert.True(t, got[1].Reversible())
}

func TestLoad_BadName(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"create_categories.sql": &fstest.MapFile{Data: []byte("CREATE TABLE categories ();")},
	}

	_, err := migrations.Load(fsys)
	assert.Error(t, err)
}

func TestLoad_Gap(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0001_first.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"0003_third.sql": &fstest.MapFile{Data: []byte("SELECT 3;")},
	}

	_, err := migrations.Load(fsys)
	assert.Error(t, err)
}

func TestLoad_Duplicate(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"0001_first.sql":  &fstest.MapFile{Data: []byte("SELECT 1;")},
		"0001_second.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}

	_, err := migrations.Load(fsys)
	assert.Error(t, err)
}

func TestRunner_Up(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	migs := testMigrations()

	expectCurrent(mock, 0)

	for _, m := range migs {
		mock.ExpectBegin()
		mock.ExpectExec(m.UpSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE schema_version SET version = $1`).
			WithArgs(m.Version).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	applied, err := migrations.NewRunner(db, migs).Up(context.Background(), -1)
	require.NoError(t, err)

	assert.Len(t, applied, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_Up_AlreadyCurrent(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	migs := testMigrations()

	expectCurrent(mock, 2)

	applied, err := migrations.NewRunner(db, migs).Up(context.Background(), -1)
	require.NoError(t, err)

	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_Up_FailedStepRollsBack(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	migs := testMigrations()

	expectCurrent(mock, 0)

	mock.ExpectBegin()
	mock.ExpectExec(migs[0].UpSQL).WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := migrations.NewRunner(db, migs).Up(context.Background(), -1)
	require.Error(t, err)

	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_Up_UnknownTarget(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)

	expectCurrent(mock, 0)

	_, err := migrations.NewRunner(db, testMigrations()).Up(context.Background(), 9)
	assert.Error(t, err)
}

func TestRunner_Down(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	migs := testMigrations()

	expectCurrent(mock, 2)

	// reverted newest first
	mock.ExpectBegin()
	mock.ExpectExec(migs[1].DownSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE schema_version SET version = $1`).
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(migs[0].DownSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE schema_version SET version = $1`).
		WithArgs(int32(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reverted, err := migrations.NewRunner(db, migs).Down(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, reverted, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_Down_Irreversible(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)

	migs := testMigrations()
	migs[0].DownSQL = ""

	expectCurrent(mock, 2)

	_, err := migrations.NewRunner(db, migs).Down(context.Background(), 0)
	require.Error(t, err)

	// nothing was reverted, the walk is refused up front
	assert.NoError(t, mock.ExpectationsWereMet())
}
