package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_Bind(t *testing.T) {
	q := `SELECT value FROM client_state WHERE name = ? AND value = ?`

	assert.Equal(t, q, DialectSQLite.bind(q))
	assert.Equal(t,
		`SELECT value FROM client_state WHERE name = $1 AND value = $2`,
		DialectPostgres.bind(q),
	)
}

func TestSQLStorage_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLStorage(db, DialectPostgres)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_state WHERE name = \$1`).
			WithArgs(KeyLanguage).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("ar"))

		v, ok, err := s.Get(context.Background(), KeyLanguage)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "ar", v)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_state`).
			WithArgs(KeyToken).
			WillReturnError(sql.ErrNoRows)

		v, ok, err := s.Get(context.Background(), KeyToken)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_state`).
			WillReturnError(errors.New("db error"))

		_, _, err := s.Get(context.Background(), KeyToken)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLStorage(db, DialectPostgres)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO client_state .* ON CONFLICT \(name\) DO UPDATE`).
			WithArgs(KeyToken, "jwt").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Set(context.Background(), KeyToken, "jwt"))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO client_state`).
			WillReturnError(errors.New("db error"))

		assert.Error(t, s.Set(context.Background(), KeyToken, "jwt"))
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.ErrorIs(t, s.Set(context.Background(), "", "jwt"), ErrEmptyKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_DeleteAndMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLStorage(db, DialectSQLite)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS client_state`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM client_state WHERE name = \?`).
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, s.Delete(context.Background(), KeyUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_MigrateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(errors.New("read-only"))

	err = NewSQLStorage(db, DialectSQLite).Migrate(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure client_state table")
}

func TestOpenSQL_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQL(ctx, DialectSQLite, path)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, KeyLanguage, "en"))
	require.NoError(t, s.Set(ctx, KeyLanguage, "ar"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQL(ctx, DialectSQLite, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, KeyLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ar", v)
}
