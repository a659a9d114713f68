package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("t1")))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("t1"), v)

	// last writer wins
	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("t2")))
	v, err = s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("t2"), v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, KeyUserID, []byte("u1")))
	require.NoError(t, s.Delete(ctx, KeyUserID))

	v, err := s.Get(ctx, KeyUserID)
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, KeyUserID))
}

func TestSQLiteStore_ClearAndList(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("t")))
	require.NoError(t, s.Set(ctx, KeyUserID, []byte("u")))
	require.NoError(t, s.Set(ctx, KeyTheme, []byte("dark")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []byte("dark"), all[KeyTheme])

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestInitDatabase_Reopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, KeyTheme, []byte("light")))
	require.NoError(t, db.Close())

	// migrations are idempotent across reopen
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	v, err := NewSQLiteStore(db).Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.Equal(t, []byte("light"), v)
}
