package records

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"github.com/RyanHill92/housing/internal/housing"
)

func newTestStore(t *testing.T) (*SQLStore, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := OpenDB(ctx, DriverSQLite, filepath.Join(t.TempDir(), "housing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, CreateSchema(ctx, db))
	store, err := NewSQLStore(ctx, db)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, db
}

func TestSQLStore_AddAndList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	houses := []housing.House{
		{ID: 3, Lot: "C1", Price: 700, Bedrooms: 1, Color: "blue", Availability: housing.Booked},
		{ID: 1, Lot: "A1", Price: 1000.5, Bedrooms: 2, Color: "red", Availability: housing.Available},
	}
	for _, h := range houses {
		require.NoError(t, store.AddHouse(ctx, h))
	}

	got, err := store.Houses(ctx)
	require.NoError(t, err)
	require.Equal(t, []housing.House{houses[1], houses[0]}, got)
}

func TestSQLStore_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Houses(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLStore_DuplicateHouse(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	h := housing.House{ID: 1, Lot: "A1", Color: "red"}
	require.NoError(t, store.AddHouse(ctx, h))

	err := store.AddHouse(ctx, h)
	require.ErrorIs(t, err, ErrDuplicateHouse)
}

func TestSQLStore_BadAvailability(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO house VALUES (5, 'E5', 1, 1, 'red', 'sold')`)
	require.NoError(t, err)

	_, err = store.Houses(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "house 5")
}

func TestNewSQLStore_MissingTable(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(ctx, DriverSQLite, filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = NewSQLStore(ctx, db)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error checking house table")
}

func TestIsDuplicateKey_MySQL(t *testing.T) {
	dup := fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"})
	require.True(t, isDuplicateKey(dup))
	require.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1146}))
	require.False(t, isDuplicateKey(sql.ErrNoRows))
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN("app", "s3cret", "db:3306", "housing")

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	require.Equal(t, "app", cfg.User)
	require.Equal(t, "s3cret", cfg.Passwd)
	require.Equal(t, "tcp", cfg.Net)
	require.Equal(t, "db:3306", cfg.Addr)
	require.Equal(t, "housing", cfg.DBName)
	require.True(t, cfg.ParseTime)
}
