package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/RyanHill92/housing/internal/housing"
)

// Supported database/sql driver names.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// SQLStore reads and writes house records in a SQL table.
type SQLStore struct {
	db    *sql.DB
	stmts map[string]*sql.Stmt
}

const (
	queryGetAllHouses = "get-all-houses"
	queryAddHouse     = "add-house"
)

// ErrDuplicateHouse reports an insert of a house id that is already stored.
var ErrDuplicateHouse = errors.New("house id already stored")

const schema = `
	CREATE TABLE IF NOT EXISTS house (
		id           INTEGER PRIMARY KEY,
		lot          VARCHAR(8) NOT NULL,
		price        DOUBLE NOT NULL,
		bedrooms     INTEGER NOT NULL,
		color        VARCHAR(32) NOT NULL,
		availability VARCHAR(16) NOT NULL
	);
`

const checkHouseTable = `SELECT 1 FROM house LIMIT 0;`

var unprepared = map[string]string{
	queryGetAllHouses: `
		SELECT
			h.id,
			h.lot,
			h.price,
			h.bedrooms,
			h.color,
			h.availability
		FROM house h
		ORDER BY h.id ASC;
	`,
	queryAddHouse: `
		INSERT INTO house (id, lot, price, bedrooms, color, availability)
		VALUES (?, ?, ?, ?, ?, ?);
	`,
}

// MySQLDSN builds a TCP DSN for the mysql driver.
func MySQLDSN(user, password, host, dbName string) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = host
	cfg.DBName = dbName
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// OpenDB opens a connection pool and waits until the database answers a ping
// or ctx is done.
func OpenDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening DB connection: %w", err)
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		err := db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("error reaching database: %w", err)
		case <-ticker.C:
		}
	}
}

// CreateSchema creates the house table if it does not exist.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("CREATE TABLE house failed: %w", err)
	}
	return nil
}

// NewSQLStore returns a store with statements prepared against db. The house
// table must already exist; some drivers only resolve tables on first use, so
// it is checked up front.
func NewSQLStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	rows, err := db.QueryContext(ctx, checkHouseTable)
	if err != nil {
		return nil, fmt.Errorf("error checking house table: %w", err)
	}
	rows.Close()

	stmts := make(map[string]*sql.Stmt)
	for key, query := range unprepared {
		stmt, err := db.PrepareContext(ctx, query)
		if err != nil {
			for _, prepared := range stmts {
				prepared.Close()
			}
			return nil, fmt.Errorf("error preparing statement %s: %w", key, err)
		}
		stmts[key] = stmt
	}
	store := SQLStore{
		db:    db,
		stmts: stmts,
	}

	return &store, nil
}

// Houses lists all stored houses ordered by id.
func (store *SQLStore) Houses(ctx context.Context) ([]housing.House, error) {
	stmt := store.stmts[queryGetAllHouses]

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("SELECT Houses failed: %w", err)
	}

	defer rows.Close()

	var houses []housing.House
	for rows.Next() {
		var h housing.House
		var availability string
		err := rows.Scan(
			&h.ID,
			&h.Lot,
			&h.Price,
			&h.Bedrooms,
			&h.Color,
			&availability,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row as House: %w", err)
		}
		if h.Availability, err = housing.ParseAvailability(availability); err != nil {
			return nil, fmt.Errorf("house %d: %w", h.ID, err)
		}
		houses = append(houses, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating Houses failed: %w", err)
	}

	return houses, nil
}

// AddHouse stores a new house record.
func (store *SQLStore) AddHouse(ctx context.Context, h housing.House) error {
	stmt := store.stmts[queryAddHouse]
	_, err := stmt.ExecContext(ctx, h.ID, h.Lot, h.Price, h.Bedrooms, h.Color, h.Availability.String())
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("house %d: %w", h.ID, ErrDuplicateHouse)
		}
		return fmt.Errorf("INSERT House failed: %w", err)
	}
	return nil
}

// Close cleans up prepared statements.
func (store *SQLStore) Close() {
	log.Println("store: closing prepared statements")
	for key, stmt := range store.stmts {
		if err := stmt.Close(); err != nil {
			log.Printf("store: failed to close stmt %s: %s", key, err)
		}
	}
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT:
			return true
		}
	}
	return false
}
