package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// dirs maps a database/sql driver name to its migrations directory.
var dirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Up applies all pending migrations for the driver db was opened with.
// Postgres migrations run on a dedicated connection opened from dsn and
// closed afterwards. SQLite migrations run on db itself so that in-memory
// databases see the schema.
func Up(db *sqlx.DB, dsn string) error {
	driverName := db.DriverName()
	dir, ok := dirs[driverName]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driverName)
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("open migrations source: %w", err)
	}

	var (
		drv      database.Driver
		separate bool
	)
	switch driverName {
	case "pgx":
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return fmt.Errorf("open migrations connection: %w", err)
		}
		drv, err = pgxmigrate.WithInstance(conn, &pgxmigrate.Config{})
		if err != nil {
			conn.Close()
			return fmt.Errorf("init postgres migrations driver: %w", err)
		}
		separate = true
	case "sqlite3":
		drv, err = sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
		if err != nil {
			return fmt.Errorf("init sqlite migrations driver: %w", err)
		}
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, drv)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	// Closing m closes the underlying *sql.DB, which must not happen to db.
	if separate {
		defer m.Close()
	}
	m.Log = &migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migrations version: %w", err)
	}
	logger.Log.Infow("migrations applied", "driver", driverName, "version", version, "dirty", dirty)

	return nil
}

type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...any) {
	logger.Log.Debugf(format, v...)
}

func (l *migrateLogger) Verbose() bool { return false }
