package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/example/rms/internal/logging"
	"github.com/example/rms/internal/models"
)

// Connect ensures the target database exists, opens it through GORM and makes
// sure both tables are present.
func Connect(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	if err := EnsureDatabase(dsn); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	conn, err := Open(postgres.Open(dsn), log)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("database ready")
	return conn, nil
}

// Open wraps gorm.Open with the settings the store relies on: driver errors
// are translated to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated and
// single-statement writes are not wrapped in an implicit transaction.
func Open(dialector gorm.Dialector, log *logrus.Logger) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:                 logging.GormLogger(log),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
}

// Migrate creates the customer and complaint tables when they are absent.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.Customer{},
		&models.Complaint{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// EnsureDatabase creates the database named in a postgres:// DSN when it does
// not exist yet. Other DSN forms are left alone.
func EnsureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	return createIfMissing(sqlDB, dbName)
}

func createIfMissing(sqlDB *sql.DB, dbName string) error {
	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err := sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
