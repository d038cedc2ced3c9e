package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"laundry/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionSettings are the parts of a PostgreSQL DSN.
type ConnectionSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders a URL connection string. An empty dbName connects to the
// server's default database.
func (s ConnectionSettings) DSN(dbName string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   fmt.Sprintf("%s:%s", s.Host, s.Port),
		Path:   "/" + dbName,
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u.RawQuery = url.Values{"sslmode": []string{sslMode}}.Encode()
	return u.String()
}

// EnsureDatabase creates the named database when the server does not have it yet.
func EnsureDatabase(ctx context.Context, db *sql.DB, name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dbName")
	}

	var exists bool
	if err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists); err != nil {
		return errs.NewPersistenceError("check database", err)
	}
	if exists {
		return nil
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return errs.NewPersistenceError("create database", err)
	}
	return nil
}

// Open makes sure the configured database exists, connects GORM to it and
// migrates the schema.
func Open(ctx context.Context, settings ConnectionSettings) (*gorm.DB, error) {
	server, err := sql.Open("postgres", settings.DSN("postgres"))
	if err != nil {
		return nil, err
	}
	defer func() { _ = server.Close() }()

	if err = EnsureDatabase(ctx, server, settings.DBName); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(settings.DSN(settings.DBName)), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err = AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
