package database

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/trezcool/mipango/core"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens a database connection as the application user.
func Open(conf *core.Config) (*sqlx.DB, error) {
	return open(conf.Database.User, conf.Database.Password, conf.Database.Name, conf)
}

// OpenAdmin opens a database connection as the admin user against the
// default database. Used for provisioning.
func OpenAdmin(conf *core.Config) (*sqlx.DB, error) {
	return open(conf.Database.AdminUser, conf.Database.AdminPassword, "postgres", conf)
}

func open(username, password, dbname string, conf *core.Config) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     url.UserPassword(username, password),
		Host:     conf.Database.Address(),
		Path:     dbname,
		RawQuery: q.Encode(),
	}
	db, err := sqlx.Connect(conf.Database.Engine, u.String())
	return db, errors.Wrap(err, "connecting to database")
}

// CreateIfNotExist provisions the application database and its user.
func CreateIfNotExist(conf *core.Config) error {
	db, err := OpenAdmin(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = createAppUser(db, conf); err != nil {
		return err
	}
	return createDB(db, conf)
}

func createAppUser(db *sqlx.DB, conf *core.Config) error {
	var exists bool
	err := db.Get(&exists, "SELECT EXISTS(SELECT 1 FROM pg_roles WHERE rolname = $1)", conf.Database.User)
	if err != nil {
		return errors.Wrap(err, "checking app user")
	}
	if exists {
		return nil
	}
	stmt := fmt.Sprintf("CREATE USER %s WITH PASSWORD '%s'", conf.Database.User, conf.Database.Password)
	_, err = db.Exec(stmt)
	return errors.Wrap(err, "creating app user")
}

func createDB(db *sqlx.DB, conf *core.Config) error {
	var exists bool
	err := db.Get(&exists, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", conf.Database.Name)
	if err != nil {
		return errors.Wrap(err, "checking database")
	}
	if exists {
		return nil
	}
	stmt := fmt.Sprintf("CREATE DATABASE %s OWNER %s", conf.Database.Name, conf.Database.User)
	if _, err = db.Exec(stmt); err != nil {
		return errors.Wrap(err, "creating database")
	}
	return nil
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB, log core.Logger) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting dialect")
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "applying migrations")
	}
	if log != nil {
		log.Info("migrations applied")
	}
	return nil
}
