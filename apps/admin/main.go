package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/user"
	logsvc "github.com/trezcool/mipango/services/logger"
	"github.com/trezcool/mipango/storage/database"
	sqlxdb "github.com/trezcool/mipango/storage/database/sqlx"
)

// ops sidecar for provisioning and seeding

var errHelp = errors.New("provided help")

func main() {
	std := stdlog.New(os.Stdout, "ADMIN : ", stdlog.LstdFlags|stdlog.Lshortfile)
	if err := run(std); err != nil {
		if errors.Cause(err) != errHelp {
			std.Fatalf("main error: %+v", err)
		}
		os.Exit(1)
	}
}

func run(std *stdlog.Logger) error {
	conf := core.NewConfig()
	logger := logsvc.NewStdLogger(std)

	if len(os.Args) < 2 {
		printUsage()
		return errHelp
	}

	switch os.Args[1] {
	case "createdb":
		return database.CreateIfNotExist(conf)

	case "migrate":
		db, err := database.Open(conf)
		if err != nil {
			return err
		}
		defer db.Close()
		return database.Migrate(db.DB, logger)

	case "seeddean":
		return seedDean(conf, os.Args[2:])

	case "help":
		printUsage()
		return errHelp

	default:
		printUsage()
		return errors.Errorf("unknown command %q", os.Args[1])
	}
}

// seedDean creates an approved dean account so reviews can start on a
// fresh install.
func seedDean(conf *core.Config, args []string) error {
	fs := flag.NewFlagSet("seeddean", flag.ContinueOnError)
	name := fs.String("name", "Dean", "dean's full name")
	email := fs.String("email", "", "dean's email address (required)")
	password := fs.String("password", "", "dean's password (required)")
	department := fs.String("department", "Computer Science", "dean's department")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return errors.Wrap(err, "parsing flags")
	}
	if *email == "" || *password == "" {
		fs.Usage()
		return errors.New("email and password are required")
	}

	db, err := database.Open(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	usr := user.User{
		ID:         uuid.New().String(),
		Name:       *name,
		Email:      core.CleanString(*email, true),
		Role:       user.RoleDean,
		Department: *department,
		Approved:   true,
		CreatedAt:  time.Now().UTC(),
	}
	if err = usr.SetPassword(*password); err != nil {
		return err
	}
	if err = sqlxdb.NewUserRepository(db).CreateUser(usr); err != nil {
		return err
	}
	fmt.Printf("dean account created: %s <%s>\n", usr.Name, usr.Email)
	return nil
}

func printUsage() {
	fmt.Print(`Usage: admin <command> [flags]

Commands:
  createdb   provision the application database and user
  migrate    apply pending database migrations
  seeddean   create an approved dean account
  help       show this message
`)
}
