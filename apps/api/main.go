package main

import (
	"context"
	"expvar"
	"fmt"
	stdlog "log"
	"net/http"
	_ "net/http/pprof"
	"net/mail"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	echoapi "github.com/trezcool/mipango/apps/api/echo"
	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/plan"
	"github.com/trezcool/mipango/core/user"
	emailsvc "github.com/trezcool/mipango/services/email"
	logsvc "github.com/trezcool/mipango/services/logger"
	"github.com/trezcool/mipango/storage/database"
	sqlxdb "github.com/trezcool/mipango/storage/database/sqlx"
)

var build = "dev"

func main() {
	std := stdlog.New(os.Stdout, "API : ", stdlog.LstdFlags|stdlog.Lshortfile)
	if err := run(std); err != nil {
		std.Fatalf("main error: %+v", err)
	}
}

func run(std *stdlog.Logger) error {
	conf := core.NewConfig()
	conf.Build = build

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	core.InitValidators(validate, translator)

	db, err := database.Open(conf)
	if err != nil {
		return err
	}
	defer func() {
		logger.Info("closing database connection")
		db.Close()
	}()

	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridAPIKey == "" {
		mailSvc = emailsvc.NewConsoleService(os.Stdout, conf.DefaultFromEmail())
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	usrSvc := user.NewService(sqlxdb.NewUserRepository(db), mailSvc, logger)
	planSvc := plan.NewService(sqlxdb.NewPlanRepository(db), mailSvc, userDirectory{svc: usrSvc}, logger)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Log:        logger,
		PlanSvc:    planSvc,
		UserSvc:    usrSvc,
		Validate:   validate,
		Translator: translator,
		Shutdown:   shutdown,
	})

	// expvar + pprof on a separate port
	expvar.NewString("build").Set(build)
	go func() {
		logger.Info(fmt.Sprintf("debug server listening on %s", conf.Server.DebugAddr))
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error("debug server closed", err)
		}
	}()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("api server listening on %s", conf.Server.Addr))
		serverErrors <- server.Start()
	}()

	select {
	case err = <-serverErrors:
		return errors.Wrap(err, "server error")
	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: starting shutdown", sig))
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err = server.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "graceful shutdown failed")
		}
	}
	return nil
}

// userDirectory lets the plan service resolve submitters to addresses.
type userDirectory struct {
	svc *user.Service
}

func (d userDirectory) AddressOf(userID string) (mail.Address, error) {
	usr, err := d.svc.GetByID(userID)
	if err != nil {
		return mail.Address{}, err
	}
	return usr.Address(), nil
}
