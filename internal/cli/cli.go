// Package cli implements the poputchik command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/piresc/poputchik/internal/pkg/config"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/pkg/server"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `Usage: poputchik [global flags] <command> [flags]

Commands:
  search --from <city> --to <city> --date <YYYY-MM-DD>   search trips
  list                                                    list all trips
  show <id> [--from <city> --to <city> --date <date>]     show one trip
  draft <text>                                            recognise a trip announcement
  serve                                                   run the HTTP API

Global flags:
`

var errUsage = errors.New("usage")

type command func(ctx context.Context, app *App, args []string, stdout io.Writer) error

var commands = map[string]command{
	"search": runSearch,
	"list":   runList,
	"show":   runShow,
	"draft":  runDraft,
	"serve":  runServe,
}

// Run executes the command line in args (without the program name) and
// returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	v := config.New()

	global := pflag.NewFlagSet("poputchik", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	configPath := global.StringP("config", "c", "", "path to a YAML config file")
	global.String("api-url", "", "trips API base URL")
	global.String("log-level", "", "log level (debug, info, warn, error)")
	global.String("timezone", "", "display time zone, e.g. Asia/Yekaterinburg")
	global.Usage = func() {
		fmt.Fprint(stderr, usage)
		global.PrintDefaults()
	}

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	bindFlags(v, global, map[string]string{
		"api.base_url":     "api-url",
		"logger.level":     "log-level",
		"display.timezone": "timezone",
	})

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return ExitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", rest[0])
		global.Usage()
		return ExitUsage
	}

	cfg, err := config.InitConfig(v, *configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	app, err := NewApp(cfg, zapLogger)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}

	if err := cmd(ctx, app, rest[1:], stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}
	return ExitOK
}

// bindFlags lets explicitly set flags override config file and environment
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if f := flags.Lookup(name); f != nil && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}
}

func criteriaFlags(name string) (*pflag.FlagSet, *models.SearchCriteria) {
	criteria := &models.SearchCriteria{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&criteria.FromCity, "from", "f", "", "origin city")
	fs.StringVarP(&criteria.ToCity, "to", "t", "", "destination city")
	fs.StringVarP(&criteria.Date, "date", "d", "", "travel date, YYYY-MM-DD (default today)")
	return fs, criteria
}

func usageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{errUsage}, args...)...)
}

func runSearch(ctx context.Context, app *App, args []string, stdout io.Writer) error {
	fs, criteria := criteriaFlags("search")
	if err := fs.Parse(args); err != nil {
		return usageError("search: %v", err)
	}
	if fs.NArg() > 0 {
		return usageError("search: unexpected arguments %v", fs.Args())
	}

	applied, err := app.TripUC.SetCriteria(*criteria)
	if err != nil {
		return err
	}
	cards, err := app.TripUC.Submit(ctx)
	if err != nil {
		return err
	}
	return renderCards(stdout, applied, cards)
}

func runList(ctx context.Context, app *App, args []string, stdout io.Writer) error {
	if len(args) > 0 {
		return usageError("list: unexpected arguments %v", args)
	}

	cards, err := app.TripUC.ListAll(ctx)
	if err != nil {
		return err
	}
	return renderCards(stdout, app.TripUC.Criteria(), cards)
}

// runShow loads results first since a trip can only be opened from the
// current list. Without criteria every trip is loaded.
func runShow(ctx context.Context, app *App, args []string, stdout io.Writer) error {
	fs, criteria := criteriaFlags("show")
	if err := fs.Parse(args); err != nil {
		return usageError("show: %v", err)
	}
	if fs.NArg() != 1 {
		return usageError("show: expected exactly one trip ID")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return usageError("show: trip ID must be a number, got %q", fs.Arg(0))
	}

	if *criteria == (models.SearchCriteria{}) {
		_, err = app.TripUC.ListAll(ctx)
	} else {
		if _, err = app.TripUC.SetCriteria(*criteria); err != nil {
			return err
		}
		_, err = app.TripUC.Submit(ctx)
	}
	if err != nil {
		return err
	}

	detail, err := app.TripUC.TripDetail(id)
	if err != nil {
		return err
	}
	return renderDetail(stdout, detail)
}

func runDraft(ctx context.Context, app *App, args []string, stdout io.Writer) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return usageError("draft: announcement text is required")
	}

	detail, err := app.TripUC.Draft(ctx, text)
	if err != nil {
		return err
	}
	return renderDetail(stdout, detail)
}

func runServe(ctx context.Context, app *App, args []string, _ io.Writer) error {
	if len(args) > 0 {
		return usageError("serve: unexpected arguments %v", args)
	}

	app.Logger.Info("Starting application", logger.String("app", app.String()))

	srv := server.NewGracefulServer(app.Echo(), app.Logger,
		app.Config.Server.Host, app.Config.Server.Port, app.Config.Server.ShutdownTimeout)
	return srv.Run(ctx)
}
