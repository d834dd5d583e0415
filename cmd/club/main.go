package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/internal/export"
	"github.com/nimasrn/clubhouse/internal/handlers"
	"github.com/nimasrn/clubhouse/internal/repository"
	"github.com/nimasrn/clubhouse/internal/services"
	"github.com/nimasrn/clubhouse/pkg/cli"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/nimasrn/clubhouse/pkg/prom"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(config.EnvPath(os.Args[1:]))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err = logger.Configure(config.Get().AppEnv, config.Get().LogLevel); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config.Get(), commandArgs(os.Args[1:]), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "\nusage: club [--env=path] <group> <command> [flags]\n\n")
			newRouter(nil).Usage(os.Stderr)
		}
		logger.Sync()
		os.Exit(1)
	}
}

// run opens the store, executes a single command and closes the store
// again. Metrics are written to the textfile when one is configured.
func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) > 0 && (args[0] == "version" || args[0] == "-version" || args[0] == "--version") {
		_, err := fmt.Fprintf(out, "club %s (%s, %s)\n", version, commit, date)
		return err
	}

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	if err := prom.Create(cfg.AppEnv, cfg.PromNamespace); err != nil {
		logger.Warn("failed to register metrics", "error", err)
	}

	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:          cfg.DBPath,
		BusyTimeoutMs: cfg.DBBusyTimeoutMs,
	}, cfg.AppDebug)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("failed to close store", "error", cerr)
		}
	}()

	r := newRouter(newApp(db, cfg))
	err = r.Dispatch(&cli.Context{Context: ctx, Out: out}, args)

	if cfg.MetricsTextfile != "" {
		if werr := prom.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			logger.Warn("failed to write metrics textfile", "error", werr)
		}
	}
	return err
}

type app struct {
	members   *handlers.MemberHandler
	dues      *handlers.DuesHandler
	finance   *handlers.FinanceHandler
	sponsors  *handlers.SponsorHandler
	dashboard *handlers.DashboardHandler
	exports   *handlers.ExportHandler
	users     *handlers.UserHandler
}

func newApp(db *sqlite.DB, cfg *config.Config) *app {
	club := cfg.Club()

	memberRepo := repository.NewMemberRepository(db)
	duesRepo := repository.NewDuesRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	userRepo := repository.NewUserRepository(db)

	// services
	memberService := services.NewMemberService(memberRepo, club)
	duesService := services.NewDuesService(db, duesRepo, memberRepo, transactionRepo)
	financeService := services.NewFinanceService(transactionRepo, club)
	sponsorService := services.NewSponsorService(sponsorRepo, club)
	dashboardService := services.NewDashboardService(memberRepo, transactionRepo, sponsorRepo, club)
	userService := services.NewUserService(userRepo)

	exporter := export.NewExporter(club, cfg.ExportDir)

	return &app{
		members:   handlers.NewMemberHandler(memberService),
		dues:      handlers.NewDuesHandler(duesService, exporter),
		finance:   handlers.NewFinanceHandler(financeService),
		sponsors:  handlers.NewSponsorHandler(sponsorService),
		dashboard: handlers.NewDashboardHandler(dashboardService),
		exports: handlers.NewExportHandler(handlers.ExportSources{
			Members: memberService,
			Dues:    duesService,
			Finance: financeService,
		}, exporter),
		users: handlers.NewUserHandler(userService),
	}
}

// newRouter registers every command group. A nil app yields a router that
// is only good for printing usage.
func newRouter(a *app) *cli.Router {
	if a == nil {
		a = &app{}
	}
	r := cli.NewRouter()
	r.Use(cli.RecoverMiddleware)
	r.Use(cli.CommandLoggerMiddleware)

	handlers.RegisterMemberCommands(r.Group("member", "members and their payment status"), a.members)
	handlers.RegisterDuesCommands(r.Group("dues", "monthly dues payments"), a.dues)
	handlers.RegisterFinanceCommands(r.Group("txn", "income and expense transactions"), a.finance)
	handlers.RegisterSponsorCommands(r.Group("sponsor", "sponsor contracts"), a.sponsors)
	handlers.RegisterDashboardCommands(r.Group("dashboard", "club summary"), a.dashboard)
	handlers.RegisterExportCommands(r.Group("export", "PDF receipts and CSV listings"), a.exports)
	handlers.RegisterUserCommands(r.Group("user", "operator credentials"), a.users)
	return r
}

// commandArgs drops the --env flag, which is consumed before dispatch.
func commandArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "--env=") {
			continue
		}
		out = append(out, a)
	}
	return out
}
