package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/simaogato/statflow-etl/internal/adapter/console"
	"github.com/simaogato/statflow-etl/internal/config"
	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
	"github.com/simaogato/statflow-etl/internal/usecase/report"
	"github.com/simaogato/statflow-etl/internal/usecase/seeder"
)

// errBranchFailed marks a run where at least one dataset could not be stored or reported
var errBranchFailed = errors.New("dataset branch failed")

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	appLogger = appLogger.With("run_id", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err = run(ctx, cfg, os.Stdout, appLogger)
	stop()
	if err != nil {
		appLogger.Error("Pipeline failed", "error", err)
		appLogger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Pipeline completed")
	appLogger.Sync()
}

// committer writes a prepared dataset to its store
type committer interface {
	Commit(ctx context.Context) (*seeder.Result, error)
}

// branch is one dataset's prepare and report steps
type branch struct {
	dataset string
	prepare func(ctx context.Context) (committer, error)
	report  func(ctx context.Context) error
}

// run reads the sources of every empty store, then writes them, then prints the
// equity report followed by the player report.
// A missing source aborts the run before any store is written. A store failure
// skips only its dataset's report and makes run return errBranchFailed.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer, log *logger.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open stores: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("Failed to close stores", "error", err)
		}
	}()

	datasetSeeder := seeder.NewDatasetSeeder(
		st.players,
		st.equities,
		cfg.Resolve(cfg.Sources.Players),
		cfg.Resolve(cfg.Sources.Equities),
		log,
	)
	reports := report.NewReportService(st.players, st.equities)
	printer := console.NewPrinter(stdout)

	branches := []branch{
		{
			dataset: domain.DatasetEquities,
			prepare: func(ctx context.Context) (committer, error) {
				return datasetSeeder.PrepareEquities(ctx)
			},
			report: func(ctx context.Context) error {
				counts, err := reports.TickersByCountry(ctx)
				if err != nil {
					return err
				}
				return printer.TickersByCountry(counts)
			},
		},
		{
			dataset: domain.DatasetPlayers,
			prepare: func(ctx context.Context) (committer, error) {
				return datasetSeeder.PreparePlayers(ctx)
			},
			report: func(ctx context.Context) error {
				entries, err := reports.SalaryByBattingAverage(ctx)
				if err != nil {
					return err
				}
				return printer.SalaryByBattingAverage(entries)
			},
		},
	}

	var failed []string
	type prepared struct {
		branch
		batch committer
	}
	ready := make([]prepared, 0, len(branches))
	for _, b := range branches {
		batch, err := b.prepare(ctx)
		if err != nil {
			if !isStoreFailure(err) {
				return err
			}
			log.Error("Failed to prepare dataset", "dataset", b.dataset, "error", err)
			failed = append(failed, b.dataset)
			continue
		}
		ready = append(ready, prepared{branch: b, batch: batch})
	}

	seeded := make([]branch, 0, len(ready))
	for _, p := range ready {
		if _, err := p.batch.Commit(ctx); err != nil {
			if !isStoreFailure(err) {
				return err
			}
			log.Error("Failed to seed dataset", "dataset", p.dataset, "error", err)
			failed = append(failed, p.dataset)
			continue
		}
		seeded = append(seeded, p.branch)
	}

	for _, b := range seeded {
		if err := b.report(ctx); err != nil {
			if !isStoreFailure(err) {
				return err
			}
			log.Error("Failed to build report", "dataset", b.dataset, "error", err)
			failed = append(failed, b.dataset)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", errBranchFailed, strings.Join(failed, ", "))
	}
	return nil
}

func isStoreFailure(err error) bool {
	var storeErr *domain.StoreError
	return errors.As(err, &storeErr)
}
