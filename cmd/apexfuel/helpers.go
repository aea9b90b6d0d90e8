package apexfuel

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/saadjs/apexfuel/internal/app"
	"github.com/saadjs/apexfuel/internal/config"
	"github.com/saadjs/apexfuel/internal/service"
	"github.com/saadjs/apexfuel/internal/store"
)

// cfg is resolved once per invocation by setup.
var (
	cfg      config.Config
	setupRan bool
)

// setup loads .env and the config file once per invocation.
func setup() error {
	if setupRan {
		return nil
	}
	_ = godotenv.Load()
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}
	setupRan = true
	return nil
}

// withStore opens the store, runs initialization (seeding, normalization,
// day rollover, ready gate), and hands the ready store to run.
func withStore(run func(*store.Store) error) error {
	if err := setup(); err != nil {
		return err
	}
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	st, err := store.Open(path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := service.Initialize(st, logger, time.Now()); err != nil {
		return err
	}
	return run(st)
}

func loadConfig() (config.Config, error) {
	path, err := app.DefaultConfigPath()
	if err != nil {
		return config.Config{HistoryDays: config.DefaultHistoryDays}, nil
	}
	return config.Load(path)
}

// resolveStorePath picks the store location: flag, then APEXFUEL_DB, then the
// config file, then the per-user default.
func resolveStorePath() (string, error) {
	if err := setup(); err != nil {
		return "", err
	}
	if strings.TrimSpace(storePath) != "" {
		return storePath, nil
	}
	if env := strings.TrimSpace(os.Getenv("APEXFUEL_DB")); env != "" {
		return env, nil
	}
	if strings.TrimSpace(cfg.StorePath) != "" {
		return cfg.StorePath, nil
	}
	return app.DefaultStorePath()
}

func newLogger() *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// dateKeyOrToday resolves an optional --date flag to a ledger key.
func dateKeyOrToday(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return service.DateKey(time.Now()), nil
	}
	t, err := service.ParseDateKey(value)
	if err != nil {
		return "", err
	}
	return service.DateKey(t), nil
}

// parseGrams parses a user-entered gram amount. Unparseable or negative
// input clamps to zero rather than failing the whole command.
func parseGrams(value string) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// historyWindow resolves the chart window: flag when set, config default
// otherwise.
func historyWindow(flagDays int) int {
	if flagDays > 0 {
		return flagDays
	}
	if cfg.HistoryDays > 0 {
		return cfg.HistoryDays
	}
	return config.DefaultHistoryDays
}

func formatEntryTime(millis int64) string {
	return time.UnixMilli(millis).Local().Format("15:04")
}

func requirePositive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}
