package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paramedit/internal/catalog"
	"github.com/alexisbeaulieu97/paramedit/internal/config"
	"github.com/alexisbeaulieu97/paramedit/internal/editor"
	"github.com/alexisbeaulieu97/paramedit/internal/logger"
	"github.com/alexisbeaulieu97/paramedit/internal/model"
)

// AppContext bundles the services a command needs, built from the editor document.
type AppContext struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Initial model.Model
	Logger  *logger.Logger
}

// newAppContext loads the editor document named by flags and derives the
// catalog, initial snapshot and logger from it. Logs go to logOut.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	environ, err := loadEnviron(flags.envFile)
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("reading env file %q", flags.envFile), err, "Check that the file exists and uses KEY=VALUE lines.")
	}
	overrides, err := config.ParseEnv(environ)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "reading PARAMEDIT_* environment", err, "Unset the variable or give it a valid value.")
	}

	configPath := flags.configPath
	if configPath == "" {
		configPath = overrides.ConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading editor document", err, "Fix the configuration errors shown above and try again.")
	}
	overrides.Apply(&cfg.Settings)

	level := cfg.Settings.EffectiveLogLevel()
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Settings.EffectiveHumanReadable(),
		Writer:        logOut,
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for settings.log_level.")
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building parameter catalog", err, "Check the parameters section of the editor document.")
	}
	initial, err := cfg.InitialModel(cat)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building initial snapshot", err, "Check the initial section of the editor document.")
	}

	log = log.With("command", cmd.Name())
	log.Debug("editor document loaded", "config_path", configPath, "parameters", cat.Len(), "values", initial.Len())

	return &AppContext{Config: cfg, Catalog: cat, Initial: initial, Logger: log}, nil
}

// loadEnviron returns the process environment, extended with the entries of
// the dotenv file at path that the process does not already set.
func loadEnviron(path string) (map[string]string, error) {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environ[key] = value
		}
	}
	if path == "" {
		return environ, nil
	}

	fromFile, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	for key, value := range fromFile {
		if _, set := environ[key]; !set {
			environ[key] = value
		}
	}
	return environ, nil
}

// NewSession starts an editing session over the initial snapshot.
func (a *AppContext) NewSession() *editor.Session {
	return editor.NewSession(a.Catalog, a.Initial, editor.WithLogger(a.Logger))
}
