// Package config owns viper wiring: where the data file lives, whether the
// save history is on, and the global flags every command shares.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cjsmith-dev/notetree/pkg/app"
	"github.com/cjsmith-dev/notetree/pkg/prompt"
	"github.com/cjsmith-dev/notetree/pkg/store"
)

var (
	cfgFile          string
	dataFileOverride string
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "notetree")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NOTETREE")

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "notetree")
	viper.SetDefault("data_file", filepath.Join(dataDir, "notes.json"))
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.path", filepath.Join(dataDir, "history.db"))

	// Missing config file is fine; defaults cover everything.
	_ = viper.ReadInConfig()
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/notetree/config.yaml)")
	cmd.PersistentFlags().StringVarP(&dataFileOverride, "file", "f", "", "Override the notes data file")
}

func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// DataFile resolves the notes file location: flag first, then config.
func DataFile() string {
	if dataFileOverride != "" {
		return dataFileOverride
	}
	return viper.GetString("data_file")
}

// HistoryEnabled reports whether saves are archived.
func HistoryEnabled() bool {
	return viper.GetBool("history.enabled")
}

// HistoryPath returns the archive database location.
func HistoryPath() string {
	return viper.GetString("history.path")
}

// NewStore builds the file store, attaching the snapshot archive when
// enabled.
func NewStore(log *logrus.Logger) (*store.FileStore, error) {
	fileStore := store.NewFileStore(DataFile(), log)
	if HistoryEnabled() {
		history, err := store.OpenHistory(HistoryPath())
		if err != nil {
			return nil, fmt.Errorf("open save history: %w", err)
		}
		fileStore = fileStore.WithHistory(history)
	}
	return fileStore, nil
}

// NewApp builds a fully wired interactive app.
func NewApp() (*app.App, error) {
	log := NewLogger()
	fileStore, err := NewStore(log)
	if err != nil {
		return nil, err
	}
	return &app.App{
		Store:    fileStore,
		Prompter: prompt.NewTerminal(),
		Log:      log,
		Out:      os.Stdout,
	}, nil
}
