package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BrewWolf/configs"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/schema"
)

type MigrateCmd struct {
	ConfigFile string `default:".BrewWolf.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cliCtx *Context) error {
	logger := newLogger(zap.NewDevelopmentConfig(), cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	return schema.Apply(context.Background(), repo.DB, logger)
}

func newLogger(logConfig zap.Config, debug bool) *zap.Logger {
	logConfig.DisableStacktrace = true

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := logConfig.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
