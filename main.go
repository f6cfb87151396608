// Package main is the entry point for the gx CLI application.
// gx reads the local repository's commit history and branch metadata and
// renders the current stack together with each branch's upstream chain.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/gx-cli/gx/cmd"
	"github.com/gx-cli/gx/internal/adapters/git"
	logadapter "github.com/gx-cli/gx/internal/adapters/logger"
	"github.com/gx-cli/gx/internal/adapters/output"
	"github.com/gx-cli/gx/internal/domain"
	"github.com/gx-cli/gx/internal/infrastructure/config"
	"github.com/gx-cli/gx/internal/usecases"
)

func main() {
	// Wire up production dependencies
	deps := &cmd.Dependencies{
		LoggerFactory: func() cmd.Logger {
			return newLogger()
		},

		ConfigLoader: func() (*cmd.AppConfig, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return &cmd.AppConfig{
				LogLevel:   cfg.LogLevel,
				LogAppName: cfg.LogAppName,
				NoColor:    cfg.NoColor,
			}, nil
		},

		GitRepoFactory: func(path string, log cmd.Logger) (domain.LocalGitRepository, error) {
			return git.NewGoGitRepository(path, log)
		},

		PresenterFactory: func(cfg *cmd.AppConfig) domain.Presenter {
			return output.NewPresenter(output.WithColor(!cfg.NoColor))
		},

		ListerFactory: func(
			repo domain.LocalGitRepository,
			presenter domain.Presenter,
			log cmd.Logger,
		) domain.StackLister {
			return usecases.NewStackLister(repo, presenter, log)
		},

		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	cmd.SetDefaultDependencies(deps)
	cmd.Execute()
}

// newLogger builds the shared zap-backed logger. Falls back to a no-op
// adapter when the logger cannot be constructed; the listing itself never
// depends on logging.
func newLogger() cmd.Logger {
	level := os.Getenv(config.EnvLogLevel)
	if level == "" {
		level = config.DefaultLogLevel
	}
	appName := os.Getenv(config.EnvLogAppName)
	if appName == "" {
		appName = config.DefaultLogAppName
	}

	zl, err := logadapter.NewZapLogger(level, appName)
	if err != nil {
		zl = zap.NewNop()
	}
	return logadapter.NewZapAdapter(zl)
}
