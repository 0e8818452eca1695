package bootstrap

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yanqian/protoform/internal/infra/config"
)

// App encapsulates the command line lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	root   *cobra.Command
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, root *cobra.Command) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), root: root}
}

// Run executes the command selected by args and blocks until it returns.
// Cancelling ctx stops in-flight summarization.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	a.root.SetArgs(args)
	a.logger.Debug("command starting", "args", args, "output", a.cfg.Output.Format)
	if err := a.root.ExecuteContext(ctx); err != nil {
		a.logger.Error("command failed", "error", err)
		return err
	}
	return nil
}
