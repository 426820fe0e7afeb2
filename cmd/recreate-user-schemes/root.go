package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/config"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/failure"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/logging"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/regen"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/vcs"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logCaller  bool
}

// newRootCmd builds the command. Logs are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "recreate-user-schemes",
		Short: "Recreate the user schemes of an Xcode project or workspace",
		Long: `recreate-user-schemes regenerates xcuserdata/<user>.xcuserdatad/xcschemes
for every target of an Xcode project, or of every project in a workspace.

The project path is read from the project_path environment variable. When it
is unset, project_path from the config file or the compiled-in default is used.
An empty project_path is an error.

Examples:
  # Recreate schemes
  project_path=./App.xcodeproj recreate-user-schemes

  # Share schemes when the workspace has none
  RECREATE_SCHEMES_MODE=ensure-shared project_path=./App.xcworkspace recreate-user-schemes

  # Use a config file and show progress
  recreate-user-schemes --config ci.yaml --log-level info`,
		Version:       fmt.Sprintf("%s (commit %s)", version, gitCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecreate(cmd.Context(), opts, logOut)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/recreate-user-schemes/config.yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format: console or json")
	cmd.Flags().BoolVar(&opts.logCaller, "log-caller", false, "annotate log entries with the calling file and line")

	return cmd
}

func runRecreate(ctx context.Context, opts *rootOptions, logOut io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if opts.logFormat != "" {
		format = opts.logFormat
	}
	logger, err := logging.NewFromSettings(level, format, cfg.Logging.Caller || opts.logCaller, logOut)
	if err != nil {
		return failure.Configuration(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx = logging.WithRunID(ctx, uuid.NewString())
	ctx = logging.WithLogger(ctx, logger)

	logger.Debug(ctx, "configuration",
		zap.String("source", cfg.Source),
		zap.Bool("project_path_override", cfg.Override.Set),
		zap.String("project_path", cfg.Override.Value),
		zap.String("default_project_path", cfg.DefaultProjectPath),
		zap.String("mode", cfg.Mode),
		zap.String("user", cfg.User),
		zap.Bool("visible", cfg.Visible),
		zap.Bool("git_status", cfg.GitStatus),
		zap.Bool("log_caller", cfg.Logging.Caller || opts.logCaller),
	)

	path, err := config.ResolveProjectPath(cfg.Override, cfg.DefaultProjectPath)
	if err != nil {
		return err
	}

	var options []regen.Option
	if cfg.GitStatus {
		options = append(options, regen.WithChangeDetector(vcs.NewDetector()))
	}

	r := regen.New(nil, regen.Options{
		Mode:    cfg.Mode,
		User:    cfg.User,
		Visible: cfg.Visible,
	}, options...)

	return r.Run(ctx, path)
}
