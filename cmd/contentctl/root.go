package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/bootstrap"
	"github.com/yigit/forensicsite/internal/config"
	"github.com/yigit/forensicsite/internal/pkg/logger"
)

// env is what a command runs against: the loaded registry over the configured store.
type env struct {
	cfg      *config.Config
	storage  *bootstrap.Storage
	registry *content.Registry
}

func (e *env) close() {
	e.storage.Close()
}

type cli struct {
	in         io.Reader
	out        io.Writer
	configPath string
	verbose    bool
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}

	root := &cobra.Command{
		Use:           "contentctl",
		Short:         "Inspect and maintain the institute's page content",
		Long:          "contentctl reads and writes the page documents in the configured content store without running the web server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.configPath, "config", bootstrap.DefaultConfigPath, "config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log store activity to stderr")

	root.AddCommand(
		c.realmsCmd(),
		c.showCmd(),
		c.resetCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.hashPasswordCmd(),
	)
	return root
}

// open loads the configuration and the page registry. Callers must close the env.
func (c *cli) open(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := logger.ErrorLevel
	if c.verbose {
		level = logger.DebugLevel
	}
	lgr := logger.Configure(logger.Config{Level: level, Pretty: true, Output: os.Stderr})

	storage, err := bootstrap.SetupStorage(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	registry := bootstrap.NewRegistry(cfg, storage)
	registry.LoadAll(ctx)

	return &env{cfg: cfg, storage: storage, registry: registry}, nil
}
