package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MUNTAZIR1234/Invoice/internal/app"
	"github.com/MUNTAZIR1234/Invoice/pkg/config"
	"github.com/MUNTAZIR1234/Invoice/pkg/logger"
)

var version = "1.0.0"

// cli carries what every subcommand needs. Services are opened lazily so
// commands like words never touch the store.
type cli struct {
	cfg   *config.Config
	log   *logger.Logger
	repos *app.Repositories
	svc   *app.Services
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	var dataFile string

	root := &cobra.Command{
		Use:   "rentctl",
		Short: "Rent invoicing from the command line",
		Long: `rentctl works on the same data as the API server: it reads the same
configuration (.env, config.env and environment variables) and opens the
configured store (a JSON data file or PostgreSQL).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dataFile != "" {
				cfg.Storage.Driver = config.StorageFile
				cfg.Storage.DataFile = dataFile
			}
			c.cfg = cfg
			c.log = logger.NewWithWriter(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, os.Stderr)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.repos != nil {
				c.repos.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&dataFile, "data-file", "", "use this JSON data file instead of the configured store")

	root.AddCommand(
		newWordsCmd(),
		newCycleCmd(c),
		newNextIDCmd(c),
		newImportCmd(c),
		newExportCmd(c),
		newInvoiceCmd(c),
		newBackupCmd(c),
		newRestoreCmd(c),
	)
	return root
}

// services opens the store on first use.
func (c *cli) services(ctx context.Context) (*app.Services, error) {
	if c.svc != nil {
		return c.svc, nil
	}
	repos, err := app.OpenRepositories(ctx, c.cfg, c.log.Component("storage"))
	if err != nil {
		return nil, err
	}
	svc, err := app.NewServices(c.cfg, repos, c.log)
	if err != nil {
		repos.Close()
		return nil, err
	}
	c.repos, c.svc = repos, svc
	return svc, nil
}

// writeOutput writes data to out, to stdout when out is "-", or to name in
// the current directory when out is empty.
func writeOutput(cmd *cobra.Command, out, name string, data []byte) error {
	if out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if out == "" {
		out = name
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(data))
	return nil
}
