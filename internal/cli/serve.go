package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankan123basu/CPUXpert/api"
	"github.com/ankan123basu/CPUXpert/internal/store"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			st, err := store.NewSQLiteStore(cfg.DBPath, logger)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(cmd.Context()); err != nil {
				return err
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, st, logger), logger)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.Addr(), "db", cfg.DBPath)
				errCh <- app.Listen(cfg.Addr())
			}()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sig)

			select {
			case err := <-errCh:
				return err
			case s := <-sig:
				logger.Info("shutting down", "signal", s.String())
				return app.ShutdownWithTimeout(shutdownTimeout)
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 9095, "Listen port (overrides config)")
	return cmd
}
