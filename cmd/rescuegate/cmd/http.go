package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/logging"
	"github.com/rescuegate/rescuegate/internal/metrics"
	"github.com/rescuegate/rescuegate/internal/tracing"
	"github.com/rescuegate/rescuegate/internal/transport/httpsrv"
)

var (
	httpHost string
	httpPort int
	httpDev  bool
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Run the HTTP+SSE JSON-RPC transport",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New()
		m := metrics.New(prometheus.DefaultRegisterer)

		eng, err := buildEngine(config.Overrides{}, logger, m)
		if err != nil {
			return err
		}
		defer eng.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if httpDev {
			providers, err := tracing.Setup(ctx, "rescuegate", "0.1.0", os.Stderr)
			if err != nil {
				return err
			}
			defer providers.Shutdown(context.Background())
		}

		srv := httpsrv.New(eng.Dispatcher(), eng, m, logger, eng.Settings().AuthToken)

		addr := fmt.Sprintf("%s:%d", httpHost, httpPort)
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http transport listening", "addr", addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		}
	},
}

func init() {
	httpCmd.Flags().StringVar(&httpHost, "host", "127.0.0.1", "address to bind")
	httpCmd.Flags().IntVar(&httpPort, "port", 8080, "port to bind")
	httpCmd.Flags().BoolVar(&httpDev, "dev", false, "enable stdout trace/metric exporters")
	rootCmd.AddCommand(httpCmd)
}
