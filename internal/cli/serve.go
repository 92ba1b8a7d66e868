package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"soc-api/internal/server"
	"soc-api/internal/sheets"
	"soc-api/internal/tgbot"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			st, err := opts.openStore()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var pub server.Publisher
			if cfg.SheetsEnabled() {
				sh, err := sheets.New(ctx, cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
				if err != nil {
					return fmt.Errorf("sheets: %w", err)
				}
				pub = sh
				log.Printf("publishing to spreadsheet %s", sh.SpreadsheetID())
			}

			var notify server.Notifier
			if cfg.TelegramEnabled() {
				n, err := tgbot.New(cfg)
				if err != nil {
					return fmt.Errorf("telegram: %w", err)
				}
				notify = n
			}

			httpSrv := server.New(cfg, st, pub, notify)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("HTTP listening on %s", cfg.HTTPAddr)
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}
			log.Println("shutting down...")

			ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(ctxTimeout)

			log.Println("bye")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
