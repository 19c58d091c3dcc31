package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/wsapix/eventx"
	"github.com/Abraxas-365/wsapix/logx"
	"github.com/Abraxas-365/wsapix/serverx"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the webhook, the action API and the catalog over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides server.addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	_ = app.Bus.Subscribe(ctx, eventx.Wildcard, func(ctx context.Context, e eventx.Event) error {
		if !logx.IsLevelEnabled(logx.DebugLevel) {
			return nil
		}
		data, err := eventx.ToJSON(e)
		if err != nil {
			return err
		}
		logx.Debug("event %s", data)
		return nil
	})

	srv := serverx.New(serverx.Config{
		WebhookPath: app.Settings.Server.WebhookPath,
		BaseURL:     app.Settings.Gateway.BaseURL,
	}, app.Router, app.Translator, app.Docs)

	addr := app.Settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
