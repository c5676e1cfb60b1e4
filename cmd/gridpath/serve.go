package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			srv, err := a.server()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			a.logger.Info("serving", zap.String("addr", a.cfg.Server.Addr))

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func (a *app) server() (*server.Server, error) {
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return nil, err
	}

	return server.New(server.Config{
		Addr:            a.cfg.Server.Addr,
		GinMode:         a.cfg.Server.GinMode,
		MaxCells:        a.cfg.Server.MaxCells,
		ShutdownTimeout: a.cfg.GetShutdownTimeout(),
		SearchOptions:   opts,
		Logger:          a.logger,
	}), nil
}
