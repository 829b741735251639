package main

import (
	"context"

	"github.com/cannarn/Sched-Shifter/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the schedule HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			gin.SetMode(cfg.Server.Mode)

			router := api.NewRouter(&api.Handler{
				Service: newService(),
				Logger:  logger,
			})

			srv := api.NewServer(addr, router, cfg.Server.GetShutdownTimeout(), logger)
			return srv.Run(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
