package cli

import (
	"github.com/spf13/cobra"

	"github.com/blastbay/mazelib/internal/server"
)

// newServeCmd creates the serve command for running the HTTP maze API.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		maxDim  uint32
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Long: `Start an HTTP server exposing maze generation.

GET /v1/maze?width=20&height=10&seed=42&threshold=30&format=json
returns the maze in the requested format (json, text or svg).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := server.New(server.Options{
				Addr:   addr,
				Logger: logger,
				Cache:  openCache(noCache, logger),
				MaxDim: maxDim,
			})
			logger.Info("serving mazes", "addr", addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().Uint32Var(&maxDim, "max-dim", 500, "largest accepted width or height")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the rendered-artifact cache")

	return cmd
}
