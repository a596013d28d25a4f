package main

import (
	"github.com/spf13/cobra"

	handler "github.com/privault/privault/internal/handler/http"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the loopback HTTP facade",
	Long: `Serve exposes the vault engine as a JSON API bound to a loopback
address, for local frontends that cannot link the engine directly. The
facade performs no authentication; config validation rejects non-loopback
listen addresses.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.NewLogger("privault-http")

		eng, err := buildEngine(cmd.Context(), log)
		if err != nil {
			log.Err(err).Msg("engine bootstrap failed")
			return err
		}

		srv := server.NewServer(handler.NewHandler(eng.lifecycle, log).Init(), eng.cfg.Server, log)
		srv.RunServer()
		return nil
	},
}

func init() {
	pf := serveCmd.Flags()
	pf.StringVarP(&flagCfg.Server.Address, "address", "a", "", "loopback facade address host:port")
	pf.DurationVar(&flagCfg.Server.RequestTimeout, "request-timeout", 0, "facade request timeout (e.g. 30s)")
}
