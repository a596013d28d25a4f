package main

import (
	"github.com/spf13/cobra"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// The TUI owns the terminal; logs go to a file next to the
		// executable instead of stdout.
		log := logger.NewFileLogger("privault-tui")

		eng, err := buildEngine(cmd.Context(), log)
		if err != nil {
			log.Err(err).Msg("engine bootstrap failed")
			return err
		}

		return tui.Run(cmd.Context(), eng.lifecycle, log)
	},
}
