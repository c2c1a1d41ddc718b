package main

import (
	"github.com/spf13/cobra"

	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/tui"
)

func newTUICmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal search against a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Log lines would corrupt the alternate screen.
			log.Configure(log.Config{Level: "disabled"})
			return tui.Run(cmd.Context(), tui.NewClient(addr, nil))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8088", "base URL of the ytnext server")
	return cmd
}
