package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsum/internal/logging"
	"textsum/internal/service"
	"textsum/internal/tui"
)

func tuiCMD() *cobra.Command {
	var f appFlags
	cmd := &cobra.Command{
		Use:   "tui file.txt [file.txt ...]",
		Short: "Browse summaries interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd)
			if err != nil {
				return err
			}
			// the terminal belongs to the UI
			svc, err := buildService(cfg, service.CoffeeBreak(nil), logging.NewDiscard())
			if err != nil {
				return err
			}
			docs, err := svc.LoadDocuments(args)
			if err != nil {
				return err
			}
			reports, err := svc.SummarizeDocuments(cmd.Context(), docs)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(tui.New(svc, docs, reports), tea.WithAltScreen()).Run()
			return err
		},
	}
	f.register(cmd)
	return cmd
}
