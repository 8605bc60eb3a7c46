package main

import (
	"github.com/spf13/cobra"

	"textsum/internal/report"
	"textsum/internal/service"
)

func summarizeCMD() *cobra.Command {
	var f appFlags
	cmd := &cobra.Command{
		Use:   "summarize [file.txt ...]",
		Short: "Summarize text files, or stdin when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log.Level)
			svc, err := buildService(cfg, service.CoffeeBreak(nil), logger)
			if err != nil {
				return err
			}
			docs, err := loadInputs(svc, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			reports, err := svc.SummarizeDocuments(cmd.Context(), docs)
			if err != nil {
				return err
			}
			logger.Info("summarized %d document(s)", len(reports))
			return report.Write(cmd.OutOrStdout(), cfg.Output.Format, reports)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or yaml")
	return cmd
}
