package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "textsum",
		Short:         "Extractive text summarizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(summarizeCMD(), tuiCMD(), configCMD())
	if err := root.Execute(); err != nil {
		newLogger(os.Getenv(logLevelEnv)).Error("%v", err)
		os.Exit(1)
	}
}
