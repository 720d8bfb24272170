// Package cmd implements the CLI commands for PDFPipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "pdfpipe",
	Short: "PDFPipe — convert PDF files into normalized text records",
	Long: `PDFPipe extracts text from PDF files via the opendataloader-pdf engine and
converts it into JSON, Markdown, PDF, or Embeddings, one record per page.

Usage:
  pdfpipe extract <file|dir|url>... [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for OPENDATALOADER_JAR / OPENDATALOADER_JAVA.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
