// Package cmd — extract command.
// This is the main command that orchestrates the pipeline:
// resolve inputs → convert → normalize records → render → write.
//
// It handles flag validation, renderer selection, and input resolution
// (files, directories, URLs).
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pdfpipe/core"
	"github.com/gaurav-prasanna/pdfpipe/core/convert"
	"github.com/gaurav-prasanna/pdfpipe/core/extract"
	"github.com/gaurav-prasanna/pdfpipe/core/fetch"
	"github.com/gaurav-prasanna/pdfpipe/core/loader"
	"github.com/gaurav-prasanna/pdfpipe/core/normalize"
	"github.com/gaurav-prasanna/pdfpipe/core/output"
	"github.com/gaurav-prasanna/pdfpipe/core/render"
	"github.com/gaurav-prasanna/pdfpipe/discover"
)

// Flag variables.
var (
	flagJSONOut    bool
	flagMarkdown   bool
	flagPDFOut     bool
	flagEmbeddings bool
	flagModel      string
	flagChunkSize  int
	flagOverlap    int
	flagOutputDir  string

	flagFormat         string
	flagSplitPages     bool
	flagNodeRecords    bool
	flagQuiet          bool
	flagPassword       string
	flagSafetyOff      []string
	flagKeepLineBreaks bool
	flagReplaceInvalid string
	flagUseStructTree  bool
	flagTableMethod    string
	flagReadingOrder   string
	flagImageOutput    string
	flagImageFormat    string
	flagTextSeparator  string
	flagMarkdownSep    string
	flagHTMLSeparator  string
	flagHTMLToText     bool
	flagHTMLToMarkdown bool
	flagJarPath        string
	flagJavaBinary     string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file|dir|url>...",
	Short: "Extract text records from PDF inputs",
	Long: `Extract converts PDF files through the opendataloader-pdf engine, splits the
output into page-scoped text records, and writes one output file per input in
the chosen format (JSON, Markdown, PDF, or Embeddings).

Examples:
  pdfpipe extract report.pdf --json
  pdfpipe extract ./invoices --markdown --output_dir ./out
  pdfpipe extract https://example.com/paper.pdf --format markdown --json
  pdfpipe extract report.pdf --embeddings --model nomic-embed-text`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Output format flags (mutually exclusive).
	extractCmd.Flags().BoolVar(&flagJSONOut, "json", false, "Output structured JSON records")
	extractCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	extractCmd.Flags().BoolVar(&flagPDFOut, "pdf", false, "Output a re-rendered PDF")
	extractCmd.Flags().BoolVar(&flagEmbeddings, "embeddings", false, "Output embeddings")

	// Embedding-specific flags.
	extractCmd.Flags().StringVar(&flagModel, "model", "", "Embedding model (required with --embeddings)")
	extractCmd.Flags().IntVar(&flagChunkSize, "chunk_size", 512, "Token chunk size for embeddings")
	extractCmd.Flags().IntVar(&flagOverlap, "chunk_overlap", 0, "Token overlap between chunks")

	// Output directory.
	extractCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")

	// Engine options.
	extractCmd.Flags().StringVar(&flagFormat, "format", "text", "Engine output format: json, text, html, markdown")
	extractCmd.Flags().BoolVar(&flagSplitPages, "split-pages", true, "Emit one record per page instead of one per file")
	extractCmd.Flags().BoolVar(&flagNodeRecords, "node-records", false, "Emit one record per structural node (json format)")
	extractCmd.Flags().BoolVar(&flagQuiet, "engine-quiet", true, "Suppress the engine's own logging")
	extractCmd.Flags().StringVar(&flagPassword, "password", "", "Password for protected input")
	extractCmd.Flags().StringSliceVar(&flagSafetyOff, "content-safety-off", nil,
		"Disable content safety filters: all, hidden-text, off-page, tiny, hidden-ocg")
	extractCmd.Flags().BoolVar(&flagKeepLineBreaks, "keep-line-breaks", false, "Preserve source line breaks")
	extractCmd.Flags().StringVar(&flagReplaceInvalid, "replace-invalid-chars", "", "Substitute for unencodable characters")
	extractCmd.Flags().BoolVar(&flagUseStructTree, "use-struct-tree", false, "Prefer tagged-structure reading order")
	extractCmd.Flags().StringVar(&flagTableMethod, "table-method", "", "Table detection: default or cluster")
	extractCmd.Flags().StringVar(&flagReadingOrder, "reading-order", "", "Reading order algorithm: off or xycut")
	extractCmd.Flags().StringVar(&flagImageOutput, "image-output", "", "Image handling: off, embedded or external")
	extractCmd.Flags().StringVar(&flagImageFormat, "image-format", "", "Image encoding: png or jpeg")
	extractCmd.Flags().StringVar(&flagTextSeparator, "text-page-separator", "", "Page separator template for text output")
	extractCmd.Flags().StringVar(&flagMarkdownSep, "markdown-page-separator", "", "Page separator template for markdown output")
	extractCmd.Flags().StringVar(&flagHTMLSeparator, "html-page-separator", "", "Page separator template for html output")

	// HTML post-processing (mutually exclusive).
	extractCmd.Flags().BoolVar(&flagHTMLToText, "html-text", false, "Strip HTML records to plain text")
	extractCmd.Flags().BoolVar(&flagHTMLToMarkdown, "html-markdown", false, "Convert HTML records to Markdown")

	// Engine location.
	extractCmd.Flags().StringVar(&flagJarPath, "jar", "", "Path to the opendataloader-pdf jar (default: $OPENDATALOADER_JAR)")
	extractCmd.Flags().StringVar(&flagJavaBinary, "java", "", "Java binary (default: $OPENDATALOADER_JAVA or java)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := validateExtractFlags(); err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	inputs, cleanup, err := resolveInputs(ctx, args)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(inputs) == 0 {
		return fmt.Errorf("no PDF inputs found")
	}

	opts := []loader.Option{
		loader.WithFormat(flagFormat),
		loader.WithSplitPages(flagSplitPages),
		loader.WithNodeRecords(flagNodeRecords),
		loader.WithEngineOptions(core.ConvertOptions{
			Quiet:                 flagQuiet,
			ContentSafetyOff:      flagSafetyOff,
			Password:              flagPassword,
			KeepLineBreaks:        flagKeepLineBreaks,
			ReplaceInvalidChars:   flagReplaceInvalid,
			UseStructTree:         flagUseStructTree,
			TableMethod:           flagTableMethod,
			ReadingOrder:          flagReadingOrder,
			TextPageSeparator:     flagTextSeparator,
			MarkdownPageSeparator: flagMarkdownSep,
			HTMLPageSeparator:     flagHTMLSeparator,
			ImageOutput:           flagImageOutput,
			ImageFormat:           flagImageFormat,
		}),
		loader.WithConverter(convert.New(
			convert.WithJar(flagJarPath),
			convert.WithJavaBinary(flagJavaBinary),
			convert.WithLogger(log),
		)),
		loader.WithLogger(log),
	}
	if flagHTMLToText {
		opts = append(opts, loader.WithTransformer(extract.New()))
	}
	if flagHTMLToMarkdown {
		opts = append(opts, loader.WithTransformer(normalize.New()))
	}
	// Loader-level chunking for record outputs; the embeddings renderer
	// chunks on its own.
	if !flagEmbeddings && cmd.Flags().Changed("chunk_size") {
		opts = append(opts, loader.WithChunking(flagChunkSize, flagOverlap))
	}

	records, err := loader.New(inputs, opts...).Records(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Processing %d input(s)\n", len(inputs))

	// Records arrive in per-source order; flush each source's batch once the
	// next source begins.
	var (
		source   string
		batch    []core.Record
		written  int
		errCount int
	)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		data, err := renderer.Render(source, batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Render error for %s: %v\n", source, err)
			errCount++
			return
		}
		path, err := writer.Write(source, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error for %s: %v\n", source, err)
			errCount++
			return
		}
		written++
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}

	for rec := range records {
		if rec.Source != source {
			flush()
			source = rec.Source
			batch = batch[:0]
		}
		batch = append(batch, rec)
	}
	flush()

	if written == 0 {
		return fmt.Errorf("no records extracted from %d input(s)", len(inputs))
	}
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d output(s) failed\n", errCount)
	}
	return nil
}

// resolveInputs expands the command arguments into local PDF paths:
// directories are scanned recursively, URLs are downloaded into a staging
// directory removed by the returned cleanup func.
func resolveInputs(ctx context.Context, args []string) ([]string, func(), error) {
	cleanup := func() {}
	var inputs []string
	var fetcher *fetch.HTTPFetcher
	var staging string

	for _, arg := range args {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			if staging == "" {
				dir, err := os.MkdirTemp("", "pdfpipe-fetch-*")
				if err != nil {
					return nil, cleanup, fmt.Errorf("creating staging directory: %w", err)
				}
				staging = dir
				cleanup = func() { os.RemoveAll(dir) }
				fetcher = fetch.New()
			}
			local, err := fetcher.Fetch(ctx, arg, staging)
			if err != nil {
				return nil, cleanup, fmt.Errorf("downloading %s: %w", arg, err)
			}
			inputs = append(inputs, local)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, cleanup, fmt.Errorf("input %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := discover.PDFs(arg)
			if err != nil {
				return nil, cleanup, fmt.Errorf("scanning %s: %w", arg, err)
			}
			inputs = append(inputs, found...)
			continue
		}
		inputs = append(inputs, arg)
	}
	return inputs, cleanup, nil
}

// validateExtractFlags checks that exactly one output format is chosen and
// that dependent flags are consistent.
func validateExtractFlags() error {
	formatCount := 0
	if flagJSONOut {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagPDFOut {
		formatCount++
	}
	if flagEmbeddings {
		formatCount++
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --json, --markdown, --pdf, or --embeddings")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	// --model is required with --embeddings.
	if flagEmbeddings && flagModel == "" {
		return fmt.Errorf("--model is required when using --embeddings")
	}

	if flagHTMLToText && flagHTMLToMarkdown {
		return fmt.Errorf("--html-text and --html-markdown are mutually exclusive")
	}
	if (flagHTMLToText || flagHTMLToMarkdown) && !strings.EqualFold(flagFormat, "html") {
		return fmt.Errorf("--html-text and --html-markdown require --format html")
	}
	if flagNodeRecords && !strings.EqualFold(flagFormat, "json") {
		return fmt.Errorf("--node-records requires --format json")
	}

	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagJSONOut:
		return render.NewJSONRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDFOut:
		return render.NewPDFRenderer(), nil
	case flagEmbeddings:
		return render.NewEmbeddingsRenderer(flagModel, flagChunkSize), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
