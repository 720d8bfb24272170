// Package convert implements the Converter interface by shelling out to the
// opendataloader-pdf Java engine. The engine is a black box: it takes input
// PDF paths plus conversion flags and writes one output file per input
// (named <stem><ext>) into the target directory.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

const (
	defaultJavaBinary = "java"

	// EnvJar and EnvJava override the engine jar and java binary locations.
	EnvJar  = "OPENDATALOADER_JAR"
	EnvJava = "OPENDATALOADER_JAVA"
)

// JavaEngine invokes the opendataloader-pdf jar via the java runtime.
type JavaEngine struct {
	jarPath string
	javaBin string
	log     *zap.Logger
}

// Option configures a JavaEngine.
type Option func(*JavaEngine)

// WithJar sets the path to the engine jar.
func WithJar(path string) Option {
	return func(e *JavaEngine) {
		if path != "" {
			e.jarPath = path
		}
	}
}

// WithJavaBinary sets the java executable to invoke.
func WithJavaBinary(bin string) Option {
	return func(e *JavaEngine) {
		if bin != "" {
			e.javaBin = bin
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *JavaEngine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates a JavaEngine. The jar path and java binary default to the
// OPENDATALOADER_JAR and OPENDATALOADER_JAVA environment variables.
func New(opts ...Option) *JavaEngine {
	e := &JavaEngine{
		jarPath: os.Getenv(EnvJar),
		javaBin: defaultJavaBinary,
		log:     zap.NewNop(),
	}
	if bin := os.Getenv(EnvJava); bin != "" {
		e.javaBin = bin
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convert runs the engine once for the given inputs, directing output files
// into outputDir. A non-zero exit is returned with the engine's stderr.
func (e *JavaEngine) Convert(ctx context.Context, inputs []string, opts core.ConvertOptions, outputDir string) error {
	if e.jarPath == "" {
		return fmt.Errorf("engine jar not configured (set %s or --jar)", EnvJar)
	}
	if _, err := exec.LookPath(e.javaBin); err != nil {
		return fmt.Errorf("java runtime not found: %w", err)
	}

	args := Args(inputs, opts, outputDir)
	cmd := exec.CommandContext(ctx, e.javaBin, append([]string{"-jar", e.jarPath}, args...)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	e.log.Debug("invoking conversion engine",
		zap.String("java", e.javaBin),
		zap.String("jar", e.jarPath),
		zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("engine failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Args translates ConvertOptions into the engine's command-line flags.
// Zero-valued options are omitted so the engine applies its own defaults.
func Args(inputs []string, opts core.ConvertOptions, outputDir string) []string {
	args := append([]string{}, inputs...)
	args = append(args, "--output", outputDir)

	format := opts.Format
	if format == "" {
		format = core.FormatText
	}
	args = append(args, "--format", string(format))

	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if len(opts.ContentSafetyOff) > 0 {
		args = append(args, "--content-safety-off", strings.Join(opts.ContentSafetyOff, ","))
	}
	if opts.Password != "" {
		args = append(args, "--password", opts.Password)
	}
	if opts.KeepLineBreaks {
		args = append(args, "--keep-line-breaks")
	}
	if opts.ReplaceInvalidChars != "" {
		args = append(args, "--replace-invalid-chars", opts.ReplaceInvalidChars)
	}
	if opts.UseStructTree {
		args = append(args, "--use-struct-tree")
	}
	if opts.TableMethod != "" {
		args = append(args, "--table-method", opts.TableMethod)
	}
	if opts.ReadingOrder != "" {
		args = append(args, "--reading-order", opts.ReadingOrder)
	}
	if opts.TextPageSeparator != "" {
		args = append(args, "--text-page-separator", opts.TextPageSeparator)
	}
	if opts.MarkdownPageSeparator != "" {
		args = append(args, "--markdown-page-separator", opts.MarkdownPageSeparator)
	}
	if opts.HTMLPageSeparator != "" {
		args = append(args, "--html-page-separator", opts.HTMLPageSeparator)
	}
	if opts.ImageOutput != "" {
		args = append(args, "--image-output", opts.ImageOutput)
	}
	if opts.ImageFormat != "" {
		args = append(args, "--image-format", opts.ImageFormat)
	}
	return args
}
