// Package loader orchestrates the extraction pipeline for a set of PDF
// inputs: convert → stage → dispatch by format → assemble records.
//
// Files are processed one at a time and records are yielded lazily, so a
// consumer may act on early pages before later files are converted. Only an
// invalid format terminates a load; engine failures, unreadable outputs, and
// malformed structured output are logged and contained to the file being
// processed, preserving best-effort partial results across a batch.
package loader

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/pdfpipe/core"
	"github.com/gaurav-prasanna/pdfpipe/core/chunk"
	"github.com/gaurav-prasanna/pdfpipe/core/convert"
	"github.com/gaurav-prasanna/pdfpipe/core/split"
	"github.com/gaurav-prasanna/pdfpipe/core/tree"
)

// Loader extracts normalized text records from PDF files.
type Loader struct {
	paths []string

	format       string // validated when iteration begins
	splitPages   bool
	nodeRecords  bool
	engineOpts   core.ConvertOptions
	chunkSize    int
	chunkOverlap int

	converter core.Converter
	transform core.Transformer
	log       *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFormat selects the engine output format (json, text, html, markdown;
// case-insensitive). The default is text. Validation happens when iteration
// begins, not at construction.
func WithFormat(format string) Option {
	return func(l *Loader) { l.format = format }
}

// WithSplitPages controls whether one record is emitted per page (default)
// or one per input file.
func WithSplitPages(enabled bool) Option {
	return func(l *Loader) { l.splitPages = enabled }
}

// WithNodeRecords enables the recursive flattening mode for JSON output:
// one record per structural node with non-empty content, instead of one per
// page.
func WithNodeRecords(enabled bool) Option {
	return func(l *Loader) { l.nodeRecords = enabled }
}

// WithEngineOptions sets the options forwarded to the conversion engine.
// The Format field is ignored; use WithFormat. When page splitting is
// active the per-format page separator is overridden with the internal
// page-break template.
func WithEngineOptions(opts core.ConvertOptions) Option {
	return func(l *Loader) { l.engineOpts = opts }
}

// WithConverter replaces the conversion engine (used by tests and alternate
// engine builds).
func WithConverter(c core.Converter) Option {
	return func(l *Loader) {
		if c != nil {
			l.converter = c
		}
	}
}

// WithTransformer applies a content transform to each flat-format record
// (e.g. HTML → plain text). Transform failures are logged and the original
// content kept.
func WithTransformer(t core.Transformer) Option {
	return func(l *Loader) { l.transform = t }
}

// WithChunking splits each record's content into word windows of the given
// size and overlap, one record per chunk.
func WithChunking(size, overlap int) Option {
	return func(l *Loader) {
		l.chunkSize = size
		l.chunkOverlap = overlap
	}
}

// WithLogger sets the loader logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a Loader for the given input paths.
func New(paths []string, opts ...Option) *Loader {
	l := &Loader{
		paths:      paths,
		splitPages: true,
		converter:  convert.New(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Records validates the configuration and returns a lazy, forward-only,
// single-use sequence of records. An unrecognized format fails here, before
// any engine invocation; no other failure surfaces through the sequence.
func (l *Loader) Records(ctx context.Context) (iter.Seq[core.Record], error) {
	format, err := core.ParseFormat(l.format)
	if err != nil {
		return nil, err
	}
	return func(yield func(core.Record) bool) {
		for _, path := range l.paths {
			if !l.emitFile(ctx, path, format, yield) {
				return
			}
		}
	}, nil
}

// Load materializes the full record sequence.
func (l *Loader) Load(ctx context.Context) ([]core.Record, error) {
	seq, err := l.Records(ctx)
	if err != nil {
		return nil, err
	}
	var records []core.Record
	for rec := range seq {
		records = append(records, rec)
	}
	return records, nil
}

// emitFile converts one input and yields its records. It returns false only
// when the consumer stopped; failures log and return true so the next file
// still runs.
func (l *Loader) emitFile(ctx context.Context, path string, format core.Format, yield func(core.Record) bool) bool {
	scratch, err := os.MkdirTemp("", "pdfpipe-*")
	if err != nil {
		l.log.Error("creating scratch directory", zap.String("input", path), zap.Error(err))
		return true
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			l.log.Warn("removing scratch directory", zap.String("dir", scratch), zap.Error(err))
		}
	}()

	opts := l.engineOptions(format)
	if err := l.converter.Convert(ctx, []string{path}, opts, scratch); err != nil {
		l.log.Error("conversion failed, skipping file", zap.String("input", path), zap.Error(err))
		return true
	}

	outputs, err := filepath.Glob(filepath.Join(scratch, "*"+format.Extension()))
	if err != nil {
		l.log.Error("listing engine output", zap.String("input", path), zap.Error(err))
		return true
	}
	slices.Sort(outputs)
	if len(outputs) == 0 {
		l.log.Warn("engine produced no output", zap.String("input", path))
		return true
	}

	for _, out := range outputs {
		raw, err := os.ReadFile(out)
		if err != nil {
			l.log.Error("reading engine output", zap.String("output", out), zap.Error(err))
			continue
		}
		if err := os.Remove(out); err != nil {
			l.log.Warn("removing consumed output", zap.String("output", out), zap.Error(err))
		}
		for _, rec := range l.assemble(string(raw), path, format) {
			for _, chunked := range l.chunked(rec) {
				if !yield(chunked) {
					return false
				}
			}
		}
	}
	return true
}

// engineOptions builds the per-invocation engine options. In page-split mode
// the internal page-break template replaces any caller-supplied separator
// for the active format, since the splitter must know the exact token to
// parse back out.
func (l *Loader) engineOptions(format core.Format) core.ConvertOptions {
	opts := l.engineOpts
	opts.Format = format
	if l.splitPages {
		switch format {
		case core.FormatText:
			opts.TextPageSeparator = split.DefaultTemplate
		case core.FormatMarkdown:
			opts.MarkdownPageSeparator = split.DefaultTemplate
		case core.FormatHTML:
			opts.HTMLPageSeparator = split.DefaultTemplate
		}
	}
	return opts
}

// assemble turns one engine output into records according to the active
// format and splitting mode.
func (l *Loader) assemble(raw, source string, format core.Format) []core.Record {
	if format == core.FormatJSON {
		return l.assembleJSON(raw, source)
	}

	if !l.splitPages {
		// Whole-file record, emitted even when empty.
		return []core.Record{{Content: l.transformed(raw, source), Source: source, Format: format}}
	}

	pages := split.Pages(raw, split.DefaultTemplate)
	records := make([]core.Record, 0, len(pages))
	for _, page := range pages {
		records = append(records, core.Record{
			Content: l.transformed(page.Text, source),
			Source:  source,
			Format:  format,
			Page:    page.Number,
		})
	}
	return records
}

// assembleJSON handles the structured output path. Malformed JSON degrades
// to a single record carrying the raw output verbatim rather than failing
// the file.
func (l *Loader) assembleJSON(raw, source string) []core.Record {
	if !l.nodeRecords && !l.splitPages {
		return []core.Record{{Content: raw, Source: source, Format: core.FormatJSON}}
	}

	root, err := tree.Parse([]byte(raw))
	if err != nil {
		l.log.Warn("malformed structured output, emitting raw record",
			zap.String("input", source), zap.Error(err))
		return []core.Record{{Content: raw, Source: source, Format: core.FormatJSON}}
	}

	var records []core.Record
	if l.nodeRecords {
		records = tree.Flatten(root, source)
	} else {
		records = tree.GroupPages(root, source)
	}
	for i := range records {
		records[i].Format = core.FormatJSON
	}
	return records
}

// transformed applies the configured content transform, keeping the
// original content when the transform fails.
func (l *Loader) transformed(content, source string) string {
	if l.transform == nil {
		return content
	}
	out, err := l.transform.Transform(content)
	if err != nil {
		l.log.Warn("content transform failed, keeping original",
			zap.String("input", source), zap.Error(err))
		return content
	}
	return out
}

// chunked splits a record into chunk-sized records when chunking is
// configured, preserving metadata on every piece.
func (l *Loader) chunked(rec core.Record) []core.Record {
	if l.chunkSize <= 0 {
		return []core.Record{rec}
	}
	pieces := chunk.New(l.chunkSize, l.chunkOverlap).Chunk(rec.Content)
	if len(pieces) <= 1 {
		return []core.Record{rec}
	}
	records := make([]core.Record, 0, len(pieces))
	for _, piece := range pieces {
		chunked := rec
		chunked.Content = piece
		records = append(records, chunked)
	}
	return records
}
