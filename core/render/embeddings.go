// Package render — Embeddings renderer.
// Generates embeddings from extracted records by chunking each record's
// content and calling an Ollama-compatible embedding API for each chunk.
// Output is a human-readable .embeddings.txt file.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/pdfpipe/core"
	"github.com/gaurav-prasanna/pdfpipe/core/chunk"
)

const (
	defaultOllamaURL = "http://localhost:11434/api/embeddings"
	embeddingTimeout = 60 * time.Second
)

// EmbeddingsRenderer generates embeddings from record chunks.
type EmbeddingsRenderer struct {
	Model     string
	ChunkSize int
	client    *http.Client
}

// NewEmbeddingsRenderer creates an EmbeddingsRenderer.
func NewEmbeddingsRenderer(model string, chunkSize int) *EmbeddingsRenderer {
	return &EmbeddingsRenderer{
		Model:     model,
		ChunkSize: chunkSize,
		client:    &http.Client{Timeout: embeddingTimeout},
	}
}

// ollamaRequest is the request body for the Ollama embeddings API.
type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// ollamaResponse is the response body from the Ollama embeddings API.
type ollamaResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Render chunks each record, embeds each chunk, and produces the
// human-readable .embeddings.txt output.
func (r *EmbeddingsRenderer) Render(source string, records []core.Record) ([]byte, error) {
	chunker := chunk.New(r.ChunkSize, 0)

	var buf strings.Builder
	// Write header.
	fmt.Fprintf(&buf, "# source: %s\n", source)
	fmt.Fprintf(&buf, "# model: %s\n", r.Model)
	fmt.Fprintf(&buf, "# chunk_size: %d\n\n", r.ChunkSize)

	ctx := context.Background()
	n := 0
	for _, rec := range records {
		for _, chunkText := range chunker.Chunk(rec.Content) {
			n++
			embedding, err := r.embed(ctx, chunkText)
			if err != nil {
				return nil, fmt.Errorf("embedding chunk %d: %w", n, err)
			}

			fmt.Fprintf(&buf, "--- chunk %d", n)
			if rec.Page > 0 {
				fmt.Fprintf(&buf, " (page %d)", rec.Page)
			}
			fmt.Fprintf(&buf, " ---\n")
			fmt.Fprintf(&buf, "TEXT:\n%s\n\n", chunkText)

			// Format vector.
			vecStrs := make([]string, len(embedding))
			for j, v := range embedding {
				vecStrs[j] = fmt.Sprintf("%.4f", v)
			}
			fmt.Fprintf(&buf, "VECTOR:\n[%s]\n\n", strings.Join(vecStrs, ", "))
		}
	}

	if n == 0 {
		return nil, fmt.Errorf("no content to embed")
	}
	return []byte(buf.String()), nil
}

// Extension returns the file extension for embeddings output.
func (r *EmbeddingsRenderer) Extension() string {
	return ".embeddings.txt"
}

// embed calls the Ollama embedding API for a single text input.
func (r *EmbeddingsRenderer) embed(ctx context.Context, text string) ([]float64, error) {
	reqBody := ollamaRequest{
		Model:  r.Model,
		Prompt: text,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, defaultOllamaURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Ollama API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Ollama API returned %d: %s", resp.StatusCode, string(body))
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return nil, fmt.Errorf("decoding Ollama response: %w", err)
	}

	return ollamaResp.Embedding, nil
}
