// Package chunk splits record text into token-sized chunks for embedding.
// Uses a simple whitespace tokenizer (words ≈ tokens).
package chunk

import "strings"

const defaultChunkSize = 512

// Chunker splits text into fixed-size token chunks with optional overlap.
type Chunker struct {
	ChunkSize int // number of tokens (words) per chunk
	Overlap   int // number of tokens repeated between adjacent chunks
}

// New creates a Chunker with the given chunk size and overlap.
// Size defaults to 512 if non-positive; invalid overlap is dropped.
func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &Chunker{ChunkSize: chunkSize, Overlap: overlap}
}

// Chunk splits the input text into slices of at most ChunkSize words.
// Each chunk is a contiguous block of words joined by spaces; adjacent
// chunks share Overlap words.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := c.ChunkSize - c.Overlap
	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + c.ChunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
