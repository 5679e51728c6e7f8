// Package chunker splits review input into fixed-size chunks.
//
// A pull-request diff can exceed what a single model call will accept, so the
// pipeline reviews it in consecutive windows. Splitting happens on rune
// boundaries so a window never cuts a UTF-8 sequence in half.
package chunker

import (
	"github.com/reviewloop/gemini-pr-review/internal/errors"
)

// Split partitions text into consecutive, non-overlapping chunks of exactly
// size runes each, the final chunk holding the remainder. Concatenating the
// returned chunks in order reproduces text exactly. Empty text yields no
// chunks. A non-positive size is rejected with errors.ErrChunkSize.
func Split(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, errors.ErrChunkSize
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks, nil
}
