package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/daumdict/internal/domain"
)

// ReadWordList returns the normalized, non-blank lines of r in order.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := domain.NormalizeWord(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// ReadWordListFile opens path and reads it with ReadWordList.
func ReadWordListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return ReadWordList(f)
}
