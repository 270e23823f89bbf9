package service

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// maxCorpusLineBytes bounds a single corpus line. Token strings grow with
// source size, so the default bufio.Scanner limit of 64KB is far too small
// for fingerprints of large files.
const maxCorpusLineBytes = 16 * 1024 * 1024

// CorpusStore implements the domain.CorpusRepository interface on a JSON
// Lines file: one entry per line, append-only.
type CorpusStore struct{}

// NewCorpusStore creates a new corpus store
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// Load reads all entries from the corpus file
func (c *CorpusStore) Load(path string) ([]domain.CorpusEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewCorpusError(fmt.Sprintf("corpus file not found: %s", path), err)
		}
		return nil, domain.NewCorpusError(fmt.Sprintf("failed to open corpus file: %s", path), err)
	}
	defer file.Close()

	var entries []domain.CorpusEntry

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCorpusLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry domain.CorpusEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, domain.NewCorpusError(fmt.Sprintf("malformed corpus entry at %s:%d", path, lineNo), err)
		}
		if err := entry.Validate(); err != nil {
			return nil, domain.NewCorpusError(fmt.Sprintf("invalid corpus entry at %s:%d", path, lineNo), err)
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, domain.NewCorpusError(fmt.Sprintf("failed to read corpus file: %s", path), err)
	}

	return entries, nil
}

// Append adds one entry to the end of the corpus file, creating the file if
// it does not exist yet
func (c *CorpusStore) Append(path string, entry domain.CorpusEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return domain.NewCorpusError("failed to encode corpus entry", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return domain.NewCorpusError(fmt.Sprintf("failed to open corpus file: %s", path), err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return domain.NewCorpusError("failed to write corpus entry", err)
	}

	return nil
}
