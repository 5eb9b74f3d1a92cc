package report

import (
	"fmt"
	"strings"

	"github.com/feral-file/nft-holders/internal/adapter"
	"github.com/feral-file/nft-holders/internal/domain"
)

const (
	HEADER    = "NFT,Address"
	FILE_MODE = 0o644
)

// Render builds the CSV document for the given holdings.
// Rows are joined by newlines without a trailing one; values are never quoted.
func Render(entries []domain.Holding) []byte {
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.TokenID+","+e.Address)
	}

	var b strings.Builder
	b.WriteString(HEADER)
	b.WriteString("\n")
	b.WriteString(strings.Join(rows, "\n"))

	return []byte(b.String())
}

// CSVWriter writes the holder report to a single file
type CSVWriter struct {
	fs   adapter.FileSystem
	path string
}

// NewCSVWriter creates a writer targeting path
func NewCSVWriter(fs adapter.FileSystem, path string) *CSVWriter {
	return &CSVWriter{
		fs:   fs,
		path: path,
	}
}

// Path returns the output file path
func (w *CSVWriter) Path() string {
	return w.path
}

// Write renders holders and writes the whole document in one call, replacing any existing file
func (w *CSVWriter) Write(holders *domain.HolderMap) error {
	if err := w.fs.WriteFile(w.path, Render(holders.Entries()), FILE_MODE); err != nil {
		return fmt.Errorf("failed to write report %s: %w", w.path, err)
	}

	return nil
}
