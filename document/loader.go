package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tidytable/pdftidy/config"
)

// Loader opens PDF files and turns them into Documents. It enforces the
// configured file-size limit and, when a password is configured, tries it
// against encrypted documents.
type Loader struct {
	cfg *config.Config
}

// NewLoader creates a Loader using environment-driven config.
func NewLoader() *Loader {
	return &Loader{cfg: config.Load()}
}

// LoadFile reads a local PDF file into a Document.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if info.Size() > l.cfg.MaxFileSizeBytes {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), l.cfg.MaxFileSizeBytes)
	}
	if !strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return nil, fmt.Errorf("unsupported format: %s (expected .pdf)", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	r, err := newReader(f, info.Size(), l.cfg.PDFPassword)
	if err != nil {
		return nil, fmt.Errorf("parse pdf %s: %w", filePath, err)
	}

	pages, err := readPages(r)
	if err != nil {
		return nil, err
	}
	return FromPages(pages), nil
}

// newReader constructs a pdf.Reader, offering password as a decryption
// candidate when one is configured. The candidate function returns the
// password once and then an empty string, which tells the library to stop.
func newReader(f *os.File, size int64, password string) (*pdf.Reader, error) {
	if password == "" {
		return pdf.NewReader(f, size)
	}
	return pdf.NewReaderEncrypted(f, size, func() string {
		p := password
		password = ""
		return p
	})
}
