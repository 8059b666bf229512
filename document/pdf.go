package document

// pdf.go — PDF → per-page text via pure-Go text-layer extraction.
//
// Uses github.com/ledongthuc/pdf for parsing. Only the embedded text layer
// is read; scanned (image-only) PDFs require OCR and are not handled here.
//
// Line structure inside a page is reconstructed from positioned text
// fragments: fragments are sorted top-to-bottom, grouped into visual lines
// by a small Y tolerance, and separated by a space wherever a horizontal gap
// opens between fragments on the same line.

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// lineTolerance is the maximum vertical drift (in points) between
	// fragments considered part of the same visual line.
	lineTolerance = 2.0

	// spaceGap is the minimum horizontal gap (in points) between fragments
	// that separates two words.
	spaceGap = 1.0
)

// readPages extracts one text string per physical page. A page that cannot
// be resolved still occupies its slot as an empty string so that page
// numbering stays aligned with the source document.
func readPages(r *pdf.Reader) ([]string, error) {
	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := pageText(p, fonts)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// pageText returns the text of one page with visual lines separated by \n.
// The fonts map is shared across pages so each charmap is parsed once.
func pageText(p pdf.Page, fonts map[string]*pdf.Font) (string, error) {
	if frags := p.Content().Text; len(frags) > 0 {
		return assembleLines(frags), nil
	}

	// No positioned fragments; fall back to the library's plain-text pass.
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}
	text, err := p.GetPlainText(fonts)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\n"), nil
}

// assembleLines orders text fragments top-to-bottom, left-to-right and joins
// them into newline-separated lines. The stable sort preserves the content
// stream order of fragments that share coordinates, which matters for fonts
// that carry no width information.
func assembleLines(frags []pdf.Text) string {
	texts := make([]pdf.Text, len(frags))
	copy(texts, frags)
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var sb strings.Builder
	var y, x float64
	for i, t := range texts {
		switch {
		case i == 0:
		case math.Abs(t.Y-y) > lineTolerance:
			sb.WriteByte('\n')
		case t.X > x+spaceGap:
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		y = t.Y
		x = t.X + t.W
	}
	return sb.String()
}
