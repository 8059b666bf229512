package document

// Shared test helpers for the document package.

import (
	"crypto/md5"
	"crypto/rc4"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// ---- assertion helpers -----------------------------------------------------

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

// ---- file factories --------------------------------------------------------

// writeTempFile writes content to a temp file with the given name and returns
// its path. The file is cleaned up automatically when the test ends.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writeTempFile: %v", err)
	}
	return path
}

// makePDF builds a minimal single-font PDF with one page per entry of pages
// and one text-showing operation per line, and returns its path. Object
// offsets for the xref table are computed while writing, so the file is a
// structurally valid PDF the parser accepts without recovery heuristics.
func makePDF(t *testing.T, pages ...[]string) string {
	t.Helper()
	return buildPDF(t, nil, pages)
}

// makeEncryptedPDF builds the same document as makePDF but protected by the
// standard security handler (RC4, 128-bit, revision 3) with the given string
// as both user and owner password.
func makeEncryptedPDF(t *testing.T, password string, pages ...[]string) string {
	t.Helper()
	return buildPDF(t, newPDFCrypt(password), pages)
}

func buildPDF(t *testing.T, crypt *pdfCrypt, pages [][]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := map[int]int{}

	// Object numbering: 1 catalog, 2 pages root, then per page a page object
	// and a contents object, the shared font object, and (when encrypting)
	// the Encrypt dictionary last.
	pageObj := func(i int) int { return 3 + 2*i }
	contObj := func(i int) int { return 4 + 2*i }
	fontObj := 3 + 2*len(pages)
	maxObj := fontObj
	if crypt != nil {
		maxObj++
	}

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [")
	for i := range pages {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.Itoa(pageObj(i)) + " 0 R")
	}
	b.WriteString("] /Count " + strconv.Itoa(len(pages)) + " >>\nendobj\n")

	for i, lines := range pages {
		offsets[pageObj(i)] = b.Len()
		b.WriteString(strconv.Itoa(pageObj(i)) + " 0 obj\n")
		b.WriteString("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents " +
			strconv.Itoa(contObj(i)) + " 0 R /Resources << /Font << /F1 " +
			strconv.Itoa(fontObj) + " 0 R >> >> >>\nendobj\n")

		stream := []byte(contentStream(lines))
		if crypt != nil {
			stream = crypt.encryptStream(contObj(i), stream)
		}
		offsets[contObj(i)] = b.Len()
		b.WriteString(strconv.Itoa(contObj(i)) + " 0 obj\n")
		b.WriteString("<< /Length " + strconv.Itoa(len(stream)) + " >>\nstream\n")
		b.Write(stream)
		b.WriteString("\nendstream\nendobj\n")
	}

	offsets[fontObj] = b.Len()
	b.WriteString(strconv.Itoa(fontObj) + " 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	if crypt != nil {
		encObj := maxObj
		offsets[encObj] = b.Len()
		b.WriteString(strconv.Itoa(encObj) + " 0 obj\n")
		b.WriteString("<< /Filter /Standard /V 2 /R 3 /Length 128 /P " +
			strconv.Itoa(int(testPermissions)) +
			" /O <" + hex.EncodeToString(crypt.o) + ">" +
			" /U <" + hex.EncodeToString(crypt.u) + "> >>\nendobj\n")
	}

	xrefStart := b.Len()
	b.WriteString("xref\n0 " + strconv.Itoa(maxObj+1) + "\n")
	b.WriteString(pad10(0) + " 65535 f \n")
	for i := 1; i <= maxObj; i++ {
		b.WriteString(pad10(offsets[i]) + " 00000 n \n")
	}
	b.WriteString("trailer\n<< /Root 1 0 R /Size " + strconv.Itoa(maxObj+1))
	if crypt != nil {
		id := hex.EncodeToString(testDocID)
		b.WriteString(" /Encrypt " + strconv.Itoa(maxObj) + " 0 R /ID [<" + id + "> <" + id + ">]")
	}
	b.WriteString(" >>\nstartxref\n" + strconv.Itoa(xrefStart) + "\n%%EOF\n")

	return writeTempFile(t, "test.pdf", b.String())
}

// contentStream renders one Tj per line at descending Y positions.
func contentStream(lines []string) string {
	var b strings.Builder
	b.WriteString("BT /F1 12 Tf\n")
	for i, line := range lines {
		y := 720 - 14*i
		b.WriteString("1 0 0 1 72 " + strconv.Itoa(y) + " Tm (" + escapePDFString(line) + ") Tj\n")
	}
	b.WriteString("ET\n")
	return b.String()
}

func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// pad10 formats n as a 10-digit zero-padded string (xref format).
func pad10(n int) string {
	s := strconv.Itoa(n)
	if len(s) >= 10 {
		return s
	}
	return strings.Repeat("0", 10-len(s)) + s
}

// ---- standard security handler (PDF 32000-1:2008 §7.6.3) -------------------

// testPermissions is the /P value baked into encrypted fixtures.
const testPermissions int32 = -4

// testDocID is the fixed /ID written into encrypted fixtures.
var testDocID = []byte{
	0x4f, 0x9c, 0x1b, 0x22, 0x7a, 0x30, 0x55, 0xe1,
	0x88, 0x0d, 0x6b, 0x3c, 0x91, 0x47, 0xa5, 0x5e,
}

// passwordPad is the standard 32-byte password padding string.
var passwordPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41, 0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80, 0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

// pdfCrypt holds the document encryption key and the /O and /U entries for a
// revision-3, 128-bit RC4 standard security handler.
type pdfCrypt struct {
	key []byte
	o   []byte
	u   []byte
}

// newPDFCrypt derives the encryption parameters for a document protected
// with password as both the user and owner password (algorithms 3.2-3.5 of
// the PDF 1.7 reference, revision 3).
func newPDFCrypt(password string) *pdfCrypt {
	// /O: RC4 of the padded user password under a key derived from the
	// owner password.
	oh := md5.Sum(padPassword(password))
	for i := 0; i < 50; i++ {
		oh = md5.Sum(oh[:])
	}
	o := padPassword(password)
	rc4Apply(oh[:16], o)
	for i := 1; i <= 19; i++ {
		rc4Apply(xorKey(oh[:16], byte(i)), o)
	}

	// Document encryption key.
	kh := md5.New()
	kh.Write(padPassword(password))
	kh.Write(o)
	perms := testPermissions
	p := uint32(perms)
	kh.Write([]byte{byte(p), byte(p >> 8), byte(p >> 16), byte(p >> 24)})
	kh.Write(testDocID)
	key := kh.Sum(nil)
	for i := 0; i < 50; i++ {
		sum := md5.Sum(key[:16])
		key = sum[:]
	}
	key = key[:16]

	// /U: the readers we care about compare only the first 16 bytes, the
	// rest is arbitrary padding.
	uh := md5.New()
	uh.Write(passwordPad)
	uh.Write(testDocID)
	u := uh.Sum(nil)
	rc4Apply(key, u)
	for i := 1; i <= 19; i++ {
		rc4Apply(xorKey(key, byte(i)), u)
	}
	u = append(u, make([]byte, 16)...)

	return &pdfCrypt{key: key, o: o, u: u}
}

// encryptStream encrypts stream data of the given object (generation 0) with
// the per-object RC4 key: MD5 of the document key, the low three bytes of
// the object number, and the two generation bytes.
func (c *pdfCrypt) encryptStream(objNum int, data []byte) []byte {
	h := md5.New()
	h.Write(c.key)
	h.Write([]byte{byte(objNum), byte(objNum >> 8), byte(objNum >> 16), 0, 0})
	out := make([]byte, len(data))
	copy(out, data)
	rc4Apply(h.Sum(nil), out)
	return out
}

func padPassword(pw string) []byte {
	b := make([]byte, 32)
	n := copy(b, pw)
	copy(b[n:], passwordPad[:32-n])
	return b
}

func xorKey(key []byte, x byte) []byte {
	out := make([]byte, len(key))
	for i, b := range key {
		out[i] = b ^ x
	}
	return out
}

func rc4Apply(key, data []byte) {
	c, err := rc4.NewCipher(key)
	if err != nil {
		panic(err) // key sizes here are fixed and always valid
	}
	c.XORKeyStream(data, data)
}
