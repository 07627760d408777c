package extract_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/domain"
	"mailtriage/internal/extract"
)

func stage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func assertRemoved(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "staged file %s should be removed", path)
}

func TestExtract_TextUTF8(t *testing.T) {
	path := stage(t, "mail.txt", []byte("\xEF\xBB\xBF  Olá, preciso de ajuda com o chamado.\n"))

	out := extract.New().Extract(path, "txt")

	require.True(t, out.OK(), "failure: %s %v", out.Failure, out.Err)
	assert.Equal(t, "Olá, preciso de ajuda com o chamado.", out.Text)
	assertRemoved(t, path)
}

func TestExtract_TextLatin1Fallback(t *testing.T) {
	path := stage(t, "mail.txt", []byte("Ol\xe1 equipe, a reuni\xe3o foi adiada."))

	out := extract.New().Extract(path, ".TXT")

	require.True(t, out.OK())
	assert.Equal(t, "Olá equipe, a reunião foi adiada.", out.Text)
	assertRemoved(t, path)
}

func TestExtract_TextEmpty(t *testing.T) {
	path := stage(t, "empty.txt", []byte(" \n\t "))

	out := extract.New().Extract(path, "txt")

	assert.False(t, out.OK())
	assert.Equal(t, domain.ExtractionEmptyContent, out.Failure)
	assertRemoved(t, path)
}

func TestExtract_TextMissingFile(t *testing.T) {
	out := extract.New().Extract(filepath.Join(t.TempDir(), "gone.txt"), "txt")

	assert.Equal(t, domain.ExtractionReadFailure, out.Failure)
	assert.Error(t, out.Err)
}

func TestExtract_UnsupportedType(t *testing.T) {
	path := stage(t, "mail.docx", []byte("PK\x03\x04 not really a docx"))

	out := extract.New().Extract(path, "docx")

	assert.Equal(t, domain.ExtractionUnsupportedType, out.Failure)
	assert.ErrorIs(t, out.Error("mail.docx"), domain.ErrExtractionUnsupported)
	assertRemoved(t, path)
}

func TestExtract_UnsupportedTypeNeverReads(t *testing.T) {
	// A read attempt on a missing file would surface as a read failure.
	out := extract.New().Extract(filepath.Join(t.TempDir(), "missing.docx"), "docx")

	assert.Equal(t, domain.ExtractionUnsupportedType, out.Failure)
}

func TestExtract_PDFText(t *testing.T) {
	path := stage(t, "mail.pdf", buildPDF(
		textStream("Hello World from page one"),
		textStream("Second page asks for an update"),
	))

	out := extract.New().Extract(path, "pdf")

	require.True(t, out.OK(), "failure: %s %v", out.Failure, out.Err)
	assert.Contains(t, out.Text, "Hello World from page one")
	assert.Contains(t, out.Text, "Second page asks for an update")
	assert.Less(t, strings.Index(out.Text, "Hello"), strings.Index(out.Text, "Second"))
	assertRemoved(t, path)
}

func TestExtract_PDFWithoutText(t *testing.T) {
	path := stage(t, "scan.pdf", buildPDF("q 100 0 0 100 72 692 cm Q"))

	out := extract.New().Extract(path, "pdf")

	assert.Equal(t, domain.ExtractionEmptyContent, out.Failure)
	assert.ErrorIs(t, out.Error("scan.pdf"), domain.ErrExtractionEmpty)
	assertRemoved(t, path)
}

func TestExtract_PDFCorrupt(t *testing.T) {
	path := stage(t, "broken.pdf", []byte("this is not a pdf at all"))

	out := extract.New().Extract(path, "pdf")

	assert.Equal(t, domain.ExtractionDecodeFailure, out.Failure)
	assertRemoved(t, path)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", extract.NormalizeExt(".PDF"))
	assert.Equal(t, "txt", extract.NormalizeExt(" txt "))
	assert.Equal(t, "", extract.NormalizeExt(""))
}

