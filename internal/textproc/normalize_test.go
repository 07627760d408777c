package textproc_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"mailtriage/internal/textproc"
)

var samples = []string{
	"",
	"   ",
	"Preciso de uma atualização sobre o chamado 12345, por favor.",
	"Feliz Natal a toda equipe!",
	"Hi team,\n\nCould you please send the Q3 report by 2024-10-01? Thanks!!!",
	"URGENTE: o sistema caiu às 14h30 -- favor verificar o servidor #42",
	"abc123def 4567 x1y2z3 ...,,,;;; ---",
	"Ｆｕｌｌｗｉｄｔｈ ＬＥＴＴＥＲＳ and ǅemal Титлы",
	"e-mail@example.com http://example.com/path?q=1",
}

func TestNormalize_Example(t *testing.T) {
	got := textproc.Normalize("Preciso de uma atualização sobre o chamado 12345, por favor.")
	assert.Equal(t, "preciso atualização sobre chamado favor", got)
}

func TestNormalize_EnglishStopWords(t *testing.T) {
	got := textproc.Normalize("Could you please send the report to them before Friday?")
	assert.Equal(t, "could please send report friday", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", textproc.Normalize(""))
	assert.Equal(t, "", textproc.Normalize("12 34 !! ?"))
	assert.Empty(t, textproc.Tokens("a e o"))
}

func TestNormalize_SplitsOnDigitsAndPunctuation(t *testing.T) {
	assert.Equal(t, "abc def", textproc.Normalize("abc123def"))
	assert.Equal(t, "mail example", textproc.Normalize("e-mail@example.com"))
	assert.Equal(t, "suporte empresa", textproc.Normalize("suporte@empresa.br"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range samples {
		once := textproc.Normalize(s)
		assert.Equal(t, once, textproc.Normalize(once), "input %q", s)
	}
}

func TestNormalize_TokenProperties(t *testing.T) {
	for _, s := range samples {
		for _, tok := range strings.Fields(textproc.Normalize(s)) {
			assert.Greater(t, utf8.RuneCountInString(tok), 2, "token %q from %q", tok, s)
			assert.False(t, textproc.IsStopWord(tok), "stop word %q from %q", tok, s)
			for _, r := range tok {
				assert.False(t, unicode.IsDigit(r), "digit in %q from %q", tok, s)
				assert.False(t, unicode.IsPunct(r), "punctuation in %q from %q", tok, s)
			}
			assert.Equal(t, strings.ToLower(tok), tok)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"não", "você", "estão", "the", "ourselves", "para"} {
		assert.True(t, textproc.IsStopWord(w), w)
	}
	for _, w := range []string{"chamado", "report", "urgente"} {
		assert.False(t, textproc.IsStopWord(w), w)
	}
}
