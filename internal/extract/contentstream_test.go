package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromContentStream(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{"tj", "BT /F1 12 Tf 72 720 Td (Hello World) Tj ET", "Hello World"},
		{"tj array", "BT [(Hel) -20 (lo) 120 ( there)] TJ ET", "Hello there"},
		{"escapes", `BT (a \(paren\) and \\ slash) Tj ET`, `a (paren) and \ slash`},
		{"octal", `BT (caf\351) Tj ET`, "café"},
		{"hex", "BT <48656C6C6F> Tj ET", "Hello"},
		{"utf16 hex", "BT <FEFF00E9007400E9> Tj ET", "été"},
		{"next line", "BT (first) Tj T* (second) Tj ET", "first\nsecond"},
		{"quote operator", "BT (first) Tj (second) ' ET", "first\nsecond"},
		{"nested parens", "BT (f(x) = y) Tj ET", "f(x) = y"},
		{"no text", "q 100 0 0 100 72 692 cm /Im1 Do Q", ""},
		{"dict operands ignored", "/P << /MCID 0 >> BDC BT (marked) Tj ET EMC", "marked"},
		{"tj word gaps", "BT /F1 12 Tf 72 700 Td [(Preciso)-333(de)-333(uma)-333(atualiza)] TJ ET", "Preciso de uma atualiza"},
		{"tj gap at threshold", "BT [(um)-200(dois)-199(tres)] TJ ET", "um doistres"},
		{"numbers outside array", "BT -500 0 Td (solo) Tj ET", "solo"},
		{"comment", "% (hidden) Tj\nBT (shown) Tj ET", "shown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textFromContentStream([]byte(tt.stream)))
		})
	}
}
