package extract

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// textFromContentStream pulls the shown text out of a decoded PDF page content
// stream. It understands the text-showing operators (Tj, TJ, ' and ") and
// turns line-positioning operators into whitespace. Glyph codes of embedded
// CID fonts are not mapped back to Unicode.
func textFromContentStream(data []byte) string {
	s := &streamScanner{data: data}
	var out strings.Builder
	var operands []string
	inArray := false

	for {
		tok, kind := s.next()
		if kind == tokEOF {
			break
		}
		switch kind {
		case tokString:
			operands = append(operands, tok)
		case tokArrayOpen:
			inArray = true
		case tokArrayClose:
			inArray = false
		case tokNumber:
			if inArray && isWordGap(tok) {
				operands = append(operands, " ")
			}
		case tokOperator:
			inArray = false
			switch tok {
			case "Tj", "TJ":
				out.WriteString(strings.Join(operands, ""))
			case "'", `"`:
				newline(&out)
				out.WriteString(strings.Join(operands, ""))
			case "T*":
				newline(&out)
			case "Td", "TD", "Tm", "ET":
				space(&out)
			}
			operands = operands[:0]
		}
	}
	return collapseSpace(out.String())
}

func newline(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
}

func space(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}

// collapseSpace squeezes horizontal whitespace and drops unprintable runes,
// keeping line breaks.
func collapseSpace(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) || unicode.IsSpace(r) {
				return r
			}
			return -1
		}, line)), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokOperator
	tokNumber
	tokArrayOpen
	tokArrayClose
	tokOther
)

// wordGapOffset is the TJ displacement, in thousandths of text space, at or
// below which generators mean an inter-word gap rather than kerning.
const wordGapOffset = -200

func isWordGap(offset string) bool {
	v, err := strconv.ParseFloat(offset, 64)
	return err == nil && v <= wordGapOffset
}

type streamScanner struct {
	data []byte
	pos  int
}

func (s *streamScanner) next() (string, tokenKind) {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case isPDFSpace(c):
			s.pos++
		case c == '%':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		case c == '(':
			return s.literalString(), tokString
		case c == '<' && s.peek(1) == '<', c == '>' && s.peek(1) == '>':
			s.pos += 2
			return "", tokOther
		case c == '<':
			return s.hexString(), tokString
		case c == '[':
			s.pos++
			return "", tokArrayOpen
		case c == ']':
			s.pos++
			return "", tokArrayClose
		case c == '{' || c == '}' || c == '>' || c == ')':
			s.pos++
			return "", tokOther
		case c == '/':
			s.pos++
			s.regular()
			return "", tokOther
		default:
			word := s.regular()
			if word == "" {
				s.pos++
				return "", tokOther
			}
			if isNumeric(word) {
				return word, tokNumber
			}
			if word == "true" || word == "false" || word == "null" {
				return word, tokOther
			}
			return word, tokOperator
		}
	}
	return "", tokEOF
}

func (s *streamScanner) peek(off int) byte {
	if s.pos+off < len(s.data) {
		return s.data[s.pos+off]
	}
	return 0
}

// regular consumes a run of regular (non-delimiter, non-space) characters.
func (s *streamScanner) regular() string {
	start := s.pos
	for s.pos < len(s.data) && !isPDFSpace(s.data[s.pos]) && !isDelimiter(s.data[s.pos]) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

// literalString decodes a parenthesised string starting at s.pos.
func (s *streamScanner) literalString() string {
	s.pos++ // (
	var buf []byte
	depth := 1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '\\':
			if s.pos >= len(s.data) {
				return decodePDFBytes(buf)
			}
			e := s.data[s.pos]
			s.pos++
			switch e {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'b', 'f':
			case '\r', '\n':
				if e == '\r' && s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for i := 0; i < 2 && s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '7'; i++ {
						v = v*8 + int(s.data[s.pos]-'0')
						s.pos++
					}
					buf = append(buf, byte(v))
				} else {
					buf = append(buf, e)
				}
			}
		case '(':
			depth++
			buf = append(buf, c)
		case ')':
			depth--
			if depth == 0 {
				return decodePDFBytes(buf)
			}
			buf = append(buf, c)
		default:
			buf = append(buf, c)
		}
	}
	return decodePDFBytes(buf)
}

// hexString decodes a <...> string starting at s.pos.
func (s *streamScanner) hexString() string {
	s.pos++ // <
	var buf []byte
	var hi byte
	half := false
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		if c == '>' {
			break
		}
		v, ok := hexVal(c)
		if !ok {
			continue
		}
		if half {
			buf = append(buf, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		buf = append(buf, hi<<4)
	}
	return decodePDFBytes(buf)
}

// decodePDFBytes interprets string bytes as UTF-16BE when they carry a BOM and
// as Latin-1 otherwise.
func decodePDFBytes(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		units := make([]uint16, 0, (len(b)-2)/2)
		for i := 2; i+1 < len(b); i += 2 {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		}
		return string(utf16.Decode(units))
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isPDFSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func isNumeric(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			return false
		}
	}
	return true
}
