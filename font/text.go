package font

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DecodeText reads a font in the text glyph format. Every line holds one
// row of one glyph:
//
//	A  [ XXX ]
//	A  [X   X]
//
// The character comes first, two spaces follow, then the row between
// brackets with X for lit pixels. Consecutive lines for the same character
// form the glyph from top to bottom. Characters are mapped to codes through
// enc (identity when nil) and must land below 256.
func DecodeText(r io.Reader, enc Encoding) (*Font, error) {
	type glyph struct {
		code int
		rows []string
	}

	var glyphs []*glyph
	var cur *glyph
	lastCh := rune(-1)
	maxWidth, maxHeight, maxCode := 0, 0, -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		c, n := utf8.DecodeRuneInString(line)
		open := strings.IndexByte(line[n:], '[')
		end := strings.LastIndexByte(line, ']')
		if open < 0 || end < n+open {
			return nil, fmt.Errorf("%w: line %d: missing [row]", ErrInvalidFont, lineNo)
		}
		row := line[n+open+1 : end]

		if c != lastCh {
			code := int(c)
			if enc != nil {
				b, ok := enc.EncodeRune(c)
				if !ok {
					return nil, fmt.Errorf("%w: line %d: rune %U has no code", ErrInvalidFont, lineNo, c)
				}
				code = int(b)
			}
			if code > 0xff {
				return nil, fmt.Errorf("%w: line %d: code %d above 255", ErrInvalidFont, lineNo, code)
			}
			if code > maxCode {
				maxCode = code
			}
			cur = &glyph{code: code}
			glyphs = append(glyphs, cur)
			lastCh = c
		}

		if w := utf8.RuneCountInString(row); w > maxWidth {
			maxWidth = w
		}
		cur.rows = append(cur.rows, row)
		if h := len(cur.rows); h > maxHeight {
			maxHeight = h
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidFont)
	}
	if maxHeight > MaxRows {
		return nil, fmt.Errorf("%w: glyph of %d rows", ErrInvalidFont, maxHeight)
	}

	table := make([]uint32, (maxCode+1)*maxWidth)
	for _, g := range glyphs {
		base := g.code * maxWidth
		for y, row := range g.rows {
			x := 0
			for _, px := range row {
				if px == 'X' {
					table[base+x] |= 1 << y
				}
				x++
			}
		}
	}
	return New(maxWidth, maxHeight, table, enc)
}
