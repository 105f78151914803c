// Package encoding normalizes bank statement files to UTF-8. Statements
// from Mauritanian banks arrive in a mix of UTF-8, Windows-1252 and
// ISO-8859-15 (accented French descriptions), sometimes with a BOM.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// NewUTF8Reader wraps r so that reads return UTF-8 regardless of the
// source charset.
//
// Resolution order: BOM, valid UTF-8 passthrough, chardet heuristic,
// Windows-1252 fallback (the superset of Latin-1 the banks actually emit).
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if dec := utf16Decoder(head); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if dec := detectDecoder(head); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func utf16Decoder(head []byte) *encoding.Decoder {
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	}

	return nil
}

func detectDecoder(head []byte) *encoding.Decoder {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "UTF-8":
		// Declared UTF-8 but failed validation above; decode permissively
		// as Windows-1252 rather than emitting replacement runes.
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	}

	return nil
}
