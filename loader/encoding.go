package loader

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText returns data as UTF-8. A byte order mark selects UTF-8 or
// UTF-16 and is removed. Without one, a NUL in the first two bytes marks
// UTF-16 text that starts with an ASCII character.
func decodeText(data []byte) ([]byte, error) {
	var t transform.Transformer
	switch {
	case hasBOM(data):
		t = unicode.BOMOverride(transform.Nop)
	case len(data) >= 2 && data[0] == 0 && data[1] != 0:
		t = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case len(data) >= 2 && data[0] != 0 && data[1] == 0:
		t = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return data, nil
	}

	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}
	return out, nil
}

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFE, 0xFF},
	{0xFF, 0xFE},
}

func hasBOM(data []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}
	return false
}
