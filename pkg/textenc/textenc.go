// Package textenc normalizes raw log file bytes to UTF-8 text. Stealer
// archives mix encodings: Windows tooling writes UTF-16 with a BOM, most
// builders emit UTF-8, and older Russian-market families ship Windows-1251.
package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw file bytes to a UTF-8 string. BOM-marked UTF-16 is
// transcoded, valid UTF-8 passes through with any BOM stripped, and
// everything else is decoded as Windows-1251 (which never fails, so Decode
// always yields usable text).
func Decode(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		return decodeUTF16(raw, unicode.LittleEndian)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return decodeUTF16(raw, unicode.BigEndian)
	}
	raw = bytes.TrimPrefix(raw, bomUTF8)
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func decodeUTF16(raw []byte, endian unicode.Endianness) string {
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	decoded, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
