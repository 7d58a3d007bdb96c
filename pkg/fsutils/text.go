package fsutils

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var ErrNotText = errors.New("content is not text")

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectEncoding(data []byte) textEncoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			return encodingUTF16LE
		case data[0] == 0xFE && data[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

// DecodeText converts a file prefix into UTF-8 text.
// When truncated is true the data was cut at a byte cap, so a partial
// trailing character is dropped instead of being reported as invalid.
func DecodeText(data []byte, truncated bool) (string, error) {
	switch detectEncoding(data) {
	case encodingUTF8BOM:
		data = data[3:]
	case encodingUTF16LE:
		return decodeUTF16(data, unicode.LittleEndian, truncated)
	case encodingUTF16BE:
		return decodeUTF16(data, unicode.BigEndian, truncated)
	}
	if bytes.IndexByte(data, 0x00) != -1 {
		return "", ErrNotText
	}
	if truncated {
		data = trimPartialRune(data)
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

func decodeUTF16(data []byte, endian unicode.Endianness, truncated bool) (string, error) {
	if truncated && len(data)%2 == 1 {
		data = data[:len(data)-1]
	}
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Join(ErrNotText, err)
	}
	return string(out), nil
}

func trimPartialRune(data []byte) []byte {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if !utf8.FullRune(data[i:]) {
				return data[:i]
			}
			break
		}
	}
	return data
}
