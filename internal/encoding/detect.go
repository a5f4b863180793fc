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

type bom struct {
	prefix  []byte
	decoder *encoding.Decoder
	strip   int
}

// boms in check order. A nil decoder means the payload is already UTF-8 and
// only the marker needs stripping.
var boms = []bom{
	{prefix: []byte{0xEF, 0xBB, 0xBF}, strip: 3},
	{prefix: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
	{prefix: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()},
}

// charsetDecoders maps chardet results to decoders for the charsets legacy
// spreadsheet exports actually show up in.
var charsetDecoders = map[string]*encoding.Decoder{
	"ISO-8859-1":   charmap.Windows1252.NewDecoder(),
	"windows-1252": charmap.Windows1252.NewDecoder(),
	"ISO-8859-9":   charmap.ISO8859_9.NewDecoder(),
	"ISO-8859-15":  charmap.ISO8859_15.NewDecoder(),
}

// NewUTF8Reader wraps r so that its content reads as UTF-8 regardless of the
// source encoding: BOMs are honored first, valid UTF-8 passes through,
// anything else goes through chardet with Windows-1252 as the fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(buf, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(b.strip)
			return br, nil
		}

		return transform.NewReader(br, b.decoder), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if dec, ok := charsetDecoders[result.Charset]; ok {
			return transform.NewReader(br, dec), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
