// Package importer acquires the text to analyze: it reads a file or stdin and
// decodes legacy single-byte encodings to UTF-8.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultEncoding needs no conversion.
const DefaultEncoding = "utf8"

// StdinName is the display name of input read from stdin.
const StdinName = "stdin"

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

var decoders = map[string]encoding.Encoding{
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the accepted encoding names.
func Encodings() []string {
	names := []string{DefaultEncoding}
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// IsSupported reports whether name is an accepted encoding.
func IsSupported(name string) bool {
	if name == DefaultEncoding || name == "" {
		return true
	}
	_, ok := decoders[name]
	return ok
}

// Decode converts data from sourceEncoding to a UTF-8 string. An empty
// encoding means utf8. A leading UTF-8 BOM is dropped.
func Decode(data []byte, sourceEncoding string) (string, error) {
	if sourceEncoding == "" || sourceEncoding == DefaultEncoding {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	enc, ok := decoders[sourceEncoding]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("encoding conversion error: %w", err)
	}

	return string(bytes.TrimPrefix(utf8Data, utf8BOM)), nil
}

// ReadInput returns the content of path, or of stdin when path is "" or "-",
// together with a name suitable for display.
func ReadInput(path string, stdin io.Reader) ([]byte, string, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, "", fmt.Errorf("no input: stdin is not available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("error reading from stdin: %w", err)
		}
		return data, StdinName, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading file: %w", err)
	}
	return data, path, nil
}

// IsInteractive reports whether f is a terminal rather than a pipe or a file.
func IsInteractive(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
