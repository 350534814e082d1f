package importer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		want     string
	}{
		{"utf8 passthrough", []byte("héllo"), "utf8", "héllo"},
		{"empty encoding is utf8", []byte("plain"), "", "plain"},
		{"utf8 strips BOM", []byte("\xEF\xBB\xBFtext"), "utf8", "text"},
		{"cp437", []byte("caf\x82"), "cp437", "café"},
		{"cp850", []byte("na\x8bve"), "cp850", "naïve"},
		{"latin1", []byte("caf\xe9"), "iso-8859-1", "café"},
		{"windows-1252 quote", []byte("it\x92s"), "windows-1252", "it’s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, tt.encoding)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte("x"), "ebcdic")
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "ebcdic") {
		t.Errorf("expected encoding name in error, got %q", err)
	}
}

func TestEncodings(t *testing.T) {
	want := []string{"utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"}
	if got := Encodings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, name := range want {
		if !IsSupported(name) {
			t.Errorf("expected %q to be supported", name)
		}
	}
	if IsSupported("ebcdic") {
		t.Error("expected ebcdic to be unsupported")
	}
}

func TestReadInputFromStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		data, name, err := ReadInput(path, strings.NewReader("piped text"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "piped text" || name != StdinName {
			t.Errorf("expected piped text from stdin, got %q from %q", data, name)
		}
	}

	if _, _, err := ReadInput("", nil); err == nil {
		t.Error("expected error without stdin")
	}
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("file text"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	data, name, err := ReadInput(path, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "file text" || name != path {
		t.Errorf("expected file text from %q, got %q from %q", path, data, name)
	}

	_, _, err = ReadInput(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
