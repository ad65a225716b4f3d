package compression

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	payload := []byte(`{"entries":[]}`)

	t.Run("gzip round trip", func(t *testing.T) {
		got, err := Decompress(gzipBytes(t, payload), "palette.json.gz")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("Decompress() = %q, want %q", got, payload)
		}
	})

	t.Run("unknown suffix passes through", func(t *testing.T) {
		got, err := Decompress(payload, "palette.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("Decompress() = %q, want %q", got, payload)
		}
	})

	t.Run("corrupt gzip fails", func(t *testing.T) {
		if _, err := Decompress([]byte("not gzip"), "broken.gz"); err == nil {
			t.Error("expected error for corrupt gzip data")
		}
	})
}

func TestReadFile(t *testing.T) {
	payload := []byte("hello dataset")
	path := filepath.Join(t.TempDir(), "data.txt.gz")
	if err := os.WriteFile(path, gzipBytes(t, payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ReadFile() = %q, want %q", got, payload)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.gz")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "palette.json.xz", want: "palette.json"},
		{in: "palette.yaml.gz", want: "palette.yaml"},
		{in: "palette.json", want: "palette.json"},
		{in: "sheets.json.bz2", want: "sheets.json"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
