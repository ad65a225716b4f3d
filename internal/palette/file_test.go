package palette

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const paletteJSON = `{
  "version": 1,
  "entries": [
    {"id": 1, "externalId": 101, "name": "Snow White", "category": "white", "hexColor": "E4E4E0"},
    {"id": 2, "externalId": 102, "name": "Soot Black", "category": "black", "hexColor": "2B2923"}
  ]
}`

const paletteYAML = `version: 1
entries:
  - id: 1
    externalId: 101
    name: Snow White
    category: white
    hexColor: E4E4E0
  - id: 2
    externalId: 102
    name: Soot Black
    category: black
    hexColor: 2B2923
`

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	idx, err := Load(writeFixture(t, "palette.json", []byte(paletteJSON)))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	e, ok := idx.ByExternalID(102)
	if !ok || e.HexColor != "#2B2923" {
		t.Errorf("ByExternalID(102) = %+v, %v; want Soot Black #2B2923", e, ok)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"palette.yaml", "palette.yml"} {
		idx, err := Load(writeFixture(t, name, []byte(paletteYAML)))
		if err != nil {
			t.Fatalf("Load(%s) unexpected error: %v", name, err)
		}
		if idx.Len() != 2 {
			t.Errorf("Load(%s) Len() = %d, want 2", name, idx.Len())
		}
	}
}

func TestLoadCompressed(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(paletteJSON)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	idx, err := Load(writeFixture(t, "palette.json.gz", buf.Bytes()))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := Load(writeFixture(t, "palette.toml", []byte("x = 1"))); err == nil {
			t.Error("expected error for unsupported format")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := Load(writeFixture(t, "palette.json", []byte("{"))); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("invalid entry", func(t *testing.T) {
		bad := `{"entries": [{"id": 1, "externalId": 1, "name": "Bad", "category": "red", "hexColor": "nope"}]}`
		if _, err := Load(writeFixture(t, "palette.json", []byte(bad))); err == nil {
			t.Error("expected error for invalid hex value")
		}
	})
}
