package security

import (
	"io"
	"strings"
	"testing"
)

func TestLimitedReader(t *testing.T) {
	t.Run("under the limit", func(t *testing.T) {
		lr := NewLimitedReader(strings.NewReader("hello"), 64)
		data, err := io.ReadAll(lr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("read %q, want %q", data, "hello")
		}
	})

	t.Run("over the limit", func(t *testing.T) {
		lr := NewLimitedReader(strings.NewReader(strings.Repeat("x", 100)), 10)
		_, err := io.ReadAll(lr)
		if err == nil {
			t.Fatal("expected size limit error, got nil")
		}
	})
}
