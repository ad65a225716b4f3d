// Package compression inflates the compressed datasets Huecard ships
// and loads, selecting the codec from the file name.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/huecard/internal/security"
	"github.com/ulikunitz/xz"
)

// maxDecompressedSize caps inflated dataset size to defuse
// decompression bombs.
const maxDecompressedSize = 100 * 1024 * 1024

// Decompress inflates data according to the compression suffix of
// name (.xz, .gz, .bz2). Names without a known suffix are returned
// as-is.
func Decompress(data []byte, name string) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".xz"):
		return decompressXz(data)
	case strings.HasSuffix(name, ".gz"):
		return decompressGz(data)
	case strings.HasSuffix(name, ".bz2"):
		return decompressBz2(data)
	default:
		return data, nil
	}
}

// ReadFile loads a possibly-compressed file from disk and returns its
// inflated contents.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 - Dataset path supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decompress(data, path)
}

// BaseName strips any recognised compression suffix from name so
// callers can inspect the underlying format extension.
func BaseName(name string) string {
	for _, suffix := range []string{".xz", ".gz", ".bz2"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// decompressXz inflates a single xz-compressed blob.
func decompressXz(data []byte) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	out, err := io.ReadAll(security.NewLimitedReader(xzr, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress xz data: %w", err)
	}
	return out, nil
}

// decompressGz inflates a single gzipped blob.
func decompressGz(data []byte) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()
	out, err := io.ReadAll(security.NewLimitedReader(gzr, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip data: %w", err)
	}
	return out, nil
}

// decompressBz2 inflates a single bzip2-compressed blob.
func decompressBz2(data []byte) ([]byte, error) {
	bzr := bzip2.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(security.NewLimitedReader(bzr, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bzip2 data: %w", err)
	}
	return out, nil
}
