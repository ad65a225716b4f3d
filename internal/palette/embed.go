package palette

import (
	_ "embed"
	"sync"

	"github.com/jmylchreest/huecard/internal/compression"
)

// The embedded dataset is the stock dye catalogue; it ships inside the
// binary so the CLI works with no external files.
//
//go:embed data/palette.json.xz
var embeddedData []byte

var (
	defaultOnce  sync.Once
	defaultIndex *Index
	defaultErr   error
)

// Default returns the palette built from the embedded dataset. The
// index is built once and shared between callers.
func Default() (*Index, error) {
	defaultOnce.Do(func() {
		data, err := compression.Decompress(embeddedData, "palette.json.xz")
		if err != nil {
			defaultErr = err
			return
		}
		defaultIndex, defaultErr = parse(data, "palette.json")
	})
	return defaultIndex, defaultErr
}
