package layout

import (
	"io"

	"github.com/charmbracelet/log"
)

// discardLogger grounds the "silent by default" convention on
// matzehuels/stacktower's pkg/pipeline.Options.Logger, which defaults to
// log.NewWithOptions(io.Discard, log.Options{}) when the caller supplies
// none.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
