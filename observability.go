package frontierzdd

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

// defaultTracer is the package-wide fallback tracer, resolved lazily from
// whatever TracerProvider the host process has configured (a no-op if
// none has, matching how thaiyyal and AleutianLocal obtain tracers from
// the global provider rather than forcing callers to wire one up).
var defaultTracer = otel.Tracer("github.com/0h-n0/frontier-basic-go")

// newRunID mints a correlation id for a single Construct call, attached
// to its log lines, trace span, and the returned ZDD (grounded on
// thaiyyal's and AleutianLocal's use of google/uuid for run/request ids).
func newRunID() string {
	return uuid.NewString()
}
