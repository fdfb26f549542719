// Package frontierzdd constructs a Zero-suppressed Decision Diagram that
// compactly represents every simple path between two vertices of an
// undirected graph, using the frontier-based search algorithm, and
// evaluates it (currently: counting the represented paths).
package frontierzdd

import "errors"

// Input validation errors, returned by BuildGraph and BuildState.
// These fail fast, before any construction work begins.
var (
	// ErrTooFewVertices indicates a graph was built with V < 2.
	ErrTooFewVertices = errors.New("frontierzdd: graph requires at least 2 vertices")

	// ErrEmptyEdgeList indicates a graph was built with no edges.
	ErrEmptyEdgeList = errors.New("frontierzdd: edge list must be non-empty")

	// ErrVertexOutOfRange indicates an edge endpoint falls outside [1, V].
	ErrVertexOutOfRange = errors.New("frontierzdd: vertex id out of range")

	// ErrSelfLoop indicates an edge whose src and dst endpoints are equal.
	// Self-loops are rejected outright rather than special-cased through
	// the degree-accounting rules.
	ErrSelfLoop = errors.New("frontierzdd: self-loops are not supported")

	// ErrSameEndpoint indicates BuildState was called with s == t.
	ErrSameEndpoint = errors.New("frontierzdd: source and sink must differ")

	// ErrEndpointNotIncident indicates s or t never appears as an edge
	// endpoint, so no s-t path can exist by construction.
	ErrEndpointNotIncident = errors.New("frontierzdd: source or sink is not incident to any edge")
)

// Construction and evaluation errors.
var (
	// ErrInvalidNode indicates a NodeID does not exist in the node table.
	ErrInvalidNode = errors.New("frontierzdd: invalid node id")

	// ErrMemoryLimit indicates the configured memory limit was exceeded
	// during construction (see Config.MemoryLimit / WithMemoryLimit).
	ErrMemoryLimit = errors.New("frontierzdd: memory limit exceeded")

	// ErrConstructionCancelled indicates the context passed to Construct
	// was already done before construction started. Construct has no
	// internal cancellation points once running; a caller that wants to
	// cancel must not start the call.
	ErrConstructionCancelled = errors.New("frontierzdd: construction cancelled")

	// ErrInvariantViolation indicates a node's children were written more
	// than once, or an evaluator reached a node whose child had not been
	// evaluated yet. Signals an internal bug. With WithDebugAssertions, the
	// double-write case panics instead of returning it.
	ErrInvariantViolation = errors.New("frontierzdd: internal invariant violation")

	// ErrNotConstructed indicates an evaluator was run against a ZDD whose
	// Construct call never completed (zero value / root unset).
	ErrNotConstructed = errors.New("frontierzdd: zdd has not been constructed")
)
