// Package trace records begin/end spans of the front-end phases.
//
// Уровни: off < error < phase < detail < debug. Driver spans (a whole command) are
// emitted at phase and above, per-phase spans (load, lex, parse, cache) at phase,
// per-file spans at detail. A disabled tracer costs one interface call per span.
package trace
