// Package registry describes every entry point the dispatch loader knows
// about: its name, return type, ordered parameters, the API version that
// introduced it, and whether it is exempt from generic dispatch.
//
// The registry is built once, offline, from a Khronos-style XML document
// (see Parse) and rendered into Go source by the generator in
// internal/codegen. At runtime the loader only ever reads the generated
// table returned by Builtin; nothing re-parses XML per call.
//
// # Dispatch planning
//
// Each non-exempt entry point has a Governor: the parameter whose handle
// decides which implementation receives the call. The exemption set in
// manual.go is the single source of truth for entry points that need
// bespoke logic instead.
package registry
