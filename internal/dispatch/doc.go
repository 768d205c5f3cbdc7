// Package dispatch routes entry point calls to the implementation that owns
// the handle they are made on.
//
// A Loader owns a Directory (handle -> implementation), one lazily built
// Table per attached Implementation, and one trampoline per non-exempt
// entry point. Trampolines are built once from the registry: each knows
// its governing parameter, resolves that handle, looks up its slot in the
// owning implementation's table and forwards the call unchanged. The
// exempt entry points get hand-written handlers in manual.go.
//
// Dispatch failures are reported as cl.Result values carrying the native
// error code and a Go error; nothing on the call path panics or logs.
package dispatch
