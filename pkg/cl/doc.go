// Package cl defines the call surface shared by the dispatch loader, its
// layers, and the implementations it routes to.
//
// Every entry point, whether reached through a trampoline or through a
// driver's export table, has the shape of Func: it takes its parameters in
// registry order and reports a Result. Handles are opaque values owned by the
// implementation that minted them; the loader only ever uses them as routing
// keys.
//
// # Argument conventions
//
// Callers pass arguments using these Go types:
//
//   - handle parameters (cl_context, cl_command_queue, ...): Handle
//   - handle arrays (const cl_device_id*, const cl_event*): []Handle
//   - property lists (const cl_context_properties*): Properties
//   - out-parameters: *uint32, *uint64, *int32, *Handle
//   - host memory: []byte
//   - scalars: any Go integer type of sufficient width
package cl
