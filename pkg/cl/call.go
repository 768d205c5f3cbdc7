package cl

// Func is the callable form of an entry point. Arguments are passed in
// registry order.
type Func func(args ...any) Result

// Result is what every entry point returns.
type Result struct {
	// Code is the native result code. For entry points that return an
	// object it mirrors what the native API writes to errcode_ret.
	Code ErrorCode
	// Value holds the returned object, if the entry point returns one.
	Value any
	// Err is set only when the loader failed before an implementation ran.
	Err error
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Code == Success && r.Err == nil
}

// Handle returns Value as a Handle, or the zero Handle.
func (r Result) Handle() Handle {
	h, _ := r.Value.(Handle)
	return h
}

// Fail builds a Result carrying only an error code.
func Fail(code ErrorCode) Result {
	return Result{Code: code}
}

// Ok builds a successful Result returning v.
func Ok(v any) Result {
	return Result{Code: Success, Value: v}
}
