package cl

// Uint64 converts an integer argument of any width. Negative values and
// non-integers are rejected.
func Uint64(arg any) (uint64, bool) {
	switch v := arg.(type) {
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uintptr:
		return uint64(v), true
	case int:
		return nonNegative(int64(v))
	case int64:
		return nonNegative(v)
	case int32:
		return nonNegative(int64(v))
	case int16:
		return nonNegative(int64(v))
	case int8:
		return nonNegative(int64(v))
	case ErrorCode:
		return nonNegative(int64(v))
	}
	return 0, false
}

func nonNegative(v int64) (uint64, bool) {
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

// Uint32 is Uint64 restricted to values that fit a cl_uint.
func Uint32(arg any) (uint32, bool) {
	v, ok := Uint64(arg)
	if !ok || v > 1<<32-1 {
		return 0, false
	}
	return uint32(v), true
}

// Handles accepts a handle array argument. A nil interface and a nil slice
// are both reported as an empty list.
func Handles(arg any) ([]Handle, bool) {
	switch v := arg.(type) {
	case nil:
		return nil, true
	case []Handle:
		return v, true
	}
	return nil, false
}

// PropertyList accepts a property list argument in either of its accepted
// Go forms.
func PropertyList(arg any) (Properties, bool) {
	switch v := arg.(type) {
	case nil:
		return nil, true
	case Properties:
		return v, true
	case []int64:
		return Properties(v), true
	}
	return nil, false
}

// SetCode stores code through an errcode_ret style out-parameter. Nil
// pointers and other types are ignored.
func SetCode(out any, code ErrorCode) {
	switch p := out.(type) {
	case *int32:
		if p != nil {
			*p = int32(code)
		}
	case *ErrorCode:
		if p != nil {
			*p = code
		}
	}
}
