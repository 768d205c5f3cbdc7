package cl

import "fmt"

// Handle is an opaque token referencing a resource owned by one
// implementation. The zero Handle is never valid.
type Handle uint64

// String formats the handle the way native loaders print pointers.
func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// Kind identifies the type of object a Handle refers to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCommandQueue
	KindContext
	KindDevice
	KindEvent
	KindKernel
	KindMem
	KindPlatform
	KindProgram
	KindSampler
)

type kindInfo struct {
	typeName string
	invalid  ErrorCode
}

var kinds = [...]kindInfo{
	KindInvalid:      {"", InvalidValue},
	KindCommandQueue: {"cl_command_queue", InvalidCommandQueue},
	KindContext:      {"cl_context", InvalidContext},
	KindDevice:       {"cl_device_id", InvalidDevice},
	KindEvent:        {"cl_event", InvalidEvent},
	KindKernel:       {"cl_kernel", InvalidKernel},
	KindMem:          {"cl_mem", InvalidMemObject},
	KindPlatform:     {"cl_platform_id", InvalidPlatform},
	KindProgram:      {"cl_program", InvalidProgram},
	KindSampler:      {"cl_sampler", InvalidSampler},
}

// Kinds returns every valid handle kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindCommandQueue; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared handle kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kinds)
}

// TypeName returns the registry type text for the kind, e.g. "cl_context".
func (k Kind) TypeName() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].typeName
}

// InvalidCode returns the error code reported when a handle of this kind is
// absent, released, or of another kind.
func (k Kind) InvalidCode() ErrorCode {
	if !k.Valid() {
		return InvalidValue
	}
	return kinds[k].invalid
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].typeName
}

// KindForType maps registry type text to a handle kind. Only the bare type
// name matches; qualifiers and pointers are the caller's concern.
func KindForType(typeName string) (Kind, bool) {
	for k := KindCommandQueue; int(k) < len(kinds); k++ {
		if kinds[k].typeName == typeName {
			return k, true
		}
	}
	return KindInvalid, false
}
