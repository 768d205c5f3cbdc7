package registry

import (
	"strings"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// GovernorMode says how the governing handle is extracted from the
// governing parameter.
type GovernorMode int

const (
	// GovernDirect: the parameter is itself a handle.
	GovernDirect GovernorMode = iota + 1
	// GovernList: the parameter is a handle array; element 0 governs.
	GovernList
	// GovernProperty: the parameter is a context property list; the
	// CL_CONTEXT_PLATFORM value governs.
	GovernProperty
)

func (m GovernorMode) String() string {
	switch m {
	case GovernDirect:
		return "direct"
	case GovernList:
		return "list"
	case GovernProperty:
		return "property"
	default:
		return "none"
	}
}

const contextPropertiesType = "const cl_context_properties*"

// Governor locates the handle that decides which implementation receives a
// call.
type Governor struct {
	Index int
	Kind  cl.Kind
	Mode  GovernorMode
}

// Governor finds the governing parameter. Plain handle parameters win over
// handle arrays, which win over a context property list.
func (e EntryPoint) Governor() (Governor, bool) {
	for i, p := range e.Params {
		if p.TypeEnd != "" {
			continue
		}
		if k, ok := cl.KindForType(p.Type); ok {
			return Governor{Index: i, Kind: k, Mode: GovernDirect}, true
		}
	}
	for i, p := range e.Params {
		if k, ok := listKind(p); ok {
			return Governor{Index: i, Kind: k, Mode: GovernList}, true
		}
	}
	for i, p := range e.Params {
		if p.Type == contextPropertiesType && p.TypeEnd == "" {
			return Governor{Index: i, Kind: cl.KindPlatform, Mode: GovernProperty}, true
		}
	}
	return Governor{}, false
}

func listKind(p Param) (cl.Kind, bool) {
	if p.TypeEnd != "" {
		return cl.KindInvalid, false
	}
	base, ok := strings.CutPrefix(p.Type, "const ")
	if !ok {
		return cl.KindInvalid, false
	}
	base, ok = strings.CutSuffix(base, "*")
	if !ok || strings.Contains(base, "*") {
		return cl.KindInvalid, false
	}
	return cl.KindForType(strings.TrimSpace(base))
}
