package registry

// Category is the dispatch strategy for an entry point.
type Category int

const (
	// CategoryTrampoline entry points are forwarded through the handle of
	// their governing parameter.
	CategoryTrampoline Category = iota
	// CategoryEnumeration entry points produce the top-level handles every
	// other call dispatches on.
	CategoryEnumeration
	// CategoryAddressResolution entry points look up callables by name.
	CategoryAddressResolution
	// CategoryFixedResult entry points always succeed without touching any
	// implementation.
	CategoryFixedResult
)

func (c Category) String() string {
	switch c {
	case CategoryTrampoline:
		return "trampoline"
	case CategoryEnumeration:
		return "enumeration"
	case CategoryAddressResolution:
		return "address-resolution"
	case CategoryFixedResult:
		return "fixed-result"
	default:
		return "unknown"
	}
}

// exemptions is the exemption set. The generator marks these entries Exempt
// and the loader builds their bespoke handlers from the same table.
var exemptions = map[string]Category{
	"clGetPlatformIDs":              CategoryEnumeration,
	"clIcdGetPlatformIDsKHR":        CategoryEnumeration,
	"clGetExtensionFunctionAddress": CategoryAddressResolution,
	"clUnloadCompiler":              CategoryFixedResult,
}

// CategoryOf returns the dispatch category declared for name.
func CategoryOf(name string) Category {
	if c, ok := exemptions[name]; ok {
		return c
	}
	return CategoryTrampoline
}

// IsExempt reports whether name is handled by manual logic.
func IsExempt(name string) bool {
	_, ok := exemptions[name]
	return ok
}

// Exemptions returns a copy of the exemption set.
func Exemptions() map[string]Category {
	out := make(map[string]Category, len(exemptions))
	for k, v := range exemptions {
		out[k] = v
	}
	return out
}
