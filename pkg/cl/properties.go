package cl

// ContextPlatform is the CL_CONTEXT_PLATFORM property key.
const ContextPlatform int64 = 0x1084

// Properties is a key/value property list. A zero key terminates the list
// early; otherwise it ends with the slice.
type Properties []int64

// Lookup returns the value stored under key.
func (p Properties) Lookup(key int64) (int64, bool) {
	for i := 0; i+1 < len(p); i += 2 {
		if p[i] == 0 {
			break
		}
		if p[i] == key {
			return p[i+1], true
		}
	}
	return 0, false
}
