package registry

import (
	"strings"
)

// Param is one parameter of an entry point. Type holds the text before the
// parameter name and TypeEnd the text after it, so callback signatures and
// array suffixes survive reconstruction.
type Param struct {
	Type    string
	TypeEnd string
	Name    string
}

// Decl renders the parameter as it would appear in a C prototype.
func (p Param) Decl() string {
	if p.TypeEnd != "" {
		return p.Type + " " + p.Name + p.TypeEnd
	}
	return p.Type + " " + p.Name
}

// EntryPoint describes one API function. Values are immutable once the
// registry has been built.
type EntryPoint struct {
	Name      string
	Return    string
	Params    []Param
	Version   Version
	Extension string
	Exempt    bool
}

// Optional reports whether implementations may omit the entry point
// regardless of the version they claim.
func (e EntryPoint) Optional() bool {
	return e.Extension != ""
}

// Introduced describes where the entry point comes from, e.g. "1.2" or
// "cl_khr_icd".
func (e EntryPoint) Introduced() string {
	if e.Extension != "" {
		return e.Extension
	}
	return e.Version.String()
}

// ParamIndex returns the position of the named parameter or -1.
func (e EntryPoint) ParamIndex(name string) int {
	for i, p := range e.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Category reports how the entry point is dispatched.
func (e EntryPoint) Category() Category {
	return CategoryOf(e.Name)
}

// Signature renders the entry point as a single-line C prototype.
func (e EntryPoint) Signature() string {
	var b strings.Builder
	b.WriteString(e.Return)
	b.WriteByte(' ')
	b.WriteString(e.Name)
	b.WriteByte('(')
	if len(e.Params) == 0 {
		b.WriteString("void")
	}
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Decl())
	}
	b.WriteByte(')')
	return b.String()
}

func (e EntryPoint) clone() EntryPoint {
	e.Params = append([]Param(nil), e.Params...)
	return e
}
