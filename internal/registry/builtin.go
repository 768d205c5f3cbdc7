package registry

import "sync"

//go:generate go run ../../cmd/cldispatch generate --registry testdata/cl.xml --out zz_generated_entrypoints.go --package registry

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the registry generated from testdata/cl.xml.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = MustNew(generatedEntryPoints)
	})
	return builtin
}
