package dispatch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// DefaultMaxPlatforms caps how many platforms enumeration reports.
const DefaultMaxPlatforms = 64

// manual builds the handler for an exempt entry point.
func (l *Loader) manual(ep registry.EntryPoint) (cl.Func, error) {
	switch c := ep.Category(); c {
	case registry.CategoryEnumeration:
		return l.enumerate, nil
	case registry.CategoryAddressResolution:
		return l.resolveAddress, nil
	case registry.CategoryFixedResult:
		return fixedSuccess, nil
	default:
		return nil, fmt.Errorf("%s: no manual handler for category %s", ep.Name, c)
	}
}

// enumerate serves clGetPlatformIDs(num_entries, platforms, num_platforms).
func (l *Loader) enumerate(args ...any) cl.Result {
	if len(args) != 3 {
		return cl.Result{Code: cl.InvalidValue, Err: fmt.Errorf("platform enumeration: %w", ErrArity)}
	}
	numEntries, ok := cl.Uint32(args[0])
	if !ok {
		return cl.Result{Code: cl.InvalidValue, Err: fmt.Errorf("platform enumeration: %w: num_entries", ErrBadArgument)}
	}
	platforms, ok := cl.Handles(args[1])
	if !ok {
		return cl.Result{Code: cl.InvalidValue, Err: fmt.Errorf("platform enumeration: %w: platforms", ErrBadArgument)}
	}
	numPlatforms, _ := args[2].(*uint32)

	if (platforms == nil && numEntries != 0) || (platforms == nil && numPlatforms == nil) {
		return cl.Fail(cl.InvalidValue)
	}

	found := l.Platforms()
	if len(found) == 0 {
		return cl.Fail(cl.PlatformNotFoundKHR)
	}

	n := min(int(numEntries), len(platforms))
	copy(platforms[:n], found)
	if numPlatforms != nil {
		*numPlatforms = uint32(len(found))
	}
	return cl.Result{Code: cl.Success}
}

// Platforms lists the platform handles of every usable implementation, in
// attach order. A platform is reported only if it resolves to the
// implementation that listed it and that implementation supports the ICD
// extension for it.
func (l *Loader) Platforms() []cl.Handle {
	var out []cl.Handle
	for _, impl := range l.Implementations() {
		if len(out) >= l.maxPlatforms {
			break
		}
		handles, err := l.implementationPlatforms(impl)
		if err != nil {
			l.logger.Debug("skipping implementation during enumeration",
				zap.String("implementation", impl.Name()),
				zap.Error(err))
			continue
		}
		for _, h := range handles {
			if len(out) >= l.maxPlatforms {
				break
			}
			out = append(out, h)
		}
	}
	return out
}

func (l *Loader) implementationPlatforms(impl *Implementation) ([]cl.Handle, error) {
	table, err := impl.Table()
	if err != nil {
		return nil, err
	}
	list, err := table.Lookup("clGetPlatformIDs")
	if err != nil {
		return nil, err
	}

	var total uint32
	if res := list(uint32(0), []cl.Handle(nil), &total); res.Code != cl.Success {
		return nil, fmt.Errorf("counting platforms: %s", res.Code)
	}
	if total > uint32(l.maxPlatforms) {
		total = uint32(l.maxPlatforms)
	}
	if total == 0 {
		return nil, nil
	}

	all := make([]cl.Handle, total)
	if res := list(total, all, (*uint32)(nil)); res.Code != cl.Success {
		return nil, fmt.Errorf("listing platforms: %s", res.Code)
	}

	icd := make([]cl.Handle, 0, len(all))
	for _, h := range all {
		owner, err := l.dir.Resolve(h, cl.KindPlatform)
		if err != nil || owner != impl {
			continue
		}
		if supportsICD(table, h) {
			icd = append(icd, h)
		}
	}
	return icd, nil
}

// supportsICD asks the platform for the ICD enumeration entry point, falling
// back to the table for implementations that predate per-platform lookup.
func supportsICD(table *Table, platform cl.Handle) bool {
	lookup, err := table.Lookup("clGetExtensionFunctionAddressForPlatform")
	if err != nil {
		return table.Has("clIcdGetPlatformIDsKHR")
	}
	return lookup(platform, "clIcdGetPlatformIDsKHR").Value != nil
}

// resolveAddress serves clGetExtensionFunctionAddress(function_name). It
// hands out trampolines only; unknown and exempt names resolve to nothing.
func (l *Loader) resolveAddress(args ...any) cl.Result {
	if len(args) != 1 {
		return cl.Result{Code: cl.Success}
	}
	name, _ := args[0].(string)
	if fn, ok := l.trampolines[name]; ok {
		return cl.Result{Code: cl.Success, Value: fn}
	}
	return cl.Result{Code: cl.Success}
}

// fixedSuccess serves clUnloadCompiler.
func fixedSuccess(...any) cl.Result {
	return cl.Result{Code: cl.Success}
}
