package dispatch

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// route is the data-driven dispatch plan for one entry point.
type route struct {
	index    int
	ep       registry.EntryPoint
	governor registry.Governor
	errcode  int // index of errcode_ret, or -1
	count    int // index of the num_* count paired with a handle list, or -1
}

func newRoute(index int, ep registry.EntryPoint) (route, bool) {
	gov, ok := ep.Governor()
	if !ok {
		return route{}, false
	}
	r := route{
		index:    index,
		ep:       ep,
		governor: gov,
		errcode:  ep.ParamIndex("errcode_ret"),
		count:    -1,
	}
	if gov.Mode == registry.GovernList && gov.Index > 0 &&
		strings.HasPrefix(ep.Params[gov.Index-1].Name, "num_") {
		r.count = gov.Index - 1
	}
	return r, true
}

// fail reports a dispatch failure, mirroring the code into errcode_ret the
// way the native entry point would.
func (r route) fail(args []any, code cl.ErrorCode, err error) cl.Result {
	if r.errcode >= 0 && r.errcode < len(args) {
		cl.SetCode(args[r.errcode], code)
	}
	return cl.Result{Code: code, Err: err}
}

// governingHandle extracts the handle that decides the implementation.
func (r route) governingHandle(args []any) (cl.Handle, cl.ErrorCode, error) {
	arg := args[r.governor.Index]
	kind := r.governor.Kind

	switch r.governor.Mode {
	case registry.GovernList:
		list, ok := cl.Handles(arg)
		if !ok {
			return 0, cl.InvalidValue, fmt.Errorf("%s: %w: %s must be []cl.Handle", r.ep.Name, ErrBadArgument, r.ep.Params[r.governor.Index].Name)
		}
		if r.count >= 0 {
			n, ok := cl.Uint32(args[r.count])
			if !ok {
				return 0, cl.InvalidValue, fmt.Errorf("%s: %w: %s must be an unsigned count", r.ep.Name, ErrBadArgument, r.ep.Params[r.count].Name)
			}
			if n == 0 {
				return 0, cl.InvalidValue, fmt.Errorf("%s: %w: %s is 0", r.ep.Name, ErrEmptyHandleList, r.ep.Params[r.count].Name)
			}
		}
		if len(list) == 0 {
			return 0, cl.InvalidValue, fmt.Errorf("%s: %w", r.ep.Name, ErrEmptyHandleList)
		}
		return list[0], cl.Success, nil

	case registry.GovernProperty:
		props, ok := cl.PropertyList(arg)
		if !ok {
			return 0, cl.InvalidValue, fmt.Errorf("%s: %w: %s must be cl.Properties", r.ep.Name, ErrBadArgument, r.ep.Params[r.governor.Index].Name)
		}
		platform, found := props.Lookup(cl.ContextPlatform)
		if !found {
			return 0, kind.InvalidCode(), &InvalidHandleError{Kind: kind}
		}
		return cl.Handle(platform), cl.Success, nil

	default:
		// Anything that is not a Handle resolves as the zero handle and
		// fails the lookup below.
		h, _ := arg.(cl.Handle)
		return h, cl.Success, nil
	}
}

// trampoline builds the forwarding callable for a routed entry point.
func (l *Loader) trampoline(r route) cl.Func {
	arity := len(r.ep.Params)

	return func(args ...any) cl.Result {
		if len(args) != arity {
			return r.fail(args, cl.InvalidValue,
				fmt.Errorf("%s: %w: got %d, want %d", r.ep.Name, ErrArity, len(args), arity))
		}

		h, code, err := r.governingHandle(args)
		if err != nil {
			return r.fail(args, code, err)
		}

		impl, err := l.dir.Resolve(h, r.governor.Kind)
		if err != nil {
			return r.fail(args, r.governor.Kind.InvalidCode(), err)
		}

		table, err := impl.Table()
		if err != nil {
			return r.fail(args, cl.InvalidOperation, fmt.Errorf("%s: %w", r.ep.Name, err))
		}

		fn, err := table.Slot(r.index)
		if err != nil {
			return r.fail(args, cl.InvalidOperation, fmt.Errorf("%s on %s: %w", r.ep.Name, impl, err))
		}

		return fn(args...)
	}
}
