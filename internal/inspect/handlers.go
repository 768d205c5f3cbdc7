package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error  ErrorDetail `json:"error"`
	Status int         `json:"status"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GovernorView is the governing parameter of an entry point.
type GovernorView struct {
	Param string `json:"param"`
	Kind  string `json:"kind"`
	Mode  string `json:"mode"`
}

// EntryPointView is one row of /api/entrypoints.
type EntryPointView struct {
	Index      int           `json:"index"`
	Name       string        `json:"name"`
	Category   string        `json:"category"`
	Introduced string        `json:"introduced"`
	Optional   bool          `json:"optional"`
	Signature  string        `json:"signature"`
	Governor   *GovernorView `json:"governor,omitempty"`
}

// ImplementationView is one row of /api/implementations.
type ImplementationView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	Usable    bool   `json:"usable"`
	Error     string `json:"error,omitempty"`
	Handles   int    `json:"handles"`
	Populated int    `json:"populated"`
}

// PlatformView is one row of /api/platforms.
type PlatformView struct {
	Handle  string `json:"handle"`
	Name    string `json:"name"`
	Vendor  string `json:"vendor"`
	Version string `json:"version"`
}

const (
	platformVersion = 0x0901
	platformName    = 0x0902
	platformVendor  = 0x0903
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:  ErrorDetail{Code: code, Message: message},
		Status: status,
	})
}

// NewEntryPointView describes the entry point in registry slot index.
func NewEntryPointView(index int, ep registry.EntryPoint) EntryPointView {
	v := EntryPointView{
		Index:      index,
		Name:       ep.Name,
		Category:   ep.Category().String(),
		Introduced: ep.Introduced(),
		Optional:   ep.Optional(),
		Signature:  ep.Signature(),
	}
	if g, ok := ep.Governor(); ok {
		v.Governor = &GovernorView{
			Param: ep.Params[g.Index].Name,
			Kind:  g.Kind.String(),
			Mode:  g.Mode.String(),
		}
	}
	return v
}

// listEntryPoints answers GET /api/entrypoints. ?category= filters by
// dispatch category.
func (s *Server) listEntryPoints(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	views := make([]EntryPointView, 0, s.loader.Registry().Len())
	for i, ep := range s.loader.Registry().Entries() {
		if category != "" && ep.Category().String() != category {
			continue
		}
		views = append(views, NewEntryPointView(i, ep))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) getEntryPoint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	reg := s.loader.Registry()

	i, ok := reg.Index(name)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "unknown entry point "+name)
		return
	}
	writeJSON(w, http.StatusOK, NewEntryPointView(i, reg.At(i)))
}

func (s *Server) listImplementations(w http.ResponseWriter, r *http.Request) {
	impls := s.loader.Implementations()
	views := make([]ImplementationView, 0, len(impls))
	for _, impl := range impls {
		v := ImplementationView{
			ID:      impl.ID().String(),
			Name:    impl.Name(),
			Version: impl.Version().String(),
			Handles: s.loader.Directory().Count(impl),
		}
		table, err := impl.Table()
		if err != nil {
			v.Error = err.Error()
		} else {
			v.Populated = table.Populated()
		}
		v.Usable = impl.Usable()
		views = append(views, v)
	}
	writeJSON(w, http.StatusOK, views)
}

// PlatformError reports a failed enumeration step.
type PlatformError struct {
	Step string
	Code cl.ErrorCode
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Step, e.Code)
}

// DescribePlatforms enumerates platforms and reads their name, vendor and
// version using the same entry points an application would call. No
// platforms is not an error.
func DescribePlatforms(l *dispatch.Loader) ([]PlatformView, error) {
	var count uint32
	res := l.Call("clGetPlatformIDs", uint32(0), []cl.Handle(nil), &count)
	if res.Code == cl.PlatformNotFoundKHR {
		return []PlatformView{}, nil
	}
	if res.Code != cl.Success {
		return nil, &PlatformError{Step: "clGetPlatformIDs", Code: res.Code}
	}

	platforms := make([]cl.Handle, count)
	if res := l.Call("clGetPlatformIDs", count, platforms, (*uint32)(nil)); res.Code != cl.Success {
		return nil, &PlatformError{Step: "clGetPlatformIDs", Code: res.Code}
	}

	views := make([]PlatformView, 0, len(platforms))
	for _, p := range platforms {
		views = append(views, PlatformView{
			Handle:  p.String(),
			Name:    platformString(l, p, platformName),
			Vendor:  platformString(l, p, platformVendor),
			Version: platformString(l, p, platformVersion),
		})
	}
	return views, nil
}

func platformString(l *dispatch.Loader, p cl.Handle, param uint32) string {
	var size uint64
	if res := l.Call("clGetPlatformInfo", p, param, uint64(0), []byte(nil), &size); res.Code != cl.Success || size == 0 {
		return ""
	}
	buf := make([]byte, size)
	if res := l.Call("clGetPlatformInfo", p, param, size, buf, (*uint64)(nil)); res.Code != cl.Success {
		return ""
	}
	return string(bytes.TrimRight(buf, "\x00"))
}

func (s *Server) listPlatforms(w http.ResponseWriter, r *http.Request) {
	views, err := DescribePlatforms(s.loader)
	if err != nil {
		var perr *PlatformError
		code := "ENUMERATION_FAILED"
		if errors.As(err, &perr) {
			code = perr.Code.String()
		}
		writeError(w, http.StatusInternalServerError, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		writeError(w, http.StatusNotFound, "STATS_DISABLED", "call statistics are not being collected")
		return
	}
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}
