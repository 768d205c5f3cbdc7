package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

func TestTrampolineForwardsToOwner(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)

	var code int32 = 1
	res := l.Call("clCreateContextFromType",
		cl.Properties{cl.ContextPlatform, int64(a.platform(0)), 0},
		uint64(0xFFFFFFFF), nil, nil, &code)
	require.True(t, res.OK(), "%v", res.Err)
	assert.Equal(t, int32(cl.Success), code)

	ctx := res.Handle()
	kind, ok := l.Directory().KindOf(ctx)
	require.True(t, ok)
	assert.Equal(t, cl.KindContext, kind)

	res = l.Call("clRetainContext", ctx)
	assert.Equal(t, cl.Ok("a/clRetainContext"), res)
}

func TestTrampolineRoutesByHandle(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	b := newFakeDriver("b", "3.0", 1)
	attach(t, l, a)
	attach(t, l, b)

	qa := a.mint(cl.KindCommandQueue)
	qb := b.mint(cl.KindCommandQueue)

	assert.Equal(t, "a/clFlush", l.Call("clFlush", qa).Value)
	assert.Equal(t, "b/clFlush", l.Call("clFlush", qb).Value)
	assert.Equal(t, "b/clFinish", l.Call("clFinish", qb).Value)
}

func TestTrampolineInvalidHandles(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)
	platform := a.platform(0)

	res := l.Call("clRetainContext", cl.Handle(0x7777))
	assert.Equal(t, cl.InvalidContext, res.Code)
	var invalid *InvalidHandleError
	require.True(t, errors.As(res.Err, &invalid))
	assert.Equal(t, cl.KindContext, invalid.Kind)

	res = l.Call("clRetainContext", platform)
	assert.Equal(t, cl.InvalidContext, res.Code, "a platform is not a context")

	res = l.Call("clRetainContext", "not a handle")
	assert.Equal(t, cl.InvalidContext, res.Code)

	res = l.Call("clGetDeviceIDs", cl.Handle(0), uint64(1), uint32(0), nil, nil)
	assert.Equal(t, cl.InvalidPlatform, res.Code)
}

func TestTrampolineReleasedHandle(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)
	mem := a.mint(cl.KindMem)

	require.True(t, l.Call("clReleaseMemObject", mem).OK())
	res := l.Call("clReleaseMemObject", mem)
	assert.Equal(t, cl.InvalidMemObject, res.Code)
}

func TestTrampolineWritesErrcodeOnFailure(t *testing.T) {
	l := newTestLoader(t)
	attach(t, l, newFakeDriver("a", "3.0", 1))

	var code int32
	res := l.Call("clCreateBuffer", cl.Handle(0x4242), uint64(0), uint64(16), nil, &code)
	assert.Equal(t, cl.InvalidContext, res.Code)
	assert.Equal(t, int32(cl.InvalidContext), code)
	assert.Nil(t, res.Value)

	var typed cl.ErrorCode
	l.Call("clCreateBuffer", cl.Handle(0x4242), uint64(0), uint64(16), nil, &typed)
	assert.Equal(t, cl.InvalidContext, typed)

	assert.NotPanics(t, func() {
		l.Call("clCreateBuffer", cl.Handle(0x4242), uint64(0), uint64(16), nil, nil)
	})
}

func TestTrampolineUnsupportedVersion(t *testing.T) {
	l := newTestLoader(t)
	old := newFakeDriver("old", "1.1", 1)
	attach(t, l, old)
	ctx := old.mint(cl.KindContext)

	var code int32
	res := l.Call("clCreateBufferWithProperties", ctx, cl.Properties(nil), uint64(0), uint64(8), nil, &code)
	assert.Equal(t, cl.InvalidOperation, res.Code)
	assert.ErrorIs(t, res.Err, ErrUnsupportedOperation)
	assert.Equal(t, int32(cl.InvalidOperation), code)

	// Supported calls on the same handle still go through.
	assert.True(t, l.Call("clRetainContext", ctx).OK())
}

func TestTrampolineUnusableImplementation(t *testing.T) {
	l := newTestLoader(t)
	broken := newFakeDriver("broken", "1.0", 1)
	broken.omit["clFlush"] = true
	impl := attach(t, l, broken)
	q := broken.mint(cl.KindCommandQueue)

	res := l.Call("clFinish", q)
	assert.Equal(t, cl.InvalidOperation, res.Code)
	assert.ErrorIs(t, res.Err, ErrUnusable)
	assert.False(t, impl.Usable())
}

func TestTrampolineArity(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)

	res := l.Call("clFlush")
	assert.Equal(t, cl.InvalidValue, res.Code)
	assert.ErrorIs(t, res.Err, ErrArity)

	res = l.Call("clFlush", a.mint(cl.KindCommandQueue), 1)
	assert.ErrorIs(t, res.Err, ErrArity)
}

func TestTrampolineListGovernor(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	b := newFakeDriver("b", "3.0", 1)
	attach(t, l, a)
	attach(t, l, b)
	ea := a.mint(cl.KindEvent)
	eb := b.mint(cl.KindEvent)

	assert.Equal(t, "b/clWaitForEvents", l.Call("clWaitForEvents", uint32(2), []cl.Handle{eb, ea}).Value)
	assert.Equal(t, "a/clWaitForEvents", l.Call("clWaitForEvents", uint32(1), []cl.Handle{ea}).Value)

	res := l.Call("clWaitForEvents", uint32(0), []cl.Handle{})
	assert.Equal(t, cl.InvalidValue, res.Code)
	assert.ErrorIs(t, res.Err, ErrEmptyHandleList)

	res = l.Call("clWaitForEvents", uint32(0), nil)
	assert.Equal(t, cl.InvalidValue, res.Code)

	res = l.Call("clWaitForEvents", uint32(1), []uint64{1})
	assert.ErrorIs(t, res.Err, ErrBadArgument)

	res = l.Call("clWaitForEvents", uint32(1), []cl.Handle{0x999})
	assert.Equal(t, cl.InvalidEvent, res.Code)

	var code int32
	res = l.Call("clCreateContext", cl.Properties(nil), uint32(0), []cl.Handle(nil), nil, nil, &code)
	assert.Equal(t, cl.InvalidValue, res.Code)
	assert.Equal(t, int32(cl.InvalidValue), code)

	dev := a.mint(cl.KindDevice)
	code = 0
	res = l.Call("clCreateContext", cl.Properties(nil), uint32(0), []cl.Handle{dev}, nil, nil, &code)
	assert.Equal(t, cl.InvalidValue, res.Code, "zero count with a non-empty list")
	assert.ErrorIs(t, res.Err, ErrEmptyHandleList)
	assert.Equal(t, int32(cl.InvalidValue), code)

	res = l.Call("clWaitForEvents", uint32(0), []cl.Handle{ea})
	assert.ErrorIs(t, res.Err, ErrEmptyHandleList)

	res = l.Call("clWaitForEvents", "one", []cl.Handle{ea})
	assert.Equal(t, cl.InvalidValue, res.Code)
	assert.ErrorIs(t, res.Err, ErrBadArgument)

	res = l.Call("clCreateContext", cl.Properties(nil), uint32(1), []cl.Handle{dev}, nil, nil, &code)
	require.True(t, res.OK())
	ctx, err := l.Directory().Resolve(res.Handle(), cl.KindContext)
	require.NoError(t, err)
	assert.Equal(t, "a", ctx.Name())
}

func TestTrampolinePropertyGovernor(t *testing.T) {
	l := newTestLoader(t)
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)

	var code int32
	res := l.Call("clCreateContextFromType", cl.Properties{0x1085, 1, 0}, uint64(1), nil, nil, &code)
	assert.Equal(t, cl.InvalidPlatform, res.Code)
	assert.Equal(t, int32(cl.InvalidPlatform), code)

	res = l.Call("clCreateContextFromType", nil, uint64(1), nil, nil, &code)
	assert.Equal(t, cl.InvalidPlatform, res.Code)

	res = l.Call("clCreateContextFromType", []int64{cl.ContextPlatform, int64(a.platform(0))}, uint64(1), nil, nil, &code)
	assert.True(t, res.OK())
}

func TestTrampolinePathDoesNotLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newTestLoader(t, WithLogger(zap.New(core)))
	a := newFakeDriver("a", "3.0", 1)
	attach(t, l, a)
	q := a.mint(cl.KindCommandQueue)

	require.True(t, l.Call("clFlush", q).OK())
	before := logs.Len()

	for i := 0; i < 10; i++ {
		l.Call("clFlush", q)
		l.Call("clFlush", cl.Handle(0xbad))
	}
	assert.Equal(t, before, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("attached implementation").Len())
	assert.Equal(t, 1, logs.FilterMessage("dispatch table initialized").Len())
}
