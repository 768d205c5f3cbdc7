package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

func TestDirectoryResolve(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}

	for _, kind := range cl.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			h, err := dir.Mint(kind, a)
			require.NoError(t, err)

			got, err := dir.Resolve(h, kind)
			require.NoError(t, err)
			assert.Same(t, a, got)

			for _, other := range cl.Kinds() {
				if other == kind {
					continue
				}
				_, err := dir.Resolve(h, other)
				var invalid *InvalidHandleError
				require.True(t, errors.As(err, &invalid), "resolve as %s", other)
				assert.Equal(t, other, invalid.Kind)
				assert.Equal(t, other.InvalidCode(), invalid.Code())
			}
		})
	}
}

func TestDirectoryNeverIssuedHandles(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}
	_, err := dir.Mint(cl.KindContext, a)
	require.NoError(t, err)

	for _, h := range []cl.Handle{0, 0xdeadbeef, ^cl.Handle(0)} {
		for _, kind := range cl.Kinds() {
			impl, err := dir.Resolve(h, kind)
			assert.Nil(t, impl)
			assert.Equal(t, kind.InvalidCode(), CodeOf(err), "%s as %s", h, kind)
		}
	}
}

func TestDirectoryRegisterErrors(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}

	assert.ErrorIs(t, dir.Register(0, cl.KindContext, a), ErrZeroHandle)
	assert.ErrorIs(t, dir.Register(5, cl.KindInvalid, a), ErrUnknownKind)
	assert.ErrorIs(t, dir.Register(5, cl.Kind(99), a), ErrUnknownKind)
	assert.ErrorIs(t, dir.Register(5, cl.KindContext, nil), ErrNilImplementation)

	require.NoError(t, dir.Register(5, cl.KindContext, a))
	assert.ErrorIs(t, dir.Register(5, cl.KindContext, a), ErrHandleInUse)
	assert.ErrorIs(t, dir.Register(5, cl.KindEvent, &Implementation{name: "b"}), ErrHandleInUse)

	kind, ok := dir.KindOf(5)
	assert.True(t, ok)
	assert.Equal(t, cl.KindContext, kind)
}

func TestDirectoryUnregisterIsIdempotent(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}
	h1, _ := dir.Mint(cl.KindMem, a)
	h2, _ := dir.Mint(cl.KindMem, a)

	dir.Unregister(h1)
	once := dir.Len()
	dir.Unregister(h1)
	assert.Equal(t, once, dir.Len())
	assert.Equal(t, 1, dir.Len())

	_, err := dir.Resolve(h1, cl.KindMem)
	assert.Equal(t, cl.InvalidMemObject, CodeOf(err))
	_, err = dir.Resolve(h2, cl.KindMem)
	assert.NoError(t, err)

	dir.Unregister(0xabc)
	assert.Equal(t, 1, dir.Len())
}

func TestDirectoryMintSkipsTakenValues(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}
	require.NoError(t, dir.Register(1, cl.KindDevice, a))
	require.NoError(t, dir.Register(2, cl.KindDevice, a))

	h, err := dir.Mint(cl.KindDevice, a)
	require.NoError(t, err)
	assert.Equal(t, cl.Handle(3), h)

	// Released values are not handed out again.
	dir.Unregister(h)
	next, err := dir.Mint(cl.KindDevice, a)
	require.NoError(t, err)
	assert.NotEqual(t, h, next)
}

func TestDirectoryUnregisterAll(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}
	b := &Implementation{name: "b"}

	for i := 0; i < 3; i++ {
		_, err := dir.Mint(cl.KindEvent, a)
		require.NoError(t, err)
	}
	hb, err := dir.Mint(cl.KindEvent, b)
	require.NoError(t, err)

	assert.Equal(t, 3, dir.Count(a))
	assert.Equal(t, 3, dir.UnregisterAll(a))
	assert.Equal(t, 0, dir.Count(a))
	assert.Equal(t, 0, dir.UnregisterAll(a))

	got, err := dir.Resolve(hb, cl.KindEvent)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestRegistrarOnlyReleasesOwnHandles(t *testing.T) {
	dir := NewDirectory()
	a := &Implementation{name: "a"}
	b := &Implementation{name: "b"}
	ra := registrar{dir: dir, impl: a}
	rb := registrar{dir: dir, impl: b}

	h, err := ra.Mint(cl.KindKernel)
	require.NoError(t, err)
	assert.True(t, ra.Owns(h, cl.KindKernel))
	assert.False(t, rb.Owns(h, cl.KindKernel))
	assert.False(t, ra.Owns(h, cl.KindProgram))

	rb.Unregister(h)
	_, err = dir.Resolve(h, cl.KindKernel)
	assert.NoError(t, err)

	ra.Unregister(h)
	_, err = dir.Resolve(h, cl.KindKernel)
	assert.Error(t, err)
}

func TestDirectoryConcurrentAccess(t *testing.T) {
	const (
		goroutines = 16
		handles    = 200
	)

	dir := NewDirectory()
	impls := []*Implementation{{name: "a"}, {name: "b"}}
	owner := make(map[cl.Handle]*Implementation, handles)
	minted := make([]cl.Handle, 0, handles)
	for i := 0; i < handles; i++ {
		impl := impls[i%len(impls)]
		h, err := dir.Mint(cl.KindCommandQueue, impl)
		require.NoError(t, err)
		owner[h] = impl
		minted = append(minted, h)
	}

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for _, h := range minted {
					got, err := dir.Resolve(h, cl.KindCommandQueue)
					if err != nil {
						if CodeOf(err) != cl.InvalidCommandQueue {
							errs <- fmt.Errorf("unexpected error for %s: %v", h, err)
							return
						}
						continue
					}
					if got != owner[h] {
						errs <- fmt.Errorf("%s resolved to %s, want %s", h, got.name, owner[h].name)
						return
					}
				}
			}
		}()
	}

	// Churn: release every other handle and mint new ones while readers run.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i, h := range minted {
			if i%2 == 0 {
				dir.Unregister(h)
			}
			if _, err := dir.Mint(cl.KindCommandQueue, impls[i%2]); err != nil {
				errs <- err
				return
			}
		}
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, handles+handles/2, dir.Len())
}
