package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

func TestVersionParseAndOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.0", Version{1, 0}},
		{"CL_VERSION_2_1", Version{2, 1}},
		{" 3.0 ", Version{3, 0}},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "3", "a.b", "CL_VERSION_3", "1.-1"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, bad)
	}

	assert.True(t, Version{1, 2}.Less(Version{2, 0}))
	assert.True(t, Version{2, 0}.Less(Version{2, 1}))
	assert.False(t, Version{3, 0}.Less(Version{3, 0}))
	assert.Equal(t, 1, Version{3, 0}.Compare(Version{2, 2}))
	assert.Equal(t, "CL_VERSION_1_2", Version{1, 2}.Macro())
	assert.Equal(t, "2.1", Version{2, 1}.String())
}

func TestGovernor(t *testing.T) {
	reg := Builtin()

	tests := []struct {
		name string
		want Governor
	}{
		{"clGetPlatformInfo", Governor{Index: 0, Kind: cl.KindPlatform, Mode: GovernDirect}},
		{"clCreateBuffer", Governor{Index: 0, Kind: cl.KindContext, Mode: GovernDirect}},
		{"clEnqueueReadBuffer", Governor{Index: 0, Kind: cl.KindCommandQueue, Mode: GovernDirect}},
		{"clEnqueueNativeKernel", Governor{Index: 0, Kind: cl.KindCommandQueue, Mode: GovernDirect}},
		{"clCreateContext", Governor{Index: 2, Kind: cl.KindDevice, Mode: GovernList}},
		{"clWaitForEvents", Governor{Index: 1, Kind: cl.KindEvent, Mode: GovernList}},
		{"clCreateCommandBufferKHR", Governor{Index: 1, Kind: cl.KindCommandQueue, Mode: GovernList}},
		{"clCreateContextFromType", Governor{Index: 0, Kind: cl.KindPlatform, Mode: GovernProperty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, ok := reg.Lookup(tt.name)
			require.True(t, ok)
			got, ok := ep.Governor()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	unloaded, _ := reg.Lookup("clUnloadCompiler")
	_, ok := unloaded.Governor()
	assert.False(t, ok)
}

func TestNewRejectsInconsistentTables(t *testing.T) {
	flush := EntryPoint{
		Name:    "clFlush",
		Return:  "cl_int",
		Params:  []Param{{Type: "cl_command_queue", Name: "command_queue"}},
		Version: Version{1, 0},
	}

	_, err := New([]EntryPoint{flush, flush})
	assert.True(t, errors.Is(err, ErrMalformedRegistry))

	_, err = New([]EntryPoint{{Return: "cl_int"}})
	assert.True(t, errors.Is(err, ErrMalformedRegistry))

	notFlagged := EntryPoint{Name: "clUnloadCompiler", Return: "cl_int", Version: Version{1, 0}}
	_, err = New([]EntryPoint{notFlagged})
	assert.True(t, errors.Is(err, ErrMalformedRegistry))

	reg, err := New([]EntryPoint{flush})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryReturnsCopies(t *testing.T) {
	reg := Builtin()
	ep, ok := reg.Lookup("clGetPlatformInfo")
	require.True(t, ok)
	ep.Params[0].Name = "MODIFIED"

	again, _ := reg.Lookup("clGetPlatformInfo")
	assert.Equal(t, "platform", again.Params[0].Name)

	all := reg.Entries()
	all[0].Name = "MODIFIED"
	assert.NotEqual(t, "MODIFIED", reg.At(0).Name)
}

func TestSignature(t *testing.T) {
	reg := Builtin()
	ep, _ := reg.Lookup("clUnloadCompiler")
	assert.Equal(t, "cl_int clUnloadCompiler(void)", ep.Signature())

	ep, _ = reg.Lookup("clBuildProgram")
	assert.Equal(t,
		"cl_int clBuildProgram(cl_program program, cl_uint num_devices, const cl_device_id* device_list, "+
			"const char* options, void (CL_CALLBACK* pfn_notify)(cl_program program, void* user_data), void* user_data)",
		ep.Signature())
}
