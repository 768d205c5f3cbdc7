package registry

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniRegistry = `<?xml version="1.0"?>
<registry>
    <commands>
        <command>
            <proto><type>cl_int</type> <name>clGetPlatformIDs</name></proto>
            <param><type>cl_uint</type> <name>num_entries</name></param>
            <param><type>cl_platform_id</type>* <name>platforms</name></param>
            <param><type>cl_uint</type>* <name>num_platforms</name></param>
        </command>
        <command>
            <proto><type>cl_context</type> <name>clCreateContext</name></proto>
            <param>const <type>cl_context_properties</type>* <name>properties</name></param>
            <param><type>cl_uint</type> <name>num_devices</name></param>
            <param>const <type>cl_device_id</type>* <name>devices</name></param>
            <param><type>void</type> (<type>CL_CALLBACK</type>* <name>pfn_notify</name>)(const <type>char</type>* errinfo, void* user_data)</param>
            <param><type>void</type>* <name>user_data</name></param>
            <param><type>cl_int</type>* <name>errcode_ret</name></param>
        </command>
        <command>
            <proto><type>void</type>* <name>clSVMAlloc</name></proto>
            <param>  <type>cl_context</type>   <name>context</name>  </param>
            <param><type>cl_uint</type> <name>alignment</name></param>
        </command>
        <command>
            <proto><type>cl_int</type> <name>clIcdGetPlatformIDsKHR</name></proto>
            <param><type>cl_uint</type> <name>num_entries</name></param>
            <param><type>cl_platform_id</type>* <name>platforms</name></param>
            <param><type>cl_uint</type>* <name>num_platforms</name></param>
        </command>
    </commands>
    <feature api="opencl" name="CL_VERSION_2_0" number="2.0">
        <require>
            <type name="cl_context"/>
            <command name="clSVMAlloc"/>
            <command name="clCreateContext"/>
        </require>
    </feature>
    <feature api="opencl" name="CL_VERSION_1_0">
        <require>
            <command name="clGetPlatformIDs"/>
            <command name="clCreateContext"/>
        </require>
    </feature>
    <extensions>
        <extension name="cl_khr_icd">
            <require>
                <command name="clIcdGetPlatformIDsKHR"/>
            </require>
        </extension>
        <extension name="cl_khr_svm_like">
            <require>
                <command name="clSVMAlloc"/>
            </require>
        </extension>
    </extensions>
</registry>`

func TestParseReconstructsFragments(t *testing.T) {
	reg, err := Parse(strings.NewReader(miniRegistry))
	require.NoError(t, err)
	require.Equal(t, 4, reg.Len())

	ctx, ok := reg.Lookup("clCreateContext")
	require.True(t, ok)
	assert.Equal(t, "cl_context", ctx.Return)
	require.Len(t, ctx.Params, 6)
	assert.Equal(t, Param{Type: "const cl_context_properties*", Name: "properties"}, ctx.Params[0])
	assert.Equal(t, Param{Type: "const cl_device_id*", Name: "devices"}, ctx.Params[2])
	assert.Equal(t, Param{
		Type:    "void (CL_CALLBACK*",
		TypeEnd: ")(const char* errinfo, void* user_data)",
		Name:    "pfn_notify",
	}, ctx.Params[3])

	svm, ok := reg.Lookup("clSVMAlloc")
	require.True(t, ok)
	assert.Equal(t, "void*", svm.Return)
	assert.Equal(t, Param{Type: "cl_context", Name: "context"}, svm.Params[0], "surrounding whitespace is trimmed")
}

func TestParseVersionIsLowestRequiringFeature(t *testing.T) {
	reg, err := Parse(strings.NewReader(miniRegistry))
	require.NoError(t, err)

	v, ok := reg.VersionOf("clCreateContext")
	require.True(t, ok)
	assert.Equal(t, Version{1, 0}, v)

	v, ok = reg.VersionOf("clSVMAlloc")
	require.True(t, ok)
	assert.Equal(t, Version{2, 0}, v)

	svm, _ := reg.Lookup("clSVMAlloc")
	assert.Empty(t, svm.Extension, "core features take precedence over extensions")
	assert.Equal(t, Version{2, 0}, reg.Latest())
}

func TestParseExtensionsAndExemptions(t *testing.T) {
	reg, err := Parse(strings.NewReader(miniRegistry))
	require.NoError(t, err)

	icd, ok := reg.Lookup("clIcdGetPlatformIDsKHR")
	require.True(t, ok)
	assert.Equal(t, "cl_khr_icd", icd.Extension)
	assert.True(t, icd.Version.IsZero())
	assert.True(t, icd.Optional())
	assert.True(t, icd.Exempt)

	plat, _ := reg.Lookup("clGetPlatformIDs")
	assert.True(t, plat.Exempt)
	ctx, _ := reg.Lookup("clCreateContext")
	assert.False(t, ctx.Exempt)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not xml",
			doc:  `<registry><commands>`,
		},
		{
			name: "missing name",
			doc: `<registry><commands><command>
				<proto><type>cl_int</type></proto>
			</command></commands></registry>`,
		},
		{
			name: "missing proto",
			doc: `<registry><commands><command>
				<param><type>cl_uint</type> <name>x</name></param>
			</command></commands></registry>`,
		},
		{
			name: "empty return type",
			doc: `<registry><commands><command>
				<proto><name>clFlush</name></proto>
			</command></commands></registry>`,
		},
		{
			name: "parameter without name",
			doc: `<registry><commands><command>
				<proto><type>cl_int</type> <name>clFlush</name></proto>
				<param><type>cl_command_queue</type></param>
			</command></commands></registry>`,
		},
		{
			name: "parameter without type",
			doc: `<registry><commands><command>
				<proto><type>cl_int</type> <name>clFlush</name></proto>
				<param><name>command_queue</name></param>
			</command></commands></registry>`,
		},
		{
			name: "duplicate command",
			doc: `<registry><commands>
				<command><proto><type>cl_int</type> <name>clFlush</name></proto><param><type>cl_command_queue</type> <name>q</name></param></command>
				<command><proto><type>cl_int</type> <name>clFlush</name></proto><param><type>cl_command_queue</type> <name>q</name></param></command>
			</commands></registry>`,
		},
		{
			name: "unknown feature version",
			doc: `<registry><commands>
				<command><proto><type>cl_int</type> <name>clFlush</name></proto><param><type>cl_command_queue</type> <name>q</name></param></command>
			</commands><feature name="CL_VERSION_X"><require><command name="clFlush"/></require></feature></registry>`,
		},
		{
			name: "feature references unknown command",
			doc: `<registry><commands>
				<command><proto><type>cl_int</type> <name>clFlush</name></proto><param><type>cl_command_queue</type> <name>q</name></param></command>
			</commands><feature number="1.0"><require><command name="clFlush"/><command name="clFinish"/></require></feature></registry>`,
		},
		{
			name: "unversioned command",
			doc: `<registry><commands>
				<command><proto><type>cl_int</type> <name>clFlush</name></proto><param><type>cl_command_queue</type> <name>q</name></param></command>
			</commands></registry>`,
		},
		{
			name: "no governing handle",
			doc: `<registry><commands>
				<command><proto><type>cl_int</type> <name>clHostOnly</name></proto><param><type>cl_uint</type> <name>n</name></param></command>
			</commands><feature number="1.0"><require><command name="clHostOnly"/></require></feature></registry>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRegistry), "got %v", err)
		})
	}
}

func TestLoadTestdataMatchesGeneratedTable(t *testing.T) {
	parsed, err := Load(filepath.Join("testdata", "cl.xml"))
	require.NoError(t, err)

	builtin := Builtin()
	require.Equal(t, builtin.Len(), parsed.Len())
	for i := 0; i < parsed.Len(); i++ {
		assert.Equal(t, parsed.At(i), builtin.At(i), "slot %d", i)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedRegistry))
}
