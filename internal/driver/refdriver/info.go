package refdriver

import (
	"encoding/binary"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Info query parameter names.
const (
	platformProfile    = 0x0900
	platformVersion    = 0x0901
	platformName       = 0x0902
	platformVendor     = 0x0903
	platformExtensions = 0x0904
	platformICDSuffix  = 0x0920

	deviceType     = 0x1000
	deviceName     = 0x102B
	deviceVendor   = 0x102C
	deviceVersion  = 0x102F
	devicePlatform = 0x1031

	contextReferenceCount = 0x1080
	contextDevices        = 0x1081
	contextNumDevices     = 0x1083

	eventCommandExecutionStatus = 0x11D3
	eventReferenceCount         = 0x11D2
)

// Device types.
const (
	deviceTypeDefault uint64 = 1 << 0
	deviceTypeCPU     uint64 = 1 << 1
	deviceTypeAll     uint64 = 0xFFFFFFFF
)

// Memory flags.
const (
	memUseHostPtr  uint64 = 1 << 3
	memCopyHostPtr uint64 = 1 << 5
)

const eventComplete = 0

func cString(s string) []byte {
	return append([]byte(s), 0)
}

func uint32Bytes(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func uint64Bytes(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func handleBytes(hs ...cl.Handle) []byte {
	out := make([]byte, 0, 8*len(hs))
	for _, h := range hs {
		out = binary.LittleEndian.AppendUint64(out, uint64(h))
	}
	return out
}

// writeInfo answers an info query: args are (param_value_size, param_value,
// param_value_size_ret). The value is copied only if the caller's buffer is
// present, and the buffer must then be large enough.
func writeInfo(value []byte, sizeArg, outArg, sizeRetArg any) cl.ErrorCode {
	size, ok := cl.Uint64(sizeArg)
	if !ok {
		return cl.InvalidValue
	}
	out, _ := outArg.([]byte)
	if out != nil {
		if size < uint64(len(value)) || uint64(len(out)) < uint64(len(value)) {
			return cl.InvalidValue
		}
		copy(out, value)
	}
	switch p := sizeRetArg.(type) {
	case *uint64:
		if p != nil {
			*p = uint64(len(value))
		}
	case *uint:
		if p != nil {
			*p = uint(len(value))
		}
	}
	return cl.Success
}
