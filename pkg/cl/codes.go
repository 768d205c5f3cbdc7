package cl

import "fmt"

// ErrorCode is a native result code. Zero means success; negative values are
// errors.
type ErrorCode int32

const (
	Success             ErrorCode = 0
	DeviceNotFound      ErrorCode = -1
	OutOfResources      ErrorCode = -5
	OutOfHostMemory     ErrorCode = -6
	InvalidValue        ErrorCode = -30
	InvalidDeviceType   ErrorCode = -31
	InvalidPlatform     ErrorCode = -32
	InvalidDevice       ErrorCode = -33
	InvalidContext      ErrorCode = -34
	InvalidCommandQueue ErrorCode = -36
	InvalidHostPtr      ErrorCode = -37
	InvalidMemObject    ErrorCode = -38
	InvalidSampler      ErrorCode = -41
	InvalidProgram      ErrorCode = -44
	InvalidKernel       ErrorCode = -48
	InvalidEvent        ErrorCode = -58
	InvalidOperation    ErrorCode = -59
	InvalidBufferSize   ErrorCode = -61
	PlatformNotFoundKHR ErrorCode = -1001
)

var codeNames = map[ErrorCode]string{
	Success:             "CL_SUCCESS",
	DeviceNotFound:      "CL_DEVICE_NOT_FOUND",
	OutOfResources:      "CL_OUT_OF_RESOURCES",
	OutOfHostMemory:     "CL_OUT_OF_HOST_MEMORY",
	InvalidValue:        "CL_INVALID_VALUE",
	InvalidDeviceType:   "CL_INVALID_DEVICE_TYPE",
	InvalidPlatform:     "CL_INVALID_PLATFORM",
	InvalidDevice:       "CL_INVALID_DEVICE",
	InvalidContext:      "CL_INVALID_CONTEXT",
	InvalidCommandQueue: "CL_INVALID_COMMAND_QUEUE",
	InvalidHostPtr:      "CL_INVALID_HOST_PTR",
	InvalidMemObject:    "CL_INVALID_MEM_OBJECT",
	InvalidSampler:      "CL_INVALID_SAMPLER",
	InvalidProgram:      "CL_INVALID_PROGRAM",
	InvalidKernel:       "CL_INVALID_KERNEL",
	InvalidEvent:        "CL_INVALID_EVENT",
	InvalidOperation:    "CL_INVALID_OPERATION",
	InvalidBufferSize:   "CL_INVALID_BUFFER_SIZE",
	PlatformNotFoundKHR: "CL_PLATFORM_NOT_FOUND_KHR",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CL_ERROR(%d)", int32(c))
}
