package refdriver

import (
	"slices"
	"strconv"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// exports builds the export surface: every entry point the driver's version
// covers, implemented or stubbed, minus the configured omissions.
func (in *instance) exports() dispatch.ExportMap {
	implemented := map[string]cl.Func{
		"clGetPlatformIDs":                         in.getPlatformIDs,
		"clIcdGetPlatformIDsKHR":                   in.getPlatformIDs,
		"clGetPlatformInfo":                        in.getPlatformInfo,
		"clGetDeviceIDs":                           in.getDeviceIDs,
		"clGetDeviceInfo":                          in.getDeviceInfo,
		"clCreateContext":                          in.createContext,
		"clCreateContextFromType":                  in.createContextFromType,
		"clRetainContext":                          in.retainer(cl.KindContext),
		"clReleaseContext":                         in.releaser(cl.KindContext),
		"clGetContextInfo":                         in.getContextInfo,
		"clCreateCommandQueue":                     in.createCommandQueue,
		"clCreateCommandQueueWithProperties":       in.createCommandQueue,
		"clRetainCommandQueue":                     in.retainer(cl.KindCommandQueue),
		"clReleaseCommandQueue":                    in.releaser(cl.KindCommandQueue),
		"clFlush":                                  in.queueNoop,
		"clFinish":                                 in.queueNoop,
		"clCreateBuffer":                           in.createBuffer,
		"clCreateBufferWithProperties":             in.createBufferWithProperties,
		"clRetainMemObject":                        in.retainer(cl.KindMem),
		"clReleaseMemObject":                       in.releaser(cl.KindMem),
		"clEnqueueReadBuffer":                      in.enqueueReadBuffer,
		"clEnqueueWriteBuffer":                     in.enqueueWriteBuffer,
		"clWaitForEvents":                          in.waitForEvents,
		"clGetEventInfo":                           in.getEventInfo,
		"clRetainEvent":                            in.retainer(cl.KindEvent),
		"clReleaseEvent":                           in.releaser(cl.KindEvent),
		"clGetExtensionFunctionAddressForPlatform": in.getExtensionFunctionAddressForPlatform,
		"clUnloadPlatformCompiler":                 in.unloadPlatformCompiler,
		"clRetainDevice":                           in.deviceNoop,
		"clReleaseDevice":                          in.deviceNoop,
	}

	omit := make(map[string]bool, len(in.drv.cfg.Omit))
	for _, name := range in.drv.cfg.Omit {
		omit[name] = true
	}

	out := make(dispatch.ExportMap, in.drv.reg.Len())
	for _, ep := range in.drv.reg.Entries() {
		if omit[ep.Name] || (!ep.Optional() && in.drv.version.Less(ep.Version)) {
			continue
		}
		if fn, ok := implemented[ep.Name]; ok {
			out[ep.Name] = fn
			continue
		}
		if ep.Optional() {
			continue
		}
		out[ep.Name] = stub(ep)
	}
	return out
}

// stub answers InvalidOperation for core entry points the driver does not
// model.
func stub(ep registry.EntryPoint) cl.Func {
	errIdx := ep.ParamIndex("errcode_ret")
	return func(args ...any) cl.Result {
		if errIdx >= 0 && errIdx < len(args) {
			cl.SetCode(args[errIdx], cl.InvalidOperation)
		}
		return cl.Fail(cl.InvalidOperation)
	}
}

// failObject reports a failed object creation through errcode_ret.
func failObject(errcodeRet any, code cl.ErrorCode) cl.Result {
	cl.SetCode(errcodeRet, code)
	return cl.Fail(code)
}

func okObject(errcodeRet any, h cl.Handle) cl.Result {
	cl.SetCode(errcodeRet, cl.Success)
	return cl.Ok(h)
}

func (in *instance) getPlatformIDs(args ...any) cl.Result {
	numEntries, ok := cl.Uint32(args[0])
	if !ok {
		return cl.Fail(cl.InvalidValue)
	}
	platforms, _ := cl.Handles(args[1])
	numPlatforms, _ := args[2].(*uint32)
	if (numEntries == 0 && platforms != nil) || (platforms == nil && numPlatforms == nil) {
		return cl.Fail(cl.InvalidValue)
	}

	n := min(int(numEntries), len(platforms))
	copy(platforms[:n], in.platforms)
	if numPlatforms != nil {
		*numPlatforms = uint32(len(in.platforms))
	}
	return cl.Result{Code: cl.Success}
}

func (in *instance) getPlatformInfo(args ...any) cl.Result {
	platform, _ := args[0].(cl.Handle)
	if _, ok := in.get(platform, cl.KindPlatform); !ok {
		return cl.Fail(cl.InvalidPlatform)
	}
	param, _ := cl.Uint64(args[1])

	cfg := in.drv.cfg
	var value []byte
	switch param {
	case platformProfile:
		value = cString("FULL_PROFILE")
	case platformVersion:
		value = cString("OpenCL " + in.drv.version.String() + " " + cfg.Name)
	case platformName:
		value = cString(cfg.Name)
	case platformVendor:
		value = cString(cfg.Vendor)
	case platformExtensions:
		value = cString("cl_khr_icd")
	case platformICDSuffix:
		value = cString("REF")
	default:
		return cl.Fail(cl.InvalidValue)
	}
	return cl.Fail(writeInfo(value, args[2], args[3], args[4]))
}

func (in *instance) getDeviceIDs(args ...any) cl.Result {
	platform, _ := args[0].(cl.Handle)
	if _, ok := in.get(platform, cl.KindPlatform); !ok {
		return cl.Fail(cl.InvalidPlatform)
	}
	typ, ok := cl.Uint64(args[1])
	if !ok {
		return cl.Fail(cl.InvalidDeviceType)
	}
	numEntries, ok := cl.Uint32(args[2])
	if !ok {
		return cl.Fail(cl.InvalidValue)
	}
	devices, _ := cl.Handles(args[3])
	numDevices, _ := args[4].(*uint32)
	if (numEntries == 0 && devices != nil) || (devices == nil && numDevices == nil) {
		return cl.Fail(cl.InvalidValue)
	}

	var found []cl.Handle
	if typ == deviceTypeAll || typ&(deviceTypeDefault|deviceTypeCPU) != 0 {
		found = in.devicesOf(platform)
	}
	if len(found) == 0 {
		return cl.Fail(cl.DeviceNotFound)
	}

	n := min(int(numEntries), len(devices))
	copy(devices[:n], found)
	if numDevices != nil {
		*numDevices = uint32(len(found))
	}
	return cl.Result{Code: cl.Success}
}

func (in *instance) getDeviceInfo(args ...any) cl.Result {
	device, _ := args[0].(cl.Handle)
	obj, ok := in.get(device, cl.KindDevice)
	if !ok {
		return cl.Fail(cl.InvalidDevice)
	}
	param, _ := cl.Uint64(args[1])

	var value []byte
	switch param {
	case deviceType:
		value = uint64Bytes(deviceTypeCPU)
	case deviceName:
		value = cString(in.drv.cfg.Name + " device " + strconv.Itoa(obj.index))
	case deviceVendor:
		value = cString(in.drv.cfg.Vendor)
	case deviceVersion:
		value = cString("OpenCL " + in.drv.version.String())
	case devicePlatform:
		value = handleBytes(obj.platform)
	default:
		return cl.Fail(cl.InvalidValue)
	}
	return cl.Fail(writeInfo(value, args[2], args[3], args[4]))
}

func (in *instance) deviceNoop(args ...any) cl.Result {
	device, _ := args[0].(cl.Handle)
	if _, ok := in.get(device, cl.KindDevice); !ok {
		return cl.Fail(cl.InvalidDevice)
	}
	return cl.Result{Code: cl.Success}
}

func (in *instance) createContext(args ...any) cl.Result {
	errcodeRet := args[5]
	numDevices, ok := cl.Uint32(args[1])
	devices, _ := cl.Handles(args[2])
	if !ok || numDevices == 0 || int(numDevices) > len(devices) {
		return failObject(errcodeRet, cl.InvalidValue)
	}
	devices = devices[:numDevices]

	var platform cl.Handle
	for _, h := range devices {
		dev, ok := in.get(h, cl.KindDevice)
		if !ok {
			return failObject(errcodeRet, cl.InvalidDevice)
		}
		platform = dev.platform
	}
	if props, ok := cl.PropertyList(args[0]); ok {
		if p, found := props.Lookup(cl.ContextPlatform); found && cl.Handle(p) != platform {
			return failObject(errcodeRet, cl.InvalidPlatform)
		}
	}
	return in.newContext(errcodeRet, devices)
}

func (in *instance) createContextFromType(args ...any) cl.Result {
	errcodeRet := args[4]
	props, _ := cl.PropertyList(args[0])
	p, _ := props.Lookup(cl.ContextPlatform)
	platform := cl.Handle(p)
	if _, ok := in.get(platform, cl.KindPlatform); !ok {
		return failObject(errcodeRet, cl.InvalidPlatform)
	}
	typ, ok := cl.Uint64(args[1])
	if !ok {
		return failObject(errcodeRet, cl.InvalidDeviceType)
	}

	var devices []cl.Handle
	if typ == deviceTypeAll || typ&(deviceTypeDefault|deviceTypeCPU) != 0 {
		devices = in.devicesOf(platform)
	}
	if len(devices) == 0 {
		return failObject(errcodeRet, cl.DeviceNotFound)
	}
	return in.newContext(errcodeRet, devices)
}

func (in *instance) newContext(errcodeRet any, devices []cl.Handle) cl.Result {
	h, err := in.mint(cl.KindContext, &object{devices: append([]cl.Handle(nil), devices...)})
	if err != nil {
		return failObject(errcodeRet, cl.OutOfHostMemory)
	}
	return okObject(errcodeRet, h)
}

func (in *instance) getContextInfo(args ...any) cl.Result {
	ctx, _ := args[0].(cl.Handle)
	obj, ok := in.get(ctx, cl.KindContext)
	if !ok {
		return cl.Fail(cl.InvalidContext)
	}
	param, _ := cl.Uint64(args[1])

	var value []byte
	switch param {
	case contextReferenceCount:
		value = uint32Bytes(uint32(in.refCount(ctx)))
	case contextDevices:
		value = handleBytes(obj.devices...)
	case contextNumDevices:
		value = uint32Bytes(uint32(len(obj.devices)))
	default:
		return cl.Fail(cl.InvalidValue)
	}
	return cl.Fail(writeInfo(value, args[2], args[3], args[4]))
}

func (in *instance) createCommandQueue(args ...any) cl.Result {
	errcodeRet := args[3]
	ctx, _ := args[0].(cl.Handle)
	obj, ok := in.get(ctx, cl.KindContext)
	if !ok {
		return failObject(errcodeRet, cl.InvalidContext)
	}
	device, _ := args[1].(cl.Handle)
	if !slices.Contains(obj.devices, device) {
		return failObject(errcodeRet, cl.InvalidDevice)
	}

	h, err := in.mint(cl.KindCommandQueue, &object{context: ctx, device: device})
	if err != nil {
		return failObject(errcodeRet, cl.OutOfHostMemory)
	}
	return okObject(errcodeRet, h)
}

func (in *instance) queueNoop(args ...any) cl.Result {
	q, _ := args[0].(cl.Handle)
	if _, ok := in.get(q, cl.KindCommandQueue); !ok {
		return cl.Fail(cl.InvalidCommandQueue)
	}
	return cl.Result{Code: cl.Success}
}

func (in *instance) createBuffer(args ...any) cl.Result {
	return in.newBuffer(args[0], args[1], args[2], args[3], args[4])
}

func (in *instance) createBufferWithProperties(args ...any) cl.Result {
	return in.newBuffer(args[0], args[2], args[3], args[4], args[5])
}

func (in *instance) newBuffer(ctxArg, flagsArg, sizeArg, hostArg, errcodeRet any) cl.Result {
	ctx, _ := ctxArg.(cl.Handle)
	if _, ok := in.get(ctx, cl.KindContext); !ok {
		return failObject(errcodeRet, cl.InvalidContext)
	}
	flags, ok := cl.Uint64(flagsArg)
	if !ok {
		return failObject(errcodeRet, cl.InvalidValue)
	}
	size, ok := cl.Uint64(sizeArg)
	if !ok || size == 0 {
		return failObject(errcodeRet, cl.InvalidBufferSize)
	}
	host, _ := hostArg.([]byte)

	usesHost := flags&(memUseHostPtr|memCopyHostPtr) != 0
	if usesHost != (host != nil) || (host != nil && uint64(len(host)) < size) {
		return failObject(errcodeRet, cl.InvalidHostPtr)
	}

	var data []byte
	switch {
	case flags&memUseHostPtr != 0:
		data = host[:size]
	case flags&memCopyHostPtr != 0:
		data = append([]byte(nil), host[:size]...)
	default:
		data = make([]byte, size)
	}

	h, err := in.mint(cl.KindMem, &object{context: ctx, data: data})
	if err != nil {
		return failObject(errcodeRet, cl.OutOfHostMemory)
	}
	return okObject(errcodeRet, h)
}

func (in *instance) enqueueReadBuffer(args ...any) cl.Result {
	return in.transfer(false, args)
}

func (in *instance) enqueueWriteBuffer(args ...any) cl.Result {
	return in.transfer(true, args)
}

// transfer serves both buffer copies. Transfers complete synchronously, so
// the blocking flag is irrelevant and any returned event is already
// complete.
func (in *instance) transfer(write bool, args []any) cl.Result {
	q, _ := args[0].(cl.Handle)
	queue, ok := in.get(q, cl.KindCommandQueue)
	if !ok {
		return cl.Fail(cl.InvalidCommandQueue)
	}
	b, _ := args[1].(cl.Handle)
	buf, ok := in.get(b, cl.KindMem)
	if !ok {
		return cl.Fail(cl.InvalidMemObject)
	}
	if buf.context != queue.context {
		return cl.Fail(cl.InvalidContext)
	}

	offset, ok1 := cl.Uint64(args[3])
	size, ok2 := cl.Uint64(args[4])
	host, _ := args[5].([]byte)
	if !ok1 || !ok2 || host == nil || !inRange(offset, size, len(buf.data)) || size > uint64(len(host)) {
		return cl.Fail(cl.InvalidValue)
	}
	if code := in.checkWaitList(args[6], args[7]); code != cl.Success {
		return cl.Fail(code)
	}

	in.copyBuffer(write, buf.data[offset:offset+size], host[:size])

	if out, ok := args[8].(*cl.Handle); ok && out != nil {
		ev, err := in.mint(cl.KindEvent, &object{context: queue.context, done: true})
		if err != nil {
			return cl.Fail(cl.OutOfHostMemory)
		}
		*out = ev
	}
	return cl.Result{Code: cl.Success}
}

// inRange reports whether [offset, offset+size) lies within a buffer of
// length n without overflowing.
func inRange(offset, size uint64, n int) bool {
	return offset <= uint64(n) && size <= uint64(n)-offset
}

func (in *instance) copyBuffer(write bool, region, host []byte) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if write {
		copy(region, host)
	} else {
		copy(host, region)
	}
}

func (in *instance) checkWaitList(numArg, listArg any) cl.ErrorCode {
	num, ok := cl.Uint32(numArg)
	list, okList := cl.Handles(listArg)
	if !ok || !okList || (num == 0) != (len(list) == 0) || int(num) > len(list) {
		return cl.InvalidValue
	}
	for _, h := range list[:num] {
		if _, ok := in.get(h, cl.KindEvent); !ok {
			return cl.InvalidEvent
		}
	}
	return cl.Success
}

func (in *instance) waitForEvents(args ...any) cl.Result {
	num, ok := cl.Uint32(args[0])
	if !ok || num == 0 {
		return cl.Fail(cl.InvalidValue)
	}
	return cl.Fail(in.checkWaitList(args[0], args[1]))
}

func (in *instance) getEventInfo(args ...any) cl.Result {
	ev, _ := args[0].(cl.Handle)
	obj, ok := in.get(ev, cl.KindEvent)
	if !ok {
		return cl.Fail(cl.InvalidEvent)
	}
	param, _ := cl.Uint64(args[1])

	var value []byte
	switch param {
	case eventReferenceCount:
		value = uint32Bytes(uint32(in.refCount(ev)))
	case eventCommandExecutionStatus:
		status := int32(1) // CL_QUEUED
		if obj.done {
			status = eventComplete
		}
		value = uint32Bytes(uint32(status))
	default:
		return cl.Fail(cl.InvalidValue)
	}
	return cl.Fail(writeInfo(value, args[2], args[3], args[4]))
}

func (in *instance) retainer(kind cl.Kind) cl.Func {
	return func(args ...any) cl.Result {
		h, _ := args[0].(cl.Handle)
		return cl.Fail(in.retain(h, kind))
	}
}

func (in *instance) releaser(kind cl.Kind) cl.Func {
	return func(args ...any) cl.Result {
		h, _ := args[0].(cl.Handle)
		return cl.Fail(in.release(h, kind))
	}
}

// getExtensionFunctionAddressForPlatform resolves extension entry points
// this driver exports. Unknown names resolve to an untyped nil Value.
func (in *instance) getExtensionFunctionAddressForPlatform(args ...any) cl.Result {
	platform, _ := args[0].(cl.Handle)
	if _, ok := in.get(platform, cl.KindPlatform); !ok {
		return cl.Result{Code: cl.Success}
	}
	name, _ := args[1].(string)
	ep, ok := in.drv.reg.Lookup(name)
	if !ok || !ep.Optional() || slices.Contains(in.drv.cfg.Omit, name) {
		return cl.Result{Code: cl.Success}
	}
	if name == "clIcdGetPlatformIDsKHR" {
		return cl.Ok(cl.Func(in.getPlatformIDs))
	}
	return cl.Result{Code: cl.Success}
}

func (in *instance) unloadPlatformCompiler(args ...any) cl.Result {
	platform, _ := args[0].(cl.Handle)
	if _, ok := in.get(platform, cl.KindPlatform); !ok {
		return cl.Fail(cl.InvalidPlatform)
	}
	return cl.Result{Code: cl.Success}
}
