// Package kernel defines the lifecycle and port-binding contract shared by
// all filter kernels.
//
// An [Instance] wraps one [Kernel] behind an explicit state machine:
//
//	inst, err := kernel.New(desc, 48000) // created
//	inst.BindControl(0, &freq)           // bind ports (any time before Destroy)
//	inst.BindAudio(2, in)
//	inst.BindAudio(3, out)
//	err = inst.Activate()                // buffers allocated and zeroed
//	err = inst.Process(len(in))          // repeat per block
//	inst.Deactivate()                    // buffers released
//	inst.Destroy()
//
// Control values are read once per block and handed to the kernel by value
// inside a [Block]. Audio slices are re-sliced to the frame count of the call
// and dropped again before Process returns, so kernels never hold on to
// memory owned by the caller.
//
// Calls made out of order are rejected with sentinel errors instead of
// corrupting state. The processing path never allocates.
package kernel
