// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package webgpu maps the abstract resource model of package shim onto the
// WebGPU vocabulary of github.com/gogpu/gputypes.
//
// Each native generation has its own format table; a Codec bound to one of
// them converts texture and view descriptions in both directions:
//
//	codec, err := webgpu.NewCodec(dev.API())
//	if err != nil {
//	    return err
//	}
//	td, err := codec.ToTextureDescriptor(shim.ResourceTypeTexture2D, dev.ResourceDesc(h))
//
// Buffers carry no format and are converted by the package-level
// ToBufferDescriptor and FromBufferDescriptor.
//
// Not every description survives the trip. WebGPU has no buffer views, no
// 1D array views and no multisampled view dimensions, and several native
// formats share one WebGPU format; the table then maps back to the closest
// native format.
package webgpu
