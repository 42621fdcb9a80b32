// Package ref is a software reference implementation of the d3d9 native
// interfaces.
//
// It follows the native contracts closely enough to drive package d3d9 in
// tests and tools: COM-style reference counting with level surfaces
// forwarding to their texture, state block recording and capture,
// CheckDeviceFormat against a format table, StretchRect legality, and real
// pixel storage so that clears and copies can be verified.
//
// Rendering is limited to DrawPrimitiveUP with the fixed-function texture
// stage 0; DrawPrimitive and DrawIndexedPrimitive are only recorded.
package ref
