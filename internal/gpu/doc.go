// Package gpu implements the render.Backend contract on wgpu/hal.
//
// The backend holds a device and queue (either opened on its own
// Vulkan instance or shared with the windowing layer), a render
// pipeline built from the embedded grid shader, a glyph coverage
// buffer, and three storage buffers mirroring the grid planes. Each
// frame uploads the planes, encodes one render pass onto the current
// surface view, and submits with a fence wait.
package gpu
