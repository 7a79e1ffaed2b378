//go:build !nogpu

package gpu

import (
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rogue/font"
	"github.com/gogpu/rogue/grid"
	"github.com/gogpu/rogue/render"
)

// uniformSize is the byte size of the Params struct in grid.wgsl.
const uniformSize = 16

// frameTimeout bounds the fence wait after each submit.
const frameTimeout = 5 * time.Second

// Backend renders grid frames onto a window surface view. It
// implements render.Backend.
type Backend struct {
	dev   *deviceHandle
	atlas *font.Atlas

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	atlasBuf hal.Buffer

	paramsBuf hal.Buffer
	foreBuf   hal.Buffer
	backBuf   hal.Buffer
	textBuf   hal.Buffer
	bufCells  uint32
	bindGroup hal.BindGroup

	surfaceView hal.TextureView
	format      gputypes.TextureFormat
}

var _ render.Backend = (*Backend)(nil)

// New creates a Backend for the given font atlas. When provider is
// non-nil the windowing layer's device and queue are shared (the
// provider must expose HalDevice() any and HalQueue() any); otherwise
// a device is opened on a fresh Vulkan instance.
func New(atlas *font.Atlas, provider any) (*Backend, error) {
	var dev *deviceHandle
	var err error
	if provider != nil {
		dev, err = sharedDevice(provider)
	} else {
		dev, err = ownDevice()
	}
	if err != nil {
		return nil, err
	}
	return &Backend{dev: dev, atlas: atlas}, nil
}

// SetSurfaceTarget installs the texture view to render onto. The
// windowing layer hands views across package boundaries as any; a nil
// or foreign value clears the target and frames are skipped. The
// caller retains ownership of the view.
func (b *Backend) SetSurfaceTarget(view any) {
	if tv, ok := view.(hal.TextureView); ok {
		b.surfaceView = tv
		return
	}
	b.surfaceView = nil
}

// Configure rebuilds the pipeline for the descriptor's surface format
// and uploads the glyph atlas if not yet resident. The swap-structure
// itself is owned by the windowing layer, so dimension changes need no
// GPU work here.
func (b *Backend) Configure(desc render.Descriptor) error {
	if b.atlasBuf == nil {
		if err := b.uploadAtlas(); err != nil {
			return err
		}
	}
	if b.pipeline != nil && desc.Format == b.format {
		return nil
	}
	b.destroyPipeline()
	if err := b.createPipeline(desc.Format); err != nil {
		b.destroyPipeline()
		return err
	}
	b.format = desc.Format
	return nil
}

// RenderFrame uploads the grid planes and encodes one render pass onto
// the current surface view. Frames without a target or with an empty
// grid are skipped.
func (b *Backend) RenderFrame(img *grid.Image) error {
	if b.surfaceView == nil || img == nil || img.Width == 0 || img.Height == 0 {
		return nil
	}
	if b.pipeline == nil {
		return fmt.Errorf("gpu: render before configure")
	}
	if err := b.ensureBuffers(img.Width * img.Height); err != nil {
		return classify(err)
	}

	var params [uniformSize]byte
	putUint32(params[0:], img.Width)
	putUint32(params[4:], img.Height)
	putUint32(params[8:], b.atlas.CellWidth)
	putUint32(params[12:], b.atlas.CellHeight)
	b.dev.queue.WriteBuffer(b.paramsBuf, 0, params[:])
	b.dev.queue.WriteBuffer(b.foreBuf, 0, u32Bytes(img.Fore))
	b.dev.queue.WriteBuffer(b.backBuf, 0, u32Bytes(img.Back))
	b.dev.queue.WriteBuffer(b.textBuf, 0, u32Bytes(img.Text))

	return classify(b.encodeSubmit())
}

// encodeSubmit records the grid pass onto the surface view and submits
// with a fence wait so the windowing layer can present immediately.
func (b *Backend) encodeSubmit() error {
	device, queue := b.dev.device, b.dev.queue

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "grid_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("grid_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rpDesc := &hal.RenderPassDescriptor{
		Label: "grid_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       b.surfaceView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	}
	rp := encoder.BeginRenderPass(rpDesc)
	rp.SetPipeline(b.pipeline)
	rp.SetBindGroup(0, b.bindGroup, nil)
	rp.Draw(4, 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return fenceWaitErr(device.Wait(fence, 1, frameTimeout))
}

// fenceWaitErr normalizes the two failure modes of a fence wait: a
// wait error from the driver and a timeout without one.
func fenceWaitErr(ok bool, err error) error {
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("wait for GPU: timeout after %v", frameTimeout)
	}
	return nil
}

// ensureBuffers sizes the plane storage buffers and uniform buffer for
// the given cell count, recreating them (and the bind group) when the
// grid grows or shrinks.
func (b *Backend) ensureBuffers(cells uint32) error {
	if cells == b.bufCells && b.foreBuf != nil {
		return nil
	}
	b.destroyBuffers()

	device := b.dev.device
	planeSize := uint64(cells) * 4
	planeUsage := gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst

	var err error
	if b.paramsBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_params", Size: uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	}); err != nil {
		return fmt.Errorf("create params buffer: %w", err)
	}
	if b.foreBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_fore", Size: planeSize, Usage: planeUsage,
	}); err != nil {
		return fmt.Errorf("create fore buffer: %w", err)
	}
	if b.backBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_back", Size: planeSize, Usage: planeUsage,
	}); err != nil {
		return fmt.Errorf("create back buffer: %w", err)
	}
	if b.textBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_text", Size: planeSize, Usage: planeUsage,
	}); err != nil {
		return fmt.Errorf("create text buffer: %w", err)
	}

	atlasSize := uint64(b.atlas.Width) * uint64(b.atlas.Height) * 4
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "grid_bind", Layout: b.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: b.paramsBuf.NativeHandle(), Offset: 0, Size: uniformSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: b.foreBuf.NativeHandle(), Offset: 0, Size: planeSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: b.backBuf.NativeHandle(), Offset: 0, Size: planeSize}},
			{Binding: 3, Resource: gputypes.BufferBinding{Buffer: b.textBuf.NativeHandle(), Offset: 0, Size: planeSize}},
			{Binding: 4, Resource: gputypes.BufferBinding{Buffer: b.atlasBuf.NativeHandle(), Offset: 0, Size: atlasSize}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	b.bindGroup = bg
	b.bufCells = cells
	return nil
}

// createPipeline compiles the grid shader and builds the render
// pipeline targeting the given surface format.
func (b *Backend) createPipeline(format gputypes.TextureFormat) error {
	device := b.dev.device

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "grid_shader",
		Source: hal.ShaderSource{WGSL: gridShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile grid shader: %w", err)
	}
	b.shader = shader

	// Bind group layout:
	//   Binding 0: Params (uniform, fragment)
	//   Binding 1-3: fore/back/text planes (read-only storage, fragment)
	//   Binding 4: glyph atlas coverage (read-only storage, fragment)
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	for i := uint32(1); i <= 4; i++ {
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    i,
			Visibility: gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
		})
	}
	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "grid_bind_layout",
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create grid bind layout: %w", err)
	}
	b.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "grid_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{b.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create grid pipeline layout: %w", err)
	}
	b.pipeLayout = pipeLayout

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "grid_pipeline",
		Layout: b.pipeLayout,
		Vertex: hal.VertexState{
			Module:     b.shader,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create grid pipeline: %w", err)
	}
	b.pipeline = pipeline
	return nil
}

// uploadAtlas packs the atlas alpha channel into one word per pixel
// and uploads it once; the atlas is immutable afterwards.
func (b *Backend) uploadAtlas() error {
	words := atlasWords(b.atlas)
	buf, err := b.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "grid_atlas",
		Size:  uint64(len(words)) * 4,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create atlas buffer: %w", err)
	}
	b.atlasBuf = buf
	b.dev.queue.WriteBuffer(buf, 0, u32Bytes(words))
	return nil
}

// atlasWords extracts per-pixel glyph coverage from the atlas RGBA
// data, one word per pixel with coverage in the low byte.
func atlasWords(a *font.Atlas) []uint32 {
	n := int(a.Width) * int(a.Height)
	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		words[i] = uint32(a.Pixels[i*4+3])
	}
	return words
}

// Destroy releases all GPU resources. The device and instance are
// destroyed only when the backend opened them itself.
func (b *Backend) Destroy() {
	if b.dev == nil {
		return
	}
	b.destroyBuffers()
	b.destroyPipeline()
	if b.atlasBuf != nil {
		b.dev.device.DestroyBuffer(b.atlasBuf)
		b.atlasBuf = nil
	}
	b.surfaceView = nil
	b.dev.destroy()
	b.dev = nil
}

func (b *Backend) destroyBuffers() {
	device := b.dev.device
	if b.bindGroup != nil {
		device.DestroyBindGroup(b.bindGroup)
		b.bindGroup = nil
	}
	for _, buf := range []*hal.Buffer{&b.textBuf, &b.backBuf, &b.foreBuf, &b.paramsBuf} {
		if *buf != nil {
			device.DestroyBuffer(*buf)
			*buf = nil
		}
	}
	b.bufCells = 0
}

func (b *Backend) destroyPipeline() {
	device := b.dev.device
	if b.pipeline != nil {
		device.DestroyRenderPipeline(b.pipeline)
		b.pipeline = nil
	}
	if b.pipeLayout != nil {
		device.DestroyPipelineLayout(b.pipeLayout)
		b.pipeLayout = nil
	}
	if b.bindLayout != nil {
		device.DestroyBindGroupLayout(b.bindLayout)
		b.bindLayout = nil
	}
	if b.shader != nil {
		device.DestroyShaderModule(b.shader)
		b.shader = nil
	}
}

// classify maps raw hal errors onto the render package's error
// taxonomy. The hal surfaces driver failures as strings, so the match
// is by message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "surface lost"),
		strings.Contains(msg, "swapchain out of date"),
		strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", render.ErrSurfaceLost, err)
	case strings.Contains(msg, "out of memory"),
		strings.Contains(msg, "out of device memory"):
		return fmt.Errorf("%w: %v", render.ErrOutOfMemory, err)
	default:
		return err
	}
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// u32Bytes reinterprets a plane as its byte representation for buffer
// upload. Valid for the duration of the WriteBuffer call.
func u32Bytes(p []uint32) []byte {
	if len(p) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), len(p)*4) //nolint:gosec // plane upload, no aliasing past the call
}
