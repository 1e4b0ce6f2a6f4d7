package vulkan

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/g3d"
)

// copyPitchAlignment is the required BytesPerRow alignment for
// texture-to-buffer copies.
const copyPitchAlignment = 256

// scenePass owns the pipeline and offscreen attachments used to draw a
// frame and read it back.
type scenePass struct {
	device hal.Device
	queue  hal.Queue

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	width, height uint32
	colorTex      hal.Texture
	colorView     hal.TextureView
	depthTex      hal.Texture
	depthView     hal.TextureView

	readback []byte
}

func newScenePass(device hal.Device, queue hal.Queue) (*scenePass, error) {
	p := &scenePass{device: device, queue: queue}
	if err := p.createPipeline(); err != nil {
		p.destroy()
		return nil, err
	}
	return p, nil
}

func (p *scenePass) createPipeline() error {
	spirv, err := compileShader()
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "scene_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("vulkan: create shader module: %w", err)
	}
	p.shader = shader

	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "scene_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("vulkan: create pipeline layout: %w", err)
	}
	p.pipeLayout = layout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "scene_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{{
				ArrayStride: vertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
					{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
				},
			}},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    gputypes.TextureFormatBGRA8Unorm,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth24PlusStencil8,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("vulkan: create render pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// ensureTargets recreates the attachments when the size changes.
func (p *scenePass) ensureTargets(w, h uint32) error {
	if p.width == w && p.height == h && p.colorTex != nil {
		return nil
	}
	p.destroyTargets()

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	colorTex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "scene_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("vulkan: create color texture: %w", err)
	}
	p.colorTex = colorTex

	colorView, err := p.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{Label: "scene_color_view"})
	if err != nil {
		p.destroyTargets()
		return fmt.Errorf("vulkan: create color view: %w", err)
	}
	p.colorView = colorView

	depthTex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "scene_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth24PlusStencil8,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		p.destroyTargets()
		return fmt.Errorf("vulkan: create depth texture: %w", err)
	}
	p.depthTex = depthTex

	depthView, err := p.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{Label: "scene_depth_view"})
	if err != nil {
		p.destroyTargets()
		return fmt.Errorf("vulkan: create depth view: %w", err)
	}
	p.depthView = depthView

	p.width, p.height = w, h
	return nil
}

// render draws vertexCount vertices from data and copies the frame into
// dst, which holds w*h tightly packed RGBA pixels.
func (p *scenePass) render(data []byte, vertexCount uint32, clear g3d.RGBA, dst []byte, w, h uint32, timeout time.Duration) error {
	if err := p.ensureTargets(w, h); err != nil {
		return err
	}

	var vertBuf hal.Buffer
	if vertexCount > 0 {
		buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "scene_vertices",
			Size:  uint64(len(data)),
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("vulkan: create vertex buffer: %w", err)
		}
		defer p.device.DestroyBuffer(buf)
		if err := p.queue.WriteBuffer(buf, 0, data); err != nil {
			return fmt.Errorf("vulkan: upload vertices: %w", err)
		}
		vertBuf = buf
	}

	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "scene_encoder"})
	if err != nil {
		return fmt.Errorf("vulkan: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("scene_frame"); err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("vulkan: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "scene_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    p.colorView,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(clear.R), G: float64(clear.G), B: float64(clear.B), A: float64(clear.A),
			},
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              p.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		},
	})
	if vertBuf != nil {
		rp.SetPipeline(p.pipeline)
		rp.SetVertexBuffer(0, vertBuf, 0)
		rp.Draw(vertexCount, 1, 0, 0)
	}
	rp.End()

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: p.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "scene_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("vulkan: create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(staging)

	encoder.CopyTextureToBuffer(p.colorTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: p.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: p.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("vulkan: end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("vulkan: create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)

	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("vulkan: submit: %w", err)
	}
	ok, err := p.device.Wait(fence, 1, timeout)
	if err != nil {
		return fmt.Errorf("vulkan: wait for frame: %w", err)
	}
	if !ok {
		return fmt.Errorf("vulkan: frame not finished after %v", timeout)
	}

	if uint64(cap(p.readback)) < stagingSize {
		p.readback = make([]byte, stagingSize)
	}
	p.readback = p.readback[:stagingSize]
	if err := p.queue.ReadBuffer(staging, 0, p.readback); err != nil {
		return fmt.Errorf("vulkan: read back frame: %w", err)
	}

	for row := uint32(0); row < h; row++ {
		src := p.readback[row*alignedBytesPerRow : row*alignedBytesPerRow+bytesPerRow]
		bgraToRGBA(dst[row*bytesPerRow:(row+1)*bytesPerRow], src)
	}
	return nil
}

func (p *scenePass) destroyTargets() {
	if p.depthView != nil {
		p.device.DestroyTextureView(p.depthView)
		p.depthView = nil
	}
	if p.depthTex != nil {
		p.device.DestroyTexture(p.depthTex)
		p.depthTex = nil
	}
	if p.colorView != nil {
		p.device.DestroyTextureView(p.colorView)
		p.colorView = nil
	}
	if p.colorTex != nil {
		p.device.DestroyTexture(p.colorTex)
		p.colorTex = nil
	}
	p.width, p.height = 0, 0
}

// destroy releases all GPU objects in reverse creation order.
func (p *scenePass) destroy() {
	p.destroyTargets()
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
