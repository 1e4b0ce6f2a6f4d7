package vulkan

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// sceneShaderSource passes clip-space positions through and interpolates
// vertex colors.
const sceneShaderSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(@location(0) position: vec4<f32>, @location(1) color: vec4<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = position;
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// compileShader translates the scene shader to SPIR-V words.
func compileShader() ([]uint32, error) {
	spirv, err := naga.Compile(sceneShaderSource)
	if err != nil {
		return nil, fmt.Errorf("vulkan: compile scene shader: %w", err)
	}
	if len(spirv) == 0 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("vulkan: scene shader: invalid SPIR-V length %d", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}
