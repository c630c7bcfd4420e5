package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gnomonlab/sundial/internal/engine/lighting"
	"github.com/gnomonlab/sundial/internal/engine/mesh"
	"github.com/gnomonlab/sundial/internal/engine/scene/shaders"
	"github.com/gnomonlab/sundial/internal/engine/shader"
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// LightParams carries everything the lighting pass needs for one frame.
type LightParams struct {
	ViewProj      mathx.Mat4
	LightViewProj mathx.Mat4
	LightDir      mathx.Vec3
	Ambient       float32
	Diffuse       float32
	Sun           lighting.PointLight

	ShadowsEnabled bool
	ShadowBias     float32
	ShadowDarkness float32
	Time           float32
}

// DialRenderer owns the two GPU programs of the frame: the depth-only pass
// from the sun's viewpoint and the lighting pass that samples its result.
// Uniform locations are resolved once at construction.
type DialRenderer struct {
	program      uint32
	depthProgram uint32

	uModel          int32
	uViewProj       int32
	uLightViewProj  int32
	uTime           int32
	uLightDir       int32
	uAmbient        int32
	uDiffuse        int32
	uSunPos         int32
	uSunColor       int32
	uShadowMap      int32
	uShadowsEnabled int32
	uShadowBias     int32
	uShadowDarkness int32

	dModel         int32
	dLightViewProj int32
	dTime          int32
}

// NewDialRenderer compiles both passes and resolves their uniforms.
func NewDialRenderer() (*DialRenderer, error) {
	program, err := shader.CompileProgram(shaders.DialVertex, shaders.DialFragment)
	if err != nil {
		return nil, fmt.Errorf("compiling lighting pass: %w", err)
	}
	depthProgram, err := shader.CompileProgram(shaders.DepthVertex, shaders.DepthFragment)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("compiling depth pass: %w", err)
	}

	r := &DialRenderer{
		program:      program,
		depthProgram: depthProgram,

		uModel:          shader.MustGetUniform(program, "uModel"),
		uViewProj:       shader.MustGetUniform(program, "uViewProj"),
		uLightViewProj:  shader.MustGetUniform(program, "uLightViewProj"),
		uTime:           shader.GetUniform(program, "uTime"),
		uLightDir:       shader.MustGetUniform(program, "uLightDir"),
		uAmbient:        shader.MustGetUniform(program, "uAmbient"),
		uDiffuse:        shader.MustGetUniform(program, "uDiffuse"),
		uSunPos:         shader.GetUniform(program, "uSunPos"),
		uSunColor:       shader.GetUniform(program, "uSunColor"),
		uShadowMap:      shader.MustGetUniform(program, "uShadowMap"),
		uShadowsEnabled: shader.MustGetUniform(program, "uShadowsEnabled"),
		uShadowBias:     shader.GetUniform(program, "uShadowBias"),
		uShadowDarkness: shader.GetUniform(program, "uShadowDarkness"),

		dModel:         shader.MustGetUniform(depthProgram, "uModel"),
		dLightViewProj: shader.MustGetUniform(depthProgram, "uLightViewProj"),
		dTime:          shader.GetUniform(depthProgram, "uTime"),
	}
	return r, nil
}

// RenderDepth draws the shadow casters into the currently bound depth
// framebuffer. The caller binds and unbinds the shadow map around it.
func (r *DialRenderer) RenderDepth(lightViewProj mathx.Mat4, timeSec float32, meshes []*mesh.Mesh) {
	gl.UseProgram(r.depthProgram)
	gl.UniformMatrix4fv(r.dLightViewProj, 1, false, lightViewProj.Ptr())
	gl.Uniform1f(r.dTime, timeSec)
	for _, m := range meshes {
		if !m.CastsShadow {
			continue
		}
		gl.UniformMatrix4fv(r.dModel, 1, false, m.Model.Ptr())
		m.Draw()
	}
}

// Render draws the lit scene. The shadow map texture must already be bound
// to texture unit 0.
func (r *DialRenderer) Render(params LightParams, meshes []*mesh.Mesh) {
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.uViewProj, 1, false, params.ViewProj.Ptr())
	gl.UniformMatrix4fv(r.uLightViewProj, 1, false, params.LightViewProj.Ptr())
	gl.Uniform1f(r.uTime, params.Time)
	gl.Uniform3f(r.uLightDir, params.LightDir.X, params.LightDir.Y, params.LightDir.Z)
	gl.Uniform1f(r.uAmbient, params.Ambient)
	gl.Uniform1f(r.uDiffuse, params.Diffuse)
	gl.Uniform3f(r.uSunPos, params.Sun.Position.X, params.Sun.Position.Y, params.Sun.Position.Z)
	sunColor := params.Sun.Scaled()
	gl.Uniform3f(r.uSunColor, sunColor[0], sunColor[1], sunColor[2])

	gl.Uniform1i(r.uShadowMap, 0)
	if params.ShadowsEnabled {
		gl.Uniform1i(r.uShadowsEnabled, 1)
	} else {
		gl.Uniform1i(r.uShadowsEnabled, 0)
	}
	gl.Uniform1f(r.uShadowBias, params.ShadowBias)
	gl.Uniform1f(r.uShadowDarkness, params.ShadowDarkness)

	for _, m := range meshes {
		gl.UniformMatrix4fv(r.uModel, 1, false, m.Model.Ptr())
		m.Draw()
	}
}

// Destroy releases both programs.
func (r *DialRenderer) Destroy() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.depthProgram != 0 {
		gl.DeleteProgram(r.depthProgram)
		r.depthProgram = 0
	}
}
