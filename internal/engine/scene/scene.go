// Package scene drives the two-pass frame: a depth-only render from the
// sun's viewpoint into the shadow map, then the lighting pass over an
// offscreen target that is blitted to the window.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gnomonlab/sundial/internal/engine/framebuffer"
	"github.com/gnomonlab/sundial/internal/engine/lighting"
	"github.com/gnomonlab/sundial/internal/engine/mesh"
	"github.com/gnomonlab/sundial/internal/engine/shadow"
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// Config sets up the scene's render targets and shadow behavior.
type Config struct {
	Width            int32
	Height           int32
	ShadowResolution int32
	ShadowsEnabled   bool
	ShadowBias       float32
	ShadowDarkness   float32
	Ambient          float32
	Diffuse          float32
}

// Scene owns the meshes and render targets of the dial world.
type Scene struct {
	cfg      Config
	renderer *DialRenderer
	shadows  *shadow.Map
	target   *framebuffer.Framebuffer

	meshes []*mesh.Mesh

	// lightViewProj is recomputed from the current sun direction every
	// frame; holding it here only serves CaptureImage and ValidateShadow.
	lightViewProj mathx.Mat4
}

// New creates the render pipeline. The GL context must be current.
func New(cfg Config) (*Scene, error) {
	if cfg.ShadowBias <= 0 {
		cfg.ShadowBias = 0.002
	}
	if cfg.ShadowDarkness <= 0 {
		cfg.ShadowDarkness = 0.35
	}
	if cfg.Ambient <= 0 {
		cfg.Ambient = 0.25
	}
	if cfg.Diffuse <= 0 {
		cfg.Diffuse = 0.85
	}

	renderer, err := NewDialRenderer()
	if err != nil {
		return nil, err
	}
	target, err := framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		renderer.Destroy()
		return nil, fmt.Errorf("scene target: %w", err)
	}

	s := &Scene{
		cfg:           cfg,
		renderer:      renderer,
		shadows:       shadow.NewMap(cfg.ShadowResolution),
		target:        target,
		lightViewProj: mathx.Identity(),
	}
	if !s.shadows.IsValid() {
		s.Destroy()
		return nil, fmt.Errorf("shadow map incomplete at resolution %d", cfg.ShadowResolution)
	}
	return s, nil
}

// Add registers a mesh. The scene does not take ownership; Destroy leaves
// meshes alone.
func (s *Scene) Add(m *mesh.Mesh) {
	s.meshes = append(s.meshes, m)
}

// SetShadowsEnabled toggles the depth pass.
func (s *Scene) SetShadowsEnabled(on bool) { s.cfg.ShadowsEnabled = on }

// ShadowsEnabled reports whether the depth pass runs.
func (s *Scene) ShadowsEnabled() bool { return s.cfg.ShadowsEnabled }

// Resize adjusts the offscreen target to a new window size.
func (s *Scene) Resize(width, height int32) {
	s.cfg.Width = width
	s.cfg.Height = height
	s.target.Resize(width, height)
}

// CasterBounds returns the world-space bounds of every shadow-casting mesh.
// The box is what the light frustum is fitted to, so it must cover all
// casters or shadows clip.
func (s *Scene) CasterBounds() shadow.AABB {
	var bounds shadow.AABB
	first := true
	for _, m := range s.meshes {
		if !m.CastsShadow {
			continue
		}
		b := meshWorldBounds(m)
		if first {
			bounds = b
			first = false
			continue
		}
		bounds = bounds.Extend(b)
	}
	return bounds
}

// meshWorldBounds transforms the mesh's local bounds through its model
// matrix, corner by corner, because a rotated box does not map min to min.
func meshWorldBounds(m *mesh.Mesh) shadow.AABB {
	var b shadow.AABB
	for i := 0; i < 8; i++ {
		corner := [3]float32{m.Min[0], m.Min[1], m.Min[2]}
		if i&1 != 0 {
			corner[0] = m.Max[0]
		}
		if i&2 != 0 {
			corner[1] = m.Max[1]
		}
		if i&4 != 0 {
			corner[2] = m.Max[2]
		}
		p := m.Model.TransformPoint(corner)
		if i == 0 {
			b.Min, b.Max = p, p
			continue
		}
		for j := 0; j < 3; j++ {
			if p[j] < b.Min[j] {
				b.Min[j] = p[j]
			}
			if p[j] > b.Max[j] {
				b.Max[j] = p[j]
			}
		}
	}
	return b
}

// Render draws one frame. lightDir is the direction sunlight travels; when
// the sun is at or below the horizon the depth pass is skipped and the scene
// falls back to ambient light.
func (s *Scene) Render(viewProj mathx.Mat4, lightDir mathx.Vec3, timeSec float32) {
	daylight := lightDir.Y < 0
	shadowsThisFrame := s.cfg.ShadowsEnabled && daylight

	if shadowsThisFrame {
		s.lightViewProj = shadow.DirectionalLightMatrix(
			[3]float32{lightDir.X, lightDir.Y, lightDir.Z}, s.CasterBounds())

		s.shadows.Bind()
		s.renderer.RenderDepth(s.lightViewProj, timeSec, s.meshes)
		s.shadows.Unbind()
	}

	restore := s.target.BindWithViewport()
	sky := skyColor(lightDir)
	s.target.Clear(sky[0], sky[1], sky[2], 1)
	gl.Enable(gl.DEPTH_TEST)

	params := LightParams{
		ViewProj:       viewProj,
		LightViewProj:  s.lightViewProj,
		LightDir:       lightDir,
		Ambient:        s.cfg.Ambient,
		Diffuse:        s.cfg.Diffuse,
		Sun:            lighting.Sun(lightDir, lighting.DefaultStandoff),
		ShadowsEnabled: shadowsThisFrame,
		ShadowBias:     s.cfg.ShadowBias,
		ShadowDarkness: s.cfg.ShadowDarkness,
		Time:           timeSec,
	}
	if !daylight {
		// Kill direct light after sunset; ambient carries the frame.
		params.Diffuse = 0
	}

	s.shadows.BindTexture(gl.TEXTURE0)
	s.renderer.Render(params, s.meshes)
	restore()

	s.target.BlitToDefault(s.cfg.Width, s.cfg.Height)
}

// skyColor fades the clear color from day blue toward a dark dusk as the sun
// drops.
func skyColor(lightDir mathx.Vec3) [3]float32 {
	day := [3]float32{0.53, 0.74, 0.92}
	t := -lightDir.Y*1.5 + 0.1
	if t < 0.06 {
		t = 0.06
	}
	if t > 1 {
		t = 1
	}
	return [3]float32{day[0] * t, day[1] * t, day[2] * t}
}

// CapturePixels reads back the offscreen target for screenshots. Rows come
// out bottom-up, matching what debug.ScreenshotCapture expects.
func (s *Scene) CapturePixels() ([]byte, int, int) {
	return s.target.ReadPixels(), int(s.cfg.Width), int(s.cfg.Height)
}

// ValidateShadow reads the depth map back and runs the CPU shadow test at a
// world point. It exists for sanity checks against the analytic shadow
// position and is far too slow for per-frame use.
func (s *Scene) ValidateShadow(world mathx.Vec3) float32 {
	grid := s.shadows.ReadDepth()
	return shadow.Factor(s.lightViewProj, world, grid.At, s.cfg.ShadowBias, s.cfg.ShadowDarkness)
}

// Destroy releases the render targets and programs.
func (s *Scene) Destroy() {
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.shadows != nil {
		s.shadows.Destroy()
		s.shadows = nil
	}
	if s.target != nil {
		s.target.Destroy()
		s.target = nil
	}
}
