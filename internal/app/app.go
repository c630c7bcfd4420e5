// Package app owns the viewer loop: window and input plumbing, the sun
// state, and the frame drive for the scene.
package app

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/gnomonlab/sundial/internal/config"
	"github.com/gnomonlab/sundial/internal/dial"
	"github.com/gnomonlab/sundial/internal/engine/camera"
	"github.com/gnomonlab/sundial/internal/engine/debug"
	"github.com/gnomonlab/sundial/internal/engine/input"
	"github.com/gnomonlab/sundial/internal/engine/mesh"
	"github.com/gnomonlab/sundial/internal/engine/scene"
	"github.com/gnomonlab/sundial/internal/engine/window"
	"github.com/gnomonlab/sundial/internal/logger"
	"github.com/gnomonlab/sundial/internal/solar"
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// Dial proportions in world units.
const (
	plateRadius  = 10.0
	gnomonHeight = 4.0
	grassInner   = 10.5
	grassOuter   = 16.0
	grassBlades  = 900
	grassSeed    = 41
)

const (
	azimuthStep   = 2.0 // degrees per key press
	elevationStep = 2.0
	titleInterval = 250 * time.Millisecond
	logInterval   = 5 * time.Second
)

// App is the running viewer.
type App struct {
	cfg *config.Config

	win    *window.Window
	input  *input.Input
	cam    *camera.OrbitCamera
	scene  *scene.Scene
	shots  *debug.ScreenshotCapture
	meshes []*mesh.Mesh

	table []solar.HourLine
	sun   solar.Angles

	autoCycle bool
	dragging  bool
	lastX     int
	lastY     int

	start     time.Time
	lastTitle time.Time
	lastLog   time.Time
}

// New creates the window, the GL state and the dial scene.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(window.Config{
		Title:      "Sundial",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	sc, err := scene.New(scene.Config{
		Width:            int32(cfg.Graphics.Width),
		Height:           int32(cfg.Graphics.Height),
		ShadowResolution: int32(cfg.Shadows.Resolution),
		ShadowsEnabled:   cfg.Shadows.Enabled,
		ShadowBias:       cfg.Shadows.Bias,
		ShadowDarkness:   cfg.Shadows.Darkness,
	})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	a := &App{
		cfg:   cfg,
		win:   win,
		input: input.New(),
		cam:   camera.NewOrbitCamera(),
		scene: sc,
		shots: debug.NewScreenshotCapture("screenshots", "sundial"),
		table: dial.HourLineTable(cfg.Site.LatitudeDeg),
		sun: solar.Angles{
			AzimuthDeg:   cfg.Site.AzimuthDeg,
			ElevationDeg: cfg.Site.ElevationDeg,
			DayOfYear:    cfg.Site.DayOfYear,
		},
		autoCycle: cfg.Site.AutoCycle,
		start:     time.Now(),
	}
	a.buildMeshes()

	logger.Info("dial ready",
		zap.Float64("latitude", cfg.Site.LatitudeDeg),
		zap.Int("day", a.sun.DayOfYear),
		zap.Int("hour_lines", len(a.table)),
	)
	return a, nil
}

func (a *App) buildMeshes() {
	plate := mesh.Upload(dial.Plate(plateRadius, 64))
	plate.CastsShadow = false

	gnomon := mesh.Upload(dial.Gnomon(gnomonHeight, a.cfg.Site.LatitudeDeg))

	lines := mesh.Upload(dial.HourLines(a.table, 2, plateRadius-0.5, 0.12))
	lines.CastsShadow = false

	grass := mesh.Upload(dial.GrassRing(grassBlades, grassInner, grassOuter, grassSeed))

	a.meshes = []*mesh.Mesh{plate, lines, gnomon, grass}
	for _, m := range a.meshes {
		a.scene.Add(m)
	}
}

// Run drives the frame loop until quit.
func (a *App) Run() error {
	last := time.Now()
	for {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if a.input.Update() {
			return nil
		}
		if quit := a.handleEvents(); quit {
			return nil
		}
		a.update(dt)
		a.render()
		a.win.SwapBuffers()
	}
}

func (a *App) handleEvents() bool {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventQuit:
			return true

		case input.EventWindowResize:
			a.scene.Resize(int32(e.Width), int32(e.Height))

		case input.EventKeyDown:
			if a.handleKey(e.Key) {
				return true
			}

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.lastX, a.lastY = e.MouseX, e.MouseY
			}

		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.cam.HandleDrag(float32(e.MouseX-a.lastX), float32(e.MouseY-a.lastY))
				a.lastX, a.lastY = e.MouseX, e.MouseY
			}

		case input.EventMouseWheel:
			a.cam.HandleZoom(float32(e.WheelY))
		}
	}
	return false
}

func (a *App) handleKey(key sdl.Scancode) bool {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		return true

	case sdl.SCANCODE_LEFT:
		a.sun.AzimuthDeg -= azimuthStep
	case sdl.SCANCODE_RIGHT:
		a.sun.AzimuthDeg += azimuthStep
	case sdl.SCANCODE_UP:
		a.sun.ElevationDeg += elevationStep
	case sdl.SCANCODE_DOWN:
		a.sun.ElevationDeg -= elevationStep

	case sdl.SCANCODE_PAGEUP:
		a.sun.DayOfYear++
		if a.sun.DayOfYear > 365 {
			a.sun.DayOfYear = 1
		}
		logger.Debug("day changed", zap.Int("day", a.sun.DayOfYear), zap.String("date", solar.DateLabel(a.sun.DayOfYear)))
	case sdl.SCANCODE_PAGEDOWN:
		a.sun.DayOfYear--
		if a.sun.DayOfYear < 1 {
			a.sun.DayOfYear = 365
		}
		logger.Debug("day changed", zap.Int("day", a.sun.DayOfYear), zap.String("date", solar.DateLabel(a.sun.DayOfYear)))

	case sdl.SCANCODE_SPACE:
		a.autoCycle = !a.autoCycle
		logger.Info("auto cycle", zap.Bool("enabled", a.autoCycle))

	case sdl.SCANCODE_S:
		a.scene.SetShadowsEnabled(!a.scene.ShadowsEnabled())
		logger.Info("shadows", zap.Bool("enabled", a.scene.ShadowsEnabled()))

	case sdl.SCANCODE_F11:
		a.validateShadow()

	case sdl.SCANCODE_F12:
		a.screenshot()

	case sdl.SCANCODE_F5:
		a.saveConfig()
	}
	a.clampSun()
	return false
}

// clampSun keeps the manual controls inside the model's domain.
func (a *App) clampSun() {
	for a.sun.AzimuthDeg < 0 {
		a.sun.AzimuthDeg += 360
	}
	for a.sun.AzimuthDeg >= 360 {
		a.sun.AzimuthDeg -= 360
	}
	if a.sun.ElevationDeg > 90 {
		a.sun.ElevationDeg = 90
	}
	if a.sun.ElevationDeg < -10 {
		a.sun.ElevationDeg = -10
	}
}

func (a *App) update(dt float64) {
	if a.autoCycle {
		a.sun.AzimuthDeg += a.cfg.Site.CycleSpeed * dt
		if a.sun.AzimuthDeg > 270 {
			a.sun.AzimuthDeg = 90
		}
		// Follow the day's arc so elevation tracks azimuth.
		a.sun.ElevationDeg = solar.ArcElevation(a.sun.AzimuthDeg, a.cfg.Site.LatitudeDeg, a.sun.DayOfYear)
	}

	now := time.Now()
	if now.Sub(a.lastTitle) >= titleInterval {
		a.lastTitle = now
		a.win.SetTitle(a.title())
	}
	if now.Sub(a.lastLog) >= logInterval {
		a.lastLog = now
		lightDir := solar.LightDirection(a.sun.AzimuthDeg, a.sun.ElevationDeg)
		logger.Debug("sun state",
			zap.Float64("azimuth", a.sun.AzimuthDeg),
			zap.Float64("elevation", a.sun.ElevationDeg),
			zap.Int("day", a.sun.DayOfYear),
			zap.String("sun_clock", solar.ClockFromSun(a.sun.AzimuthDeg, a.sun.ElevationDeg, a.sun.DayOfYear).String()),
			zap.String("shadow_clock", solar.ClockFromShadow(lightDir, a.sun.DayOfYear).String()),
		)
	}
}

// title assembles the window title: date, the clock derived from the sun's
// position and the clock read off the gnomon's shadow. The two should agree
// to within a minute or two whenever both resolve to a time.
func (a *App) title() string {
	lightDir := solar.LightDirection(a.sun.AzimuthDeg, a.sun.ElevationDeg)
	sunClock := solar.ClockFromSun(a.sun.AzimuthDeg, a.sun.ElevationDeg, a.sun.DayOfYear)
	shadowClock := solar.ClockFromShadow(lightDir, a.sun.DayOfYear)

	t := fmt.Sprintf("Sundial - %s - sun %s - shadow %s",
		solar.DateLabel(a.sun.DayOfYear), sunClock, shadowClock)

	if shadowClock.Kind == solar.Time || shadowClock.Kind == solar.OutOfRange {
		if line, ok := solar.NearestHourLine(solar.ShadowAngle(lightDir), a.table); ok {
			t += fmt.Sprintf(" - near %d:00 line", line.Hour)
		}
	}
	return t
}

func (a *App) render() {
	w, h := a.win.GetSize()
	aspect := float32(w) / float32(h)
	proj := mathx.Perspective(45*3.14159265/180, aspect, 0.1, 500)
	viewProj := proj.Mul(a.cam.ViewMatrix())

	lightDir := solar.LightDirection(a.sun.AzimuthDeg, a.sun.ElevationDeg)
	elapsed := float32(time.Since(a.start).Seconds())
	a.scene.Render(viewProj, lightDir, elapsed)
}

// validateShadow cross-checks the rendered depth map against the analytic
// shadow of the gnomon tip: the tip's shadow point on the plate must read as
// occluded. Reads the depth map back, so it is a key press, not a frame step.
func (a *App) validateShadow() {
	lightDir := solar.LightDirection(a.sun.AzimuthDeg, a.sun.ElevationDeg)
	if lightDir.Y >= 0 {
		logger.Info("shadow validation skipped, sun below horizon")
		return
	}

	tanLat := math.Tan(a.cfg.Site.LatitudeDeg * math.Pi / 180)
	tip := mathx.Vec3{X: 0, Y: gnomonHeight, Z: -gnomonHeight / float32(tanLat)}
	t := -tip.Y / lightDir.Y
	shadowPoint := tip.Add(lightDir.Scale(t))

	factor := a.scene.ValidateShadow(shadowPoint)
	logger.Info("shadow validation",
		zap.Float32("x", shadowPoint.X),
		zap.Float32("z", shadowPoint.Z),
		zap.Float32("factor", factor),
		zap.Bool("occluded", factor < 1),
	)
}

func (a *App) screenshot() {
	pixels, w, h := a.scene.CapturePixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) saveConfig() {
	a.cfg.Site.AzimuthDeg = a.sun.AzimuthDeg
	a.cfg.Site.ElevationDeg = a.sun.ElevationDeg
	a.cfg.Site.DayOfYear = a.sun.DayOfYear
	a.cfg.Site.AutoCycle = a.autoCycle
	if err := a.cfg.Save(); err != nil {
		logger.Warn("saving config failed", zap.Error(err))
		return
	}
	logger.Info("config saved")
}

// Close tears down GPU resources and the window.
func (a *App) Close() {
	for _, m := range a.meshes {
		m.Destroy()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.win != nil {
		a.win.Close()
	}
}
