package viewer

import (
	"axis-gizmo/internal/debug"
	"axis-gizmo/internal/engineconfig"
	"axis-gizmo/internal/geom"
	"axis-gizmo/internal/primitives"
	"axis-gizmo/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewer renders a scene through a raylib camera. The render camera starts at the scene camera's
// pose; orbit control moves only the render camera, so the scene camera node stays where the
// scene put it (and is visible as a marker when cameras are shown).
type Viewer struct {
	Camera  rl.Camera3D
	scene   *scene.Scene
	prims   *primitives.Registry
	debug   *debug.Debug
	control bool
}

// New returns a viewer for s configured by prefs.
func New(s *scene.Scene, prefs engineconfig.ViewPrefs) *Viewer {
	v := &Viewer{
		scene: s,
		prims: primitives.NewRegistry(primitives.Options{
			Wireframe:     prefs.ShowWireframe,
			BoundingBoxes: prefs.ShowBoundingBoxes,
			Cameras:       prefs.ShowCameras,
		}),
		debug:   debug.New(),
		control: prefs.AllowsCameraControl,
	}
	v.debug.SetShowStatistics(prefs.ShowsStatistics)

	view := s.View()
	v.Camera.Position = vec(view.Position)
	v.Camera.Target = vec(view.Target)
	v.Camera.Up = vec(view.Up)
	v.Camera.Fovy = view.Fovy
	v.Camera.Projection = rl.CameraPerspective
	return v
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// Mouse sensitivity for orbit control: radians per pixel dragged and zoom factor per wheel notch.
const (
	orbitSpeed = 0.01
	zoomStep   = 0.1
)

// Update runs once per frame. With camera control on, dragging with the left mouse button
// orbits around the target and the wheel zooms.
func (v *Viewer) Update() {
	if !v.control {
		return
	}
	var yaw, pitch float32
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		yaw, pitch = -d.X*orbitSpeed, -d.Y*orbitSpeed
	}
	zoom := 1 - rl.GetMouseWheelMove()*zoomStep
	if yaw == 0 && pitch == 0 && zoom == 1 {
		return
	}
	eye := scene.Orbit(geomVec(v.Camera.Position), geomVec(v.Camera.Target), yaw, pitch, zoom)
	v.Camera.Position = vec(eye)
}

func geomVec(v rl.Vector3) geom.Vec3 {
	return geom.V3(v.X, v.Y, v.Z)
}

// Draw renders the scene and then the statistics overlay.
func (v *Viewer) Draw() {
	rl.BeginMode3D(v.Camera)
	v.prims.DrawScene(v.scene)
	rl.EndMode3D()
	v.debug.Draw(v.scene.Stats(), v.prims.Draws())
}
