package scene

import (
	"fmt"
	"image/color"

	"axis-gizmo/internal/geom"
	"axis-gizmo/internal/gizmo"
	"axis-gizmo/internal/node"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Layout of the default scene: camera on +Z looking at the origin, an omni light above and in
// front, and a dim ambient fill at one third white.
var (
	CameraPosition = geom.V3(0, 0, 15)
	CameraTarget   = geom.Vec3{}
	OmniPosition   = geom.V3(0, 10, 10)
	OmniColor      = colornames.White
	AmbientColor   = color.RGBA{R: 85, G: 85, B: 85, A: 255}
)

// CameraFovy is the vertical field of view of the scene camera, in degrees.
const CameraFovy = 60

// Node names used in the scene graph.
const (
	CameraNodeName  = "camera"
	OmniNodeName    = "omni"
	AmbientNodeName = "ambient"
	ContentNodeName = "content"
)

// Scene is the scene graph for the gizmo viewer. Root holds the camera, the lights and
// Content; Content is where objects (origin marker, axis bundle) are attached.
type Scene struct {
	Root    *node.Node
	Camera  *node.Node
	Content *node.Node
}

// New returns a scene with camera and lights in the default layout and the gizmo described
// by def attached under Content.
func New(def gizmo.Def) (*Scene, error) {
	s := Empty()
	origin, axis, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.Content.AddChild(origin)
	s.Content.AddChild(axis)
	return s, nil
}

// Empty returns a scene with camera and lights but no content.
func Empty() *Scene {
	root := node.New("root")

	cam := node.New(CameraNodeName)
	cam.Camera = &node.Camera{Fovy: CameraFovy}
	cam.SetPosition(CameraPosition)
	root.AddChild(cam)

	omni := node.New(OmniNodeName)
	omni.Light = &node.Light{Type: node.Omni, Color: OmniColor}
	omni.SetPosition(OmniPosition)
	root.AddChild(omni)

	ambient := node.New(AmbientNodeName)
	ambient.Light = &node.Light{Type: node.Ambient, Color: AmbientColor}
	root.AddChild(ambient)

	content := node.New(ContentNodeName)
	root.AddChild(content)

	return &Scene{Root: root, Camera: cam, Content: content}
}

// View is the camera pose in world space.
type View struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
	Fovy     float32
}

// View returns the current camera pose. The camera looks at CameraTarget; its up vector
// follows the camera node's rotation.
func (s *Scene) View() View {
	v := View{Target: CameraTarget, Up: geom.Up, Fovy: CameraFovy}
	s.Root.Walk(func(n *node.Node, w node.Transform) bool {
		if n != s.Camera {
			return true
		}
		v.Position = w.Position
		v.Up = w.Rotation.Rotate(geom.Up)
		if n.Camera != nil && n.Camera.Fovy > 0 {
			v.Fovy = n.Camera.Fovy
		}
		return false
	})
	return v
}

type litSource struct {
	light    *node.Light
	position geom.Vec3
}

func (s *Scene) lights() []litSource {
	var out []litSource
	s.Root.Walk(func(n *node.Node, w node.Transform) bool {
		if n.Light != nil {
			out = append(out, litSource{light: n.Light, position: w.Position})
		}
		return true
	})
	return out
}

// Lighting is the scene lighting in the form the renderer's shader takes it. Colors are
// 0..1 per channel.
type Lighting struct {
	// Ambient is the sum of all ambient lights, clamped to 1.
	Ambient [3]float32
	// OmniPos and OmniColor describe the first omni light in walk order; OmniColor is zero
	// when the scene has none.
	OmniPos   geom.Vec3
	OmniColor [3]float32
}

// Lighting collects the scene's lights with their world positions.
func (s *Scene) Lighting() Lighting {
	var l Lighting
	omni := false
	for _, src := range s.lights() {
		c := rgb(src.light.Color)
		switch src.light.Type {
		case node.Ambient:
			for i := range l.Ambient {
				l.Ambient[i] = math32.Min(l.Ambient[i]+c[i], 1)
			}
		case node.Omni:
			if !omni {
				omni = true
				l.OmniPos, l.OmniColor = src.position, c
			}
		}
	}
	return l
}

func rgb(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Stats counts what the scene holds.
type Stats struct {
	Nodes      int
	Geometries int
	Lights     int
	Cameras    int
}

// Stats walks the scene graph and returns node counts.
func (s *Scene) Stats() Stats {
	var st Stats
	s.Root.Walk(func(n *node.Node, _ node.Transform) bool {
		st.Nodes++
		if n.Geometry != nil {
			st.Geometries++
		}
		if n.Light != nil {
			st.Lights++
		}
		if n.Camera != nil {
			st.Cameras++
		}
		return true
	})
	return st
}

// minOrbitDistance keeps an orbiting camera from reaching its target.
const minOrbitDistance = 1

// maxOrbitElevation bounds |cos| between the view direction and +Y so the camera never flips over a pole.
const maxOrbitElevation = 0.99

// Orbit returns eye moved around target: yaw radians about +Y, pitch radians about the camera's
// right axis, then the distance scaled by zoom (1 keeps it). Pitch that would pass a pole is
// dropped and the distance never falls below minOrbitDistance.
func Orbit(eye, target geom.Vec3, yaw, pitch, zoom float32) geom.Vec3 {
	offset := geom.QuatAxisAngle(geom.Up, yaw).Rotate(eye.Sub(target))
	if right := geom.Up.Cross(offset); pitch != 0 && right.Length() > 0 {
		pitched := geom.QuatAxisAngle(right, pitch).Rotate(offset)
		if math32.Abs(pitched.Normal().Dot(geom.Up)) <= maxOrbitElevation {
			offset = pitched
		}
	}
	if zoom > 0 {
		d := math32.Max(offset.Length()*zoom, minOrbitDistance)
		offset = offset.Normal().Scale(d)
	}
	return target.Add(offset)
}
