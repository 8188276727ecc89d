package primitives

import (
	"image/color"

	"axis-gizmo/internal/geom"
	"axis-gizmo/internal/node"
	"axis-gizmo/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultSphereRings and defaultSphereSlices control sphere mesh resolution.
const defaultSphereRings = 16
const defaultSphereSlices = 16

// defaultCylinderSlices controls cylinder mesh resolution.
const defaultCylinderSlices = 16

// cameraMarkerSize is the edge length of the wire cube drawn at camera nodes.
const cameraMarkerSize = 0.5

// defaultPrimitiveColor is used for geometry without a material.
var defaultPrimitiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var (
	wireColor   = rl.NewColor(20, 20, 20, 255)
	boundsColor = rl.NewColor(255, 255, 255, 160)
	cameraColor = rl.Yellow
)

// Options selects debug drawing on top of the shaded geometry.
type Options struct {
	Wireframe     bool
	BoundingBoxes bool
	Cameras       bool
}

// cached holds the unit mesh for a geometry kind and the lit material it is drawn with.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry draws scene-graph geometry with raylib. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	opts   Options
	cache  map[node.GeometryKind]cached
	shader rl.Shader
	loaded bool
	draws  int
}

// NewRegistry returns a registry with the given debug options.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts, cache: make(map[node.GeometryKind]cached)}
}

// Draws returns the number of primitives drawn by the last DrawScene.
func (r *Registry) Draws() int {
	return r.draws
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// ensure creates the lit shader and the unit sphere and cylinder meshes if not yet cached.
// Sphere: radius 1 centered on the origin. Cylinder: radius 1, base at Y=0, top at Y=1.
func (r *Registry) ensure() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = loadLitShader()
	r.cache[node.Sphere] = r.newCached(rl.GenMeshSphere(1, defaultSphereRings, defaultSphereSlices))
	r.cache[node.Cylinder] = r.newCached(rl.GenMeshCylinder(1, 1, defaultCylinderSlices))
}

func (r *Registry) newCached(mesh rl.Mesh) cached {
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	return cached{mesh: mesh, mtl: mtl}
}

// loadLitShader returns a shader doing ambient + Lambert diffuse from one point light.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform vec4 ambient;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 lit = min(ambient.rgb + lightColor * NdotL, vec3(1.0));
  finalColor = vec4(colDiffuse.rgb * lit, colDiffuse.a);
}
`
)

// setLitShaderUniforms uploads the scene lighting (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(l scene.Lighting) {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	lightPos := [3]float32{l.OmniPos.X, l.OmniPos.Y, l.OmniPos.Z}
	lightColor := l.OmniColor
	amb := [4]float32{l.Ambient[0], l.Ambient[1], l.Ambient[2], 1}
	if loc := rl.GetShaderLocation(r.shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, lightPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(r.shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(r.shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
}

// DrawScene draws every node of s that has geometry, lit by the scene's lights.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawScene(s *scene.Scene) {
	r.ensure()
	r.setLitShaderUniforms(s.Lighting())
	r.draws = 0
	s.Root.Walk(func(n *node.Node, w node.Transform) bool {
		if n.Camera != nil && r.opts.Cameras {
			rl.DrawCubeWires(vec(w.Position), cameraMarkerSize, cameraMarkerSize, cameraMarkerSize, cameraColor)
		}
		if n.Geometry == nil {
			return true
		}
		base := defaultPrimitiveColor
		if n.Material != nil {
			base = n.Material.Diffuse
		}
		r.Draw(*n.Geometry, w, base)
		return true
	})
}

// modelMatrix maps the unit mesh of g to world space under w:
// center offset, then scale, then rotate, then translate.
func modelMatrix(g node.Geometry, w node.Transform) rl.Matrix {
	var m rl.Matrix
	switch g.Kind {
	case node.Cylinder:
		m = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(g.Radius, g.Height, g.Radius))
	default:
		m = rl.MatrixScale(g.Radius, g.Radius, g.Radius)
	}
	q := rl.NewQuaternion(w.Rotation.X, w.Rotation.Y, w.Rotation.Z, w.Rotation.W)
	m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(q))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(w.Position.X, w.Position.Y, w.Position.Z))
}

// Draw draws one primitive with world transform w and diffuse color col.
func (r *Registry) Draw(g node.Geometry, w node.Transform, col color.RGBA) {
	c, ok := r.cache[g.Kind]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}
	rl.DrawMesh(c.mesh, c.mtl, modelMatrix(g, w))
	if r.opts.Wireframe {
		switch g.Kind {
		case node.Sphere:
			rl.DrawSphereWires(vec(w.Position), g.Radius, defaultSphereRings, defaultSphereSlices, wireColor)
		case node.Cylinder:
			bottom, top := node.CylinderEnds(w, g)
			rl.DrawCylinderWiresEx(vec(bottom), vec(top), g.Radius, g.Radius, defaultCylinderSlices, wireColor)
		}
	}
	r.draws++
	if r.opts.BoundingBoxes {
		min, max := node.Bounds(w, g)
		rl.DrawBoundingBox(rl.NewBoundingBox(vec(min), vec(max)), boundsColor)
	}
}
