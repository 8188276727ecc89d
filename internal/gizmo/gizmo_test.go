package gizmo

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"axis-gizmo/internal/geom"
	"axis-gizmo/internal/node"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestMakeSphereNode(t *testing.T) {
	for _, r := range []float32{0.001, 0.25, 1, 42} {
		n, err := MakeSphereNode(r)
		require.NoError(t, err)
		require.NotNil(t, n.Geometry)
		assert.Equal(t, node.Sphere, n.Geometry.Kind)
		assert.Equal(t, r, n.Geometry.Radius)
		assert.Equal(t, geom.Vec3{}, n.Position)
		assert.True(t, n.Rotation.IsIdentity())
		assert.Nil(t, n.Material)
		assert.Empty(t, n.Children)
	}
}

func TestMakeCylinderNode(t *testing.T) {
	n, err := MakeCylinderNode(0.1, 5, red)
	require.NoError(t, err)
	assert.Equal(t, node.Geometry{Kind: node.Cylinder, Radius: 0.1, Height: 5}, *n.Geometry)
	require.NotNil(t, n.Material)
	assert.Equal(t, red, n.Material.Diffuse)

	n, err = MakeCylinderNode(2, 3)
	require.NoError(t, err)
	assert.Equal(t, white, n.Material.Diffuse)
}

func TestInvalidParameter(t *testing.T) {
	_, err := MakeCylinderNode(0, 5, red)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeCylinderNode(1, -5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeSphereNode(-1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeSphereNode(0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeAxisNode(WithHeight(0))
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeAxisNode(WithRadius(-0.1))
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MakeOriginNode(WithRadius(0))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestMakeAxisNodeDefaults(t *testing.T) {
	axis, err := MakeAxisNode()
	require.NoError(t, err)
	assert.Equal(t, AxisNodeName, axis.Name)
	require.Len(t, axis.Children, 3)

	tests := []struct {
		name  string
		color color.RGBA
		pos   geom.Vec3
		dir   geom.Vec3
	}{
		{"x", red, geom.V3(2.5, 0, 0), geom.AxisX},
		{"y", green, geom.V3(0, 2.5, 0), geom.AxisY},
		{"z", blue, geom.V3(0, 0, 2.5), geom.AxisZ},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := axis.Children[i]
			assert.Equal(t, tt.name, c.Name)
			assert.Equal(t, tt.color, c.Material.Diffuse)
			assert.Equal(t, DefaultAxisRadius, c.Geometry.Radius)
			assert.Equal(t, DefaultAxisHeight, c.Geometry.Height)
			assert.True(t, c.Position.ApproxEqual(tt.pos, tol), "position %+v", c.Position)

			up := c.Rotation.Rotate(geom.Up)
			assert.InDelta(t, 1, math32.Abs(up.Dot(tt.dir)), tol, "up %+v not along %+v", up, tt.dir)
			assert.InDelta(t, 1, c.Rotation.Length(), tol)
		})
	}
}

func TestAxisRotations(t *testing.T) {
	axis, err := MakeAxisNode()
	require.NoError(t, err)
	x, y, z := axis.Children[0], axis.Children[1], axis.Children[2]

	// A quarter turn about a unit axis a is (a·sin45°, cos45°).
	h := math32.Sqrt(2) / 2
	assertQuat(t, geom.Quat{Z: h, W: h}, x.Rotation)
	assert.True(t, y.Rotation.IsIdentity())
	assertQuat(t, geom.Quat{X: h, W: h}, z.Rotation)

	basis := []struct {
		name      string
		q         geom.Quat
		in, wantV geom.Vec3
	}{
		{"x maps +X", x.Rotation, geom.AxisX, geom.AxisY},
		{"x maps +Y", x.Rotation, geom.AxisY, geom.V3(-1, 0, 0)},
		{"x keeps +Z", x.Rotation, geom.AxisZ, geom.AxisZ},
		{"z keeps +X", z.Rotation, geom.AxisX, geom.AxisX},
		{"z maps +Y", z.Rotation, geom.AxisY, geom.AxisZ},
		{"z maps +Z", z.Rotation, geom.AxisZ, geom.V3(0, -1, 0)},
	}
	for _, tt := range basis {
		got := tt.q.Rotate(tt.in)
		assert.InDelta(t, tt.wantV.X, got.X, tol, tt.name)
		assert.InDelta(t, tt.wantV.Y, got.Y, tol, tt.name)
		assert.InDelta(t, tt.wantV.Z, got.Z, tol, tt.name)
	}

	xAxis, xAngle := x.Rotation.AxisAngle()
	assert.True(t, xAxis.ApproxEqual(geom.AxisZ, tol))
	assert.InDelta(t, math32.Pi/2, xAngle, tol)
}

func assertQuat(t *testing.T, want, got geom.Quat) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x of %+v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "y of %+v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "z of %+v", got)
	assert.InDelta(t, want.W, got.W, tol, "w of %+v", got)
}

func TestAxisCylindersTouchOrigin(t *testing.T) {
	axis, err := MakeAxisNode(WithHeight(8))
	require.NoError(t, err)

	for _, c := range axis.Children {
		world := node.Root.Child(c)
		half := c.Geometry.Height / 2
		a := world.Apply(geom.V3(0, -half, 0))
		b := world.Apply(geom.V3(0, half, 0))
		near, far := a, b
		if b.Length() < a.Length() {
			near, far = b, a
		}
		assert.True(t, near.ApproxEqual(geom.Vec3{}, 1e-4), "%s near end %+v", c.Name, near)
		assert.InDelta(t, 8, far.Length(), 1e-4, "%s far end %+v", c.Name, far)
	}
}

func TestMakeAxisNodeOptions(t *testing.T) {
	axis, err := MakeAxisNode(WithColors(blue, red, green), WithRadius(0.5), WithHeight(10))
	require.NoError(t, err)

	assert.Equal(t, blue, axis.Children[0].Material.Diffuse)
	assert.Equal(t, red, axis.Children[1].Material.Diffuse)
	assert.Equal(t, green, axis.Children[2].Material.Diffuse)
	for _, c := range axis.Children {
		assert.Equal(t, float32(0.5), c.Geometry.Radius)
		assert.Equal(t, float32(10), c.Geometry.Height)
	}
	assert.True(t, axis.Children[0].Position.ApproxEqual(geom.V3(5, 0, 0), tol))
}

func TestMakeOriginNode(t *testing.T) {
	n, err := MakeOriginNode()
	require.NoError(t, err)
	assert.Equal(t, OriginNodeName, n.Name)
	assert.Equal(t, node.Sphere, n.Geometry.Kind)
	assert.Equal(t, float32(0.25), n.Geometry.Radius)
	assert.Equal(t, geom.Vec3{}, n.Position)

	n, err = MakeOriginNode(WithRadius(1))
	require.NoError(t, err)
	assert.Equal(t, float32(1), n.Geometry.Radius)
}

func TestBuildersDoNotShareState(t *testing.T) {
	a, err := MakeAxisNode()
	require.NoError(t, err)
	b, err := MakeAxisNode()
	require.NoError(t, err)

	a.Children[0].Material.Diffuse = white
	a.Children[0].Geometry.Height = 1
	assert.Equal(t, red, b.Children[0].Material.Diffuse)
	assert.Equal(t, DefaultAxisHeight, b.Children[0].Geometry.Height)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"red", red, true},
		{" Lime ", green, true},
		{"darkgray", color.RGBA{169, 169, 169, 255}, true},
		{"#f80", color.RGBA{255, 136, 0, 255}, true},
		{"#0000ff", blue, true},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}, true},
		{"#12345", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"notacolor", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDef(t *testing.T) {
	dir := t.TempDir()

	d, err := LoadDef(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDef(), d)

	path := filepath.Join(dir, "gizmo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axis:\n  height: 8\n  x: orange\n"), 0644))
	d, err = LoadDef(path)
	require.NoError(t, err)
	assert.Equal(t, float32(8), d.Axis.Height)
	assert.Equal(t, "orange", d.Axis.X)
	assert.Equal(t, "lime", d.Axis.Y)
	assert.Equal(t, DefaultOriginRadius, d.Origin.Radius)

	require.NoError(t, os.WriteFile(path, []byte("axis: [not, a, map]\n"), 0644))
	_, err = LoadDef(path)
	assert.Error(t, err)
}

func TestDefBuild(t *testing.T) {
	origin, axis, err := DefaultDef().Build()
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), origin.Geometry.Radius)
	require.Len(t, axis.Children, 3)
	assert.Equal(t, red, axis.Children[0].Material.Diffuse)

	d := DefaultDef()
	d.Axis.Z = "ultraviolet"
	_, _, err = d.Build()
	assert.Error(t, err)

	d = DefaultDef()
	d.Origin.Radius = -1
	_, _, err = d.Build()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
