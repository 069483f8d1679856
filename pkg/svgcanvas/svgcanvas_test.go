package svgcanvas

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facet3d/facet/pkg/math3d"
	"github.com/facet3d/facet/pkg/mesh"
	"github.com/facet3d/facet/pkg/render"
)

func TestCanvas_EmitsDocument(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 320, 240)

	c.DrawPoint(10, 20, render.ColorBlue)
	c.DrawLine(0, 0, 100, 100, render.RGB(0xAA, 0xBB, 0xCC))
	c.DrawPolygon([]math3d.Vec2{
		math3d.V2(10, 10), math3d.V2(50, 10), math3d.V2(30, 40),
	}, render.ColorBlue, render.RGB(0, 0, 0x5F))

	require.NoError(t, c.Close())

	out := buf.String()
	assert.Contains(t, out, `width="320"`)
	assert.Contains(t, out, `height="240"`)
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, `fill="#00005f"`)
	assert.Contains(t, out, `stroke="#0000ff"`)
	assert.Contains(t, out, "</svg>")
}

func TestCanvas_NoFillPolygon(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)

	c.DrawPolygon([]math3d.Vec2{
		math3d.V2(1, 1), math3d.V2(9, 1), math3d.V2(5, 9),
	}, render.ColorBlue, render.NoFill)
	require.NoError(t, c.Close())

	assert.Contains(t, buf.String(), `fill="none"`)
}

func TestCanvas_ClearDropsRecordedPrimitives(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)

	c.DrawPoint(5, 5, render.ColorBlue)
	c.Clear()
	require.NoError(t, c.Close())

	out := buf.String()
	assert.NotContains(t, out, "<circle")
	assert.Contains(t, out, "</svg>")
}

func TestCanvas_RendersMesh(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 200, 200)

	m := mesh.New("triangle",
		[]math3d.Vec3{math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0)},
		[][3]int{{0, 1, 2}},
	)
	require.NoError(t, render.NewWireframe(render.Orthographic{}).Render(m, c))
	require.NoError(t, c.Close())

	out := buf.String()
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("<circle")))
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, `fill="none"`)
}
