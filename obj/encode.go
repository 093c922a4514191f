package obj

import (
	"bufio"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/adinfit/polymesh/mesh"
)

// Encode writes m in the subset read by Parse. Positions and normals are
// written in Cartesian form and every vertex gets its own texture
// coordinate line, so vertex and face counts survive a round trip.
func Encode(w io.Writer, m *mesh.Wrapped) error {
	bw := bufio.NewWriter(w)

	cartesian := func(v mgl64.Vec3) mgl64.Vec3 {
		if m.CoordinateType() == mesh.Polar {
			return mesh.ToCartesian(v)
		}
		return v
	}

	var buf []byte
	vector := func(prefix string, v ...float64) {
		buf = append(buf[:0], prefix...)
		for _, x := range v {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	for i := 0; i < m.PositionCount(); i++ {
		p := cartesian(m.Position(i))
		vector("v", p[0], p[1], p[2])
	}
	for i := 0; i < m.VertexCount(); i++ {
		uv, _ := m.TextureCoordinate(i)
		vector("vt", uv[0], uv[1])
	}
	for i := 0; i < m.NormalCount(); i++ {
		n := cartesian(m.Normal(i))
		vector("vn", n[0], n[1], n[2])
	}

	for _, f := range m.Faces() {
		buf = append(buf[:0], 'f')
		for _, v := range f.Vertices() {
			index, _ := m.VertexIndex(v)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v.Position+1), 10)
			buf = append(buf, '/')
			buf = strconv.AppendInt(buf, int64(index+1), 10)
			buf = append(buf, '/')
			buf = strconv.AppendInt(buf, int64(v.Normal+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return bw.Flush()
}
