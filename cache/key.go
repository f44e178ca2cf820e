package cache

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/cxform"
)

// identitySignature is the color signature of an untinted, opaque transform.
const identitySignature = "1111"

// DeriveKey returns the cache key for content id rendered under transform
// and ct. The key has the form "{id}_{xScale}_{yScale}", followed by
// "_{signature}" when ct tints or fades the content.
//
// A two-element transform is taken as an (xScale, yScale) pair. Anything
// else is read as affine coefficients [a, b, c, d, ...], with missing
// coefficients treated as zero, and reduced to sqrt(a²+b²) and sqrt(c²+d²).
// Translation, rotation and skew therefore do not affect the key.
//
// DeriveKey is a pure function.
func DeriveKey(id string, transform []float64, ct cxform.Transform) string {
	xScale, yScale := scales(transform)

	var sb strings.Builder
	sb.Grow(len(id) + 32)
	sb.WriteString(id)
	sb.WriteByte('_')
	sb.WriteString(formatNumber(xScale))
	sb.WriteByte('_')
	sb.WriteString(formatNumber(yScale))

	if sig := ColorSignature(ct); sig != identitySignature {
		sb.WriteByte('_')
		sb.WriteString(sig)
	}
	return sb.String()
}

// DeriveMatrixKey is DeriveKey for an affine matrix.
func DeriveMatrixKey(id string, m matrix.Matrix, ct cxform.Transform) string {
	return DeriveKey(id, m[:], ct)
}

// ColorSignature returns the compact color part of a key: the red, green
// and blue channels a white pixel maps to under ct, as integers, followed
// by the resulting opacity in [0, 1]. The identity transform gives "1111".
func ColorSignature(ct cxform.Transform) string {
	r := int(cxform.Clamp255(ct[cxform.RedMul] + ct[cxform.RedAdd]))
	g := int(cxform.Clamp255(ct[cxform.GreenMul] + ct[cxform.GreenAdd]))
	b := int(cxform.Clamp255(ct[cxform.BlueMul] + ct[cxform.BlueAdd]))
	a := cxform.Clamp255(255*ct[cxform.AlphaMul]+ct[cxform.AlphaAdd]) / 255

	var buf []byte
	buf = strconv.AppendInt(buf, int64(r), 10)
	buf = strconv.AppendInt(buf, int64(g), 10)
	buf = strconv.AppendInt(buf, int64(b), 10)
	buf = strconv.AppendFloat(buf, a, 'f', -1, 64)
	return string(buf)
}

func scales(t []float64) (x, y float64) {
	if len(t) == 2 {
		return t[0], t[1]
	}
	var c [4]float64
	copy(c[:], t)
	return math.Sqrt(c[0]*c[0] + c[1]*c[1]), math.Sqrt(c[2]*c[2] + c[3]*c[3])
}

// formatNumber writes v in the shortest form that parses back to v.
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // folds -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
