package blend

// Span blends premultiplied RGBA pixels of src onto dst with op.
// alpha scales the source before blending (255 leaves it unchanged).
// The shorter of the two slices bounds the span.
func Span(dst, src []byte, op Op, alpha byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n &^= 3

	fn := FuncFor(op)
	for i := 0; i < n; i += 4 {
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if alpha != 255 {
			sr = mulDiv255(sr, alpha)
			sg = mulDiv255(sg, alpha)
			sb = mulDiv255(sb, alpha)
			sa = mulDiv255(sa, alpha)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// SolidSpan blends one premultiplied color onto dst, scaled per pixel by
// mask coverage (one byte per pixel). A nil mask means full coverage.
func SolidSpan(dst, mask []byte, r, g, b, a byte, op Op) {
	fn := FuncFor(op)
	n := len(dst) / 4
	for p := 0; p < n; p++ {
		sr, sg, sb, sa := r, g, b, a
		if mask != nil {
			if p >= len(mask) {
				return
			}
			cov := mask[p]
			if cov == 0 {
				continue
			}
			if cov != 255 {
				sr = mulDiv255(sr, cov)
				sg = mulDiv255(sg, cov)
				sb = mulDiv255(sb, cov)
				sa = mulDiv255(sa, cov)
			}
		}
		i := p * 4
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
