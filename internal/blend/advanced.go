package blend

// separable applies a per-channel blend B(s, d) on unmultiplied channels:
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//	Alpha  = Sa + Da * (1 - Sa)
func separable(sr, sg, sb, sa, dr, dg, db, da byte, channel func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	bR := channel(unpremul(sr, sa), unpremul(dr, da))
	bG := channel(unpremul(sg, sa), unpremul(dg, da))
	bB := channel(unpremul(sb, sa), unpremul(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	r := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, bR))
	g := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bG))
	b := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bB))
	a := addClamp(sa, mulDiv255(da, invSa))
	return r, g, b, a
}

// unpremul recovers a straight channel value from a premultiplied one.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// blendMultiply: B(Cb, Cs) = Cb * Cs
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// blendScreen: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChannel)
}

func screenChannel(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChannel multiplies or screens d by 2*s depending on s.
func hardLightChannel(s, d byte) byte {
	if s <= 127 {
		v := (2*uint16(s)*uint16(d) + 127) / 255
		return byte(v)
	}
	v := (2*uint16(255-s)*uint16(255-d) + 127) / 255
	return 255 - byte(v)
}

// blendOverlay: B(Cb, Cs) = HardLight(Cs, Cb)
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChannel(d, s)
	})
}

// blendHardLight: B(Cb, Cs) = Cs <= 0.5 ? Multiply(Cb, 2Cs) : Screen(Cb, 2Cs-1)
func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChannel)
}

// blendDarken: B(Cb, Cs) = min(Cb, Cs)
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

// blendLighten: B(Cb, Cs) = max(Cb, Cs)
func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// blendColorBurn: B(Cb, Cs) = Cb == 1 ? 1 : Cs == 0 ? 0 : 1 - min(1, (1 - Cb) / Cs)
func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		v := uint16(255-d) * 255 / uint16(s)
		if v > 255 {
			return 0
		}
		return 255 - byte(v)
	})
}

// blendDifference: B(Cb, Cs) = |Cb - Cs|
func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}
