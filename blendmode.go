package compose

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/compose/surface"
)

// BlendMode is how a node's content combines with what lies beneath it.
// The zero value is BlendNormal.
type BlendMode uint8

// Blend modes.
const (
	BlendNormal BlendMode = iota
	BlendLayer
	BlendMultiply
	BlendScreen
	BlendLighten
	BlendDarken
	BlendDifference
	BlendAdd
	BlendSubtract
	BlendInvert
	BlendAlpha
	BlendErase
	BlendOverlay
	BlendHardLight

	blendModeCount
)

var blendModeNames = [blendModeCount]string{
	BlendNormal:     "normal",
	BlendLayer:      "layer",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendLighten:    "lighten",
	BlendDarken:     "darken",
	BlendDifference: "difference",
	BlendAdd:        "add",
	BlendSubtract:   "subtract",
	BlendInvert:     "invert",
	BlendAlpha:      "alpha",
	BlendErase:      "erase",
	BlendOverlay:    "overlay",
	BlendHardLight:  "hardlight",
}

// String returns the lower-case mode name, e.g. "hardlight".
func (b BlendMode) String() string {
	if b < blendModeCount {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(b))
}

// IsValid reports whether b is a known mode.
func (b BlendMode) IsValid() bool {
	return b < blendModeCount
}

// BlendModes returns every blend mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, blendModeCount)
	for i := range modes {
		modes[i] = BlendMode(i)
	}
	return modes
}

// ParseBlendMode returns the mode with the given name. Matching ignores
// case as well as '-', '_' and space separators, so "HardLight",
// "hard-light" and "hard_light" all name BlendHardLight.
func ParseBlendMode(name string) (BlendMode, error) {
	folded := cases.Fold().String(name)
	folded = strings.NewReplacer("-", "", "_", "", " ", "").Replace(folded)
	for i, n := range blendModeNames {
		if n == folded {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// BlendModeFromSWF maps the numeric blend mode of a PlaceObject3 record.
// Codes 0 and 1 both mean normal; 2 through 14 follow the order of the
// BlendMode constants.
func BlendModeFromSWF(code uint8) (BlendMode, error) {
	switch {
	case code <= 1:
		return BlendNormal, nil
	case code <= 14:
		return BlendMode(code - 1), nil
	}
	return BlendNormal, fmt.Errorf("%w: code %d", ErrUnknownBlendMode, code)
}

// whitePasses are the emulation passes for modes the raster backend lacks.
// Each pass fills the whole surface with opaque white under the given
// operation, in order, before the final operation is selected.
var (
	subtractPasses = []surface.CompositeOp{surface.OpDifference, surface.OpDarken}
	invertPasses   = []surface.CompositeOp{surface.OpDifference, surface.OpLighter}
)

// Emulation returns the composite operation used to draw an isolated node
// with this mode into its parent, and the white fill passes that must run
// on the isolated surface first. Unknown modes fall back to source-over.
// The returned slice must not be modified.
func (b BlendMode) Emulation() (op surface.CompositeOp, passes []surface.CompositeOp) {
	switch b {
	case BlendMultiply:
		return surface.OpMultiply, nil
	case BlendScreen:
		return surface.OpScreen, nil
	case BlendLighten:
		return surface.OpLighten, nil
	case BlendDarken:
		return surface.OpDarken, nil
	case BlendDifference:
		return surface.OpDifference, nil
	case BlendOverlay:
		return surface.OpOverlay, nil
	case BlendAdd:
		return surface.OpLighter, nil
	case BlendHardLight:
		return surface.OpHardLight, nil
	case BlendErase:
		return surface.OpDestinationOut, nil
	case BlendSubtract:
		return surface.OpColorBurn, subtractPasses
	case BlendInvert:
		return surface.OpDifference, invertPasses
	default:
		// normal, layer, alpha
		return surface.OpSourceOver, nil
	}
}
