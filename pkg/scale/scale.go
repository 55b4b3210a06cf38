// Package scale converts design-space measurements into device space.
//
// Card offsets are authored against a fixed reference viewport of
// [ReferenceWidth] design units. Two factors come out of a viewport width:
//
//   - Raw: viewportWidth / referenceWidth, unbounded. Used for container
//     and grid geometry, which must track the device width exactly.
//   - Normalized: Raw clamped to [MinFactor, MaxFactor]. Used for spacing,
//     icon sizes and in-container offsets, so very small or very large
//     viewports do not distort the card contents.
//
// The viewport width is an explicit input; nothing in this package reads
// global state.
package scale

// ReferenceWidth is the viewport width, in design units, that every default
// offset is authored against.
const ReferenceWidth = 440.0

// Clamp bounds for the normalized factor.
const (
	MinFactor = 0.8
	MaxFactor = 1.2
)

// Factors holds the two scale factors derived from one viewport width.
type Factors struct {
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized"`
}

// Identity is the pair of factors for a viewport equal to the reference.
var Identity = Factors{Raw: 1, Normalized: 1}

// Normalize computes the raw and normalized factors for viewportWidth.
// A non-positive referenceWidth is replaced by [ReferenceWidth].
func Normalize(viewportWidth, referenceWidth float64) Factors {
	if referenceWidth <= 0 {
		referenceWidth = ReferenceWidth
	}
	raw := viewportWidth / referenceWidth
	return Factors{Raw: raw, Normalized: clamp(raw, MinFactor, MaxFactor)}
}

// ForViewport is Normalize against [ReferenceWidth].
func ForViewport(viewportWidth float64) Factors {
	return Normalize(viewportWidth, ReferenceWidth)
}

// Geometry scales a container or grid measurement by the raw factor.
func (f Factors) Geometry(v float64) float64 { return v * f.Raw }

// Spacing scales an in-container offset or size by the normalized factor.
func (f Factors) Spacing(v float64) float64 { return v * f.Normalized }

// Clamped reports whether the normalized factor differs from the raw one.
func (f Factors) Clamped() bool { return f.Raw != f.Normalized }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
