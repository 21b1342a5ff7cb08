package palette

import "math"

// MaxDistance is the largest distance between two colors in the unit cube.
var MaxDistance = math.Sqrt(3)

// Distance returns the Euclidean distance between a and b in RGB space.
func Distance(a, b Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
