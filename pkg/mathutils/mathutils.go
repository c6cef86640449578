// Package mathutils holds utilities related with screen-scale mathematics.
package mathutils

const (
	// BaseWidth is reference screen width all scale values are authored against.
	BaseWidth = 640.0

	// BaseHeight is reference screen height all scale values are authored against.
	BaseHeight = 480.0
)

// Scale maps value authored for the reference screen width onto actual screen width.
func Scale(value, screenWidth float64) float64 {
	return value * (screenWidth / BaseWidth)
}

// ScaleH maps value authored for the reference screen height onto actual screen height.
func ScaleH(value, screenHeight float64) float64 {
	return value * (screenHeight / BaseHeight)
}

// Clamp limits value into [min, max] range.
// min should be less or equal than max.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
