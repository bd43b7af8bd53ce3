package domain

// Immutable integer location on the planning plane.
type Coordinate struct {
	X int
	Y int
}

// Return the coordinate as [x, y] for encoders that expect float pairs.
func (c Coordinate) CoordsToList() []float64 { return []float64{float64(c.X), float64(c.Y)} }

// SquaredDistance returns the squared Euclidean distance between two coordinates.
// Only relative ordering matters to the planners, so the square root is skipped.
func SquaredDistance(a, b Coordinate) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
