// Package cube contains integer voxel coordinate types shared by the
// generation packages.
package cube

// Pos holds the position of a voxel. The first index is the X coordinate,
// the second the Y coordinate and the third the Z (vertical) coordinate.
type Pos [3]int

// X returns the X coordinate of the position.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y coordinate of the position.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z coordinate of the position. Z grows upwards.
func (p Pos) Z() int {
	return p[2]
}

// Add adds the components of q to p and returns the resulting position.
func (p Pos) Add(q Pos) Pos {
	return Pos{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub subtracts the components of q from p and returns the resulting position.
func (p Pos) Sub(q Pos) Pos {
	return Pos{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}
