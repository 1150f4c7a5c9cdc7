package scene

import "math/rand/v2"

// Pose is a target or current placement of a proxy.
type Pose struct {
	Position Vec3
	Rotation Vec3
}

// Layout assigns one pose to every proxy index.
type Layout []Pose

// LayoutKind names the two arrangements the engine maintains.
type LayoutKind int

const (
	// LayoutCloud is the random arrangement generated on build.
	LayoutCloud LayoutKind = iota
	// LayoutTable is the deterministic grid arrangement.
	LayoutTable
)

func (k LayoutKind) String() string {
	if k == LayoutTable {
		return "table"
	}
	return "cloud"
}

const (
	// DefaultTableOffset shifts the table so its first tile sits up and to
	// the left of the origin.
	DefaultTableOffset = 400.0

	cloudMin  = -1000.0
	cloudSpan = 3000.0
)

// TileSize returns the edge length of a proxy tile for a 2D cell size.
func TileSize(cellSize int) float64 { return float64(8 * cellSize) }

// TableSpacing returns the distance between neighbouring table tiles for a
// 2D cell size.
func TableSpacing(cellSize int) float64 { return float64(8*cellSize + 5) }

// TableOptions parameterizes the table layout.
type TableOptions struct {
	Columns int
	Spacing float64
	Offset  float64
}

// TableLayout places index i at column i mod columns and row i / columns:
// x = spacing*col - offset, y = -spacing*row + offset, z = 0, no rotation.
func TableLayout(n, columns int, spacing, offset float64) Layout {
	if n <= 0 {
		return Layout{}
	}
	if columns <= 0 {
		columns = 1
	}
	out := make(Layout, n)
	for i := range out {
		col := i % columns
		row := i / columns
		out[i].Position = Vec3{
			X: spacing*float64(col) - offset,
			Y: -spacing*float64(row) + offset,
		}
	}
	return out
}

// CloudLayout scatters n poses uniformly in a cube spanning
// [-1000, 2000) on each axis.
func CloudLayout(n int, rng *rand.Rand) Layout {
	if n <= 0 {
		return Layout{}
	}
	out := make(Layout, n)
	for i := range out {
		out[i].Position = Vec3{
			X: rng.Float64()*cloudSpan + cloudMin,
			Y: rng.Float64()*cloudSpan + cloudMin,
			Z: rng.Float64()*cloudSpan + cloudMin,
		}
	}
	return out
}
