package raster

// FanTriangles returns the fan triangulation (0, i, i+1) of a convex
// polygon with n vertices. Fewer than three vertices yield nothing.
func FanTriangles(n int) [][3]int {
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	for i := 1; i+1 < n; i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}
