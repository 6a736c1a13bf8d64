package common

import "math"

// / Returns the square of the value.
// / @param[in]		a	The value.
// / @return The square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// / Returns the absolute value.
// / @param[in]		a	The value.
// / @return The absolute value of the specified value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Returns the distance between two points.
// / @param[in]		v1	A point.
// / @param[in]		v2	A point.
// / @return The distance between the two points.
func Vdist(v1, v2 Vec3) float32 {
	dx := v2.X() - v1.X()
	dy := v2.Y() - v1.Y()
	dz := v2.Z() - v1.Z()
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// / Returns the square of the distance between two points.
// / @param[in]		v1	A point.
// / @param[in]		v2	A point.
// / @return The square of the distance between the two points.
func VdistSqr(v1, v2 Vec3) float32 {
	dx := v2.X() - v1.X()
	dy := v2.Y() - v1.Y()
	dz := v2.Z() - v1.Z()
	return dx*dx + dy*dy + dz*dz
}

// / Derives the square of the distance between the specified points on the xz-plane.
// / @param[in]		v1	A point.
// / @param[in]		v2	A point.
// / @return The square of the distance between the points on the xz-plane.
func Vdist2DSqr(v1, v2 Vec3) float32 {
	dx := v2.X() - v1.X()
	dz := v2.Z() - v1.Z()
	return dx*dx + dz*dz
}

// / Performs a linear interpolation between two points. (@p v1 toward @p v2)
// / @param[in]		v1	The starting point.
// / @param[in]		v2	The destination point.
// / @param[in]		t	The interpolation factor. [Limits: 0 <= value <= 1.0]
func Vlerp(v1, v2 Vec3, t float32) Vec3 {
	return Vec3{
		v1.X() + (v2.X()-v1.X())*t,
		v1.Y() + (v2.Y()-v1.Y())*t,
		v1.Z() + (v2.Z()-v1.Z())*t,
	}
}

// / Derives the midpoint between two points.
// / @param[in]		v1	A point.
// / @param[in]		v2	A point.
func Vmid(v1, v2 Vec3) Vec3 {
	return Vlerp(v1, v2, 0.5)
}
