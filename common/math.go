package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Rotate turns (x, y) by deg degrees around the origin.
func Rotate(x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
