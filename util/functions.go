package util

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}
