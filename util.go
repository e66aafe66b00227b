package rtui

func clampF(a, min, max float32) float32 {
	if a < min {
		return min
	}
	if a > max {
		return max
	}
	return a
}

func nearestPow2(num int) int {
	var n uint
	uNum := uint(num)
	if uNum > 0 {
		n = uNum - 1
	} else {
		n = 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return int(n)
}
