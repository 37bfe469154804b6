package mines

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	}
	return valueIfFalse
}
