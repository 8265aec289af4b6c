package utils

// FindIndex returns the index of item in slice, or -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Contains reports whether slice holds item.
func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) != -1
}
