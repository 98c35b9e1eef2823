package random

// Shuffle permutes items in place with a Fisher-Yates pass.
func Shuffle[T any](src Source, items []T) {
	src = orDefault(src)
	for n := len(items) - 1; n > 0; n-- {
		k := Intn(src, n+1)
		items[n], items[k] = items[k], items[n]
	}
}
