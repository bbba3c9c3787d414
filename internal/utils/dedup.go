package utils

// DedupByName keeps the first occurrence of each name in items, in
// their original order, dropping every later duplicate. Mirrors the
// Java reference's construction of its state objects into a
// LinkedHashMap<String, T> with a (existing, _) -> existing merge
// function: insertion order is preserved and the first write for a
// given name wins.
func DedupByName[T any](items []T, name func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		n := name(item)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, item)
	}
	return out
}
