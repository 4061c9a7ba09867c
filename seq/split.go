package seq

// Split divides s into parts contiguous slices. The first parts-1 slices hold
// len(s)/parts elements each and the last one absorbs the remainder, so with
// parts > len(s) all but the last slice are empty. parts == 1 yields [s];
// parts < 1 yields nil.
//
// The returned slices alias s; their capacity is clipped so appending to one
// never overwrites its neighbour.
// Complexity: O(parts).
func Split[E any](s []E, parts int) [][]E {
	if parts < 1 {
		return nil
	}
	size := len(s) / parts
	out := make([][]E, 0, parts)

	var lo, hi int
	for i := 1; i < parts; i++ {
		lo, hi = (i-1)*size, i*size
		out = append(out, s[lo:hi:hi])
	}
	out = append(out, s[(parts-1)*size:])

	return out
}

// SplitString is Split over the runes of s.
// Example: SplitString("abcdefgh", 3) → ["ab", "cd", "efgh"].
func SplitString(s string, parts int) []string {
	chunks := Split([]rune(s), parts)
	if chunks == nil {
		return nil
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = string(c)
	}

	return out
}
