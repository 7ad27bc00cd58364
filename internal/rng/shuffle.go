package rng

// Shuffle permutes s in place with a backward Fisher-Yates pass: every index
// i from len(s)-1 down to 1 is swapped with a draw from [0, i].
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(r.NextInRange(uint32(i)))
		if j != i {
			s[i], s[j] = s[j], s[i]
		}
	}
}
