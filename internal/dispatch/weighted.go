package dispatch

// selectWeighted picks one of the given descriptor indices with
// probability proportional to its registry weight, using the builder's
// own PRNG (P4: no global randomness), via cumulative weights and a
// binary search over the target draw.
func (e *Engine) selectWeighted(indices []int) int {
	if len(indices) == 1 {
		return indices[0]
	}
	cumulative := make([]int, len(indices))
	total := 0
	for i, idx := range indices {
		w := e.reg.Weight(idx)
		if w < 1 {
			w = 1
		}
		total += w
		cumulative[i] = total
	}
	target := e.b.Rng().Intn(total)
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumulative[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return indices[lo]
}
