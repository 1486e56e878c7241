package scene

// SortByDepth reorders idx so depth[idx[i]] is non-increasing, farthest
// first. It is a stable selection sort: equal depths keep their incoming
// order, so an identity-ordered idx breaks ties by ascending index.
func SortByDepth(idx []int, depth []float32) {
	for i := range idx {
		best := i
		for j := i + 1; j < len(idx); j++ {
			if depth[idx[j]] > depth[idx[best]] {
				best = j
			}
		}
		if best == i {
			continue
		}
		v := idx[best]
		copy(idx[i+1:best+1], idx[i:best])
		idx[i] = v
	}
}
