package planner

// combinations enumerates the k-element subsets of indices [0, n) in
// lexicographic order, without materializing them all. The zero cursor
// position is established lazily on the first call to next.
type combinations struct {
	n, k    int
	idx     []int
	started bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k}
}

// next advances to the following combination and returns the index tuple.
// The returned slice is reused between calls; callers must copy it if they
// hold on to it. Returns false when the enumeration is exhausted.
func (c *combinations) next() ([]int, bool) {
	if c.k < 1 || c.k > c.n {
		return nil, false
	}

	if !c.started {
		c.started = true
		c.idx = make([]int, c.k)
		for i := range c.idx {
			c.idx[i] = i
		}
		return c.idx, true
	}

	// Find the rightmost index that can still advance, bump it, and reset
	// everything to its right to the minimal ascending run.
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return nil, false
	}

	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}

	return c.idx, true
}
