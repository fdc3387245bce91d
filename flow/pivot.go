// SPDX-License-Identifier: MIT

package flow

// findEnteringArc selects a non-tree real arc with a negative reduced cost
// according to the configured pivot rule. It returns false when none exists,
// i.e. the current tree is optimal.
func (s *simplex) findEnteringArc() bool {
	if s.arcNum == 0 {
		return false
	}
	switch s.pivot {
	case FirstEligible:
		return s.firstEligible()
	case BestEligible:
		return s.bestEligible()
	default:
		return s.blockSearch()
	}
}

// firstEligible resumes the cyclic scan right after the previous entering
// arc and takes the first violating arc.
func (s *simplex) firstEligible() bool {
	e := s.nextArc
	for k := 0; k < s.arcNum; k++ {
		if _, ok := s.reducedCost(e); ok {
			s.inArc = e
			s.nextArc = e + 1
			if s.nextArc == s.arcNum {
				s.nextArc = 0
			}
			return true
		}
		if e++; e == s.arcNum {
			e = 0
		}
	}

	return false
}

// bestEligible scans every arc and takes the most violating one
// (Dantzig's rule).
func (s *simplex) bestEligible() bool {
	best, in := 0.0, -1
	for e := 0; e < s.arcNum; e++ {
		if c, ok := s.reducedCost(e); ok && c < best {
			best, in = c, e
		}
	}
	if in < 0 {
		return false
	}
	s.inArc = in

	return true
}

// blockSearch scans the arcs cyclically in blocks of blockSize and stops at
// the end of the first block holding a violating arc, taking the most
// violating arc seen so far. The next search resumes where this one stopped.
func (s *simplex) blockSearch() bool {
	best, in := 0.0, -1
	cnt := s.blockSize
	e := s.nextArc
	for k := 0; k < s.arcNum; k++ {
		if c, ok := s.reducedCost(e); ok && c < best {
			best, in = c, e
		}
		if cnt--; cnt == 0 {
			if in >= 0 {
				s.nextArc = e
				s.inArc = in
				return true
			}
			cnt = s.blockSize
		}
		if e++; e == s.arcNum {
			e = 0
		}
	}
	if in < 0 {
		return false
	}
	s.nextArc = e
	s.inArc = in

	return true
}
