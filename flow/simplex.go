// SPDX-License-Identifier: MIT

package flow

import "math"

const (
	stateTree  int8 = 0
	stateLower int8 = 1

	dirUp   int8 = 1  // pred arc points from the node to its parent
	dirDown int8 = -1 // pred arc points from the parent to the node
)

// simplex is the working state of one Network.Run. Real arcs occupy slots
// [0, arcNum); artificial arcs occupy [arcNum, arcNum+nodeNum), one per node,
// each joining the node to the artificial root (index nodeNum).
type simplex struct {
	nodeNum, arcNum, allArcNum int
	root                       int

	source, target []int
	cost, flow     []float64
	state          []int8
	arcID          []int // slot → arc index in the Network

	// spanning tree, rooted at root
	parent, pred []int
	predDir      []int8
	depth        []int
	pi           []float64
	basis        []int // tree arcs, one per non-root node
	basisPos     []int // slot → position in basis, or -1

	// scratch for tree rebuilds
	adjStart, adjFill, adjArc, queue []int

	// pivot state
	inArc, join, uOut int
	delta             float64
	nextArc           int
	blockSize         int
	pivot             PivotRule
	eps               float64
	feasTol           float64

	iterations int
}

// newSimplex lays out the arcs of nw and builds the initial tree.
//
// Steps:
//  1. Optionally mix the arc order: slot i takes arc a, then i advances by
//     max(arcs/nodes, 3) and wraps to the next residue.
//  2. Attach every node to the root by an artificial arc. Nodes with
//     non-negative supply point up with cost 0; the others are fed from the
//     root at a cost above any real path, so the artificial flow is driven out.
func newSimplex(nw *Network, opts Options) *simplex {
	n, m := nw.nodes, len(nw.source)
	all := m + n
	s := &simplex{
		nodeNum:   n,
		arcNum:    m,
		allArcNum: all,
		root:      n,
		source:    make([]int, all),
		target:    make([]int, all),
		cost:      make([]float64, all),
		flow:      make([]float64, all),
		state:     make([]int8, all),
		arcID:     make([]int, m),
		parent:    make([]int, n+1),
		pred:      make([]int, n+1),
		predDir:   make([]int8, n+1),
		depth:     make([]int, n+1),
		pi:        make([]float64, n+1),
		basis:     make([]int, n),
		basisPos:  make([]int, all),
		adjStart:  make([]int, n+2),
		adjFill:   make([]int, n+1),
		adjArc:    make([]int, 2*n),
		queue:     make([]int, 0, n+1),
		pivot:     opts.Pivot,
		eps:       opts.Epsilon,
	}

	// 1) Arc order
	if opts.ArcMixing && n > 1 && m > 0 {
		skip := m / n
		if skip < 3 {
			skip = 3
		}
		i, j := 0, 0
		for a := 0; a < m; a++ {
			s.arcID[i] = a
			if i += skip; i >= m {
				j++
				i = j
			}
		}
	} else {
		for a := 0; a < m; a++ {
			s.arcID[a] = a
		}
	}
	for slot, a := range s.arcID {
		s.source[slot] = nw.source[a]
		s.target[slot] = nw.target[a]
		s.cost[slot] = nw.cost[a]
		s.state[slot] = stateLower
		s.basisPos[slot] = -1
	}

	// 2) Artificial tree
	artCost := 0.0
	var positive float64
	for slot := 0; slot < m; slot++ {
		if s.cost[slot] > artCost {
			artCost = s.cost[slot]
		}
	}
	artCost = (artCost + 1) * float64(n)

	s.parent[s.root] = -1
	s.pred[s.root] = -1
	for u, e := 0, m; u < n; u, e = u+1, e+1 {
		sup := nw.supply[u]
		s.parent[u] = s.root
		s.pred[u] = e
		s.depth[u] = 1
		s.state[e] = stateTree
		s.basis[u] = e
		s.basisPos[e] = u
		if sup >= 0 {
			positive += sup
			s.predDir[u] = dirUp
			s.source[e], s.target[e] = u, s.root
			s.flow[e] = sup
			s.pi[u] = 0
		} else {
			s.predDir[u] = dirDown
			s.source[e], s.target[e] = s.root, u
			s.flow[e] = -sup
			s.cost[e] = artCost
			s.pi[u] = artCost
		}
	}
	s.feasTol = opts.FeasibilityTol * positive

	s.blockSize = opts.BlockSize
	if s.blockSize == 0 {
		s.blockSize = int(math.Sqrt(float64(m)))
		if s.blockSize < minBlockSize {
			s.blockSize = minBlockSize
		}
	}

	return s
}

// run pivots until optimality, unboundedness or the budget is reached.
// maxIter <= 0 means unlimited.
func (s *simplex) run(maxIter int) Status {
	for s.findEnteringArc() {
		if maxIter > 0 && s.iterations >= maxIter {
			return StatusMaxIterReached
		}
		s.iterations++

		s.findJoinNode()
		s.findLeavingArc()
		if math.IsInf(s.delta, 1) {
			return StatusUnbounded
		}
		s.changeFlow()
		s.updateTree()
	}

	// artificial arcs must be empty for the real arcs to satisfy the supplies
	for e := s.arcNum; e < s.allArcNum; e++ {
		if s.flow[e] > s.feasTol {
			return StatusInfeasible
		}
	}

	s.shiftPotentials()

	return StatusOptimal
}

// reducedCost returns c + π(source) − π(target) and whether it is negative
// beyond the relative tolerance.
func (s *simplex) reducedCost(e int) (float64, bool) {
	ps, pt := s.pi[s.source[e]], s.pi[s.target[e]]
	c := s.cost[e] + ps - pt
	scale := math.Max(math.Abs(s.cost[e]), math.Max(math.Abs(ps), math.Abs(pt)))

	return c, s.state[e] == stateLower && c < -s.eps*scale
}

// findJoinNode walks both ends of the entering arc up to their lowest common
// ancestor.
func (s *simplex) findJoinNode() {
	u, v := s.source[s.inArc], s.target[s.inArc]
	for u != v {
		if s.depth[u] >= s.depth[v] {
			u = s.parent[u]
		} else {
			v = s.parent[v]
		}
	}
	s.join = u
}

// findLeavingArc picks the blocking arc of the cycle closed by inArc.
// Flow is pushed source→target along inArc, so it decreases on up-pointing
// arcs of the source side and on down-pointing arcs of the target side.
// Ties go to the last blocking arc met walking the target side, which keeps
// the tree strongly feasible. delta is +Inf when nothing blocks.
func (s *simplex) findLeavingArc() {
	delta := math.Inf(1)
	s.uOut = -1

	for u := s.source[s.inArc]; u != s.join; u = s.parent[u] {
		if s.predDir[u] != dirUp {
			continue
		}
		if d := s.flow[s.pred[u]]; d < delta {
			delta = d
			s.uOut = u
		}
	}
	for u := s.target[s.inArc]; u != s.join; u = s.parent[u] {
		if s.predDir[u] != dirDown {
			continue
		}
		if d := s.flow[s.pred[u]]; d <= delta {
			delta = d
			s.uOut = u
		}
	}
	s.delta = delta
}

// changeFlow augments delta units around the cycle.
func (s *simplex) changeFlow() {
	if s.delta > 0 {
		val := s.delta
		s.flow[s.inArc] += val
		for u := s.source[s.inArc]; u != s.join; u = s.parent[u] {
			s.flow[s.pred[u]] -= float64(s.predDir[u]) * val
		}
		for u := s.target[s.inArc]; u != s.join; u = s.parent[u] {
			s.flow[s.pred[u]] += float64(s.predDir[u]) * val
		}
	}
	s.flow[s.pred[s.uOut]] = 0
}

// updateTree swaps the leaving arc for the entering one in the basis and
// recomputes parents, depths and potentials.
func (s *simplex) updateTree() {
	out := s.pred[s.uOut]
	pos := s.basisPos[out]
	s.basis[pos] = s.inArc
	s.basisPos[s.inArc] = pos
	s.basisPos[out] = -1
	s.state[s.inArc] = stateTree
	s.state[out] = stateLower

	s.rebuild()
}

// rebuild derives the rooted tree from the basis by breadth-first search.
// Potentials satisfy c + π(source) − π(target) = 0 on every tree arc, with
// π(root) = 0.
func (s *simplex) rebuild() {
	n := s.nodeNum + 1

	// 1) CSR adjacency of the basis
	for i := range s.adjStart {
		s.adjStart[i] = 0
	}
	for _, e := range s.basis {
		s.adjStart[s.source[e]+1]++
		s.adjStart[s.target[e]+1]++
	}
	for i := 1; i <= n; i++ {
		s.adjStart[i] += s.adjStart[i-1]
	}
	copy(s.adjFill, s.adjStart[:n])
	for _, e := range s.basis {
		u, v := s.source[e], s.target[e]
		s.adjArc[s.adjFill[u]] = e
		s.adjFill[u]++
		s.adjArc[s.adjFill[v]] = e
		s.adjFill[v]++
	}

	// 2) BFS from the root
	for i := range s.depth {
		s.depth[i] = -1
	}
	s.depth[s.root] = 0
	s.parent[s.root] = -1
	s.pred[s.root] = -1
	s.pi[s.root] = 0
	s.queue = append(s.queue[:0], s.root)
	for h := 0; h < len(s.queue); h++ {
		u := s.queue[h]
		for k := s.adjStart[u]; k < s.adjStart[u+1]; k++ {
			e := s.adjArc[k]
			v := s.source[e]
			if v == u {
				v = s.target[e]
			}
			if s.depth[v] >= 0 {
				continue
			}
			s.depth[v] = s.depth[u] + 1
			s.parent[v] = u
			s.pred[v] = e
			if s.source[e] == v {
				s.predDir[v] = dirUp
				s.pi[v] = s.pi[u] - s.cost[e]
			} else {
				s.predDir[v] = dirDown
				s.pi[v] = s.pi[u] + s.cost[e]
			}
			s.queue = append(s.queue, v)
		}
	}
}

// shiftPotentials translates all potentials so that the largest is at most 0.
func (s *simplex) shiftPotentials() {
	if s.nodeNum == 0 {
		return
	}
	top := math.Inf(-1)
	for u := 0; u < s.nodeNum; u++ {
		if s.pi[u] > top {
			top = s.pi[u]
		}
	}
	if top > 0 {
		for u := 0; u < s.nodeNum; u++ {
			s.pi[u] -= top
		}
	}
}
