package aabbtree

import "math"

// Rebuild discards the current internal-node structure and rebuilds an
// optimal tree bottom-up from the live leaves: repeatedly pairing the two
// subtrees whose merged AABB has the smallest surface area. This is
// O(n^2) and exists to repair the locality that incremental SAH
// insertion loses over many mutations; it is not meant to be called on
// every update.
func (t *Tree) Rebuild() {
	log.WithField("particles", len(t.particleMap)).Debug("aabbtree: rebuilding")

	working := make([]int, t.nodeCount)
	count := 0

	for i := range t.nodes {
		if t.nodes[i].height < 0 {
			continue
		}
		if t.nodes[i].isLeaf() {
			t.nodes[i].parent = nullNode
			working[count] = i
			count++
		} else {
			t.freeNode(i)
		}
	}

	for count > 1 {
		minCost := math.MaxFloat64
		iMin, jMin := -1, -1

		for i := 0; i < count; i++ {
			ai := t.nodes[working[i]].aabb
			for j := i + 1; j < count; j++ {
				aj := t.nodes[working[j]].aabb
				cost := Merge(ai, aj).SurfaceArea()
				if cost < minCost {
					iMin, jMin, minCost = i, j, cost
				}
			}
		}

		index1 := working[iMin]
		index2 := working[jMin]

		parent := t.allocateNode()
		t.nodes[parent].left = index1
		t.nodes[parent].right = index2
		t.nodes[parent].height = 1 + maxInt(t.nodes[index1].height, t.nodes[index2].height)
		t.nodes[parent].aabb = Merge(t.nodes[index1].aabb, t.nodes[index2].aabb)
		t.nodes[parent].parent = nullNode

		t.nodes[index1].parent = parent
		t.nodes[index2].parent = parent

		working[jMin] = working[count-1]
		working[iMin] = parent
		count--
	}

	if count == 1 {
		t.root = working[0]
	} else {
		t.root = nullNode
	}

	if debug {
		t.Validate()
	}
}
