package aabbtree

// allocateNode pops a node off the free list, growing the pool by
// doubling if the free list is empty. Indices of already-live nodes are
// never invalidated by growth since nodes is only ever appended to.
func (t *Tree) allocateNode() int {
	if t.freeList == nullNode {
		oldCapacity := len(t.nodes)
		grown := make([]node, oldCapacity)
		for i := range grown {
			grown[i].next = oldCapacity + i + 1
			grown[i].height = -1
		}
		grown[len(grown)-1].next = nullNode
		t.nodes = append(t.nodes, grown...)
		t.freeList = oldCapacity

		log.WithFields(map[string]any{
			"from": oldCapacity,
			"to":   len(t.nodes),
		}).Debug("aabbtree: growing node pool")
	}

	id := t.freeList
	t.freeList = t.nodes[id].next
	t.nodes[id].parent = nullNode
	t.nodes[id].left = nullNode
	t.nodes[id].right = nullNode
	t.nodes[id].height = 0
	t.nodes[id].aabb = emptyAABB(t.dimension)
	t.nodeCount++

	return id
}

// freeNode pushes id back onto the free list. The caller must not free an
// already-free node.
func (t *Tree) freeNode(id int) {
	t.nodes[id].next = t.freeList
	t.nodes[id].height = -1
	t.freeList = id
	t.nodeCount--
}
