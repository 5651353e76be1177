package aabbtree

import "testing"

func TestAllocateNodeGrowsOnExhaustion(t *testing.T) {
	tree, err := NewTree(Config{Dimension: 2, InitialCapacity: 2, TouchIsOverlap: true})
	if err != nil {
		t.Fatal(err)
	}

	a := tree.allocateNode()
	b := tree.allocateNode()
	if len(tree.nodes) != 2 {
		t.Fatalf("len(nodes) after filling initial capacity = %d, want 2", len(tree.nodes))
	}

	c := tree.allocateNode()
	if len(tree.nodes) != 4 {
		t.Fatalf("len(nodes) after growth = %d, want 4", len(tree.nodes))
	}

	if a == b || b == c || a == c {
		t.Fatalf("allocateNode returned overlapping ids: %d %d %d", a, b, c)
	}
	if tree.nodeCount != 3 {
		t.Errorf("nodeCount = %d, want 3", tree.nodeCount)
	}
}

func TestFreeNodeRecyclesID(t *testing.T) {
	tree, err := NewTree(Config{Dimension: 2, InitialCapacity: 4, TouchIsOverlap: true})
	if err != nil {
		t.Fatal(err)
	}

	a := tree.allocateNode()
	tree.freeNode(a)

	b := tree.allocateNode()
	if b != a {
		t.Errorf("allocateNode after freeNode = %d, want recycled id %d", b, a)
	}
	if tree.nodeCount != 1 {
		t.Errorf("nodeCount = %d, want 1", tree.nodeCount)
	}
}

func TestAllocateNodeResetsFields(t *testing.T) {
	tree, err := NewTree(Config{Dimension: 2, InitialCapacity: 4, TouchIsOverlap: true})
	if err != nil {
		t.Fatal(err)
	}

	a := tree.allocateNode()
	tree.nodes[a].particle = 99
	tree.nodes[a].left = 3
	tree.freeNode(a)

	b := tree.allocateNode()
	n := tree.nodes[b]
	if n.parent != nullNode || n.left != nullNode || n.right != nullNode {
		t.Errorf("allocateNode left stale links: %+v", n)
	}
	if n.height != 0 {
		t.Errorf("allocateNode height = %d, want 0", n.height)
	}
}

func TestFreeListLengthMatchesCapacityMinusLive(t *testing.T) {
	tree, err := NewTree(Config{Dimension: 2, InitialCapacity: 8, TouchIsOverlap: true})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		tree.allocateNode()
	}

	freeCount := 0
	for i := tree.freeList; i != nullNode; i = tree.nodes[i].next {
		freeCount++
	}

	if got, want := freeCount+tree.nodeCount, len(tree.nodes); got != want {
		t.Errorf("freeCount(%d) + nodeCount(%d) = %d, want capacity %d", freeCount, tree.nodeCount, got, want)
	}
}
