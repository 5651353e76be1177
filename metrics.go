package aabbtree

// Snapshot is a point-in-time summary of tree health, built from the
// §4.9 introspection calls. It exists so callers (and cmd/aabbtree-demo)
// can sample a tree's shape over a run without re-deriving each field by
// hand at every call site.
type Snapshot struct {
	Particles        int
	Height           int
	NodeCount        int
	MaxBalance       int
	SurfaceAreaRatio float64
}

// Snapshot captures the tree's current introspection metrics.
func (t *Tree) Snapshot() Snapshot {
	return Snapshot{
		Particles:        t.NParticles(),
		Height:           t.GetHeight(),
		NodeCount:        t.GetNodeCount(),
		MaxBalance:       t.ComputeMaximumBalance(),
		SurfaceAreaRatio: t.ComputeSurfaceAreaRatio(),
	}
}
