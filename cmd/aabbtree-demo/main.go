// Command aabbtree-demo exercises a Tree end to end: it inserts a batch
// of particles built from mathgl centres/half-extents, shakes them with a
// random walk, queries and rebuilds, and prints a summary of how the
// tree's shape evolved.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/stat"

	"github.com/abby-go/aabbtree"
)

const (
	particleCount = 64
	stepCount     = 32
	worldExtent   = 100.0
)

func main() {
	tree, err := aabbtree.NewTree(aabbtree.Config{
		Dimension:       3,
		SkinThickness:   0.1,
		InitialCapacity: 16,
		TouchIsOverlap:  true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "aabbtree-demo:", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(1))
	centres := make([]mgl64.Vec3, particleCount)

	for id := 0; id < particleCount; id++ {
		centre := mgl64.Vec3{
			rng.Float64() * worldExtent,
			rng.Float64() * worldExtent,
			rng.Float64() * worldExtent,
		}
		centres[id] = centre

		lower, upper := boxFrom(centre, 0.5)
		if err := tree.InsertParticle(uint64(id), lower, upper); err != nil {
			fmt.Fprintln(os.Stderr, "aabbtree-demo: insert:", err)
			os.Exit(1)
		}
	}

	var areaRatios, maxBalances []float64

	for step := 0; step < stepCount; step++ {
		for id := range centres {
			delta := mgl64.Vec3{
				rng.NormFloat64() * 0.05,
				rng.NormFloat64() * 0.05,
				rng.NormFloat64() * 0.05,
			}
			centres[id] = centres[id].Add(delta)

			lower, upper := boxFrom(centres[id], 0.5)
			if _, err := tree.UpdateParticle(uint64(id), lower, upper, false); err != nil {
				fmt.Fprintln(os.Stderr, "aabbtree-demo: update:", err)
				os.Exit(1)
			}
		}

		snap := tree.Snapshot()
		areaRatios = append(areaRatios, snap.SurfaceAreaRatio)
		maxBalances = append(maxBalances, float64(snap.MaxBalance))
	}

	probe, err := aabbtree.NewAABB(
		[]float64{worldExtent/2 - 10, worldExtent/2 - 10, worldExtent/2 - 10},
		[]float64{worldExtent/2 + 10, worldExtent/2 + 10, worldExtent/2 + 10},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "aabbtree-demo:", err)
		os.Exit(1)
	}

	hits := tree.Query(probe)
	fmt.Printf("centre probe hit %d of %d particles\n", len(hits), tree.NParticles())

	beforeSnap := tree.Snapshot()
	tree.Rebuild()
	afterSnap := tree.Snapshot()

	fmt.Printf("before rebuild: height=%d nodes=%d maxBalance=%d areaRatio=%.3f\n",
		beforeSnap.Height, beforeSnap.NodeCount, beforeSnap.MaxBalance, beforeSnap.SurfaceAreaRatio)
	fmt.Printf("after rebuild:  height=%d nodes=%d maxBalance=%d areaRatio=%.3f\n",
		afterSnap.Height, afterSnap.NodeCount, afterSnap.MaxBalance, afterSnap.SurfaceAreaRatio)

	meanRatio, varRatio := stat.MeanVariance(areaRatios, nil)
	meanBalance := stat.Mean(maxBalances, nil)
	fmt.Printf("over %d steps: areaRatio mean=%.3f variance=%.5f, maxBalance mean=%.2f\n",
		stepCount, meanRatio, varRatio, meanBalance)

	tree.Print(os.Stdout)
}

// boxFrom returns the lower/upper bounds of a cube centred at c with the
// given half-extent along every axis.
func boxFrom(c mgl64.Vec3, halfExtent float64) ([]float64, []float64) {
	lower := []float64{c.X() - halfExtent, c.Y() - halfExtent, c.Z() - halfExtent}
	upper := []float64{c.X() + halfExtent, c.Y() + halfExtent, c.Z() + halfExtent}
	return lower, upper
}
