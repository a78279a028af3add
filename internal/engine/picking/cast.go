package picking

import (
	"sort"

	"github.com/Faultbox/toothview/internal/scene"
)

// Hit is one ray/mesh intersection.
type Hit struct {
	Node     *scene.Node
	Distance float32
}

// Back reports whether the hit mesh belongs to the inner layer.
func (h Hit) Back() bool {
	return h.Node.Back
}

// Name returns the hit mesh name.
func (h Hit) Name() string {
	return h.Node.Name
}

// Cast intersects r with every pickable node and returns one record per hit
// mesh, nearest first. Equal distances keep authoring order.
func Cast(r Ray, nodes []*scene.Node) []Hit {
	var hits []Hit
	for _, n := range nodes {
		if n.Kind != scene.KindMesh {
			continue
		}
		if _, ok := r.IntersectAABB(n.Bounds); !ok {
			continue
		}
		if t, ok := nearestTriangle(r, n.Geometry); ok {
			hits = append(hits, Hit{Node: n, Distance: t})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func nearestTriangle(r Ray, tris []scene.Triangle) (float32, bool) {
	best := float32(0)
	found := false
	for _, tri := range tris {
		if t, ok := r.IntersectTriangle(tri); ok && (!found || t < best) {
			best = t
			found = true
		}
	}
	return best, found
}
