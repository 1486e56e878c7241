// Package picking hit-tests the cursor against projected faces.
package picking

import (
	"github.com/Faultbox/hypercube/pkg/math"
)

// Contains reports whether (x, y) lies inside the polygon using the
// even-odd crossing rule. Points exactly on an edge may go either way.
func Contains(poly []math.Vec2, x, y float32) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// Tracker remembers the last face painted under the cursor. Faces are
// offered in paint order, so the final hit is the topmost.
type Tracker struct {
	X, Y float32
	hit  int
}

// NewTracker starts tracking for a cursor position.
func NewTracker(x, y int) *Tracker {
	return &Tracker{X: float32(x), Y: float32(y), hit: -1}
}

// Offer tests a painted face belonging to cubie id.
func (t *Tracker) Offer(id int, quad []math.Vec2) {
	if Contains(quad, t.X, t.Y) {
		t.hit = id
	}
}

// Hit returns the topmost cubie under the cursor, or -1.
func (t *Tracker) Hit() int {
	return t.hit
}
