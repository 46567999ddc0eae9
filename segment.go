package segstring

import "io"

// Segment is the polymorphic node of the string DAG: either a leaf (owns
// or borrows raw bytes) or a reference segment (a lazy view over one or
// two input segments). Every Segment answers length/code-point/print
// queries directly or by forwarding into its inputs.
type Segment interface {
	Length() int
	CodeUnitAt(i int) (CodePoint, error)
	// Substring returns a new segment viewing [a,b) of this one. It never
	// copies; reference segments decide whether to flatten (point past
	// themselves at their own parent) or wrap (point at themselves).
	Substring(a, b int) (Segment, error)
	// Print writes the code points in [start,end) to w as UTF-8,
	// reporting whether the whole range was written.
	Print(w io.Writer, start, end int) (bool, error)

	// keepingCost estimates the bytes this segment and its entire input
	// subgraph occupy if kept as indirect references.
	keepingCost(p *Policy) int
	// reconstructionCost estimates the bytes this segment (a dependent of
	// dying) would need to allocate to materialize its own view if dying
	// vanished.
	reconstructionCost(dying Segment, p *Policy) int
	// notifyDying is called on every dependent of a segment before that
	// segment is destroyed. The receiver must stop referencing dying --
	// transitioning to a materialized state if it was still lazily
	// reading through it.
	notifyDying(dying Segment)
	// inputs lists the segments this one reads from (nil for a leaf).
	inputs() []Segment
	// freeStorage releases whatever buffer this segment owns, once it is
	// no longer reachable from any dependent or outer handle.
	freeStorage()

	base() *segBase
}

// segBase is the bookkeeping every Segment embeds: a reference count of
// outer Text handles naming this segment directly, and the non-owning list
// of reference segments currently reading through it (notified, never
// retained, before this segment is torn down). Per the design notes, the
// child->parent edge a reference segment holds is a plain Go pointer used
// for reading; dependents is the only thing tracked here, and it never
// contributes to refs.
type segBase struct {
	refs      int
	deps      []Segment
	destroyed bool
}

func (b *segBase) base() *segBase { return b }

func (b *segBase) addDependent(d Segment) {
	b.deps = append(b.deps, d)
}

func (b *segBase) removeDependent(d Segment) {
	for i, dep := range b.deps {
		if dep == d {
			b.deps = append(b.deps[:i], b.deps[i+1:]...)
			return
		}
	}
}

// RefCount reports the number of outer handles currently naming s. It is
// exposed for tests; production logic reads the counter only through the
// eligibility rule below, and Text.DebugTree prints it.
func RefCount(s Segment) int { return s.base().refs }

// IsDestroyed reports whether s has already run its destruction sequence.
func IsDestroyed(s Segment) bool { return s.base().destroyed }

func retain(s Segment) { s.base().refs++ }

// release decrements s's outer-handle refcount and, if it reaches zero and
// the adaptive materialization policy judges s cheaper to free than to
// keep, runs its destruction sequence.
func release(s Segment, p *Policy) {
	b := s.base()
	if b.destroyed {
		return
	}
	b.refs--
	if b.refs <= 0 && eligibleForDestruction(s, p) {
		destroy(s, p)
	}
}

// eligibleForDestruction reports whether s has no outer handles left and
// is more expensive to keep indirect than to free and let its dependents
// materialize. Policy.ConservativeBias breaks an exact tie toward
// materializing: a false negative there leaks a descriptor chain, a false
// positive only pays memory once.
func eligibleForDestruction(s Segment, p *Policy) bool {
	if s.base().refs > 0 || s.base().destroyed {
		return false
	}
	keep := s.keepingCost(p)
	free := freeingCost(s, p)
	if p.ConservativeBias() {
		return keep >= free
	}
	return keep > free
}

// freeingCost sums what every current dependent of s would pay to
// materialize its own view if s vanished.
func freeingCost(s Segment, p *Policy) int {
	total := 0
	for _, d := range s.base().deps {
		total += d.reconstructionCost(s, p)
	}
	return total
}

// destroy runs the three-step teardown sequence: notify
// dependents (who materialize and sever their pointer to s), deregister
// s from its own inputs (cascading eligibility back up the DAG), then
// release s's own storage. It is idempotent.
func destroy(s Segment, p *Policy) {
	b := s.base()
	if b.destroyed {
		return
	}
	b.destroyed = true
	deps := b.deps
	b.deps = nil
	for _, d := range deps {
		d.notifyDying(s)
	}
	for _, in := range s.inputs() {
		inBase := in.base()
		inBase.removeDependent(s)
		if !inBase.destroyed && eligibleForDestruction(in, p) {
			destroy(in, p)
		}
	}
	s.freeStorage()
}
