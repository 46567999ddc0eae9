package segstring

import (
	"fmt"
	"strings"
)

// debugPrinter is an indent/pad/write helper built around a padding stack
// plus a strings.Builder sink. It is purely
// diagnostic -- DebugTree never drives a production decision.
type debugPrinter struct {
	pad    []string
	output strings.Builder
}

func (p *debugPrinter) indent()   { p.pad = append(p.pad, "  ") }
func (p *debugPrinter) unindent() { p.pad = p.pad[:len(p.pad)-1] }

func (p *debugPrinter) pwritel(format string, args ...any) {
	for _, s := range p.pad {
		p.output.WriteString(s)
	}
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteRune('\n')
}

// DebugTree renders the segment DAG reachable from t: one line per
// segment naming its kind, refcount, destroyed state and dependent count,
// indented by nesting depth. It is meant for interactive debugging and
// tests asserting on materialization transparency (property 8), never for
// parsing.
func (t Text) DebugTree() string {
	p := &debugPrinter{}
	if t.seg == nil {
		p.pwritel("(empty)")
		return p.output.String()
	}
	printSegmentTree(p, t.seg, make(map[Segment]bool))
	return p.output.String()
}

func printSegmentTree(p *debugPrinter, s Segment, visiting map[Segment]bool) {
	b := s.base()
	label, children := describeSegment(s)
	if visiting[s] {
		p.pwritel("%s (refs=%d, destroyed=%t) [already visited, cycle?]", label, b.refs, b.destroyed)
		return
	}
	p.pwritel("%s (refs=%d, deps=%d, destroyed=%t)", label, b.refs, len(b.deps), b.destroyed)
	visiting[s] = true
	p.indent()
	for _, c := range children {
		printSegmentTree(p, c, visiting)
	}
	p.unindent()
	delete(visiting, s)
}

// describeSegment names s by kind and returns the live input segments it
// should recurse into -- a materialized reference segment or a leaf has
// none.
func describeSegment(s Segment) (label string, children []Segment) {
	switch v := s.(type) {
	case *leaf:
		kind := "borrowed"
		if v.owned {
			kind = "owned"
		}
		return fmt.Sprintf("leaf(%s, %s, len=%d)", v.enc, kind, v.Length()), nil
	case *substringSegment:
		if v.materialized {
			return fmt.Sprintf("substring(materialized, len=%d)", v.Length()), nil
		}
		return fmt.Sprintf("substring(span=%s, len=%d)", v.span, v.Length()), []Segment{v.parent}
	case *concatSegment:
		var in []Segment
		if v.left != nil {
			in = append(in, v.left)
		}
		if v.right != nil {
			in = append(in, v.right)
		}
		return fmt.Sprintf("concat(len=%d, left-live=%t, right-live=%t)", v.Length(), v.left != nil, v.right != nil), in
	case *repeatSegment:
		if v.inner != nil {
			return fmt.Sprintf("repeat(times=%d, unit-live=true, len=%d)", v.times, v.Length()), []Segment{v.inner}
		}
		return fmt.Sprintf("repeat(times=%d, unit-live=false, len=%d)", v.times, v.Length()), nil
	default:
		return fmt.Sprintf("segment(len=%d)", s.Length()), nil
	}
}
