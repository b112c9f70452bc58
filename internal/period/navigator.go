package period

import "time"

// Navigator tracks the period a client is currently viewing. Each anchor
// change bumps a generation counter; fetches started before the change
// carry a stale ticket and their results must be dropped.
type Navigator struct {
	g      Granularity
	anchor time.Time
	gen    uint64
}

// Ticket identifies one in-flight fetch: the anchor it was issued for and
// the navigator generation at issue time.
type Ticket struct {
	Anchor time.Time
	gen    uint64
}

func NewNavigator(g Granularity, t time.Time) *Navigator {
	return &Navigator{g: g, anchor: Anchor(g, t)}
}

func (n *Navigator) Granularity() Granularity { return n.g }

func (n *Navigator) Current() time.Time { return n.anchor }

func (n *Navigator) Next() time.Time {
	n.anchor = Next(n.g, n.anchor)
	n.gen++
	return n.anchor
}

func (n *Navigator) Previous() time.Time {
	n.anchor = Previous(n.g, n.anchor)
	n.gen++
	return n.anchor
}

// JumpTo moves to the bucket containing t.
func (n *Navigator) JumpTo(t time.Time) time.Time {
	n.anchor = Anchor(n.g, t)
	n.gen++
	return n.anchor
}

// Begin issues a ticket for a fetch against the current anchor.
func (n *Navigator) Begin() Ticket {
	return Ticket{Anchor: n.anchor, gen: n.gen}
}

// Accept reports whether a fetch that completed with the given ticket is
// still current. A result for any anchor other than the one being viewed
// is stale and must not be displayed.
func (n *Navigator) Accept(t Ticket) bool {
	return t.gen == n.gen && t.Anchor.Equal(n.anchor)
}
