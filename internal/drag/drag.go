// Package drag implements the drag gesture state machine and the geometry
// used to turn a pointer position into a drop target.
package drag

import "dragboard/internal/board"

// End is the insertion anchor for "after the last card".
const End = board.End

type State int

const (
	Idle State = iota
	Dragging
	Dropped
	Cancelled
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

type TargetKind int

const (
	NoTarget TargetKind = iota
	ColumnTarget
	BurnTarget
)

// Target is what the pointer is over. For ColumnTarget, Before is the id of
// the card the payload would be inserted before, or End.
type Target struct {
	Kind   TargetKind
	Column string
	Before string
}

func (t Target) IsColumn() bool { return t.Kind == ColumnTarget }
func (t Target) IsBurn() bool { return t.Kind == BurnTarget }

// Store is the subset of the card store a drop mutates.
type Store interface {
	Move(id, tag, before string) bool
	Remove(id string) bool
}

type Outcome int

const (
	Ignored Outcome = iota
	Moved
	Burned
	Aborted
)

type Result struct {
	Outcome Outcome
	CardID  string
	Target  Target
	// Changed is false when the drop landed but the store did not change,
	// e.g. a card dropped onto its own position or an id already gone.
	Changed bool
}

// Controller tracks a single drag gesture at a time.
type Controller struct {
	state   State
	payload string
	target  Target
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Payload() string { return c.payload }
func (c *Controller) Target() Target { return c.target }
func (c *Controller) Dragging() bool { return c.state == Dragging }
func (c *Controller) Armed() bool { return c.state == Dragging && c.target.IsBurn() }

// Start begins a gesture carrying cardID. It fails while another gesture is
// still in flight.
func (c *Controller) Start(cardID string) bool {
	if c.state == Dragging || cardID == "" {
		return false
	}
	c.state = Dragging
	c.payload = cardID
	c.target = Target{}
	return true
}

// Over records the current hover target. It reports whether the target
// changed so callers can skip redundant work.
func (c *Controller) Over(t Target) bool {
	if c.state != Dragging || c.target == t {
		return false
	}
	c.target = t
	return true
}

// Leave clears the hover target, disarming the burn barrel if it was armed.
func (c *Controller) Leave() {
	c.Over(Target{})
}

// Drop commits the gesture against the last hover target.
func (c *Controller) Drop(s Store) Result {
	if c.state != Dragging {
		return Result{Outcome: Ignored}
	}
	t := c.target
	id := c.payload
	switch t.Kind {
	case ColumnTarget:
		c.finish(Dropped)
		return Result{Outcome: Moved, CardID: id, Target: t, Changed: s.Move(id, t.Column, t.Before)}
	case BurnTarget:
		c.finish(Dropped)
		return Result{Outcome: Burned, CardID: id, Target: t, Changed: s.Remove(id)}
	default:
		return c.Cancel()
	}
}

// Cancel discards the payload without touching the store.
func (c *Controller) Cancel() Result {
	if c.state != Dragging {
		return Result{Outcome: Ignored}
	}
	id := c.payload
	c.finish(Cancelled)
	return Result{Outcome: Aborted, CardID: id}
}

func (c *Controller) finish(s State) {
	c.state = s
	c.payload = ""
	c.target = Target{}
}
