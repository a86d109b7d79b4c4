// Package pager models a horizontally paged view. It is the source of the
// scroll positions tracked by the tab strip.
package pager

import (
	"math"

	"github.com/leg100/swipetabs/internal/pubsub"
)

const (
	ScrolledEvent     pubsub.EventType = "scrolled"
	SelectedEvent     pubsub.EventType = "selected"
	StateChangedEvent pubsub.EventType = "state-changed"
)

// DefaultSpeed is the fraction of a page travelled on each animation step.
const DefaultSpeed = 0.125

type State int

const (
	Idle State = iota
	Dragging
	Settling
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "idle"
	}
}

// Position is the payload of every pager event.
type Position struct {
	// Index of the page scrolled from, or the selected page for a
	// SelectedEvent.
	Index int
	// Offset is the progress from Index towards the following page.
	Offset float64
	State  State
}

// Pager tracks a continuous position across a number of pages. It is not
// safe for concurrent use.
type Pager struct {
	*pubsub.Broker[Position]

	pages    int
	position float64
	target   float64
	current  int
	state    State
	speed    float64
}

func New(pages int, logger pubsub.Logger) *Pager {
	return &Pager{
		Broker: pubsub.NewBroker[Position](logger),
		pages:  max(0, pages),
		speed:  DefaultSpeed,
	}
}

// SetSpeed sets the fraction of a page travelled on each step.
func (p *Pager) SetSpeed(speed float64) {
	if speed > 0 {
		p.speed = speed
	}
}

// SetPages changes the number of pages, moving to the last page if the
// current page no longer exists.
func (p *Pager) SetPages(n int) {
	p.pages = max(0, n)
	if last := float64(p.last()); p.position > last {
		p.position = last
		p.target = last
		p.publishScrolled()
		p.selected(p.last())
	}
}

func (p *Pager) Pages() int     { return p.pages }
func (p *Pager) Current() int   { return p.current }
func (p *Pager) Animating() bool { return p.state == Settling }

// Position returns the page being scrolled from and the progress towards the
// next page.
func (p *Pager) Position() Position {
	index := int(math.Floor(p.position))
	return Position{
		Index:  index,
		Offset: p.position - float64(index),
		State:  p.state,
	}
}

// Drag moves the pages by delta, a fraction of a page; a positive delta moves
// towards later pages.
func (p *Pager) Drag(delta float64) {
	if p.pages == 0 || delta == 0 {
		return
	}
	p.setState(Dragging)
	p.moveTo(p.position + delta)
}

// Release ends a drag, settling on the nearest page.
func (p *Pager) Release() {
	if p.state != Dragging {
		return
	}
	p.settleOn(int(math.Round(p.position)))
}

// Next settles on the page following the current page.
func (p *Pager) Next() {
	p.settleOn(p.current + 1)
}

// Prev settles on the page preceding the current page.
func (p *Pager) Prev() {
	p.settleOn(p.current - 1)
}

// SetCurrent selects a page. If smooth is true then the pages settle on it
// over successive steps, otherwise the pages jump straight to it.
func (p *Pager) SetCurrent(page int, smooth bool) {
	if p.pages == 0 {
		return
	}
	if smooth {
		p.settleOn(page)
		return
	}
	page = p.clampPage(page)
	p.target = float64(page)
	p.moveTo(p.target)
	p.selected(page)
	p.setState(Idle)
}

// Step advances a settling pager towards its target. It returns true if the
// pager is still settling afterwards.
func (p *Pager) Step() bool {
	if p.state != Settling {
		return false
	}
	distance := p.target - p.position
	if math.Abs(distance) <= p.speed {
		p.moveTo(p.target)
		p.setState(Idle)
		return false
	}
	p.moveTo(p.position + math.Copysign(p.speed, distance))
	return true
}

func (p *Pager) settleOn(page int) {
	if p.pages == 0 {
		return
	}
	page = p.clampPage(page)
	p.target = float64(page)
	p.selected(page)
	if p.position == p.target {
		p.setState(Idle)
		return
	}
	p.setState(Settling)
}

func (p *Pager) moveTo(position float64) {
	position = max(0, min(position, float64(p.last())))
	if position == p.position {
		return
	}
	p.position = position
	p.publishScrolled()
}

func (p *Pager) selected(page int) {
	if page == p.current {
		return
	}
	p.current = page
	p.Publish(SelectedEvent, Position{Index: page, State: p.state})
}

func (p *Pager) setState(s State) {
	if s == p.state {
		return
	}
	p.state = s
	p.Publish(StateChangedEvent, p.Position())
}

func (p *Pager) publishScrolled() {
	p.Publish(ScrolledEvent, p.Position())
}

func (p *Pager) clampPage(page int) int {
	return max(0, min(page, p.last()))
}

func (p *Pager) last() int {
	return max(0, p.pages-1)
}
