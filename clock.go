// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clocksig

// Edge identifies a transition of the clock level.
//
type Edge int

// Clock edges.
//
const (
	NoEdge  Edge = iota
	Rising       // low to high
	Falling      // high to low
)

// String returns the edge annotation used in edge tables.
//
func (e Edge) String() string {
	switch e {
	case Rising:
		return "↑ Rising Edge"
	case Falling:
		return "↓ Falling Edge"
	}
	return ""
}

// A Sample is the state of a clock at a given simulation step.
//
// Edge is set on the first step of each half cycle. This includes step 0: a
// clock with no phase offset starts on a rising edge, as if it had been low
// before the simulation started.
//
type Sample struct {
	Step  uint
	Level bool
	Edge  Edge
}

// A Probe is called by a Clock with the current sample on every step.
//
type Probe func(s Sample)

// Clock is a stepped square wave clock simulation with a 50% duty cycle.
//
// The clock is high during the first half of each cycle and low during the
// second half. A phase offset shifts the waveform to the left by the given
// number of steps.
//
type Clock struct {
	tpc    uint // steps per clock cycle, a power of two
	phase  uint
	tick   uint
	probes []Probe
}

// NewClock returns a new clock.
//
// stepsPerCycle indicates how many simulation steps make up a clock cycle. It
// is clamped to a minimum of 2 and rounded up to the next power of two.
//
func NewClock(stepsPerCycle, phase uint) *Clock {
	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	return &Clock{tpc: stepsPerCycle, phase: phase & (stepsPerCycle - 1)}
}

// Attach adds probes to the clock. Probes are called in the order they were
// attached.
//
func (c *Clock) Attach(ps ...Probe) {
	c.probes = append(c.probes, ps...)
}

// Steps returns the value of the step counter.
//
func (c *Clock) Steps() uint {
	return c.tick
}

// SPC returns the steps per cycle value.
//
func (c *Clock) SPC() uint {
	return c.tpc
}

// pos returns the position of step within a clock cycle.
func (c *Clock) pos(step uint) uint {
	return (step + c.phase) & (c.tpc - 1)
}

func (c *Clock) levelAt(step uint) bool {
	return c.pos(step) < c.tpc/2
}

// Level returns the clock level at the current step.
//
func (c *Clock) Level() bool {
	return c.levelAt(c.tick)
}

// AtTick returns true if the current step is at the beginning of a clock cycle
// (rising edge).
//
func (c *Clock) AtTick() bool {
	return c.pos(c.tick) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge).
//
func (c *Clock) AtTock() bool {
	return c.pos(c.tick) == c.tpc/2
}

// Edge returns the edge starting the current half cycle, if the current step
// is the first one of a half cycle.
//
func (c *Clock) Edge() Edge {
	switch {
	case c.AtTick():
		return Rising
	case c.AtTock():
		return Falling
	}
	return NoEdge
}

// Sample returns the state of the clock at the current step.
//
func (c *Clock) Sample() Sample {
	return Sample{Step: c.tick, Level: c.Level(), Edge: c.Edge()}
}

// Step calls all probes with the current sample then advances the simulation
// by one step.
//
func (c *Clock) Step() {
	s := c.Sample()
	for _, p := range c.probes {
		p(s)
	}
	c.tick++
}

// Tick runs the simulation until the beginning of the next half clock cycle
// where the clock is low.
//
func (c *Clock) Tick() {
	for c.Level() {
		c.Step()
	}
}

// Tock runs the simulation until the next rising edge.
//
func (c *Clock) Tock() {
	for !c.Level() {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Clock) TickTock() {
	c.Tick()
	c.Tock()
}

// Run runs the simulation for the given number of clock cycles.
//
func (c *Clock) Run(cycles uint) {
	for n := cycles * c.tpc; n > 0; n-- {
		c.Step()
	}
}

// edgePhase starts a 4 step clock one step before its rising edge, giving the
// level sequence 0, 1, 1, 0.
const edgePhase = 3

// EdgeClock returns a 4 step clock with the level sequence 0, 1, 1, 0.
//
func EdgeClock() *Clock {
	return NewClock(4, edgePhase)
}

// EdgeTable simulates the given number of cycles of an EdgeClock and returns
// one sample per step.
//
func EdgeTable(cycles uint) []Sample {
	c := EdgeClock()
	out := make([]Sample, 0, cycles*c.SPC())
	c.Attach(func(s Sample) { out = append(out, s) })
	c.Run(cycles)
	return out
}

// DFF is an edge-triggered D flip-flop driven by a Clock. Attach its Probe
// method to a clock.
//
//	Inputs: D
//	Outputs: Q
//	Function: Q = D sampled on every Trigger edge
//
type DFF struct {
	Trigger Edge        // Rising: positive edge-triggered. Falling: negative edge-triggered.
	D       func() bool // data input
	q       bool
}

// Probe implements the clock probe of the flip-flop.
//
func (d *DFF) Probe(s Sample) {
	if s.Edge == d.Trigger && d.D != nil {
		d.q = d.D()
	}
}

// Q returns the current output of the flip-flop.
//
func (d *DFF) Q() bool {
	return d.q
}
