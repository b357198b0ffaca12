package nes

// envelope is the decay-and-loop volume unit shared by both pulse channels
// and the noise channel.
// Reference: _examples/original_source/src/apu/envelope.rs
type envelope struct {
	constant bool
	volume   byte
	divider  byte
	decay    byte
	start    bool
	loop_    bool
}

func (e *envelope) setVolume(constant bool, volume byte) {
	e.constant = constant
	e.volume = volume
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.volume
	} else if e.divider != 0 {
		e.divider--
	} else {
		e.divider = e.volume
		if e.decay != 0 {
			e.decay--
		} else if e.loop_ {
			e.decay = 15
		}
	}
}

func (e *envelope) output() byte {
	if e.constant {
		return e.volume
	}
	return e.decay
}
