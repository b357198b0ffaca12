package nes

// lengthCounterTable maps a 5-bit register value to the number of frame
// half-clocks a channel stays audible for.
// Reference: _examples/original_source/src/apu/length_counter.rs
var lengthCounterTable = [32]byte{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

type lengthCounter struct {
	count   byte
	halt    bool
	enabled bool
}

func (l *lengthCounter) setEnabled(enabled bool) {
	if !enabled {
		l.count = 0
	}
	l.enabled = enabled
}

func (l *lengthCounter) setHalt(halt bool) {
	l.halt = halt
}

func (l *lengthCounter) load(index byte) {
	if l.enabled {
		l.count = lengthCounterTable[index]
	}
}

func (l *lengthCounter) silenced() bool {
	return l.count == 0
}

func (l *lengthCounter) clock() {
	if !l.halt && l.count != 0 {
		l.count--
	}
}
