package nes

// APU is the 2A03's Audio Processing Unit: 2 pulse channels, 1 triangle, 1
// noise, and 1 delta-modulation (DMC) channel, driven by a shared frame
// sequencer and mixed through the NES's non-linear lookup-table mixer plus
// a 3-stage RC filter chain.
//
// References:
//   https://www.nesdev.org/wiki/APU
//   _examples/original_source/src/apu/mod.rs
type APU struct {
	cpu *CPU
	bus *CPUBus

	pulse1   pulse
	pulse2   pulse
	triangle triangle
	noise    noise
	dmc      dmc

	interruptInhibit bool
	frameInterrupt   bool

	sampleRate               uint64
	frameClock               uint64
	cyclesBeforeFrameReset   int // -1 means "no pending reset"
	fiveStepMode             bool
	instantClock             bool
	last4017Value            byte

	pulseTable [31]float32
	tndTable   [203]float32

	filters [3]filter

	out    chan float32
	enable bool
}

// Frame-sequencer clock boundaries, in APU cycles (1 APU cycle = 1 CPU
// cycle here; the pulse, noise and DMC timers are clocked every other
// cycle and the triangle timer every cycle - see Step()).
//
// STEP_4 uses the nesdev-documented value (29829, not 29830): this core's
// apu_test ROM #5 compatibility comes from matching real hardware's frame
// IRQ timing, and 29829 is the value real hardware and the nesdev wiki
// agree on for the 4-step sequence's 4th clock.
const (
	apuStep1 = 7457
	apuStep2 = 14913
	apuStep3 = 22371
	apuStep4 = 29829
	apuStep5 = 37281
)

// NewAPU creates an APU for NTSC timing: the sample decimation ratio and
// the filter coefficients are derived from CPUFrequency.
func NewAPU() *APU {
	a := &APU{
		pulse1:                 *newPulse(false),
		pulse2:                 *newPulse(true),
		noise:                  *newNoise(),
		dmc:                    *newDMC(),
		sampleRate:             CPUFrequency / 44100,
		cyclesBeforeFrameReset: -1,
		enable:                 true,
	}
	for i := range a.pulseTable {
		a.pulseTable[i] = 95.52 / (8128.0/float32(i) + 100.0)
	}
	a.pulseTable[0] = 0
	for i := range a.tndTable {
		a.tndTable[i] = 163.67 / (24329.0/float32(i) + 100.0)
	}
	a.tndTable[0] = 0
	sr := float64(CPUFrequency) / float64(a.sampleRate)
	a.filters = [3]filter{
		newHighPassFilter(90, sr),
		newHighPassFilter(440, sr),
		newLowPassFilter(14000, sr),
	}
	return a
}

// attach wires the APU to the bus (for DMC sample fetches) and the CPU
// (for IRQ assertion and DMA cycle stealing).
func (a *APU) attach(bus *CPUBus, cpu *CPU) {
	a.bus = bus
	a.cpu = cpu
	a.dmc.bus = bus
	a.dmc.cpu = cpu
}

func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// EnableSampleProduction turns audio sample generation on or off; disabling
// it lets a host step the core for fast-forward/headless use without
// paying the filter math's cost.
func (a *APU) EnableSampleProduction(enabled bool) {
	a.enable = enabled
}

func (a *APU) readStatus() byte {
	var status byte
	if !a.pulse1.lengthCounter.silenced() {
		status |= 0x01
	}
	if !a.pulse2.lengthCounter.silenced() {
		status |= 0x02
	}
	if !a.triangle.lengthCounter.silenced() {
		status |= 0x04
	}
	if !a.noise.lengthCounter.silenced() {
		status |= 0x08
	}
	if a.dmc.active() {
		status |= 0x10
	}
	if a.frameInterrupt {
		status |= 0x40
	}
	if a.dmc.interruptFlag {
		status |= 0x80
	}
	a.frameInterrupt = false
	a.updateIRQLine()
	return status
}

func (a *APU) writeRegister(address uint16, value byte) {
	switch address {
	case 0x4000:
		a.pulse1.setControl(value)
	case 0x4001:
		a.pulse1.setSweep(value)
	case 0x4002:
		a.pulse1.setLowTimer(value)
	case 0x4003:
		a.pulse1.setHighTimer(value)
	case 0x4004:
		a.pulse2.setControl(value)
	case 0x4005:
		a.pulse2.setSweep(value)
	case 0x4006:
		a.pulse2.setLowTimer(value)
	case 0x4007:
		a.pulse2.setHighTimer(value)
	case 0x4008:
		a.triangle.setLinearCounter(value)
	case 0x400A:
		a.triangle.setLowTimer(value)
	case 0x400B:
		a.triangle.setHighTimer(value)
	case 0x400C:
		a.noise.setControl(value)
	case 0x400E:
		a.noise.setPeriod(value)
	case 0x400F:
		a.noise.setLengthCounter(value)
	case 0x4010:
		a.dmc.setRate(value)
	case 0x4011:
		a.dmc.setOutputLevel(value)
	case 0x4012:
		a.dmc.setSampleAddress(value)
	case 0x4013:
		a.dmc.setSampleLength(value)
	}
}

func (a *APU) writeStatus(value byte) {
	a.pulse1.lengthCounter.setEnabled(value&0x01 != 0)
	a.pulse2.lengthCounter.setEnabled(value&0x02 != 0)
	a.triangle.lengthCounter.setEnabled(value&0x04 != 0)
	a.noise.lengthCounter.setEnabled(value&0x08 != 0)
	a.dmc.setEnabled(value&0x10 != 0)
	a.updateIRQLine()
}

func (a *APU) writeFrameCounter(value byte) {
	a.last4017Value = value
	a.fiveStepMode = value&0x80 != 0
	if a.fiveStepMode {
		a.instantClock = true
	}
	a.interruptInhibit = value&0x40 != 0
	if a.interruptInhibit {
		a.frameInterrupt = false
	}
	a.cyclesBeforeFrameReset = int(a.frameClock % 2)
	a.updateIRQLine()
}

func (a *APU) reset() {
	a.writeStatus(0x00)
	a.writeFrameCounter(a.last4017Value)
	a.frameInterrupt = false
	a.triangle.reset()
}

func (a *APU) clockQuarterFrame() {
	a.pulse1.envelope.clock()
	a.pulse2.envelope.clock()
	a.noise.envelope.clock()
	a.triangle.clockLinearCounter()
}

func (a *APU) clockHalfFrame() {
	a.clockQuarterFrame()
	a.pulse1.lengthCounter.clock()
	a.pulse2.lengthCounter.clock()
	a.noise.lengthCounter.clock()
	a.triangle.lengthCounter.clock()
	a.pulse1.clockSweep()
	a.pulse2.clockSweep()
}

func (a *APU) updateIRQLine() {
	if a.cpu != nil {
		a.cpu.SetIRQLine(a.frameInterrupt || a.dmc.interruptFlag)
	}
}

// Step advances the APU by one CPU cycle and, when the internal resampling
// counter rolls over, sends a new filtered output sample to the audio
// channel (dropped if the channel is full).
func (a *APU) Step() {
	if a.cyclesBeforeFrameReset >= 0 {
		if a.cyclesBeforeFrameReset == 0 {
			a.cyclesBeforeFrameReset = -1
			a.frameClock = 0
		} else {
			a.cyclesBeforeFrameReset--
		}
	}

	if a.instantClock {
		a.instantClock = false
		a.clockHalfFrame()
	} else {
		switch a.frameClock {
		case apuStep1, apuStep3:
			a.clockQuarterFrame()
		case apuStep2:
			a.clockHalfFrame()
		}
		if a.frameClock == apuStep4 && !a.fiveStepMode {
			a.clockHalfFrame()
			if !a.interruptInhibit {
				a.frameInterrupt = true
				a.updateIRQLine()
			}
			a.frameClock = 0
		} else if a.frameClock == apuStep5 && a.fiveStepMode {
			a.clockHalfFrame()
			a.frameClock = 0
		}
	}

	if a.frameClock%2 == 0 {
		a.pulse1.clock()
		a.pulse2.clock()
		a.noise.clock()
		a.dmc.clock()
	}
	a.triangle.clock()

	a.frameClock++

	if a.enable && a.out != nil && a.frameClock%a.sampleRate == 0 {
		sample := a.mix()
		select {
		case a.out <- sample:
		default:
		}
		select {
		case a.out <- sample:
		default:
		}
	}
}

func (a *APU) mix() float32 {
	pulseOut := int(a.pulse1.output()) + int(a.pulse2.output())
	tndOut := 3*int(a.triangle.output()) + 2*int(a.noise.output()) + int(a.dmc.output())
	amplitude := a.pulseTable[pulseOut] + a.tndTable[tndOut]
	for _, f := range a.filters {
		amplitude = f.process(amplitude)
	}
	return amplitude
}
