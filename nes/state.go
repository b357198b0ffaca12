package nes

import (
	"bytes"
	"encoding/gob"
)

// stateVersion is bumped whenever the shape of State changes in a way
// that would make an older save incompatible.
const stateVersion uint32 = 1

// State is a snapshot of a running Core: CPU/PPU/APU registers and timing
// counters, WRAM/VRAM/OAM/palette contents, PRG-RAM, and the active
// mapper's bank registers. It does not capture CHR-RAM contents, the PPU's
// fetch latches, secondary OAM and open-bus latch, a pending NMI, the
// controllers' shift position, a queued OAM-DMA, or the audio filter
// history; SetState leaves those as they are in the restoring core. It is
// built entirely from exported fields so it can round-trip through
// encoding/gob, which (unlike every serializer in the retrieved example
// repos) ships in the standard library and needs no schema/codegen step -
// the one ambient concern this module does not borrow a third-party
// library for. See DESIGN.md for that justification.
type State struct {
	Version uint32

	CPU cpuState
	PPU ppuState
	APU apuState

	WRAM [2048]byte
	VRAM [2048]byte

	MapperNumber byte
	Mapper       mapperState
	PRGRAM       [0x2000]byte
}

type cpuState struct {
	A, X, Y, S byte
	PC         uint16
	P          status
	Stall      int
	Cycle      uint64
	IRQLine    bool
}

type ppuState struct {
	OAMAddress     byte
	PrimaryOAM     [256]byte
	SpriteOverflow bool
	SpriteZeroHit  bool

	V, T uint16
	X    byte
	W    bool

	Buffer byte

	NMIOccurred bool
	OldNMI      bool
	NMIOutput   bool

	NameTableFlag, VRAMIncrementFlag, SpriteTableFlag           byte
	BackgroundTableFlag, SpriteSizeFlag, MasterSlaveSelectFlag  byte

	GrayScale, ShowLeftBackground, ShowLeftSprite bool
	ShowBackground, ShowSprite                    bool
	EmphasizeRed, EmphasizeGreen, EmphasizeBlue   bool

	Register byte

	PaletteRAM [32]byte

	Cycle, Scanline int
	Frame           uint64
}

type apuState struct {
	Pulse1, Pulse2 pulseState
	Triangle       triangleState
	Noise          noiseState
	DMC            dmcState

	InterruptInhibit bool
	FrameInterrupt   bool

	FrameClock             uint64
	CyclesBeforeFrameReset int
	FiveStepMode           bool
	Last4017Value          byte
}

// lengthCounterState and envelopeState mirror the unexported
// lengthCounter/envelope structs shared by several channels: their own
// fields are unexported, so they need an exported twin to survive gob.
type lengthCounterState struct {
	Count   byte
	Halt    bool
	Enabled bool
}

type envelopeState struct {
	Constant bool
	Volume   byte
	Divider  byte
	Decay    byte
	Start    bool
	Loop     bool
}

func lengthCounterStateOf(l lengthCounter) lengthCounterState {
	return lengthCounterState{Count: l.count, Halt: l.halt, Enabled: l.enabled}
}

func restoreLengthCounter(l *lengthCounter, s lengthCounterState) {
	l.count, l.halt, l.enabled = s.Count, s.Halt, s.Enabled
}

func envelopeStateOf(e envelope) envelopeState {
	return envelopeState{Constant: e.constant, Volume: e.volume, Divider: e.divider,
		Decay: e.decay, Start: e.start, Loop: e.loop_}
}

func restoreEnvelope(e *envelope, s envelopeState) {
	e.constant, e.volume, e.divider = s.Constant, s.Volume, s.Divider
	e.decay, e.start, e.loop_ = s.Decay, s.Start, s.Loop
}

type pulseState struct {
	Duty, Sequence byte
	Period, Timer  uint16
	LengthCounter  lengthCounterState
	Envelope       envelopeState
	SweepEnabled   bool
	SweepPeriod    byte
	SweepDivider   byte
	SweepNegate    bool
	SweepShift     byte
	SweepReload    bool
}

type triangleState struct {
	LengthCounter lengthCounterState
	Control       bool
	LinearPeriod  byte
	LinearCount   byte
	LinearReload  bool
	Timer, Period uint16
	Step          int
}

type noiseState struct {
	LengthCounter lengthCounterState
	Envelope      envelopeState
	Shift         uint16
	Mode          bool
	Timer, Period uint16
}

type dmcState struct {
	InterruptFlag bool
	IRQEnabled    bool
	Loop          bool
	Rate          uint16
	SampleAddress uint16
	SampleLength  uint16
	SampleBuffer  byte
	CurrentAddr   uint16
	BytesLeft     uint16
	Silenced      bool
	BitsLeft      byte
	Timer, Period uint16
	OutputLevel   byte
}

// mapperState carries whichever subset of fields the active mapper needs;
// unused fields are simply left at their zero value.
type mapperState struct {
	Shift      byte
	ShiftCount int
	Control    byte
	CHRBank0   byte
	CHRBank1   byte
	PRGBank    byte
	BankSelect byte
}

// GetState captures a full snapshot of the running core.
func (c *Core) GetState() State {
	s := State{
		Version: stateVersion,
		CPU: cpuState{
			A: c.cpu.A, X: c.cpu.X, Y: c.cpu.Y, S: c.cpu.S,
			PC: c.cpu.PC, P: c.cpu.P, Stall: c.cpu.stall,
			Cycle: c.cpu.cycle, IRQLine: c.cpu.irqLine,
		},
		PPU: ppuState{
			OAMAddress: c.ppu.oamAddress, PrimaryOAM: c.ppu.primaryOAM,
			SpriteOverflow: c.ppu.spriteOverflow, SpriteZeroHit: c.ppu.spriteZeroHit,
			V: c.ppu.v, T: c.ppu.t, X: c.ppu.x, W: c.ppu.w,
			Buffer:      c.ppu.buffer,
			NMIOccurred: c.ppu.nmiOccurred, OldNMI: c.ppu.oldNMI, NMIOutput: c.ppu.nmiOutput,
			NameTableFlag: c.ppu.nameTableFlag, VRAMIncrementFlag: c.ppu.vramIncrementFlag,
			SpriteTableFlag: c.ppu.spriteTableFlag, BackgroundTableFlag: c.ppu.backgroundTableFlag,
			SpriteSizeFlag: c.ppu.spriteSizeFlag, MasterSlaveSelectFlag: c.ppu.masterSlaveSelectFlag,
			GrayScale: c.ppu.grayScale, ShowLeftBackground: c.ppu.showLeftBackground,
			ShowLeftSprite: c.ppu.showLeftSprite, ShowBackground: c.ppu.showBackground,
			ShowSprite: c.ppu.showSprite, EmphasizeRed: c.ppu.emphasizeRed,
			EmphasizeGreen: c.ppu.emphasizeGreen, EmphasizeBlue: c.ppu.emphasizeBlue,
			Register: c.ppu.register, PaletteRAM: c.ppu.paletteRAM.ram,
			Cycle: c.ppu.cycle, Scanline: c.ppu.scanline, Frame: c.ppu.frame,
		},
		APU: apuState{
			Pulse1:   pulseStateOf(&c.apu.pulse1),
			Pulse2:   pulseStateOf(&c.apu.pulse2),
			Triangle: triangleStateOf(&c.apu.triangle),
			Noise:    noiseStateOf(&c.apu.noise),
			DMC:      dmcStateOf(&c.apu.dmc),

			InterruptInhibit:       c.apu.interruptInhibit,
			FrameInterrupt:         c.apu.frameInterrupt,
			FrameClock:             c.apu.frameClock,
			CyclesBeforeFrameReset: c.apu.cyclesBeforeFrameReset,
			FiveStepMode:           c.apu.fiveStepMode,
			Last4017Value:          c.apu.last4017Value,
		},
		WRAM: c.bus.wram.data,
		VRAM: c.ppu.bus.vram.data,
	}
	if c.cartridge != nil {
		s.MapperNumber = c.cartridge.mapperNumber
		s.PRGRAM = c.cartridge.prgRAM
	}
	switch m := c.mapper.(type) {
	case *mapper1:
		s.Mapper = mapperState{Shift: m.shift, ShiftCount: m.shiftCount, Control: m.control,
			CHRBank0: m.chrBank0, CHRBank1: m.chrBank1, PRGBank: m.prgBank}
	case *mapper2:
		s.Mapper = mapperState{BankSelect: m.bankSelect}
	case *mapper3:
		s.Mapper = mapperState{BankSelect: m.bankSelect}
	}
	return s
}

// SetState restores a snapshot produced by GetState. The cartridge must
// already be inserted (via InsertCartridge) with the same mapper number,
// since ROM contents themselves are never part of a save state.
func (c *Core) SetState(s State) error {
	if s.Version != stateVersion {
		return &SaveStateVersionMismatchError{Want: stateVersion, Got: s.Version}
	}

	c.cpu.A, c.cpu.X, c.cpu.Y, c.cpu.S = s.CPU.A, s.CPU.X, s.CPU.Y, s.CPU.S
	c.cpu.PC, c.cpu.P = s.CPU.PC, s.CPU.P
	c.cpu.stall, c.cpu.cycle, c.cpu.irqLine = s.CPU.Stall, s.CPU.Cycle, s.CPU.IRQLine

	p := s.PPU
	c.ppu.oamAddress, c.ppu.primaryOAM = p.OAMAddress, p.PrimaryOAM
	c.ppu.spriteOverflow, c.ppu.spriteZeroHit = p.SpriteOverflow, p.SpriteZeroHit
	c.ppu.v, c.ppu.t, c.ppu.x, c.ppu.w = p.V, p.T, p.X, p.W
	c.ppu.buffer = p.Buffer
	c.ppu.nmiOccurred, c.ppu.oldNMI, c.ppu.nmiOutput = p.NMIOccurred, p.OldNMI, p.NMIOutput
	c.ppu.nameTableFlag, c.ppu.vramIncrementFlag = p.NameTableFlag, p.VRAMIncrementFlag
	c.ppu.spriteTableFlag, c.ppu.backgroundTableFlag = p.SpriteTableFlag, p.BackgroundTableFlag
	c.ppu.spriteSizeFlag, c.ppu.masterSlaveSelectFlag = p.SpriteSizeFlag, p.MasterSlaveSelectFlag
	c.ppu.grayScale, c.ppu.showLeftBackground, c.ppu.showLeftSprite = p.GrayScale, p.ShowLeftBackground, p.ShowLeftSprite
	c.ppu.showBackground, c.ppu.showSprite = p.ShowBackground, p.ShowSprite
	c.ppu.emphasizeRed, c.ppu.emphasizeGreen, c.ppu.emphasizeBlue = p.EmphasizeRed, p.EmphasizeGreen, p.EmphasizeBlue
	c.ppu.register = p.Register
	c.ppu.paletteRAM.ram = p.PaletteRAM
	c.ppu.cycle, c.ppu.scanline, c.ppu.frame = p.Cycle, p.Scanline, p.Frame

	restorePulse(&c.apu.pulse1, s.APU.Pulse1)
	restorePulse(&c.apu.pulse2, s.APU.Pulse2)
	restoreTriangle(&c.apu.triangle, s.APU.Triangle)
	restoreNoise(&c.apu.noise, s.APU.Noise)
	restoreDMC(&c.apu.dmc, s.APU.DMC)
	c.apu.interruptInhibit = s.APU.InterruptInhibit
	c.apu.frameInterrupt = s.APU.FrameInterrupt
	c.apu.frameClock = s.APU.FrameClock
	c.apu.cyclesBeforeFrameReset = s.APU.CyclesBeforeFrameReset
	c.apu.fiveStepMode = s.APU.FiveStepMode
	c.apu.last4017Value = s.APU.Last4017Value

	c.bus.wram.data = s.WRAM
	c.ppu.bus.vram.data = s.VRAM

	if c.cartridge != nil {
		c.cartridge.prgRAM = s.PRGRAM
	}
	switch m := c.mapper.(type) {
	case *mapper1:
		m.shift, m.shiftCount, m.control = s.Mapper.Shift, s.Mapper.ShiftCount, s.Mapper.Control
		m.chrBank0, m.chrBank1, m.prgBank = s.Mapper.CHRBank0, s.Mapper.CHRBank1, s.Mapper.PRGBank
	case *mapper2:
		m.bankSelect = s.Mapper.BankSelect
	case *mapper3:
		m.bankSelect = s.Mapper.BankSelect
	}
	return nil
}

func pulseStateOf(p *pulse) pulseState {
	return pulseState{
		Duty: p.duty, Sequence: p.sequence, Period: p.period, Timer: p.timer,
		LengthCounter: lengthCounterStateOf(p.lengthCounter), Envelope: envelopeStateOf(p.envelope),
		SweepEnabled: p.sweep.enabled, SweepPeriod: p.sweep.period, SweepDivider: p.sweep.divider,
		SweepNegate: p.sweep.negate, SweepShift: p.sweep.shift, SweepReload: p.sweep.reload,
	}
}

func restorePulse(p *pulse, s pulseState) {
	p.duty, p.sequence, p.period, p.timer = s.Duty, s.Sequence, s.Period, s.Timer
	restoreLengthCounter(&p.lengthCounter, s.LengthCounter)
	restoreEnvelope(&p.envelope, s.Envelope)
	p.sweep.enabled, p.sweep.period, p.sweep.divider = s.SweepEnabled, s.SweepPeriod, s.SweepDivider
	p.sweep.negate, p.sweep.shift, p.sweep.reload = s.SweepNegate, s.SweepShift, s.SweepReload
}

func triangleStateOf(t *triangle) triangleState {
	return triangleState{
		LengthCounter: lengthCounterStateOf(t.lengthCounter), Control: t.control, LinearPeriod: t.linearPeriod,
		LinearCount: t.linearCount, LinearReload: t.linearReload,
		Timer: t.timer, Period: t.period, Step: t.step,
	}
}

func restoreTriangle(t *triangle, s triangleState) {
	restoreLengthCounter(&t.lengthCounter, s.LengthCounter)
	t.control, t.linearPeriod = s.Control, s.LinearPeriod
	t.linearCount, t.linearReload = s.LinearCount, s.LinearReload
	t.timer, t.period, t.step = s.Timer, s.Period, s.Step
}

func noiseStateOf(n *noise) noiseState {
	return noiseState{
		LengthCounter: lengthCounterStateOf(n.lengthCounter), Envelope: envelopeStateOf(n.envelope),
		Shift: n.shift, Mode: n.mode, Timer: n.timer, Period: n.period,
	}
}

func restoreNoise(n *noise, s noiseState) {
	restoreLengthCounter(&n.lengthCounter, s.LengthCounter)
	restoreEnvelope(&n.envelope, s.Envelope)
	n.shift, n.mode = s.Shift, s.Mode
	n.timer, n.period = s.Timer, s.Period
}

func dmcStateOf(d *dmc) dmcState {
	return dmcState{
		InterruptFlag: d.interruptFlag, IRQEnabled: d.irqEnabled, Loop: d.loop_, Rate: d.rate,
		SampleAddress: d.sampleAddress, SampleLength: d.sampleLength, SampleBuffer: d.sampleBuffer,
		CurrentAddr: d.currentAddr, BytesLeft: d.bytesLeft, Silenced: d.silenced, BitsLeft: d.bitsLeft,
		Timer: d.timer, Period: d.period, OutputLevel: d.outputLevel,
	}
}

func restoreDMC(d *dmc, s dmcState) {
	d.interruptFlag, d.irqEnabled, d.loop_, d.rate = s.InterruptFlag, s.IRQEnabled, s.Loop, s.Rate
	d.sampleAddress, d.sampleLength, d.sampleBuffer = s.SampleAddress, s.SampleLength, s.SampleBuffer
	d.currentAddr, d.bytesLeft, d.silenced, d.bitsLeft = s.CurrentAddr, s.BytesLeft, s.Silenced, s.BitsLeft
	d.timer, d.period, d.outputLevel = s.Timer, s.Period, s.OutputLevel
}

// EncodeState serializes a State to bytes via encoding/gob.
func EncodeState(s State) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeState deserializes bytes produced by EncodeState.
func DecodeState(data []byte) (State, error) {
	var s State
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s)
	return s, err
}
