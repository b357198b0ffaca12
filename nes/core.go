package nes

import (
	"image"

	"github.com/golang/glog"
)

// Core is the top-level NES system: it owns the CPU, PPU, APU, cartridge,
// and controllers, and drives them in lock-step at their real clock
// ratios (1 CPU cycle : 1 APU cycle : 3 PPU cycles).
type Core struct {
	cpu          *CPU
	bus          *CPUBus
	ppu          *PPU
	apu          *APU
	mapper       Mapper
	cartridge    *Cartridge
	controller1  *Controller
	controller2  *Controller

	lastFrame    uint64
	currentFrame uint64
	buffer       *image.RGBA
}

// NewCore builds a console with no cartridge inserted; call
// InsertCartridge before Step/RunFor will do anything useful.
func NewCore() *Core {
	controller1 := NewController()
	controller2 := NewController()
	ppu := NewPPU(NewPPUBus(NewRAM(), nil))
	apu := NewAPU()
	bus := NewCPUBus(NewRAM(), ppu, apu, nil, controller1, controller2)
	cpu := NewCPU(bus)
	apu.attach(bus, cpu)
	return &Core{
		cpu:         cpu,
		bus:         bus,
		ppu:         ppu,
		apu:         apu,
		controller1: controller1,
		controller2: controller2,
	}
}

// InsertCartridge parses romData as an iNES image and wires its mapper
// into the bus, replacing whatever cartridge was previously inserted.
func (c *Core) InsertCartridge(romData []byte, romPath string) error {
	cartridge, err := NewCartridge(romData, romPath)
	if err != nil {
		return err
	}
	mapper, err := NewMapper(cartridge)
	if err != nil {
		return err
	}
	c.cartridge = cartridge
	c.mapper = mapper
	c.bus.mapper = mapper
	c.ppu.bus.mapper = mapper
	return c.Reset()
}

// Reset performs a soft reset: CPU jumps through the reset vector, PPU
// re-enters VBlank, and the APU's frame sequencer state is preserved per
// its own reset() semantics.
func (c *Core) Reset() error {
	c.currentFrame = 0
	c.lastFrame = 0
	if err := c.cpu.Reset(); err != nil {
		return err
	}
	c.ppu.Reset()
	c.apu.reset()
	return nil
}

// Power performs a cold boot, equivalent to Reset for this core since no
// WRAM randomization is modeled.
func (c *Core) Power() error {
	return c.Reset()
}

// Step runs one CPU step - a pending DMA stall, an interrupt entry, or a
// single instruction - and the PPU/APU cycles it implies, returning the
// CPU cycle count spent.
func (c *Core) Step() (int, error) {
	if page, ok := c.bus.takeOAMDMAPage(); ok {
		c.cpu.StartOAMDMA(page)
	}
	cycles, err := c.cpu.Step()
	if err != nil {
		return cycles, err
	}
	for i := 0; i < cycles; i++ {
		c.apu.Step()
	}
	for i := 0; i < cycles*3; i++ {
		nmi := c.ppu.Step()
		if nmi {
			c.cpu.TriggerNMI()
		}
		if ok, f := c.ppu.Frame(); ok {
			c.currentFrame++
			c.buffer = f
		}
	}
	if c.mapper != nil {
		c.cpu.SetIRQLine(c.apu.frameInterrupt || c.apu.dmc.interruptFlag || c.mapper.IRQPending())
	}
	return cycles, nil
}

// RunFor steps the core until at least minCycles CPU cycles have elapsed,
// returning the actual number of cycles consumed.
func (c *Core) RunFor(minCycles int) (int, error) {
	total := 0
	for total < minCycles {
		n, err := c.Step()
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// TakeFrame returns the most recently completed frame buffer along with
// whether a new frame has become available since the last call.
func (c *Core) TakeFrame() (*image.RGBA, bool) {
	if c.lastFrame < c.currentFrame {
		c.lastFrame = c.currentFrame
		return c.buffer, true
	}
	return c.buffer, false
}

func (c *Core) SetAudioOut(ch chan float32) {
	c.apu.SetAudioOut(ch)
}

// EnableSampleProduction toggles audio synthesis, useful for headless or
// fast-forward runs that don't need sound.
func (c *Core) EnableSampleProduction(enabled bool) {
	c.apu.EnableSampleProduction(enabled)
}

// SetController replaces the button state of controller 0 or 1 (any other
// id is ignored, matching the 2-port NES expansion port layout).
func (c *Core) SetController(id int, buttons [8]bool) {
	switch id {
	case 0:
		c.controller1.Set(buttons)
	case 1:
		c.controller2.Set(buttons)
	default:
		glog.Infof("ignoring SetController for unknown controller id=%d", id)
	}
}

// SaveBatteryRAM persists the cartridge's battery-backed PRG-RAM, if any.
func (c *Core) SaveBatteryRAM() error {
	if c.cartridge == nil {
		return nil
	}
	return c.cartridge.SaveBatteryRAM()
}
