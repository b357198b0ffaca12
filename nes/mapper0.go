package nes

// mapper0 implements NROM (iNES mapper 0): no bank switching. PRG-ROM is
// either 16 KiB (mirrored into both halves of $8000-$FFFF) or 32 KiB
// (mapped directly). CHR is either fixed ROM or, when the header declared
// zero CHR banks, writable RAM. $6000-$7FFF is a fixed 8 KiB PRG-RAM
// window, battery-backed when the header says so.
type mapper0 struct {
	cartridge *Cartridge
}

func newMapper0(c *Cartridge) *mapper0 {
	return &mapper0{cartridge: c}
}

func (m *mapper0) ReadFromCPU(address uint16) byte {
	switch {
	case address >= 0x6000 && address <= 0x7FFF:
		return m.cartridge.prgRAM[address-0x6000]
	case address >= 0x8000:
		return m.cartridge.prgROM[int(address-0x8000)%len(m.cartridge.prgROM)]
	default:
		return 0
	}
}

func (m *mapper0) WriteFromCPU(address uint16, value byte) {
	if address >= 0x6000 && address <= 0x7FFF {
		m.cartridge.prgRAM[address-0x6000] = value
	}
	// Writes to $8000-$FFFF are no-ops: NROM has no registers.
}

func (m *mapper0) ReadFromPPU(address uint16) byte {
	return m.cartridge.chrROM[address]
}

func (m *mapper0) WriteFromPPU(address uint16, value byte) {
	if m.cartridge.chrRAM {
		m.cartridge.chrROM[address] = value
	}
}

func (m *mapper0) Mirroring() Mirroring {
	return m.cartridge.mirroring
}

func (m *mapper0) IRQPending() bool { return false }
func (m *mapper0) ClearIRQ()        {}
