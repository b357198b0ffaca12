package nes

// mapper2 implements UNROM/UOROM (iNES mapper 2): a switchable 16 KiB PRG
// bank at $8000-$BFFF selected by the low bits of any write to $8000-$FFFF,
// with $C000-$FFFF fixed to the last PRG bank. CHR is always RAM (boards
// using this mapper had no CHR-ROM).
type mapper2 struct {
	cartridge  *Cartridge
	bankSelect byte
	bankCount  int
}

func newMapper2(c *Cartridge) *mapper2 {
	return &mapper2{
		cartridge: c,
		bankCount: len(c.prgROM) / prgROMSizeUnit,
	}
}

func (m *mapper2) ReadFromCPU(address uint16) byte {
	switch {
	case address >= 0x6000 && address <= 0x7FFF:
		return m.cartridge.prgRAM[address-0x6000]
	case address >= 0x8000 && address <= 0xBFFF:
		bank := int(m.bankSelect) % m.bankCount
		return m.cartridge.prgROM[bank*prgROMSizeUnit+int(address-0x8000)]
	case address >= 0xC000:
		bank := m.bankCount - 1
		return m.cartridge.prgROM[bank*prgROMSizeUnit+int(address-0xC000)]
	default:
		return 0
	}
}

func (m *mapper2) WriteFromCPU(address uint16, value byte) {
	switch {
	case address >= 0x6000 && address <= 0x7FFF:
		m.cartridge.prgRAM[address-0x6000] = value
	case address >= 0x8000:
		m.bankSelect = value
	}
}

func (m *mapper2) ReadFromPPU(address uint16) byte {
	return m.cartridge.chrROM[address]
}

func (m *mapper2) WriteFromPPU(address uint16, value byte) {
	m.cartridge.chrROM[address] = value
}

func (m *mapper2) Mirroring() Mirroring {
	return m.cartridge.mirroring
}

func (m *mapper2) IRQPending() bool { return false }
func (m *mapper2) ClearIRQ()        {}
