package nes

import "testing"

// writeMMC1Serial drives MMC1's 5-bit shift register one bit at a time,
// LSB first, the way the CPU would via 5 consecutive $8000-$FFFF writes.
func writeMMC1Serial(m *mapper1, address uint16, value byte) {
	for i := 0; i < 5; i++ {
		m.WriteFromCPU(address, (value>>i)&0x01)
	}
}

func newMMC1(prgBanks int) *mapper1 {
	prg := make([]byte, prgBanks*prgROMSizeUnit)
	for bank := 0; bank < prgBanks; bank++ {
		prg[bank*prgROMSizeUnit] = byte(bank) // tag each bank's first byte
	}
	rom := buildINES(1, false, prg, nil)
	cartridge, err := NewCartridge(rom, "")
	if err != nil {
		panic(err)
	}
	return newMapper1(cartridge)
}

func TestMapper0NROMMirrorsSmallPRG(t *testing.T) {
	prg := make([]byte, prgROMSizeUnit)
	prg[0] = 0x42
	rom := buildINES(0, false, prg, nil)
	cartridge, err := NewCartridge(rom, "")
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	m := newMapper0(cartridge)
	if got := m.ReadFromCPU(0x8000); got != 0x42 {
		t.Fatalf("NROM $8000: got=0x%02x, want=0x42", got)
	}
	if got := m.ReadFromCPU(0xC000); got != 0x42 {
		t.Fatalf("NROM $C000 (mirror of $8000 for 16 KiB PRG): got=0x%02x, want=0x42", got)
	}
}

func TestMapper1PRGBankMode3SwitchesLowFixesHigh(t *testing.T) {
	m := newMMC1(4)
	writeMMC1Serial(m, 0x8000, 0x0C) // control: PRG mode 3 (switch low, fix last at $C000)
	writeMMC1Serial(m, 0xE000, 0x01) // select PRG bank 1 for $8000-$BFFF

	if got := m.ReadFromCPU(0x8000); got != 1 {
		t.Fatalf("MMC1 switchable $8000 bank tag: got=%d, want=1", got)
	}
	if got := m.ReadFromCPU(0xC000); got != 3 {
		t.Fatalf("MMC1 fixed-last $C000 bank tag: got=%d, want=3 (last of 4 banks)", got)
	}
}

func TestMapper1ResetBitForcesPRGMode3(t *testing.T) {
	m := newMMC1(4)
	writeMMC1Serial(m, 0x8000, 0x00) // mode 0: 32 KiB switch
	m.WriteFromCPU(0x8000, 0x80)     // reset bit
	if mode := m.prgBankMode(); mode != 3 {
		t.Fatalf("PRG bank mode after reset-bit write: got=%d, want=3", mode)
	}
}

func TestMapper1MirroringControlBits(t *testing.T) {
	m := newMMC1(2)
	cases := []struct {
		bits byte
		want Mirroring
	}{
		{0, MirroringSingleLower},
		{1, MirroringSingleUpper},
		{2, MirroringVertical},
		{3, MirroringHorizontal},
	}
	for _, c := range cases {
		writeMMC1Serial(m, 0x8000, 0x0C|c.bits)
		if got := m.Mirroring(); got != c.want {
			t.Fatalf("control bits=%02b: got mirroring=%v, want=%v", c.bits, got, c.want)
		}
	}
}

func TestMapper2UNROMSwitchesLowFixesLastBank(t *testing.T) {
	prg := make([]byte, 4*prgROMSizeUnit)
	for bank := 0; bank < 4; bank++ {
		prg[bank*prgROMSizeUnit] = byte(bank)
	}
	rom := buildINES(2, false, prg, nil)
	cartridge, err := NewCartridge(rom, "")
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	m := newMapper2(cartridge)
	m.WriteFromCPU(0x8000, 0x02)
	if got := m.ReadFromCPU(0x8000); got != 2 {
		t.Fatalf("UNROM switchable $8000 bank tag: got=%d, want=2", got)
	}
	if got := m.ReadFromCPU(0xC000); got != 3 {
		t.Fatalf("UNROM fixed-last $C000 bank tag: got=%d, want=3", got)
	}
}

func TestMapper3CNROMSwitchesCHRBank(t *testing.T) {
	prg := make([]byte, prgROMSizeUnit)
	chr := make([]byte, 4*chrROMSizeUnit)
	for bank := 0; bank < 4; bank++ {
		chr[bank*chrROMSizeUnit] = byte(bank)
	}
	rom := buildINES(3, false, prg, chr)
	cartridge, err := NewCartridge(rom, "")
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	m := newMapper3(cartridge)
	m.WriteFromCPU(0x8000, 0x03)
	if got := m.ReadFromPPU(0x0000); got != 3 {
		t.Fatalf("CNROM CHR bank tag: got=%d, want=3", got)
	}
}
