package nes

// buildINES assembles a minimal iNES 1.0 image: mapper/mirroring come from
// the header flags, prg/chr are padded up to whole bank units.
func buildINES(mapperNumber byte, vertical bool, prg, chr []byte) []byte {
	prgBanks := (len(prg) + prgROMSizeUnit - 1) / prgROMSizeUnit
	if prgBanks == 0 {
		prgBanks = 1
	}
	chrBanks := (len(chr) + chrROMSizeUnit - 1) / chrROMSizeUnit

	header := make([]byte, inesHeaderSizeBytes)
	copy(header, []byte{'N', 'E', 'S', msdosEOF})
	header[4] = byte(prgBanks)
	header[5] = byte(chrBanks)
	flags6 := (mapperNumber & 0x0F) << 4
	if vertical {
		flags6 |= 0x01
	}
	header[6] = flags6
	header[7] = mapperNumber & 0xF0

	data := make([]byte, 0, len(header)+prgBanks*prgROMSizeUnit+chrBanks*chrROMSizeUnit)
	data = append(data, header...)
	prgPadded := make([]byte, prgBanks*prgROMSizeUnit)
	copy(prgPadded, prg)
	data = append(data, prgPadded...)
	if chrBanks > 0 {
		chrPadded := make([]byte, chrBanks*chrROMSizeUnit)
		copy(chrPadded, chr)
		data = append(data, chrPadded...)
	}
	return data
}

// newTestCore builds a Core around a single 16 KiB NROM bank whose contents
// are prg (zero-padded), with the reset vector pointed at $8000.
func newTestCore(t interface{ Fatalf(string, ...interface{}) }, prg []byte) *Core {
	image := make([]byte, prgROMSizeUnit)
	copy(image, prg)
	image[0x3FFC] = 0x00 // reset vector low -> $8000
	image[0x3FFD] = 0x80 // reset vector high
	rom := buildINES(0, false, image, nil)
	core := NewCore()
	if err := core.InsertCartridge(rom, ""); err != nil {
		t.Fatalf("InsertCartridge: %v", err)
	}
	return core
}
