package nes

// PPUBus routes the PPU's 14-bit address space to the cartridge's mapper
// (pattern tables, $0000-$1FFF) or to the console's 2 KiB of nametable RAM
// (mirrored per the mapper's current Mirroring mode).
type PPUBus struct {
	vram   *RAM
	mapper Mapper
}

// NewPPUBus creates a new Bus for PPU.
func NewPPUBus(vram *RAM, mapper Mapper) *PPUBus {
	return &PPUBus{vram, mapper}
}

// mirrorAddress resolves a $2000-$2FFF nametable address down to its
// physical offset in the 2 KiB of nametable RAM, honoring the Mirroring
// mode the mapper reports (four-screen is treated as horizontal, see below).
func (b *PPUBus) mirrorAddress(address uint16) uint16 {
	table := (address - 0x2000) / 0x0400 % 4
	offset := (address - 0x2000) % 0x0400
	switch b.mapper.Mirroring() {
	case MirroringVertical:
		return (table%2)*0x0400 + offset
	case MirroringSingleLower:
		return offset
	case MirroringSingleUpper:
		return 0x0400 + offset
	case MirroringFourScreen:
		// Four-screen boards carry their own 2 KiB of extra nametable RAM
		// on the cartridge; this core doesn't model that extra chip, so it
		// falls back to horizontal mirroring rather than aliasing garbage.
		fallthrough
	default: // MirroringHorizontal
		return (table/2)*0x0400 + offset
	}
}

// read reads a byte from the PPU's address space.
// Address        Size    Description
// -------------------------------------
// $0000-$0FFF    $1000   Pattern table 0
// $1000-$1FFF    $1000   Pattern table 1
// $2000-$23FF    $0400   Nametable 0
// $2400-$27FF    $0400   Nametable 1
// $2800-$2BFF    $0400   Nametable 2
// $2C00-$2FFF    $0400   Nametable 3
// $3000-$3EFF    $0F00   Mirrors of $2000-$2EFF
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.mapper.ReadFromPPU(address)
	case address < 0x3F00:
		mirrored := address
		if mirrored >= 0x3000 {
			mirrored -= 0x1000
		}
		return b.vram.read(b.mirrorAddress(mirrored) % 2048)
	default:
		return 0
	}
}

// write writes a byte into the PPU's address space.
func (b *PPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.mapper.WriteFromPPU(address, data)
	case address < 0x3F00:
		mirrored := address
		if mirrored >= 0x3000 {
			mirrored -= 0x1000
		}
		b.vram.write(b.mirrorAddress(mirrored)%2048, data)
	}
}
