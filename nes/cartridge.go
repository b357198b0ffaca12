package nes

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	chrROMSizeUnit      int  = 0x2000 // 8 KiB
	prgROMSizeUnit      int  = 0x4000 // 16 KiB
	inesHeaderSizeBytes int  = 16
	trainerSizeBytes    int  = 512
	msdosEOF            byte = 0x1A
)

// Mirroring is the nametable mirroring mode a mapper routes PPU $2000-$2FFF
// reads and writes through.
type Mirroring int

const (
	MirroringHorizontal Mirroring = iota
	MirroringVertical
	MirroringSingleLower
	MirroringSingleUpper
	MirroringFourScreen
)

// Cartridge holds the raw PRG/CHR banks parsed from an iNES image plus the
// header bits a Mapper needs to decide on the initial banking and mirroring.
// Reference: https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM []byte
	chrROM []byte
	chrRAM bool // true when the header declares 0 CHR banks (CHR is RAM)

	mapperNumber byte
	mirroring    Mirroring
	battery      bool

	prgRAM     [0x2000]byte
	savePath   string
	hasSaveSrc bool
}

// isValidHeader checks the "NES\x1a" magic.
func isValidHeader(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == 'N' && data[1] == 'E' && data[2] == 'S' && data[3] == msdosEOF
}

// NewCartridge parses an iNES 1.0 ROM image and returns a ready-to-use
// Cartridge. romPath is used only to derive the sibling .sav file name for
// battery-backed PRG-RAM; pass "" when no persistence is desired.
func NewCartridge(data []byte, romPath string) (*Cartridge, error) {
	if !isValidHeader(data) {
		return nil, &BadRomHeaderError{Reason: "missing \"NES\\x1a\" magic"}
	}
	flags6 := data[6]
	flags7 := data[7]
	prgBanks := int(data[4])
	chrBanks := int(data[5])

	c := &Cartridge{
		mapperNumber: (flags7 & 0xF0) | (flags6 >> 4),
		battery:      flags6&0x02 != 0,
	}
	switch {
	case flags6&0x08 != 0:
		c.mirroring = MirroringFourScreen
	case flags6&0x01 != 0:
		c.mirroring = MirroringVertical
	default:
		c.mirroring = MirroringHorizontal
	}

	offset := inesHeaderSizeBytes
	if flags6&0x04 != 0 {
		offset += trainerSizeBytes // trainer present, skip it
	}
	prgSize := prgBanks * prgROMSizeUnit
	if offset+prgSize > len(data) {
		return nil, &BadRomHeaderError{Reason: "PRG-ROM size exceeds file length"}
	}
	c.prgROM = data[offset : offset+prgSize]
	offset += prgSize

	if chrBanks == 0 {
		c.chrRAM = true
		c.chrROM = make([]byte, chrROMSizeUnit)
	} else {
		chrSize := chrBanks * chrROMSizeUnit
		if offset+chrSize > len(data) {
			return nil, &BadRomHeaderError{Reason: "CHR-ROM size exceeds file length"}
		}
		c.chrROM = data[offset : offset+chrSize]
	}

	if c.battery && romPath != "" {
		c.savePath = savePathFor(romPath)
		if saved, err := os.ReadFile(c.savePath); err == nil {
			n := copy(c.prgRAM[:], saved)
			c.hasSaveSrc = n > 0
		}
	}
	return c, nil
}

// savePathFor derives the battery-RAM sidecar path for a ROM file path.
func savePathFor(romPath string) string {
	ext := filepath.Ext(romPath)
	return strings.TrimSuffix(romPath, ext) + ".sav"
}

// SaveBatteryRAM persists the 8 KiB PRG-RAM block if this cartridge declared
// a battery. A write failure is a non-fatal warning, never a crash.
func (c *Cartridge) SaveBatteryRAM() error {
	if !c.battery || c.savePath == "" {
		return nil
	}
	return os.WriteFile(c.savePath, c.prgRAM[:], 0o644)
}

// MapperNumber returns the iNES mapper number this cartridge requested.
func (c *Cartridge) MapperNumber() byte {
	return c.mapperNumber
}
