package nes

import "testing"

func TestCoreOAMDMAStallsAndCopiesOAM(t *testing.T) {
	prg := []byte{
		0xA9, 0x07, // LDA #7   (even CPU cycle count so far: 0)
		0xA2, 0x00, // LDX #0   (2 cycles)
		0x8D, 0x14, 0x40, // STA $4014 (write page $07, triggers OAM DMA)
	}
	core := newTestCore(t, prg)
	core.bus.wram.write(0x0700, 0xAA) // byte 0 of page $07

	if _, err := core.Step(); err != nil { // LDA
		t.Fatalf("step LDA: %v", err)
	}
	if _, err := core.Step(); err != nil { // LDX
		t.Fatalf("step LDX: %v", err)
	}
	if _, err := core.Step(); err != nil { // STA $4014: queues the DMA
		t.Fatalf("step STA: %v", err)
	}

	cycles, err := core.Step() // the deferred DMA pays its stall here
	if err != nil {
		t.Fatalf("step DMA: %v", err)
	}
	// LDA #imm (2) + LDX #imm (2) + STA abs (4) = 8 CPU cycles elapsed
	// before the DMA is started, an even count, so the stall is 513
	// rather than the odd-alignment 514.
	if cycles != 513 {
		t.Fatalf("OAM DMA stall cycles: got=%d, want=513", cycles)
	}
	if got := core.ppu.primaryOAM[0]; got != 0xAA {
		t.Fatalf("OAM[0] after DMA: got=0x%02x, want=0xaa", got)
	}
}

func TestCoreInsertCartridgeThenResetJumpsToResetVector(t *testing.T) {
	core := newTestCore(t, []byte{0xEA})
	if core.cpu.PC != 0x8000 {
		t.Fatalf("PC after insert: got=0x%04x, want=0x8000", core.cpu.PC)
	}
	core.cpu.PC = 0x1234
	if err := core.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if core.cpu.PC != 0x8000 {
		t.Fatalf("PC after explicit Reset: got=0x%04x, want=0x8000", core.cpu.PC)
	}
}

func TestCoreSetControllerRoutesToCorrectPort(t *testing.T) {
	core := newTestCore(t, nil)
	var p1, p2 [8]bool
	p1[ButtonA] = true
	p2[ButtonA] = false
	p2[ButtonB] = true
	core.SetController(0, p1)
	core.SetController(1, p2)

	core.bus.write(0x4016, 1)
	core.bus.write(0x4016, 0)
	if got := core.bus.read(0x4016) & 0x01; got != 1 {
		t.Fatalf("controller1 bit0 (A pressed): got=%d, want=1", got)
	}
	if got := core.bus.read(0x4017) & 0x01; got != 0 {
		t.Fatalf("controller2 bit0 (A not pressed): got=%d, want=0", got)
	}
	if got := core.bus.read(0x4017) & 0x01; got != 1 {
		t.Fatalf("controller2 bit1 (B pressed): got=%d, want=1", got)
	}
}
