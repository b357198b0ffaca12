package nes

import "testing"

func TestStateRoundTrip(t *testing.T) {
	prg := []byte{0xA9, 0x05, 0x69, 0x03} // LDA #5; ADC #3
	core := newTestCore(t, prg)
	if _, err := core.cpu.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, err := core.cpu.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if core.cpu.A != 0x08 {
		t.Fatalf("sanity check A before snapshot: got=0x%02x, want=0x08", core.cpu.A)
	}

	snapshot := core.GetState()
	encoded, err := EncodeState(snapshot)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	decoded, err := DecodeState(encoded)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	fresh := newTestCore(t, prg)
	if err := fresh.SetState(decoded); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if fresh.cpu.A != core.cpu.A || fresh.cpu.PC != core.cpu.PC || fresh.cpu.S != core.cpu.S {
		t.Fatalf("CPU state after round-trip: got A=0x%02x PC=0x%04x S=0x%02x, want A=0x%02x PC=0x%04x S=0x%02x",
			fresh.cpu.A, fresh.cpu.PC, fresh.cpu.S, core.cpu.A, core.cpu.PC, core.cpu.S)
	}
}

func TestStateVersionMismatch(t *testing.T) {
	core := newTestCore(t, nil)
	snapshot := core.GetState()
	snapshot.Version = stateVersion + 1
	if err := core.SetState(snapshot); err == nil {
		t.Fatalf("SetState with mismatched version: got nil error, want SaveStateVersionMismatchError")
	}
}
