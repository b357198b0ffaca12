package nes

// createInstructions builds the 256-entry opcode table; every opcode has an
// entry. The JAM opcodes, which halt a real 6502, run here as 1-byte,
// 2-cycle NOPs so the core never locks up.
func (c *CPU) createInstructions() []instruction {
	return []instruction{
		// 0x00
		{"BRK", implied, c.brk, 1, 7, false},
		{"ORA", indirectX, c.ora, 2, 6, false},
		{"JAM", implied, c.nop, 1, 2, false},
		{"SLO", indirectX, c.slo, 2, 8, false},
		{"NOP", zeropage, c.nop, 2, 3, false},
		{"ORA", zeropage, c.ora, 2, 3, false},
		{"ASL", zeropage, c.asl, 2, 5, false},
		{"SLO", zeropage, c.slo, 2, 5, false},
		{"PHP", implied, c.php, 1, 3, false},
		{"ORA", immediate, c.ora, 2, 2, false},
		{"ASL", accumulator, c.asl, 1, 2, false},
		{"ANC", immediate, c.anc, 2, 2, false},
		{"NOP", absolute, c.nop, 3, 4, false},
		{"ORA", absolute, c.ora, 3, 4, false},
		{"ASL", absolute, c.asl, 3, 6, false},
		{"SLO", absolute, c.slo, 3, 6, false},
		// 0x10
		{"BPL", relative, c.bpl, 2, 2, false},
		{"ORA", indirectY, c.ora, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"SLO", indirectY, c.slo, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"ORA", zeropageX, c.ora, 2, 4, false},
		{"ASL", zeropageX, c.asl, 2, 6, false},
		{"SLO", zeropageX, c.slo, 2, 6, false},
		{"CLC", implied, c.clc, 1, 2, false},
		{"ORA", absoluteY, c.ora, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"SLO", absoluteY, c.slo, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"ORA", absoluteX, c.ora, 3, 4, true},
		{"ASL", absoluteX, c.asl, 3, 7, false},
		{"SLO", absoluteX, c.slo, 3, 7, false},
		// 0x20
		{"JSR", absolute, c.jsr, 3, 6, false},
		{"AND", indirectX, c.and, 2, 6, false},
		{"JAM", implied, c.nop, 1, 2, false},
		{"RLA", indirectX, c.rla, 2, 8, false},
		{"BIT", zeropage, c.bit, 2, 3, false},
		{"AND", zeropage, c.and, 2, 3, false},
		{"ROL", zeropage, c.rol, 2, 5, false},
		{"RLA", zeropage, c.rla, 2, 5, false},
		{"PLP", implied, c.plp, 1, 4, false},
		{"AND", immediate, c.and, 2, 2, false},
		{"ROL", accumulator, c.rol, 1, 2, false},
		{"ANC", immediate, c.anc, 2, 2, false},
		{"BIT", absolute, c.bit, 3, 4, false},
		{"AND", absolute, c.and, 3, 4, false},
		{"ROL", absolute, c.rol, 3, 6, false},
		{"RLA", absolute, c.rla, 3, 6, false},
		// 0x30
		{"BMI", relative, c.bmi, 2, 2, false},
		{"AND", indirectY, c.and, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"RLA", indirectY, c.rla, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"AND", zeropageX, c.and, 2, 4, false},
		{"ROL", zeropageX, c.rol, 2, 6, false},
		{"RLA", zeropageX, c.rla, 2, 6, false},
		{"SEC", implied, c.sec, 1, 2, false},
		{"AND", absoluteY, c.and, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"RLA", absoluteY, c.rla, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"AND", absoluteX, c.and, 3, 4, true},
		{"ROL", absoluteX, c.rol, 3, 7, false},
		{"RLA", absoluteX, c.rla, 3, 7, false},
		// 0x40
		{"RTI", implied, c.rti, 1, 6, false},
		{"EOR", indirectX, c.eor, 2, 6, false},
		{"JAM", implied, c.nop, 1, 2, false},
		{"SRE", indirectX, c.sre, 2, 8, false},
		{"NOP", zeropage, c.nop, 2, 3, false},
		{"EOR", zeropage, c.eor, 2, 3, false},
		{"LSR", zeropage, c.lsr, 2, 5, false},
		{"SRE", zeropage, c.sre, 2, 5, false},
		{"PHA", implied, c.pha, 1, 3, false},
		{"EOR", immediate, c.eor, 2, 2, false},
		{"LSR", accumulator, c.lsr, 1, 2, false},
		{"ALR", immediate, c.alr, 2, 2, false},
		{"JMP", absolute, c.jmp, 3, 3, false},
		{"EOR", absolute, c.eor, 3, 4, false},
		{"LSR", absolute, c.lsr, 3, 6, false},
		{"SRE", absolute, c.sre, 3, 6, false},
		// 0x50
		{"BVC", relative, c.bvc, 2, 2, false},
		{"EOR", indirectY, c.eor, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"SRE", indirectY, c.sre, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"EOR", zeropageX, c.eor, 2, 4, false},
		{"LSR", zeropageX, c.lsr, 2, 6, false},
		{"SRE", zeropageX, c.sre, 2, 6, false},
		{"CLI", implied, c.cli, 1, 2, false},
		{"EOR", absoluteY, c.eor, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"SRE", absoluteY, c.sre, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"EOR", absoluteX, c.eor, 3, 4, true},
		{"LSR", absoluteX, c.lsr, 3, 7, false},
		{"SRE", absoluteX, c.sre, 3, 7, false},
		// 0x60
		{"RTS", implied, c.rts, 1, 6, false},
		{"ADC", indirectX, c.adc, 2, 6, false},
		{"JAM", implied, c.nop, 1, 2, false},
		{"RRA", indirectX, c.rra, 2, 8, false},
		{"NOP", zeropage, c.nop, 2, 3, false},
		{"ADC", zeropage, c.adc, 2, 3, false},
		{"ROR", zeropage, c.ror, 2, 5, false},
		{"RRA", zeropage, c.rra, 2, 5, false},
		{"PLA", implied, c.pla, 1, 4, false},
		{"ADC", immediate, c.adc, 2, 2, false},
		{"ROR", accumulator, c.ror, 1, 2, false},
		{"ARR", immediate, c.arr, 2, 2, false},
		{"JMP", indirect, c.jmp, 3, 5, false},
		{"ADC", absolute, c.adc, 3, 4, false},
		{"ROR", absolute, c.ror, 3, 6, false},
		{"RRA", absolute, c.rra, 3, 6, false},
		// 0x70
		{"BVS", relative, c.bvs, 2, 2, false},
		{"ADC", indirectY, c.adc, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"RRA", indirectY, c.rra, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"ADC", zeropageX, c.adc, 2, 4, false},
		{"ROR", zeropageX, c.ror, 2, 6, false},
		{"RRA", zeropageX, c.rra, 2, 6, false},
		{"SEI", implied, c.sei, 1, 2, false},
		{"ADC", absoluteY, c.adc, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"RRA", absoluteY, c.rra, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"ADC", absoluteX, c.adc, 3, 4, true},
		{"ROR", absoluteX, c.ror, 3, 7, false},
		{"RRA", absoluteX, c.rra, 3, 7, false},
		// 0x80
		{"NOP", immediate, c.nop, 2, 2, false},
		{"STA", indirectX, c.sta, 2, 6, false},
		{"NOP", immediate, c.nop, 2, 2, false},
		{"SAX", indirectX, c.sax, 2, 6, false},
		{"STY", zeropage, c.sty, 2, 3, false},
		{"STA", zeropage, c.sta, 2, 3, false},
		{"STX", zeropage, c.stx, 2, 3, false},
		{"SAX", zeropage, c.sax, 2, 3, false},
		{"DEY", implied, c.dey, 1, 2, false},
		{"NOP", immediate, c.nop, 2, 2, false},
		{"TXA", implied, c.txa, 1, 2, false},
		{"ANE", immediate, c.ane, 2, 2, false},
		{"STY", absolute, c.sty, 3, 4, false},
		{"STA", absolute, c.sta, 3, 4, false},
		{"STX", absolute, c.stx, 3, 4, false},
		{"SAX", absolute, c.sax, 3, 4, false},
		// 0x90
		{"BCC", relative, c.bcc, 2, 2, false},
		{"STA", indirectY, c.sta, 2, 6, false},
		{"JAM", implied, c.nop, 1, 2, false},
		{"SHA", indirectY, c.sha, 2, 6, false},
		{"STY", zeropageX, c.sty, 2, 4, false},
		{"STA", zeropageX, c.sta, 2, 4, false},
		{"STX", zeropageY, c.stx, 2, 4, false},
		{"SAX", zeropageY, c.sax, 2, 4, false},
		{"TYA", implied, c.tya, 1, 2, false},
		{"STA", absoluteY, c.sta, 3, 5, false},
		{"TXS", implied, c.txs, 1, 2, false},
		{"SHS", absoluteY, c.shs, 3, 5, false},
		{"SHY", absoluteX, c.shy, 3, 5, false},
		{"STA", absoluteX, c.sta, 3, 5, false},
		{"SHX", absoluteY, c.shx, 3, 5, false},
		{"SHA", absoluteY, c.sha, 3, 5, false},
		// 0xA0
		{"LDY", immediate, c.ldy, 2, 2, false},
		{"LDA", indirectX, c.lda, 2, 6, false},
		{"LDX", immediate, c.ldx, 2, 2, false},
		{"LAX", indirectX, c.lax, 2, 6, false},
		{"LDY", zeropage, c.ldy, 2, 3, false},
		{"LDA", zeropage, c.lda, 2, 3, false},
		{"LDX", zeropage, c.ldx, 2, 3, false},
		{"LAX", zeropage, c.lax, 2, 3, false},
		{"TAY", implied, c.tay, 1, 2, false},
		{"LDA", immediate, c.lda, 2, 2, false},
		{"TAX", implied, c.tax, 1, 2, false},
		{"LXA", immediate, c.lxa, 2, 2, false},
		{"LDY", absolute, c.ldy, 3, 4, false},
		{"LDA", absolute, c.lda, 3, 4, false},
		{"LDX", absolute, c.ldx, 3, 4, false},
		{"LAX", absolute, c.lax, 3, 4, false},
		// 0xB0
		{"BCS", relative, c.bcs, 2, 2, false},
		{"LDA", indirectY, c.lda, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"LAX", indirectY, c.lax, 2, 5, true},
		{"LDY", zeropageX, c.ldy, 2, 4, false},
		{"LDA", zeropageX, c.lda, 2, 4, false},
		{"LDX", zeropageY, c.ldx, 2, 4, false},
		{"LAX", zeropageY, c.lax, 2, 4, false},
		{"CLV", implied, c.clv, 1, 2, false},
		{"LDA", absoluteY, c.lda, 3, 4, true},
		{"TSX", implied, c.tsx, 1, 2, false},
		{"LAS", absoluteY, c.las, 3, 4, true},
		{"LDY", absoluteX, c.ldy, 3, 4, true},
		{"LDA", absoluteX, c.lda, 3, 4, true},
		{"LDX", absoluteY, c.ldx, 3, 4, true},
		{"LAX", absoluteY, c.lax, 3, 4, true},
		// 0xC0
		{"CPY", immediate, c.cpy, 2, 2, false},
		{"CMP", indirectX, c.cmp, 2, 6, false},
		{"NOP", immediate, c.nop, 2, 2, false},
		{"DCP", indirectX, c.dcp, 2, 8, false},
		{"CPY", zeropage, c.cpy, 2, 3, false},
		{"CMP", zeropage, c.cmp, 2, 3, false},
		{"DEC", zeropage, c.dec, 2, 5, false},
		{"DCP", zeropage, c.dcp, 2, 5, false},
		{"INY", implied, c.iny, 1, 2, false},
		{"CMP", immediate, c.cmp, 2, 2, false},
		{"DEX", implied, c.dex, 1, 2, false},
		{"SBX", immediate, c.sbx, 2, 2, false},
		{"CPY", absolute, c.cpy, 3, 4, false},
		{"CMP", absolute, c.cmp, 3, 4, false},
		{"DEC", absolute, c.dec, 3, 6, false},
		{"DCP", absolute, c.dcp, 3, 6, false},
		// 0xD0
		{"BNE", relative, c.bne, 2, 2, false},
		{"CMP", indirectY, c.cmp, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"DCP", indirectY, c.dcp, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"CMP", zeropageX, c.cmp, 2, 4, false},
		{"DEC", zeropageX, c.dec, 2, 6, false},
		{"DCP", zeropageX, c.dcp, 2, 6, false},
		{"CLD", implied, c.cld, 1, 2, false},
		{"CMP", absoluteY, c.cmp, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"DCP", absoluteY, c.dcp, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"CMP", absoluteX, c.cmp, 3, 4, true},
		{"DEC", absoluteX, c.dec, 3, 7, false},
		{"DCP", absoluteX, c.dcp, 3, 7, false},
		// 0xE0
		{"CPX", immediate, c.cpx, 2, 2, false},
		{"SBC", indirectX, c.sbc, 2, 6, false},
		{"NOP", immediate, c.nop, 2, 2, false},
		{"ISB", indirectX, c.isb, 2, 8, false},
		{"CPX", zeropage, c.cpx, 2, 3, false},
		{"SBC", zeropage, c.sbc, 2, 3, false},
		{"INC", zeropage, c.inc, 2, 5, false},
		{"ISB", zeropage, c.isb, 2, 5, false},
		{"INX", implied, c.inx, 1, 2, false},
		{"SBC", immediate, c.sbc, 2, 2, false},
		{"NOP", implied, c.nop, 1, 2, false},
		{"SBC", immediate, c.sbc, 2, 2, false},
		{"CPX", absolute, c.cpx, 3, 4, false},
		{"SBC", absolute, c.sbc, 3, 4, false},
		{"INC", absolute, c.inc, 3, 6, false},
		{"ISB", absolute, c.isb, 3, 6, false},
		// 0xF0
		{"BEQ", relative, c.beq, 2, 2, false},
		{"SBC", indirectY, c.sbc, 2, 5, true},
		{"JAM", implied, c.nop, 1, 2, false},
		{"ISB", indirectY, c.isb, 2, 8, false},
		{"NOP", zeropageX, c.nop, 2, 4, false},
		{"SBC", zeropageX, c.sbc, 2, 4, false},
		{"INC", zeropageX, c.inc, 2, 6, false},
		{"ISB", zeropageX, c.isb, 2, 6, false},
		{"SED", implied, c.sed, 1, 2, false},
		{"SBC", absoluteY, c.sbc, 3, 4, true},
		{"NOP", implied, c.nop, 1, 2, false},
		{"ISB", absoluteY, c.isb, 3, 7, false},
		{"NOP", absoluteX, c.nop, 3, 4, true},
		{"SBC", absoluteX, c.sbc, 3, 4, true},
		{"INC", absoluteX, c.inc, 3, 7, false},
		{"ISB", absoluteX, c.isb, 3, 7, false},
	}
}

// load reads the operand addressed by mode/address, taking the
// accumulator directly for accumulator-mode instructions.
func (c *CPU) load(mode addressingMode, address uint16) byte {
	if mode == accumulator {
		return c.A
	}
	return c.bus.read(address)
}

func (c *CPU) store(mode addressingMode, address uint16, v byte) {
	if mode == accumulator {
		c.A = v
		return
	}
	c.bus.write(address, v)
}

func (c *CPU) branch(address uint16, taken bool) {
	if taken {
		c.PC = address
	}
}

// Load/store.

func (c *CPU) lda(mode addressingMode, address uint16) {
	c.A = c.bus.read(address)
	c.P.setZN(c.A)
}

func (c *CPU) ldx(mode addressingMode, address uint16) {
	c.X = c.bus.read(address)
	c.P.setZN(c.X)
}

func (c *CPU) ldy(mode addressingMode, address uint16) {
	c.Y = c.bus.read(address)
	c.P.setZN(c.Y)
}

func (c *CPU) sta(mode addressingMode, address uint16) {
	c.bus.write(address, c.A)
}

func (c *CPU) stx(mode addressingMode, address uint16) {
	c.bus.write(address, c.X)
}

func (c *CPU) sty(mode addressingMode, address uint16) {
	c.bus.write(address, c.Y)
}

// Transfers.

func (c *CPU) tax(mode addressingMode, address uint16) { c.X = c.A; c.P.setZN(c.X) }
func (c *CPU) tay(mode addressingMode, address uint16) { c.Y = c.A; c.P.setZN(c.Y) }
func (c *CPU) txa(mode addressingMode, address uint16) { c.A = c.X; c.P.setZN(c.A) }
func (c *CPU) tya(mode addressingMode, address uint16) { c.A = c.Y; c.P.setZN(c.A) }
func (c *CPU) tsx(mode addressingMode, address uint16) { c.X = c.S; c.P.setZN(c.X) }
func (c *CPU) txs(mode addressingMode, address uint16) { c.S = c.X }

// Stack.

func (c *CPU) pha(mode addressingMode, address uint16) { c.push(c.A) }
func (c *CPU) php(mode addressingMode, address uint16) {
	pushed := c.P
	pushed.B = true
	pushed.R = true
	c.push(pushed.encode())
}
func (c *CPU) pla(mode addressingMode, address uint16) { c.A = c.pull(); c.P.setZN(c.A) }
func (c *CPU) plp(mode addressingMode, address uint16) {
	data := c.pull()
	c.P.decodeFrom(data)
	c.P.B = false
}

// Arithmetic.

func (c *CPU) adc(mode addressingMode, address uint16) {
	a := c.A
	m := c.bus.read(address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + uint16(carry)
	c.A = byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^m)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.P.setZN(c.A)
}

func (c *CPU) sbc(mode addressingMode, address uint16) {
	a := c.A
	m := c.bus.read(address) ^ 0xFF
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + uint16(carry)
	c.A = byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^m)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.P.setZN(c.A)
}

// Increment/decrement.

func (c *CPU) inc(mode addressingMode, address uint16) {
	v := c.bus.read(address) + 1
	c.bus.write(address, v)
	c.P.setZN(v)
}
func (c *CPU) dec(mode addressingMode, address uint16) {
	v := c.bus.read(address) - 1
	c.bus.write(address, v)
	c.P.setZN(v)
}
func (c *CPU) inx(mode addressingMode, address uint16) { c.X++; c.P.setZN(c.X) }
func (c *CPU) iny(mode addressingMode, address uint16) { c.Y++; c.P.setZN(c.Y) }
func (c *CPU) dex(mode addressingMode, address uint16) { c.X--; c.P.setZN(c.X) }
func (c *CPU) dey(mode addressingMode, address uint16) { c.Y--; c.P.setZN(c.Y) }

// Shifts/rotates.

func (c *CPU) asl(mode addressingMode, address uint16) {
	v := c.load(mode, address)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.store(mode, address, v)
	c.P.setZN(v)
}
func (c *CPU) lsr(mode addressingMode, address uint16) {
	v := c.load(mode, address)
	c.P.C = v&1 != 0
	v >>= 1
	c.store(mode, address, v)
	c.P.setZN(v)
}
func (c *CPU) rol(mode addressingMode, address uint16) {
	v := c.load(mode, address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&0x80 != 0
	v = v<<1 | carry
	c.store(mode, address, v)
	c.P.setZN(v)
}
func (c *CPU) ror(mode addressingMode, address uint16) {
	v := c.load(mode, address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&1 != 0
	v = v>>1 | carry<<7
	c.store(mode, address, v)
	c.P.setZN(v)
}

// Logic.

func (c *CPU) and(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.P.setZN(c.A)
}
func (c *CPU) ora(mode addressingMode, address uint16) {
	c.A |= c.bus.read(address)
	c.P.setZN(c.A)
}
func (c *CPU) eor(mode addressingMode, address uint16) {
	c.A ^= c.bus.read(address)
	c.P.setZN(c.A)
}
func (c *CPU) bit(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	c.P.Z = c.A&v == 0
	c.P.V = v&0x40 != 0
	c.P.N = v&0x80 != 0
}

// Compare.

func (c *CPU) compare(a, m byte) {
	c.P.C = a >= m
	c.P.setZN(a - m)
}
func (c *CPU) cmp(mode addressingMode, address uint16) { c.compare(c.A, c.bus.read(address)) }
func (c *CPU) cpx(mode addressingMode, address uint16) { c.compare(c.X, c.bus.read(address)) }
func (c *CPU) cpy(mode addressingMode, address uint16) { c.compare(c.Y, c.bus.read(address)) }

// Branches.

func (c *CPU) bpl(mode addressingMode, address uint16) { c.branch(address, !c.P.N) }
func (c *CPU) bmi(mode addressingMode, address uint16) { c.branch(address, c.P.N) }
func (c *CPU) bvc(mode addressingMode, address uint16) { c.branch(address, !c.P.V) }
func (c *CPU) bvs(mode addressingMode, address uint16) { c.branch(address, c.P.V) }
func (c *CPU) bcc(mode addressingMode, address uint16) { c.branch(address, !c.P.C) }
func (c *CPU) bcs(mode addressingMode, address uint16) { c.branch(address, c.P.C) }
func (c *CPU) bne(mode addressingMode, address uint16) { c.branch(address, !c.P.Z) }
func (c *CPU) beq(mode addressingMode, address uint16) { c.branch(address, c.P.Z) }

// Jumps/calls.

func (c *CPU) jmp(mode addressingMode, address uint16) { c.PC = address }
func (c *CPU) jsr(mode addressingMode, address uint16) {
	c.push16(c.PC - 1)
	c.PC = address
}
func (c *CPU) rts(mode addressingMode, address uint16) { c.PC = c.pull16() + 1 }
func (c *CPU) rti(mode addressingMode, address uint16) {
	c.P.decodeFrom(c.pull())
	c.P.B = false
	c.PC = c.pull16()
}

// Flags.

func (c *CPU) clc(mode addressingMode, address uint16) { c.P.C = false }
func (c *CPU) sec(mode addressingMode, address uint16) { c.P.C = true }
func (c *CPU) cli(mode addressingMode, address uint16) { c.P.I = false }
func (c *CPU) sei(mode addressingMode, address uint16) { c.P.I = true }
func (c *CPU) clv(mode addressingMode, address uint16) { c.P.V = false }
func (c *CPU) cld(mode addressingMode, address uint16) { c.P.D = false }
func (c *CPU) sed(mode addressingMode, address uint16) { c.P.D = true }

// Misc.

func (c *CPU) nop(mode addressingMode, address uint16) {}

func (c *CPU) brk(mode addressingMode, address uint16) {
	c.PC++ // BRK is a 1-byte instruction but consumes a padding byte
	c.interrupt(irqVector, true)
}

// Undocumented opcodes. These aren't officially part of the 6502
// instruction set but fall out of how the decoder's unused bit patterns
// happen to drive the ALU; several test ROMs and a handful of real games
// rely on them.

func (c *CPU) slo(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.bus.write(address, v)
	c.A |= v
	c.P.setZN(c.A)
}

func (c *CPU) rla(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&0x80 != 0
	v = v<<1 | carry
	c.bus.write(address, v)
	c.A &= v
	c.P.setZN(c.A)
}

func (c *CPU) sre(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	c.P.C = v&1 != 0
	v >>= 1
	c.bus.write(address, v)
	c.A ^= v
	c.P.setZN(c.A)
}

func (c *CPU) rra(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&1 != 0
	v = v>>1 | carry<<7
	c.bus.write(address, v)
	// followed by an ADC with the rotated value
	a := c.A
	sum := uint16(a) + uint16(v)
	if c.P.C {
		sum++
	}
	c.A = byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^v)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.P.setZN(c.A)
}

func (c *CPU) sax(mode addressingMode, address uint16) {
	c.bus.write(address, c.A&c.X)
}

func (c *CPU) lax(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	c.A = v
	c.X = v
	c.P.setZN(v)
}

func (c *CPU) dcp(mode addressingMode, address uint16) {
	v := c.bus.read(address) - 1
	c.bus.write(address, v)
	c.compare(c.A, v)
}

func (c *CPU) isb(mode addressingMode, address uint16) {
	v := c.bus.read(address) + 1
	c.bus.write(address, v)
	m := v ^ 0xFF
	a := c.A
	sum := uint16(a) + uint16(m)
	if c.P.C {
		sum++
	}
	c.A = byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^m)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.P.setZN(c.A)
}

func (c *CPU) anc(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.P.setZN(c.A)
	c.P.C = c.P.N
}

func (c *CPU) alr(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.P.C = c.A&1 != 0
	c.A >>= 1
	c.P.setZN(c.A)
}

func (c *CPU) arr(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.A = c.A>>1 | carry<<7
	c.P.setZN(c.A)
	c.P.C = c.A&0x40 != 0
	c.P.V = (c.A>>6)&1^(c.A>>5)&1 != 0
}

// ane (aka XAA) is one of the unstable undocumented opcodes: on real
// silicon its result depends on analog bus-capacitance effects. This
// approximates the commonly documented "A = (A | magic) & X & operand"
// behavior with magic=0xFF, which is what most emulators settle on.
func (c *CPU) ane(mode addressingMode, address uint16) {
	c.A = (c.A | 0xFF) & c.X & c.bus.read(address)
	c.P.setZN(c.A)
}

// lxa is similarly unstable; approximated the same way as ane.
func (c *CPU) lxa(mode addressingMode, address uint16) {
	v := (c.A | 0xFF) & c.bus.read(address)
	c.A = v
	c.X = v
	c.P.setZN(v)
}

func (c *CPU) sbx(mode addressingMode, address uint16) {
	v := c.bus.read(address)
	r := (c.A & c.X) - v
	c.P.C = (c.A & c.X) >= v
	c.X = r
	c.P.setZN(c.X)
}

func (c *CPU) las(mode addressingMode, address uint16) {
	v := c.bus.read(address) & c.S
	c.A = v
	c.X = v
	c.S = v
	c.P.setZN(v)
}

// sha/shx/shy/shs all suffer from the same bus-contention instability as
// ane/lxa on real hardware; this implements the commonly used
// "AND with high byte + 1" approximation rather than leaving them as NOPs.
func (c *CPU) sha(mode addressingMode, address uint16) {
	v := c.A & c.X & byte(address>>8+1)
	c.bus.write(address, v)
}
func (c *CPU) shx(mode addressingMode, address uint16) {
	v := c.X & byte(address>>8+1)
	c.bus.write(address, v)
}
func (c *CPU) shy(mode addressingMode, address uint16) {
	v := c.Y & byte(address>>8+1)
	c.bus.write(address, v)
}
func (c *CPU) shs(mode addressingMode, address uint16) {
	c.S = c.A & c.X
	v := c.S & byte(address>>8+1)
	c.bus.write(address, v)
}
