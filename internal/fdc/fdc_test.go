package fdc

import "testing"

func TestAlwaysReportsReady(t *testing.T) {
	c := New()
	if got := c.In(0x2FFD); got&statusRQM == 0 {
		t.Fatalf("status register = %02X, RQM bit not set", got)
	}
}

func TestDataRegisterEchoesLastWrite(t *testing.T) {
	c := New()
	c.Out(0x3FFD, 0x42)
	if got := c.In(0x3FFD); got != 0x42 {
		t.Fatalf("In(0x3FFD) = %02X, want 42", got)
	}
}
