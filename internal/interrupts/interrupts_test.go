package interrupts

import (
	"testing"

	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
)

func TestService_Vector(t *testing.T) {
	s := NewService()
	if s.HasInterrupts() || s.Vector() != 0 {
		t.Fatalf("expected no pending interrupts on a new service")
	}

	s.Request(TimerFlag)
	s.Request(JoypadFlag)
	if s.HasInterrupts() {
		t.Errorf("expected requested but disabled interrupts to not be pending")
	}

	s.Enable = TimerFlag | JoypadFlag
	if v := s.Vector(); v != 0x50 {
		t.Errorf("expected timer vector 0x50 first, got 0x%04X", v)
	}
	if v := s.Vector(); v != 0x60 {
		t.Errorf("expected joypad vector 0x60 second, got 0x%04X", v)
	}
	if s.HasInterrupts() {
		t.Errorf("expected all interrupts to be acknowledged")
	}
}

func TestService_State(t *testing.T) {
	s := &Service{Flag: VBlankFlag, Enable: 0x1F}
	st := types.NewState()
	s.Save(st)

	loaded := NewService()
	loaded.Load(st)
	if *loaded != *s {
		t.Errorf("expected %+v, got %+v", *s, *loaded)
	}
}

func TestBus(t *testing.T) {
	s := NewService()
	b := NewBus(ram.NewFlat(), s)

	b.Write(EnableAddress, VBlankFlag)
	b.Write(FlagAddress, 0xFF)
	if s.Enable != VBlankFlag {
		t.Errorf("expected IE to be 0x01, got 0x%02X", s.Enable)
	}
	if v := b.Read(FlagAddress); v != 0xFF {
		t.Errorf("expected IF to read 0xFF, got 0x%02X", v)
	}
	if s.Flag != 0x1F {
		t.Errorf("expected IF to store 0x1F, got 0x%02X", s.Flag)
	}

	b.Write(0xC000, 0x42)
	if v := b.Read(0xC000); v != 0x42 {
		t.Errorf("expected 0x42 at 0xC000, got 0x%02X", v)
	}
}
