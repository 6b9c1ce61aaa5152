package ram

import "testing"

func TestFlat(t *testing.T) {
	var r RAM = NewFlatWithProgram(0xFFFF, []byte{0x01, 0x02})

	if v := r.Read(0xFFFF); v != 0x01 {
		t.Errorf("expected 0x01 at 0xFFFF, got 0x%02X", v)
	}
	if v := r.Read(0x0000); v != 0x02 {
		t.Errorf("expected load to wrap to 0x0000, got 0x%02X", v)
	}

	r.Write(0xC000, 0x42)
	if v := r.Read(0xC000); v != 0x42 {
		t.Errorf("expected 0x42 at 0xC000, got 0x%02X", v)
	}
}
