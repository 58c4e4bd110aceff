package blit

import "testing"

func TestOpaque(t *testing.T) {
	p := Opaque(12, 34, 56)
	if p.Transparent {
		t.Error("Opaque() produced a transparent pixel")
	}
	if p.R != 12 || p.G != 34 || p.B != 56 {
		t.Errorf("Opaque(12,34,56) = %+v", p)
	}
}

func TestTransparent(t *testing.T) {
	if !Transparent().Transparent {
		t.Error("Transparent() produced an opaque pixel")
	}
}

func TestPackARGB8888(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint32
	}{
		{"black", 0, 0, 0, 0xFF000000},
		{"white", 255, 255, 255, 0xFFFFFFFF},
		{"red", 255, 0, 0, 0xFFFF0000},
		{"green", 0, 255, 0, 0xFF00FF00},
		{"blue", 0, 0, 255, 0xFF0000FF},
		{"gray", 128, 128, 128, 0xFF808080},
		{"mixed", 0x12, 0x34, 0x56, 0xFF123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackARGB8888(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("PackARGB8888(%d,%d,%d) = %08X, want %08X",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}
