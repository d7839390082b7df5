package styles

import "testing"

func TestUse(t *testing.T) {
	t.Cleanup(func() { Current = TokyoNight })

	if err := Use("classic"); err != nil {
		t.Fatalf("Use(classic) failed: %v", err)
	}
	if Current.Name != "classic" {
		t.Errorf("Current: got %s, want classic", Current.Name)
	}

	if err := Use("solarized"); err == nil {
		t.Error("Use(solarized): expected error")
	}
	if Current.Name != "classic" {
		t.Errorf("unknown theme changed Current to %s", Current.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "classic" || names[1] != "tokyo-night" {
		t.Errorf("Names: got %v", names)
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{40, 40},
		{80, 80},
		{200, MaxWidth},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
