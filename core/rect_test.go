package core

import "testing"

// TestRectIntersects verifies inclusive overlap semantics
func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"Contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"TouchingEdge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"TouchingCorner", Rect{X: 10, Y: 10, Width: 1, Height: 1}, true},
		{"SeparateX", Rect{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{"SeparateY", Rect{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

// TestSoundNames verifies effect names round-trip through the parser
func TestSoundNames(t *testing.T) {
	for s := SoundType(0); s < SoundTypeCount; s++ {
		got, ok := ParseSoundType(s.String())
		if !ok || got != s {
			t.Errorf("ParseSoundType(%q) = %v, %v", s.String(), got, ok)
		}
	}

	if _, ok := ParseSoundType("nope"); ok {
		t.Error("Expected unknown effect name to be rejected")
	}
	if _, ok := ParseMusicTrack(""); ok {
		t.Error("Expected empty track name to be rejected")
	}
	if m, ok := ParseMusicTrack("bossMusic"); !ok || m != MusicBoss {
		t.Errorf("ParseMusicTrack(bossMusic) = %v, %v", m, ok)
	}
}
