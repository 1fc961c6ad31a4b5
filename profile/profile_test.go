package profile

import (
	"slices"
	"testing"
)

func TestStartNoop(t *testing.T) {
	tests := []struct {
		name string
		p    Profiler
	}{
		{"zero", Profiler{}},
		{"unknown_mode", Profiler{Mode: "bogus", Path: t.TempDir(), Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.p.Start()
			if _, ok := s.(ignore); !ok {
				t.Fatalf("Start() = %T, want no-op", s)
			}

			s.Stop()
		})
	}
}

func TestModesSorted(t *testing.T) {
	modes := Modes()
	if !slices.IsSorted(modes) {
		t.Errorf("Modes() = %v, want sorted", modes)
	}
}
