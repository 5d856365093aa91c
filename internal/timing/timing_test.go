package timing

import (
	"testing"
	"time"
)

func TestRoundMs(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     float64
	}{
		{
			name:     "zero",
			duration: 0,
			want:     0,
		},
		{
			name:     "whole milliseconds",
			duration: 12 * time.Millisecond,
			want:     12.0,
		},
		{
			name:     "rounds to one decimal",
			duration: 1234567 * time.Nanosecond,
			want:     1.2,
		},
		{
			name:     "rounds up",
			duration: 1250 * time.Microsecond,
			want:     1.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundMs(tt.duration)
			if got != tt.want {
				t.Fatalf("unexpected rounding: got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestStopwatch_Elapsed(t *testing.T) {
	sw := Start()
	time.Sleep(5 * time.Millisecond)
	if got := sw.ElapsedMs(); got < 4.0 {
		t.Fatalf("elapsed time too small: got %f", got)
	}
}
