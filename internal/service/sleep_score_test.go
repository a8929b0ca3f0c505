package service

import "testing"

func TestComputeSleepScore(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		quality  int
		latency  int
		wakes    int
		factors  []string
		want     int
	}{
		{
			name:     "reference night",
			duration: 480,
			quality:  3,
			latency:  10,
			wakes:    0,
			factors:  []string{},
			want:     95, // 25 + 25 + 15 + 10 + 20
		},
		{
			name:     "perfect night",
			duration: 480,
			quality:  4,
			latency:  0,
			wakes:    0,
			factors:  nil,
			want:     100,
		},
		{
			name:     "worst night",
			duration: 120,
			quality:  0,
			latency:  90,
			wakes:    5,
			factors:  []string{"caffeine", "noise", "light", "stress", "alcohol"},
			want:     0,
		},
		{
			name:     "short sleep one band down",
			duration: 400,
			quality:  3,
			latency:  10,
			wakes:    0,
			factors:  []string{},
			want:     90,
		},
		{
			name:     "latency boundary 16 drops to 10",
			duration: 480,
			quality:  3,
			latency:  16,
			wakes:    0,
			factors:  []string{},
			want:     90,
		},
		{
			name:     "latency boundary 30 still 10",
			duration: 480,
			quality:  3,
			latency:  30,
			wakes:    0,
			factors:  []string{},
			want:     90,
		},
		{
			name:     "two wakes",
			duration: 480,
			quality:  3,
			latency:  10,
			wakes:    2,
			factors:  []string{},
			want:     90,
		},
		{
			name:     "three wakes score zero wakes points",
			duration: 480,
			quality:  3,
			latency:  10,
			wakes:    3,
			factors:  []string{},
			want:     85,
		},
		{
			name:     "out of range quality scores zero",
			duration: 480,
			quality:  9,
			latency:  10,
			wakes:    0,
			factors:  []string{},
			want:     70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSleepScore(tt.duration, tt.quality, tt.latency, tt.wakes, tt.factors)
			if got != tt.want {
				t.Errorf("ComputeSleepScore() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d out of [0,100]", got)
			}
		})
	}
}

func TestDurationScoreBands(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{420, 25},
		{480, 25},
		{540, 25},
		{390, 20},
		{419, 20},
		{541, 20},
		{570, 20},
		{360, 15},
		{600, 15},
		{330, 10},
		{630, 10},
		{300, 5},
		{660, 5},
		{299, 0},
		{661, 0},
		{240, 0},
		{720, 0},
		{0, 0},
		{1440, 0},
	}

	for _, tt := range tests {
		if got := durationScore(tt.minutes); got != tt.want {
			t.Errorf("durationScore(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}

	// Bands mirror around the ideal window: equal offsets from its two
	// edges score the same.
	for _, offset := range []int{0, 15, 30, 45, 60, 90, 120, 150, 200} {
		below := durationScore(420 - offset)
		above := durationScore(540 + offset)
		if below != above {
			t.Errorf("asymmetric bands at offset %d: %d vs %d", offset, below, above)
		}
	}
}

func TestDisturbScore(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 20},
		{1, 16},
		{2, 12},
		{4, 4},
		{5, 0},
		{10, 0},
	}

	for _, tt := range tests {
		if got := disturbScore(tt.count); got != tt.want {
			t.Errorf("disturbScore(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
