package service

// Sleep scores are a banded 0-100 rubric: duration contributes up to
// 25 points, subjective quality 30, sleep latency 15, wake count 10,
// and disturbance factors 20. The breakpoints are fixed product
// decisions, not tunables.

// qualityScores maps the ordinal 0-4 subjective quality to points.
// Out-of-range input scores 0.
var qualityScores = map[int]int{
	0: 0,
	1: 10,
	2: 20,
	3: 25,
	4: 30,
}

// ComputeSleepScore maps raw sleep-record fields to an integer score in
// [0, 100]. Pure; inputs are validated at the boundary.
func ComputeSleepScore(durationMin, quality, latencyMin, wakeCount int, disturbFactors []string) int {
	total := durationScore(durationMin) +
		qualityScores[quality] +
		latencyScore(latencyMin) +
		wakeScore(wakeCount) +
		disturbScore(len(disturbFactors))
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}

// durationScore awards 25 points inside the 7-9h ideal window and
// steps down 5 points per 30-minute band on either side.
func durationScore(minutes int) int {
	switch {
	case minutes >= 420 && minutes <= 540:
		return 25
	case (minutes >= 390 && minutes < 420) || (minutes > 540 && minutes <= 570):
		return 20
	case (minutes >= 360 && minutes < 390) || (minutes > 570 && minutes <= 600):
		return 15
	case (minutes >= 330 && minutes < 360) || (minutes > 600 && minutes <= 630):
		return 10
	case (minutes >= 300 && minutes < 330) || (minutes > 630 && minutes <= 660):
		return 5
	default:
		return 0
	}
}

// latencyScore buckets raw minutes-to-fall-asleep.
func latencyScore(minutes int) int {
	switch {
	case minutes <= 15:
		return 15
	case minutes <= 30:
		return 10
	default:
		return 0
	}
}

func wakeScore(count int) int {
	switch {
	case count == 0:
		return 10
	case count <= 2:
		return 5
	default:
		return 0
	}
}

// disturbScore deducts 4 points per reported disturbance factor,
// floored at 0.
func disturbScore(count int) int {
	score := 20 - 4*count
	if score < 0 {
		return 0
	}
	return score
}
