package engine

// SocialRank is an ordered tier derived from trust score and streak.
// Integer-backed so rank comparisons are plain >= on ordinals, never
// string comparison.
type SocialRank int

const (
	RankG SocialRank = iota
	RankF
	RankE
	RankD
	RankC
	RankB
	RankA
	RankS
	RankSS
	RankSSS
)

func (r SocialRank) String() string {
	switch r {
	case RankG:
		return "G"
	case RankF:
		return "F"
	case RankE:
		return "E"
	case RankD:
		return "D"
	case RankC:
		return "C"
	case RankB:
		return "B"
	case RankA:
		return "A"
	case RankS:
		return "S"
	case RankSS:
		return "SS"
	case RankSSS:
		return "SSS"
	default:
		return "G"
	}
}

func (r SocialRank) IsValid() bool {
	return r >= RankG && r <= RankSSS
}

// Classify maps (trustScore, streak) to a SocialRank. Total and
// deterministic: out-of-range trust is clamped, never an error. The
// cascade is evaluated highest-first, first match wins.
//
// G is only ever the initial default and SSS is never produced; the
// classifier floor is F.
func Classify(trustScore float64, streak int) SocialRank {
	t := ClampTrust(trustScore)
	if streak < 0 {
		streak = 0
	}

	switch {
	case t >= 98 && streak >= 60:
		return RankSS
	case t >= 95 && streak >= 30:
		return RankS
	case t >= 90 && streak >= 14:
		return RankA
	case t >= 80 && streak >= 7:
		return RankB
	case t >= 70:
		return RankC
	case t >= 60:
		return RankD
	case t >= 50:
		return RankE
	default:
		return RankF
	}
}

// ClampTrust forces a trust score into [0,100].
func ClampTrust(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 100 {
		return 100
	}
	return t
}
