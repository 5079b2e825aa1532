package engine

import "testing"

func TestClassifyCascade(t *testing.T) {
	cases := []struct {
		trust  float64
		streak int
		want   SocialRank
	}{
		{98, 60, RankSS},
		{98, 59, RankS}, // trust qualifies for SS but streak does not
		{95, 30, RankS},
		{95, 29, RankA},
		{90, 14, RankA},
		{90, 13, RankB},
		{80, 7, RankB},
		{80, 6, RankC},
		{70, 0, RankC},
		{60, 0, RankD},
		{50, 0, RankE},
		{49.9, 0, RankF},
		{0, 0, RankF},
	}
	for _, tc := range cases {
		if got := Classify(tc.trust, tc.streak); got != tc.want {
			t.Fatalf("Classify(%v, %d)=%s, want %s", tc.trust, tc.streak, got, tc.want)
		}
	}
}

func TestClassifyClampsTrust(t *testing.T) {
	if got := Classify(150, 60); got != RankSS {
		t.Fatalf("Classify(150, 60)=%s, want SS", got)
	}
	if got := Classify(-20, 100); got != RankF {
		t.Fatalf("Classify(-20, 100)=%s, want F", got)
	}
}

func TestClassifyTotal(t *testing.T) {
	// Every reachable input lands on a valid rank.
	for trust := -10.0; trust <= 110; trust += 0.5 {
		for _, streak := range []int{0, 1, 6, 7, 13, 14, 29, 30, 59, 60, 1000} {
			if r := Classify(trust, streak); !r.IsValid() {
				t.Fatalf("Classify(%v, %d) produced invalid rank %d", trust, streak, int(r))
			}
		}
	}
}

func TestRankOrdering(t *testing.T) {
	if !(RankG < RankF && RankF < RankE && RankE < RankD && RankD < RankC && RankC < RankB &&
		RankB < RankA && RankA < RankS && RankS < RankSS && RankSS < RankSSS) {
		t.Fatal("rank ordinals are not strictly increasing")
	}
}
