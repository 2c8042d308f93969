package rank

import "testing"

func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		"", "Unranked", "UNRANKED", "garbage", "I I I LP",
		"GOLD", "- 40 LP", "####", "12345", "MASTERY",
		"GOLD IV - 10 LP", "  silver ii - 5 lp  ",
	}
	for _, in := range inputs {
		// must not panic, and must return either a valid key or the sentinel
		k := Parse(in)
		if !k.Valid() && k != Sentinel {
			t.Errorf("Parse(%q) returned an invalid non-sentinel key: %+v", in, k)
		}
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"IRON IV - 0 LP", Key{0, 1, 0}},
		{"SILVER III - 40 LP", Key{2, 2, 40}},
		{"GOLD IV - 10 LP", Key{3, 1, 10}},
		{"DIAMOND I - 100 LP", Key{6, 4, 100}},
		{"MASTER - 0 LP", Key{7, 5, 0}},
		{"GRANDMASTER - 400 LP", Key{8, 5, 400}},
		{"CHALLENGER - 1200 LP", Key{9, 5, 1200}},
		{"SILVER III (40 LP)", Key{2, 2, 40}},
		{"gold iv - 10 lp", Key{3, 1, 10}},
		{"Unranked", Sentinel},
		{"", Sentinel},
		{"nonsense", Sentinel},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGrandmasterIsNotMaster(t *testing.T) {
	gm := Parse("GRANDMASTER - 10 LP")
	m := Parse("MASTER - 900 LP")
	if !m.Less(gm) {
		t.Errorf("expected GRANDMASTER %+v to order above MASTER %+v", gm, m)
	}
}

func TestTopTiersBeatDivisionedTiers(t *testing.T) {
	master := Parse("MASTER - 0 LP")
	diamond := Parse("DIAMOND I - 100 LP")
	if !diamond.Less(master) {
		t.Errorf("expected MASTER %+v to order above DIAMOND I %+v", master, diamond)
	}
}

func TestBestPicksHighest(t *testing.T) {
	got, ok := Best([]string{"SILVER III - 40 LP", "GOLD IV - 10 LP", "Unranked"})
	if !ok || got != "GOLD IV - 10 LP" {
		t.Errorf("Best = (%q, %v), want (\"GOLD IV - 10 LP\", true)", got, ok)
	}
}

func TestBestIsMaximal(t *testing.T) {
	candidates := []string{
		"IRON II - 90 LP",
		"EMERALD IV - 1 LP",
		"EMERALD II - 55 LP",
		"PLATINUM I - 99 LP",
		"Unranked",
		"not a rank",
	}
	got, ok := Best(candidates)
	if !ok {
		t.Fatal("expected a best candidate")
	}
	bestKey := Parse(got)
	for _, c := range candidates {
		k := Parse(c)
		if !k.Valid() {
			continue
		}
		if bestKey.Less(k) {
			t.Errorf("Best returned %q but %q orders above it", got, c)
		}
	}
}

func TestBestWithNoValidCandidates(t *testing.T) {
	if _, ok := Best([]string{"Unranked", "", "???"}); ok {
		t.Error("expected no best candidate when nothing parses")
	}
	if _, ok := Best(nil); ok {
		t.Error("expected no best candidate for empty input")
	}
}

func TestLeaguePointsBreakDivisionTies(t *testing.T) {
	lo := Parse("GOLD IV - 10 LP")
	hi := Parse("GOLD IV - 80 LP")
	if !lo.Less(hi) {
		t.Errorf("expected %+v to order below %+v", lo, hi)
	}
}
