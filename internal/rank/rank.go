// Package rank orders free-text ranked standings like
// "GOLD IV - 10 LP" so the best one across a player's accounts can be
// picked deterministically.
package rank

import (
	"strconv"
	"strings"
)

var tiers = [...]string{
	"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM",
	"EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER",
}

// masterIndex is the first tier without divisions; MASTER and above
// order over every divisioned tier.
const masterIndex = 7

// divisionlessValue orders MASTER+ above division I of the tiers below.
const divisionlessValue = 5

var tierRank = func() map[string]int {
	m := make(map[string]int, len(tiers))
	for i, t := range tiers {
		m[t] = i
	}
	return m
}()

var divisionValue = map[string]int{"V": 0, "IV": 1, "III": 2, "II": 3, "I": 4}

// Key orders ranks by (tier, division, league points). The sentinel
// (-1,-1,-1) marks unranked or unparseable input and loses every
// comparison.
type Key struct {
	Tier         int
	Division     int
	LeaguePoints int
}

var Sentinel = Key{Tier: -1, Division: -1, LeaguePoints: -1}

func (k Key) Valid() bool { return k.Tier >= 0 }

// Less reports whether k orders strictly below other.
func (k Key) Less(other Key) bool {
	if k.Tier != other.Tier {
		return k.Tier < other.Tier
	}
	if k.Division != other.Division {
		return k.Division < other.Division
	}
	return k.LeaguePoints < other.LeaguePoints
}

// Parse is total: any input yields a key, with unranked or unparseable
// strings mapping to the sentinel. Tier matching is token-exact, so
// GRANDMASTER never parses as MASTER. League points are read from the
// token before "LP" and accept both "- 40 LP" and "(40 LP)" forms.
func Parse(s string) Key {
	su := strings.ToUpper(strings.TrimSpace(s))
	if su == "" || strings.Contains(su, "UNRANKED") {
		return Sentinel
	}
	su = strings.NewReplacer("(", " ", ")", " ", "-", " ").Replace(su)
	tokens := strings.Fields(su)

	tier := -1
	for _, tok := range tokens {
		if v, ok := tierRank[tok]; ok {
			tier = v
			break
		}
	}
	if tier < 0 {
		return Sentinel
	}

	division := 0
	if tier >= masterIndex {
		division = divisionlessValue
	} else {
		for _, tok := range tokens {
			if v, ok := divisionValue[tok]; ok {
				division = v
				break
			}
		}
	}

	lp := 0
	for i, tok := range tokens {
		if tok == "LP" && i > 0 {
			if v, err := strconv.Atoi(tokens[i-1]); err == nil {
				lp = v
			}
			break
		}
	}

	return Key{Tier: tier, Division: division, LeaguePoints: lp}
}

// Best returns the candidate whose parsed key is greatest, or ok=false
// when nothing parses above the sentinel. Candidates with equal keys
// have no defined preference; either may be returned.
func Best(candidates []string) (string, bool) {
	best := Sentinel
	var bestStr string
	found := false
	for _, s := range candidates {
		k := Parse(s)
		if !k.Valid() {
			continue
		}
		if !found || best.Less(k) {
			best, bestStr, found = k, s, true
		}
	}
	return bestStr, found
}
