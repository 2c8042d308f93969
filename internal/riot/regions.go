package riot

import "fmt"

// Region is a routing region for the account and match endpoint
// families. League-V4 lives on per-platform hosts instead; Platform
// maps each region to its primary platform.
type Region string

const (
	RegionEurope   Region = "europe"
	RegionAmericas Region = "americas"
	RegionAsia     Region = "asia"
	RegionSea      Region = "sea"
)

// ParseRegion rejects unknown regions instead of silently defaulting.
func ParseRegion(s string) (Region, error) {
	switch r := Region(s); r {
	case RegionEurope, RegionAmericas, RegionAsia, RegionSea:
		return r, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Platform returns the league platform host prefix for the region.
func (r Region) Platform() string {
	switch r {
	case RegionAmericas:
		return "na1"
	case RegionAsia:
		return "kr"
	case RegionSea:
		return "sg2"
	default:
		return "euw1"
	}
}
