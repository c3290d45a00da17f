package runway

import "fmt"

// RiskLevel is the categorical assessment of post-hire runway.
type RiskLevel string

const (
	RiskSafe      RiskLevel = "Safe"
	RiskRisky     RiskLevel = "Risky"
	RiskDangerous RiskLevel = "Dangerous"
)

// Valid reports whether r is one of the three known levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskSafe, RiskRisky, RiskDangerous:
		return true
	}
	return false
}

// Severity orders levels Safe < Risky < Dangerous. Unknown levels return -1.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskSafe:
		return 0
	case RiskRisky:
		return 1
	case RiskDangerous:
		return 2
	}
	return -1
}

func (r RiskLevel) String() string { return string(r) }

// ParseRiskLevel converts s into a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRiskLevel, s)
	}
	return r, nil
}
