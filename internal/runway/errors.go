package runway

import "errors"

var (
	// ErrInvalidAmount is returned when a monetary field is negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrEmptyRoleTitle is returned when a hire scenario has no role title.
	ErrEmptyRoleTitle = errors.New("role title is required")
	// ErrInvalidRiskLevel signals a risk level outside Safe, Risky and Dangerous.
	ErrInvalidRiskLevel = errors.New("invalid risk level")
)
