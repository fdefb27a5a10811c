package generator

import "strings"

// Strength is the coarse rating shown next to a generated password.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	default:
		return ""
	}
}

// Rate scores password by its length and the options it was generated with.
// An empty password has no strength.
func Rate(password string, opts Options) Strength {
	if password == "" {
		return StrengthNone
	}

	score := 0.0
	switch n := len(password); {
	case n >= 12:
		score += 2
	case n >= 8:
		score++
	}
	if opts.Numbers {
		score++
	}
	if opts.Symbols {
		score++
	}
	if opts.ExcludeLookAlikes {
		score += 0.5
	}

	switch {
	case score >= 4:
		return StrengthStrong
	case score >= 2.5:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// Detect reports the options a typed password would have been generated
// with, so it can be rated alongside generated ones.
func Detect(password string) Options {
	return Options{
		Length:            len(password),
		Numbers:           strings.ContainsAny(password, digits),
		Symbols:           strings.ContainsAny(password, symbols),
		ExcludeLookAlikes: password != "" && !strings.ContainsAny(password, lookAlike),
	}
}
