package tasks

import "strings"

// Flag is a boolean that can also be unset, so an absent filter stays
// distinct from an explicit false.
type Flag int

const (
	FlagUnset Flag = iota
	FlagTrue
	FlagFalse
)

// ParseFlag accepts the usual textual booleans. Anything else is FlagUnset.
func ParseFlag(value string) Flag {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return FlagTrue
	case "0", "false", "off", "no":
		return FlagFalse
	default:
		return FlagUnset
	}
}

// FlagFromValue converts a decoded JSON value. ok is false when the value is
// present but not a recognisable boolean.
func FlagFromValue(value any) (flag Flag, ok bool) {
	switch v := value.(type) {
	case nil:
		return FlagUnset, true
	case bool:
		return FlagOf(v), true
	case float64:
		switch v {
		case 1:
			return FlagTrue, true
		case 0:
			return FlagFalse, true
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return FlagUnset, true
		}
		if flag := ParseFlag(v); flag != FlagUnset {
			return flag, true
		}
	}
	return FlagUnset, false
}

func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

func (f Flag) IsSet() bool {
	return f != FlagUnset
}

// Bool reports the flag value; FlagUnset reads as false.
func (f Flag) Bool() bool {
	return f == FlagTrue
}
