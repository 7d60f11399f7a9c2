package models

import "strings"

type OptionType string

const (
	Call OptionType = "CALL"
	Put  OptionType = "PUT"
)

func ParseOptionType(s string) (OptionType, error) {
	t := OptionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", invalid(FieldType, s)
	}
	return t, nil
}

func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

// Opposite returns the put-call parity counterpart of t.
func (t OptionType) Opposite() OptionType {
	if t == Call {
		return Put
	}
	return Call
}

func (t OptionType) String() string {
	return string(t)
}

// UnmarshalText accepts either case, so config files and request bodies may
// spell the type as "call" or "CALL".
func (t *OptionType) UnmarshalText(text []byte) error {
	parsed, err := ParseOptionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
