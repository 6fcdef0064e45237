package config

import "fmt"

// RedactedString is a string holding a secret. It prints, marshals and
// serializes as a placeholder so token values and passwords never end up in
// logs or serialized config dumps. Cast to string to read the real value.
type RedactedString string

func (r RedactedString) redacted() string {
	return fmt.Sprintf("<redacted-%d-chars>", len(r))
}

func (r RedactedString) String() string {
	return r.redacted()
}

func (r RedactedString) MarshalText() ([]byte, error) {
	return []byte(r.redacted()), nil
}

func (r RedactedString) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.redacted())), nil
}

func (r RedactedString) MarshalBinary() ([]byte, error) {
	return []byte(r.redacted()), nil
}
