package admin

import "crypto/subtle"

// Verifier checks admin credentials for privileged operations.
type Verifier interface {
	Verify(pin string) bool
}

type verifier struct {
	pin []byte
}

// New creates a Verifier for the configured PIN.
func New(pin string) Verifier {
	return &verifier{pin: []byte(pin)}
}

// Verify compares in constant time. An empty configured PIN matches nothing,
// so an unset ADMIN_PIN locks every privileged operation rather than opening
// them.
func (v *verifier) Verify(pin string) bool {
	if len(v.pin) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.pin, []byte(pin)) == 1
}
