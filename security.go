package moneybox

import (
	"errors"
	"regexp"
)

// Security errors.
var (
	ErrBadPIN   = errors.New("pin must be exactly 4 digits")
	ErrNoPIN    = errors.New("no pin has been set")
	ErrWrongPIN = errors.New("wrong pin")
	ErrLocked   = errors.New("box is locked")
)

var pinRE = regexp.MustCompile(`^\d{4}$`)

// Security is the PIN gate and the privacy display flag. It is a UI gate,
// not a security boundary: the underlying data is not encrypted.
type Security struct {
	IsLocked    bool   `json:"isLocked"`
	PIN         string `json:"pin,omitempty"`
	PrivacyMode bool   `json:"privacyMode"`

	// mismatch is the transient wrong-pin flag consumed by the presentation
	// layer. It is not persisted.
	mismatch bool
}

// HasPIN reports whether a pin has been set.
func (s *Security) HasPIN() bool { return s.PIN != "" }

// SetPIN accepts a new pin of exactly 4 ASCII digits and leaves the gate
// unlocked. Changing the pin requires the gate to be unlocked.
func (s *Security) SetPIN(pin string) error {
	if s.IsLocked {
		return ErrLocked
	}
	if !pinRE.MatchString(pin) {
		return ErrBadPIN
	}
	s.PIN = pin
	s.IsLocked = false
	s.mismatch = false
	return nil
}

// Lock engages the gate. It requires a pin to be set, otherwise the lock
// would be meaningless.
func (s *Security) Lock() error {
	if !s.HasPIN() {
		return ErrNoPIN
	}
	s.IsLocked = true
	return nil
}

// Unlock disengages the gate iff candidate matches the stored pin exactly.
// On mismatch the gate stays locked and the mismatch flag is set; the stored
// pin is never revealed.
func (s *Security) Unlock(candidate string) error {
	if !s.IsLocked {
		return nil
	}
	if candidate != s.PIN {
		s.mismatch = true
		return ErrWrongPIN
	}
	s.IsLocked = false
	s.mismatch = false
	return nil
}

// Mismatch reports whether the last unlock attempt failed. The flag clears on
// the next successful unlock.
func (s *Security) Mismatch() bool { return s.mismatch }

// TogglePrivacy flips the privacy display flag and returns the new value.
// Privacy mode only masks rendered amounts; it never restricts data access.
func (s *Security) TogglePrivacy() bool {
	s.PrivacyMode = !s.PrivacyMode
	return s.PrivacyMode
}
