// Package model defines the data structures for wordlist mutation.
package model

import (
	"errors"
	"fmt"
)

// Mode selects where the tokens for one side of a word come from.
type Mode int

const (
	// ModeNone leaves the side untouched.
	ModeNone Mode = iota
	// ModeSpecial uses the fixed special-character set.
	ModeSpecial
	// ModeNumber uses a decimal range such as 0-99.
	ModeNumber
)

// ErrUnknownMode is returned when a mode name is not one of the accepted choices.
var ErrUnknownMode = errors.New("unknown mode")

const (
	modeNoneName    = ""
	modeSpecialName = "special"
	modeNumberName  = "number"
)

// ModeChoices lists the names accepted on the command line.
var ModeChoices = []string{modeSpecialName, modeNumberName}

// ParseMode converts a mode name into a Mode. The empty string maps to ModeNone.
func ParseMode(name string) (Mode, error) {
	switch name {
	case modeNoneName:
		return ModeNone, nil
	case modeSpecialName:
		return ModeSpecial, nil
	case modeNumberName:
		return ModeNumber, nil
	}

	return ModeNone, fmt.Errorf("%w %q (choose from %q, %q)", ErrUnknownMode, name, modeSpecialName, modeNumberName)
}

// String returns the command-line name of the mode.
func (md Mode) String() string {
	switch md {
	case ModeSpecial:
		return modeSpecialName
	case ModeNumber:
		return modeNumberName
	case ModeNone:
		return modeNoneName
	}

	return fmt.Sprintf("Mode(%d)", int(md))
}
