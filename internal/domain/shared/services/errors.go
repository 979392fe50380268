package services

import "errors"

// ErrLinkSpaceExhausted means every attempt collided with an existing access link.
var ErrLinkSpaceExhausted = errors.New("could not generate a unique access link")
