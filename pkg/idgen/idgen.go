// Package idgen produces process-wide unique opaque identifiers.
package idgen

import "github.com/google/uuid"

// Generator yields a new identifier on every call.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }

// UUID generates random (version 4) UUIDs.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Default is the generator used when none is injected.
var Default Generator = UUID{}
