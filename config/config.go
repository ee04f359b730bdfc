// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the engine-wide defaults a session is seeded with:
// float precision, output radix, and the calculation-mode/display flags a
// fresh UndoableState otherwise hardcodes. Kept in the teacher's own style
// (a plain struct behind getter/setter methods, nil-receiver-safe reads
// defaulting sensibly) rather than reworked into a generic options struct,
// since that style is exactly what this concern needs and nothing here
// calls for a third-party configuration library.
package config

import "fifi-core/numeric"

// A Config holds the engine-wide defaults used to seed a new session's
// state. The zero value of a Config holds the default values for all
// settings, mirroring the teacher's "zero value is valid" convention.
type Config struct {
	precision    uint
	outputRadix  int
	infinity     bool
	graphicsMode bool
}

// Precision returns the binary precision new floating-point numeric.Number
// values are constructed with. Zero (the default) means
// numeric.DefaultFloatPrec.
func (c *Config) Precision() uint {
	if c == nil || c.precision == 0 {
		return numeric.DefaultFloatPrec
	}
	return c.precision
}

// SetPrecision overrides the binary precision used for new floats.
func (c *Config) SetPrecision(bits uint) {
	c.precision = bits
}

// OutputRadix returns the radix a fresh session displays numbers in.
// Zero (the default) means base 10.
func (c *Config) OutputRadix() int {
	if c == nil || c.outputRadix == 0 {
		return 10
	}
	return c.outputRadix
}

// SetOutputRadix overrides the default display radix.
func (c *Config) SetOutputRadix(radix int) {
	c.outputRadix = radix
}

// Infinity returns whether a fresh session starts in infinity-permissive
// calculation mode (spec.md §3's infinity flag).
func (c *Config) Infinity() bool {
	if c == nil {
		return false
	}
	return c.infinity
}

// SetInfinity sets the default infinity-mode flag.
func (c *Config) SetInfinity(v bool) {
	c.infinity = v
}

// GraphicsEnabled returns whether a fresh session starts with graphics
// rendering enabled.
func (c *Config) GraphicsEnabled() bool {
	if c == nil {
		return false
	}
	return c.graphicsMode
}

// SetGraphicsEnabled sets the default graphics-enabled flag.
func (c *Config) SetGraphicsEnabled(v bool) {
	c.graphicsMode = v
}

// Apply pushes this config's numeric precision into the shared
// numeric.FloatPrec package variable, widening every subsequently
// constructed float. Called once by session.New before the rest of a
// session's state is built.
func (c *Config) Apply() {
	numeric.FloatPrec = c.Precision()
}
