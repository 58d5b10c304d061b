// File: experimental/experimental.go

// Package experimental carries the former name of the tweezer device model.
//
// Deprecated: the model lives in package tweezer now. The aliases here keep
// older callers compiling; new code should import tweezer directly.
package experimental

import "github.com/katalvlaran/qryddev/tweezer"

// DefaultLayoutName is the former name of tweezer.DefaultLayoutName.
//
// Deprecated: use tweezer.DefaultLayoutName.
const DefaultLayoutName = tweezer.DefaultLayoutName

// Device is the former name of tweezer.Device.
//
// Deprecated: use tweezer.Device.
type Device = tweezer.Device

// Option is the former name of tweezer.Option.
//
// Deprecated: use tweezer.Option.
type Option = tweezer.Option

// New forwards to tweezer.New.
//
// Deprecated: use tweezer.New.
func New(opts ...Option) *Device { return tweezer.New(opts...) }

// WithSeed forwards to tweezer.WithSeed.
//
// Deprecated: use tweezer.WithSeed.
var WithSeed = tweezer.WithSeed

// WithControlledZPhaseRelation forwards to tweezer.WithControlledZPhaseRelation.
//
// Deprecated: use tweezer.WithControlledZPhaseRelation.
var WithControlledZPhaseRelation = tweezer.WithControlledZPhaseRelation

// WithControlledPhasePhaseRelation forwards to
// tweezer.WithControlledPhasePhaseRelation.
//
// Deprecated: use tweezer.WithControlledPhasePhaseRelation.
var WithControlledPhasePhaseRelation = tweezer.WithControlledPhasePhaseRelation
