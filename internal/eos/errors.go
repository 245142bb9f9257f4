package eos

import "errors"

var (
	// ErrLengthMismatch indicates field arrays of different lengths.
	ErrLengthMismatch = errors.New("eos: field arrays differ in length")

	// ErrUnknownKind indicates a closure model name outside the closed set.
	ErrUnknownKind = errors.New("eos: unknown closure model kind")

	// ErrUnknownVariant indicates a Model value the dispatcher has no case for.
	ErrUnknownVariant = errors.New("eos: no dispatch case for model variant")

	// ErrDuplicateID indicates two models in a collection sharing an id.
	ErrDuplicateID = errors.New("eos: duplicate model id")

	// ErrMissingParam indicates a required model parameter was not supplied.
	ErrMissingParam = errors.New("eos: missing model parameter")

	// ErrUnknownParam indicates a parameter name the model does not take.
	ErrUnknownParam = errors.New("eos: unknown model parameter")
)
