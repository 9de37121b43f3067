// SPDX-License-Identifier: MIT

// Package options compiles per-operation execution settings into immutable
// engine descriptors.
//
// Defaults (the zero configuration):
//   - no operand is transposed,
//   - unselected output entries are kept (merge),
//   - the mask is read by value and not complemented.
//
// Each OperatorOptions carries two compiled descriptors: the one described by
// its flags and a twin with the mask complement inverted. Appliers pick the
// twin when the mask they are given is itself complemented.
package options

import (
	"errors"

	"github.com/katalvlaran/graphblas/engine"
)

// ErrInvalidCombination reports contradicting setters given to New,
// e.g. WithReplaceOutput together with WithMergeOutput.
var ErrInvalidCombination = errors.New("options: invalid combination")

// OperatorOptions is an immutable, shareable execution configuration.
type OperatorOptions struct {
	cfg          engine.DescriptorConfig
	desc         *engine.Descriptor
	complemented *engine.Descriptor
}

// Option sets one flag during New.
type Option func(*builder)

type builder struct {
	cfg                  engine.DescriptorConfig
	replace, merge       bool
	structural, valueSet bool
}

// WithTransposeFirstOperand transposes the first matrix operand.
func WithTransposeFirstOperand() Option {
	return func(b *builder) { b.cfg.TransposeInput0 = true }
}

// WithTransposeSecondOperand transposes the second matrix operand.
func WithTransposeSecondOperand() Option {
	return func(b *builder) { b.cfg.TransposeInput1 = true }
}

// WithReplaceOutput deletes output entries the mask does not select.
func WithReplaceOutput() Option {
	return func(b *builder) { b.replace = true }
}

// WithMergeOutput keeps output entries the mask does not select (default).
func WithMergeOutput() Option {
	return func(b *builder) { b.merge = true }
}

// WithStructuralMask selects by mask presence, ignoring stored values.
func WithStructuralMask() Option {
	return func(b *builder) { b.structural = true }
}

// WithValueMask selects mask entries whose value casts to true (default).
func WithValueMask() Option {
	return func(b *builder) { b.valueSet = true }
}

// WithComplementedMask inverts the mask predicate.
func WithComplementedMask() Option {
	return func(b *builder) { b.cfg.ComplementMask = true }
}

// New compiles opts into an OperatorOptions.
//
// Errors:
//   - ErrInvalidCombination for replace+merge or structural+value.
func New(opts ...Option) (OperatorOptions, error) {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}
	if b.replace && b.merge {
		return OperatorOptions{}, ErrInvalidCombination
	}
	if b.structural && b.valueSet {
		return OperatorOptions{}, ErrInvalidCombination
	}
	b.cfg.ReplaceOutput = b.replace
	b.cfg.StructuralMask = b.structural

	return compile(b.cfg), nil
}

// NewDefault returns the default configuration.
func NewDefault() OperatorOptions { return compile(engine.DescriptorConfig{}) }

func compile(cfg engine.DescriptorConfig) OperatorOptions {
	twin := cfg
	twin.ComplementMask = !cfg.ComplementMask
	desc, _ := engine.NewDescriptor(cfg)
	complemented, _ := engine.NewDescriptor(twin)

	return OperatorOptions{cfg: cfg, desc: desc, complemented: complemented}
}

// Descriptor returns the compiled descriptor. With invertMask the twin whose
// mask complement is flipped is returned instead.
func (o OperatorOptions) Descriptor(invertMask bool) *engine.Descriptor {
	if o.desc == nil {
		// Zero OperatorOptions behaves as NewDefault.
		return NewDefault().Descriptor(invertMask)
	}
	if invertMask {
		return o.complemented
	}

	return o.desc
}

// TransposeFirstOperand reports whether the first operand is transposed.
func (o OperatorOptions) TransposeFirstOperand() bool { return o.cfg.TransposeInput0 }

// TransposeSecondOperand reports whether the second operand is transposed.
func (o OperatorOptions) TransposeSecondOperand() bool { return o.cfg.TransposeInput1 }

// ReplaceOutput reports replace (true) or merge (false) semantics.
func (o OperatorOptions) ReplaceOutput() bool { return o.cfg.ReplaceOutput }

// StructuralMask reports whether masks are read structurally.
func (o OperatorOptions) StructuralMask() bool { return o.cfg.StructuralMask }

// ComplementedMask reports whether the mask predicate is inverted.
func (o OperatorOptions) ComplementedMask() bool { return o.cfg.ComplementMask }
