// SPDX-License-Identifier: MIT

package engine

import "fmt"

// UnaryOp is an immutable handle for z = f(x).
type UnaryOp struct {
	name  string
	xtype *Type
	ztype *Type
	fn    func(x any) any
}

// BinaryOp is an immutable handle for z = f(x, y).
type BinaryOp struct {
	name  string
	xtype *Type
	ytype *Type
	ztype *Type
	fn    func(x, y any) any
}

// Monoid is an associative BinaryOp over one domain plus its identity.
type Monoid struct {
	op       *BinaryOp
	identity any
}

// Semiring pairs an additive Monoid with a multiplicative BinaryOp.
type Semiring struct {
	add *Monoid
	mul *BinaryOp
}

// NewUnaryOp creates a unary operator. fn receives x already cast to xtype and
// must return a value of ztype's Go type.
func NewUnaryOp(name string, ztype, xtype *Type, fn func(x any) any) (*UnaryOp, Info) {
	if ztype == nil || xtype == nil || fn == nil {
		return nil, NullPointer
	}

	return &UnaryOp{name: name, xtype: xtype, ztype: ztype, fn: fn}, Success
}

// NewBinaryOp creates a binary operator. fn receives x and y already cast to
// xtype and ytype and must return a value of ztype's Go type.
func NewBinaryOp(name string, ztype, xtype, ytype *Type, fn func(x, y any) any) (*BinaryOp, Info) {
	if ztype == nil || xtype == nil || ytype == nil || fn == nil {
		return nil, NullPointer
	}

	return &BinaryOp{name: name, xtype: xtype, ytype: ytype, ztype: ztype, fn: fn}, Success
}

// NewMonoid creates a monoid. The operator's three domains must coincide and
// the identity must be castable into them.
func NewMonoid(op *BinaryOp, identity any) (*Monoid, Info) {
	if op == nil {
		return nil, NullPointer
	}
	if op.xtype != op.ytype || op.xtype != op.ztype {
		return nil, DomainMismatch
	}
	if TypeOfValue(identity) == nil {
		return nil, DomainMismatch
	}

	return &Monoid{op: op, identity: Cast(identity, op.ztype)}, Success
}

// NewSemiring creates a semiring. The multiplicative output domain must equal
// the additive monoid's domain.
func NewSemiring(add *Monoid, mul *BinaryOp) (*Semiring, Info) {
	if add == nil || mul == nil {
		return nil, NullPointer
	}
	if mul.ztype != add.op.ztype {
		return nil, DomainMismatch
	}

	return &Semiring{add: add, mul: mul}, Success
}

// Name returns the operator's name, or "" for a nil operator.
func (o *UnaryOp) Name() string {
	if o == nil {
		return ""
	}

	return o.name
}

// Name returns the operator's name, or "" for a nil operator.
func (o *BinaryOp) Name() string {
	if o == nil {
		return ""
	}

	return o.name
}

// OutputType returns the operator's z domain.
func (o *BinaryOp) OutputType() *Type { return o.ztype }

// Operator returns the monoid's binary operator.
func (m *Monoid) Operator() *BinaryOp { return m.op }

// Identity returns the monoid's identity value.
func (m *Monoid) Identity() any { return m.identity }

// Add returns the semiring's additive monoid.
func (s *Semiring) Add() *Monoid { return s.add }

// Multiply returns the semiring's multiplicative operator.
func (s *Semiring) Multiply() *BinaryOp { return s.mul }

// apply evaluates the unary operator on a value of any built-in domain.
func (o *UnaryOp) apply(x any) any {
	return o.fn(Cast(x, o.xtype))
}

// apply evaluates the binary operator on values of any built-in domain.
func (o *BinaryOp) apply(x, y any) any {
	return o.fn(Cast(x, o.xtype), Cast(y, o.ytype))
}

// guard runs fn and converts a panic inside a user function into Panic.
func guard(fn func()) (info Info, detail string) {
	defer func() {
		if r := recover(); r != nil {
			info, detail = Panic, fmt.Sprintf("operator panicked: %v", r)
		}
	}()
	fn()

	return Success, ""
}
