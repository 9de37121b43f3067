// SPDX-License-Identifier: MIT

package engine

// DescriptorConfig lists the settings compiled into a Descriptor.
// The zero value is the default descriptor: no transpose, merge into the
// output, mask read by value.
type DescriptorConfig struct {
	ReplaceOutput   bool // delete unselected output entries
	StructuralMask  bool // mask selects by presence, ignoring values
	ComplementMask  bool // invert the mask predicate
	TransposeInput0 bool // transpose the first matrix operand
	TransposeInput1 bool // transpose the second matrix operand
}

// Descriptor is an immutable execution configuration.
type Descriptor struct {
	cfg DescriptorConfig
}

// NewDescriptor compiles cfg into a descriptor handle.
func NewDescriptor(cfg DescriptorConfig) (*Descriptor, Info) {
	return &Descriptor{cfg: cfg}, Success
}

// Config returns a copy of the compiled settings.
func (d *Descriptor) Config() DescriptorConfig { return d.cfg }

// settings resolves a possibly-nil descriptor to its configuration.
func (d *Descriptor) settings() DescriptorConfig {
	if d == nil {
		return DescriptorConfig{}
	}

	return d.cfg
}
