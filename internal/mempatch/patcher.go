package mempatch

import (
	"github.com/pkg/errors"

	"crylauncher/internal/arch"
	"crylauncher/internal/security"
)

// Options contains the apply time addresses that operations reference.
type Options struct {
	// ErrorHandler is the address that trampolines with the
	// ErrorHandler reference redirect to.
	ErrorHandler uintptr
}

// Patcher applies cataloged patch operations to loaded target images.
// It must not run concurrently with itself or with execution of the
// code it patches, the caller serializes it inside the startup window.
type Patcher struct {
	catalog Catalog
	variant arch.Variant
	memory  Memory
	opts    *Options
}

// NewPatcher is used to create a patcher that applies operations from
// the catalog through the given memory accessor.
func NewPatcher(catalog Catalog, variant arch.Variant, memory Memory, opts *Options) (*Patcher, error) {
	if catalog == nil {
		return nil, errors.New("empty patch catalog")
	}
	if variant != arch.I386 && variant != arch.AMD64 {
		return nil, errors.Errorf("unsupported architecture variant: %s", variant)
	}
	if memory == nil {
		return nil, errors.New("no memory accessor")
	}
	if opts == nil {
		opts = new(Options)
	}
	patcher := Patcher{
		catalog: catalog,
		variant: variant,
		memory:  memory,
		opts:    opts,
	}
	return &patcher, nil
}

// Apply is used to apply one capability to a loaded image. Operations
// are applied in catalog order, the first failed write aborts the rest
// and already written operations stay in place. A build without
// operations for this capability is a successful no-op.
func (p *Patcher) Apply(image Image, cap Capability, build int) error {
	ops, err := p.catalog.Lookup(cap, p.variant, build)
	if err != nil {
		return err
	}
	for i := 0; i < len(ops); i++ {
		err = p.apply(image, ops[i])
		if err != nil {
			return errors.WithMessagef(err, "failed to apply capability %q to %s", cap, image.Name)
		}
	}
	return nil
}

func (p *Patcher) apply(image Image, op Op) error {
	switch op := op.(type) {
	case NopFill:
		return p.memory.FillNop(image.Base+op.Offset, op.Size)
	case Overwrite:
		return p.memory.FillMem(image.Base+op.Offset, op.Data)
	case Trampoline:
		return p.applyTrampoline(image, op)
	case VTableNeuter:
		return p.applyVTableNeuter(image, op)
	default:
		return errors.Errorf("unknown patch operation: %T", op)
	}
}

func (p *Patcher) applyTrampoline(image Image, op Trampoline) error {
	operands := make([]StubOperand, len(op.Operands))
	for i := 0; i < len(op.Operands); i++ {
		addr, err := p.resolve(op.Operands[i].Ref)
		if err != nil {
			return err
		}
		operands[i] = StubOperand{Offset: op.Operands[i].Offset, Addr: addr}
	}
	stub, err := MakeStub(op.Template, operands, p.variant.PointerSize())
	if err != nil {
		return err
	}
	defer security.FlushBytes(stub)
	return p.memory.FillMem(image.Base+op.Offset, stub)
}

func (p *Patcher) applyVTableNeuter(image Image, op VTableNeuter) error {
	addr := image.Base + op.Offset
	entries, err := p.memory.ReadPointers(addr, op.Total)
	if err != nil {
		return err
	}
	entries, err = neuterVTable(entries, op.Keep)
	if err != nil {
		return err
	}
	table, err := encodePointers(entries, p.variant.PointerSize())
	if err != nil {
		return err
	}
	return p.memory.FillMem(addr, table)
}

// resolve maps an address reference to the address the caller supplied
// in the options.
func (p *Patcher) resolve(ref AddrRef) (uintptr, error) {
	switch ref {
	case ErrorHandler:
		if p.opts.ErrorHandler == 0 {
			return 0, errors.New("error handler address is not set")
		}
		return p.opts.ErrorHandler, nil
	default:
		return 0, errors.Errorf("unknown address reference: %d", ref)
	}
}
