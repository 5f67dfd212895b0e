// Package types implements the value types shared by the ledgerbuild parsers,
// the command runner and the application layer.
package types

import "fmt"

// Addr represents a virtual address taken from an ELF symbol table.
// ELF32 values are widened to 64 bits.
type Addr uint64

// String renders the address in hexadecimal.
func (a Addr) String() string {
	return fmt.Sprintf("%#x", uint64(a))
}

// Region represents a memory range bounded by two linker-defined symbols.
// End is exclusive.
type Region struct {
	// Address of the symbol opening the region.
	Start Addr
	// Address of the symbol closing the region.
	End Addr
}

// Validate checks that the region does not end before it starts.
func (r Region) Validate() bool {
	return r.End >= r.Start
}

// Size returns the byte length of the region. Only meaningful when Validate
// reports true.
func (r Region) Size() uint64 {
	return uint64(r.End - r.Start)
}

// String returns a string representation of the region
func (r Region) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}
