// File: internal/parsers/elfsymbols/region_reader.go
package elfsymbols

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-ledgerbuild/internal/interfaces"
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
)

// Linker symbols bounding the NVRAM data region
const (
	DefaultStartSymbol = "_nvram_data"
	DefaultEndSymbol   = "_envram_data"
)

var (
	// ErrReadFailed is returned when the ELF file cannot be opened or read
	ErrReadFailed = errors.New("cannot read ELF file")
	// ErrMalformedBinary is returned when the buffer is not a valid ELF image
	ErrMalformedBinary = errors.New("malformed ELF binary")
	// ErrMissingSymbol is returned when a boundary symbol cannot be resolved
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrInvalidRegion is returned when the end symbol precedes the start symbol
	ErrInvalidRegion = errors.New("invalid region")
)

// RegionReader computes region sizes from ELF files
type RegionReader struct {
	fs          afero.Fs
	startSymbol string
	endSymbol   string
}

// Ensure RegionReader implements the RegionReader interface
var _ interfaces.RegionReader = (*RegionReader)(nil)

// NewRegionReader creates a reader bounded by the given symbols.
//
// Parameters:
//   - fs: Filesystem the ELF file is read from
//   - startSymbol: Symbol marking the first byte of the region (empty for _nvram_data)
//   - endSymbol: Symbol marking the end of the region (empty for _envram_data)
func NewRegionReader(fs afero.Fs, startSymbol, endSymbol string) (*RegionReader, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if startSymbol == "" {
		startSymbol = DefaultStartSymbol
	}
	if endSymbol == "" {
		endSymbol = DefaultEndSymbol
	}
	if startSymbol == endSymbol {
		return nil, fmt.Errorf("start and end symbol must differ, both are %q", startSymbol)
	}

	return &RegionReader{
		fs:          fs,
		startSymbol: startSymbol,
		endSymbol:   endSymbol,
	}, nil
}

// StartSymbol returns the symbol bounding the start of the region
func (r *RegionReader) StartSymbol() string {
	return r.startSymbol
}

// EndSymbol returns the symbol bounding the end of the region
func (r *RegionReader) EndSymbol() string {
	return r.endSymbol
}

// ReadRegion reads the whole file at path and resolves the region bounds
func (r *RegionReader) ReadRegion(path string) (types.Region, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return types.Region{}, fmt.Errorf("%w %s: %w", ErrReadFailed, path, err)
	}

	return ParseRegion(data, r.startSymbol, r.endSymbol)
}

// ParseRegion parses data as an ELF image and returns the region bounded by
// startSymbol and endSymbol. When a name occurs more than once in the symbol
// table the last occurrence wins.
func ParseRegion(data []byte, startSymbol, endSymbol string) (types.Region, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return types.Region{}, fmt.Errorf("%w: %w", ErrMalformedBinary, err)
	}
	defer f.Close()

	symbols, err := f.Symbols()
	if err != nil {
		return types.Region{}, fmt.Errorf("%w: reading symbol table: %w", ErrMissingSymbol, err)
	}
	if err := checkSymbolNames(f); err != nil {
		return types.Region{}, err
	}

	var start, end uint64
	var haveStart, haveEnd bool
	for _, sym := range symbols {
		switch sym.Name {
		case startSymbol:
			start, haveStart = sym.Value, true
		case endSymbol:
			end, haveEnd = sym.Value, true
		}
	}

	if !haveStart {
		return types.Region{}, fmt.Errorf("%w: %s", ErrMissingSymbol, startSymbol)
	}
	if !haveEnd {
		return types.Region{}, fmt.Errorf("%w: %s", ErrMissingSymbol, endSymbol)
	}
	region := types.Region{Start: types.Addr(start), End: types.Addr(end)}
	if !region.Validate() {
		return types.Region{}, fmt.Errorf("%w: %s (%s) precedes %s (%s)",
			ErrInvalidRegion, endSymbol, region.End, startSymbol, region.Start)
	}

	return region, nil
}

// checkSymbolNames verifies that every symbol name in .symtab is a
// NUL-terminated string inside the linked string table. Symbols() reports an
// unresolvable name as "", which would otherwise go unnoticed.
func checkSymbolNames(f *elf.File) error {
	symtab := f.SectionByType(elf.SHT_SYMTAB)
	if symtab == nil {
		return fmt.Errorf("%w: no symbol table", ErrMissingSymbol)
	}
	if symtab.Link == 0 || int(symtab.Link) >= len(f.Sections) {
		return fmt.Errorf("%w: symbol table links to section %d", ErrMissingSymbol, symtab.Link)
	}
	strtab, err := f.Sections[symtab.Link].Data()
	if err != nil {
		return fmt.Errorf("%w: reading string table: %w", ErrMissingSymbol, err)
	}
	data, err := symtab.Data()
	if err != nil {
		return fmt.Errorf("%w: reading symbol table: %w", ErrMissingSymbol, err)
	}

	entSize := elf.Sym32Size
	if f.Class == elf.ELFCLASS64 {
		entSize = elf.Sym64Size
	}
	// st_name is the first word of both entry layouts; entry 0 is the null symbol
	for i, off := 1, entSize; off+entSize <= len(data); i, off = i+1, off+entSize {
		name := f.ByteOrder.Uint32(data[off : off+4])
		if int(name) >= len(strtab) || bytes.IndexByte(strtab[name:], 0) < 0 {
			return fmt.Errorf("%w: symbol %d has name offset %#x outside string table", ErrMissingSymbol, i, name)
		}
	}
	return nil
}
