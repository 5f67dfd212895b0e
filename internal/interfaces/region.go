// File: internal/interfaces/region.go
package interfaces

import (
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
)

// RegionReader provides methods for resolving symbol-bounded memory regions
type RegionReader interface {
	// ReadRegion reads an ELF file and returns the region bounded by the reader's symbols
	ReadRegion(path string) (types.Region, error)

	// StartSymbol returns the symbol opening the region
	StartSymbol() string

	// EndSymbol returns the symbol closing the region
	EndSymbol() string
}
