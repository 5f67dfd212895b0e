package regionsize

import (
	"fmt"

	"github.com/deploymenttheory/go-ledgerbuild/internal/interfaces"
	"github.com/deploymenttheory/go-ledgerbuild/internal/parsers/elfsymbols"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Handle computes the size of the region bounded by the request's symbols
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startSymbol, endSymbol := req.StartSymbol, req.EndSymbol
	if ctx.Config != nil {
		if startSymbol == "" {
			startSymbol = ctx.Config.Region.StartSymbol
		}
		if endSymbol == "" {
			endSymbol = ctx.Config.Region.EndSymbol
		}
	}

	reader, err := elfsymbols.NewRegionReader(ctx.Fs, startSymbol, endSymbol)
	if err != nil {
		return nil, app.NewStageError(app.StageSize, app.ErrCodeInvalidInput, "invalid region reader settings", err)
	}

	return Measure(ctx, reader, req.ELFPath)
}

// Measure reads the region at path through reader and reports it
func Measure(ctx *app.Context, reader interfaces.RegionReader, path string) (*Response, error) {
	run := app.NewRunInfo()
	ctx.Log(fmt.Sprintf("Reading %s..%s from %s", reader.StartSymbol(), reader.EndSymbol(), path))

	region, err := reader.ReadRegion(path)
	if err != nil {
		return nil, app.NewRegionError(err)
	}

	run.Finish()
	resp := &Response{
		RunInfo:     run,
		Path:        path,
		StartSymbol: reader.StartSymbol(),
		EndSymbol:   reader.EndSymbol(),
		Start:       region.Start,
		End:         region.End,
		Size:        region.Size(),
	}

	ctx.Log(FormatSummary(resp))

	return resp, nil
}
