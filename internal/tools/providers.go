package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homecalc/internal/directory"
	"homecalc/internal/schema"
	"homecalc/internal/util/jsonutil"
)

// ProviderLookupName is the one tool the assistant flow declares.
const ProviderLookupName = "findLocalServiceProviders"

// providerLookup adapts the external directory to the tool contract.
// Arguments are validated before the lookup runs and the result list is
// validated before it goes back to the model.
type providerLookup struct {
	dir     directory.Directory
	timeout time.Duration
}

// NewProviderLookup wraps dir as a callable tool. timeout bounds each
// lookup; pass 0 to disable.
func NewProviderLookup(dir directory.Directory, timeout time.Duration) Tool {
	return &providerLookup{dir: dir, timeout: timeout}
}

func (p *providerLookup) Spec() Spec {
	return Spec{
		Name:        ProviderLookupName,
		Description: "Finds local service providers for a trade (e.g. plumber, electrician) near a location.",
		InputSchema:  schema.ProviderLookupInput.Doc(),
		OutputSchema: schema.ProviderList.Doc(),
	}
}

func (p *providerLookup) Call(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	if err := schema.ProviderLookupInput.Validate(input); err != nil {
		return nil, fmt.Errorf("tools: %s input: %w", ProviderLookupName, err)
	}
	var args struct {
		Service  string `json:"service"`
		Location string `json:"location"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return nil, fmt.Errorf("tools: %s input: %w", ProviderLookupName, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	providers, err := p.dir.Search(ctx, args.Service, args.Location)
	if err != nil {
		return nil, fmt.Errorf("tools: %s: %w", ProviderLookupName, err)
	}
	if providers == nil {
		providers = []directory.ServiceProvider{}
	}

	out, err := jsonutil.MarshalNoEscape(providers)
	if err != nil {
		return nil, fmt.Errorf("tools: %s encode: %w", ProviderLookupName, err)
	}
	if err := schema.ProviderList.Validate(out); err != nil {
		return nil, fmt.Errorf("tools: %s output: %w", ProviderLookupName, err)
	}
	return out, nil
}
