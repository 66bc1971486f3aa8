package customer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port is the interface other modules use to invoke the lookup pipeline.
type Port interface {
	Lookup(ctx context.Context, phone string) (*LookupResponse, error)
}

// adapter wraps the module's ServiceContainer for type-safe cross-module
// calls.
type adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a Port backed by the customer module's service
// container, received via SetDependencyServiceContainer.
func NewAdapter(container mono.ServiceContainer) Port {
	if container == nil {
		panic("customer adapter requires non-nil ServiceContainer")
	}
	return &adapter{container: container}
}

// Lookup invokes the lookup service.
func (a *adapter) Lookup(ctx context.Context, phone string) (*LookupResponse, error) {
	req := LookupRequest{Phone: phone}
	var resp LookupResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"lookup",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("lookup service call failed: %w", err)
	}
	return &resp, nil
}
