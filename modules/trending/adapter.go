package trending

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port is the interface other modules use to invoke the trending pipeline.
type Port interface {
	TopProducts(ctx context.Context) ([]Row, error)
}

// adapter wraps the module's ServiceContainer for type-safe cross-module
// calls.
type adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a Port backed by the trending module's service
// container, received via SetDependencyServiceContainer.
func NewAdapter(container mono.ServiceContainer) Port {
	if container == nil {
		panic("trending adapter requires non-nil ServiceContainer")
	}
	return &adapter{container: container}
}

// TopProducts invokes the top service.
func (a *adapter) TopProducts(ctx context.Context) ([]Row, error) {
	req := TopRequest{}
	var resp TopResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"top",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("top service call failed: %w", err)
	}
	if resp.Products == nil {
		resp.Products = []Row{}
	}
	return resp.Products, nil
}
