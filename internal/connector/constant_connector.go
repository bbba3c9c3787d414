package connector

import (
	"context"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// ConstantConnector always returns the same fixed resource inventory.
// Used for demos, selected by the "const" connector kind when no live
// fabric is configured — mirrors the teacher's ConstantConnector, adapted
// from a fixed pod-placement fixture to a fixed resource fixture.
type ConstantConnector struct {
	resources []model.Resource
}

// NewConstantConnector builds a connector over a small fixed fixture of
// three resources of varying size.
func NewConstantConnector() *ConstantConnector {
	return &ConstantConnector{
		resources: []model.Resource{
			{ResourceName: "node-a", Characteristics: model.NewCharacteristics(2, 4000, 20000, 0)},
			{ResourceName: "node-b", Characteristics: model.NewCharacteristics(2, 2000, 20000, 0)},
			{ResourceName: "node-c", Characteristics: model.NewCharacteristics(4, 8000, 40000, 1)},
		},
	}
}

func (c *ConstantConnector) LoadResources(ctx context.Context) ([]model.Resource, error) {
	return c.resources, nil
}
