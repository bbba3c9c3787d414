// Package connector loads a one-shot snapshot of a cluster's resources
// from an external fabric, for building a LocalState. spec.md's
// Non-goals exclude online rescheduling/migration, not a one-shot
// snapshot read — this adapter never watches, mutates, or migrates
// anything, and sits off the evaluation hot path entirely (§9,
// DESIGN.md). Grounded on the teacher's internal/connector package,
// adapted from an online pod-placement connector to a one-shot
// resource-inventory loader.
package connector

import (
	"context"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/logging"
)

// Connector loads the resources available in one cluster.
type Connector interface {
	LoadResources(ctx context.Context) ([]model.Resource, error)
}

var log = logging.Get()
