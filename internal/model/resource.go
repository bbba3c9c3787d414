package model

import "fmt"

// Resource is a named, fixed-capacity slot a service can be assigned to.
// Cost is derived deterministically from Characteristics; the coefficients
// are a contract, not a tuning knob (§3).
type Resource struct {
	ResourceName    string          `json:"resourceName"`
	Characteristics Characteristics `json:"characteristics"`
}

// Cost is the 4-tuple cost model for a resource slot.
type Cost struct {
	Fixed float64
	Data  float64
	In    float64
	Out   float64
}

// Sum returns the total of the four cost components.
func (c Cost) Sum() float64 {
	return c.Fixed + c.Data + c.In + c.Out
}

const (
	fixedCpuCoefficient    = 0.0366
	fixedMemoryCoefficient = 0.0043
	fixedDiskCoefficient   = 0.0001
	fixedGpuCoefficient    = 1.6760

	costData = 0.0
	costIn   = 0.05
	costOut  = 0.09
)

// Cost derives this resource's cost from its characteristics, reproducing
// the fixed coefficients exactly.
func (r Resource) Cost() Cost {
	c := r.Characteristics
	return Cost{
		Fixed: fixedCpuCoefficient*c.Cpu() +
			fixedMemoryCoefficient*c.Memory() +
			fixedDiskCoefficient*c.Disk() +
			fixedGpuCoefficient*c.Gpu(),
		Data: costData,
		In:   costIn,
		Out:  costOut,
	}
}

func (r Resource) String() string {
	return fmt.Sprintf("Resource{name=%s, characteristics=%s, cost=%f}", r.ResourceName, r.Characteristics, r.Cost().Sum())
}
