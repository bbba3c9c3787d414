package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/UIBK-DPS-DC/pulse/internal/utils"
)

// Characteristics is a fixed 4-vector of non-negative resource quantities:
// cpu, memory, disk, gpu. It is immutable after construction; every
// operation returns a new value.
type Characteristics struct {
	values *mat.VecDense
}

const (
	cpuIndex = iota
	memoryIndex
	diskIndex
	gpuIndex
	characteristicsLen
)

// divGuard keeps Div from dividing by exactly zero, e.g. a resource with
// no GPU. It participates in the result, it is not a zero-check shortcut.
const divGuard = 1.0e-10

// fuzzyEpsilon is the tolerance used by Equals.
const fuzzyEpsilon = 1.0e-5

// NewCharacteristics builds a Characteristics from cpu, memory, disk, gpu.
func NewCharacteristics(cpu, memory, disk, gpu float64) Characteristics {
	return Characteristics{values: mat.NewVecDense(characteristicsLen, []float64{cpu, memory, disk, gpu})}
}

// CharacteristicsFromSlice builds a Characteristics from a 4-element slice,
// in (cpu, memory, disk, gpu) order.
func CharacteristicsFromSlice(values []float64) (Characteristics, error) {
	if len(values) != characteristicsLen {
		return Characteristics{}, fmt.Errorf("characteristics vector must have length %d, got %d", characteristicsLen, len(values))
	}
	cp := make([]float64, characteristicsLen)
	copy(cp, values)
	return Characteristics{values: mat.NewVecDense(characteristicsLen, cp)}, nil
}

func (c Characteristics) Cpu() float64    { return c.values.AtVec(cpuIndex) }
func (c Characteristics) Memory() float64 { return c.values.AtVec(memoryIndex) }
func (c Characteristics) Disk() float64   { return c.values.AtVec(diskIndex) }
func (c Characteristics) Gpu() float64    { return c.values.AtVec(gpuIndex) }

// Values returns the underlying 4 values in (cpu, memory, disk, gpu) order.
func (c Characteristics) Values() [4]float64 {
	return [4]float64{c.Cpu(), c.Memory(), c.Disk(), c.Gpu()}
}

// Leq reports whether c is component-wise less than or equal to other.
func (c Characteristics) Leq(other Characteristics) bool {
	return utils.LEThan(c.values, other.values)
}

// Add returns the component-wise sum of c and other.
func (c Characteristics) Add(other Characteristics) Characteristics {
	return Characteristics{values: utils.AddVec(c.values, other.values)}
}

// Div returns the component-wise division of c by other, guarding each
// divisor with +1e-10 to avoid division by exactly zero.
func (c Characteristics) Div(other Characteristics) Characteristics {
	ret := mat.NewVecDense(characteristicsLen, nil)
	for i := 0; i < characteristicsLen; i++ {
		ret.SetVec(i, c.values.AtVec(i)/(other.values.AtVec(i)+divGuard))
	}
	return Characteristics{values: ret}
}

// Max returns the largest of the four components (the dominant-dimension
// utilization, per §9's resolved open question).
func (c Characteristics) Max() float64 {
	max := math.Inf(-1)
	for i := 0; i < characteristicsLen; i++ {
		max = math.Max(max, c.values.AtVec(i))
	}
	return max
}

// Sum returns the sum of the four components.
func (c Characteristics) Sum() float64 {
	var sum float64
	for i := 0; i < characteristicsLen; i++ {
		sum += c.values.AtVec(i)
	}
	return sum
}

// Equals reports fuzzy equality within fuzzyEpsilon.
func (c Characteristics) Equals(other Characteristics) bool {
	for i := 0; i < characteristicsLen; i++ {
		if math.Abs(c.values.AtVec(i)-other.values.AtVec(i)) > fuzzyEpsilon {
			return false
		}
	}
	return true
}

func (c Characteristics) String() string {
	return fmt.Sprintf(
		"Characteristics{cpu=%f, memory=%f, disk=%f, gpu=%f}",
		c.Cpu(), c.Memory(), c.Disk(), c.Gpu(),
	)
}

// MarshalJSON emits the {"values": [...]}  shape the wire format requires.
func (c Characteristics) MarshalJSON() ([]byte, error) {
	v := c.Values()
	return marshalValues(v[:])
}

// UnmarshalJSON reads the {"values": [...]}  shape.
func (c *Characteristics) UnmarshalJSON(data []byte) error {
	values, err := unmarshalValues(data)
	if err != nil {
		return err
	}
	parsed, err := CharacteristicsFromSlice(values)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
