package utils

import (
	"encoding/json"
	"testing"
)

func TestBitCubeGetSetClear(t *testing.T) {
	c := NewBitCube(2, 3, 4)

	if c.Get(1, 2, 3) {
		t.Fatal("expected a fresh cube to be all-clear")
	}

	c.Set(1, 2, 3, true)
	if !c.Get(1, 2, 3) {
		t.Fatal("expected Set(true) to stick")
	}
	if c.Get(0, 0, 0) {
		t.Fatal("setting one bit should not affect another")
	}

	c.Flip(1, 2, 3)
	if c.Get(1, 2, 3) {
		t.Fatal("expected Flip to clear a set bit")
	}

	c.Set(0, 0, 0, true)
	c.Clear()
	if c.Get(0, 0, 0) {
		t.Fatal("expected Clear to zero every bit")
	}
}

func TestBitCubeLineQueries(t *testing.T) {
	c := NewBitCube(2, 2, 2)
	c.Set(0, 1, 0, true)
	c.Set(0, 1, 1, true)

	zLine := c.GetZLine(0, 1)
	if len(zLine) != 2 || !zLine[0] || !zLine[1] {
		t.Fatalf("unexpected z-line: %v", zLine)
	}

	yLine := c.GetYLine(0, 0)
	if len(yLine) != 2 || yLine[0] || !yLine[1] {
		t.Fatalf("unexpected y-line: %v", yLine)
	}

	xLine := c.GetXLine(1, 0)
	if len(xLine) != 2 || !xLine[0] || xLine[1] {
		t.Fatalf("unexpected x-line: %v", xLine)
	}
}

func TestBitCubeIndexOutOfBoundsPanics(t *testing.T) {
	c := NewBitCube(1, 1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected an out-of-bounds access to panic")
		}
	}()
	c.Get(1, 0, 0)
}

func TestBitCubeJSONRoundTripTrimsTrailingZeroWords(t *testing.T) {
	c := NewBitCube(10, 10, 10)
	c.Set(0, 0, 0, true)

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire bitCubeWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal to wire: %v", err)
	}
	if len(wire.Data) != 1 {
		t.Fatalf("expected only the first word to survive trimming, got %d words", len(wire.Data))
	}
	if wire.X != 10 || wire.Y != 10 || wire.Z != 10 {
		t.Fatalf("unexpected dimensions in wire form: %+v", wire)
	}

	var decoded BitCube
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Get(0, 0, 0) {
		t.Fatal("expected the set bit to survive the round trip")
	}
	if decoded.Get(9, 9, 9) {
		t.Fatal("expected every other bit to stay clear")
	}
}

func TestBitCubeJSONEmptyCubeHasNoWords(t *testing.T) {
	c := NewBitCube(4, 4, 4)
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire bitCubeWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(wire.Data) != 0 {
		t.Fatalf("expected an all-clear cube to trim to zero words, got %d", len(wire.Data))
	}
}
