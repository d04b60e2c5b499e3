package mp

import (
	"bytes"
	"encoding/gob"
	"testing"
)

func TestGobRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 12345, -987654321}
	for _, v := range cases {
		x := mustInt64(v)
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(x); err != nil {
			t.Fatal(err)
		}
		var y Int
		if err := gob.NewDecoder(&buf).Decode(&y); err != nil {
			t.Fatal(err)
		}
		if Cmp(&y, x) != Equal {
			t.Fatalf("gob round trip mismatch for %d: got %v", v, y.Int64())
		}
	}
}

func TestGobRoundTripLarge(t *testing.T) {
	x := New()
	ShiftLeftBits(x, mustInt64(1), 500)
	Sub(x, x, mustInt64(1))
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(x); err != nil {
		t.Fatal(err)
	}
	var y Int
	if err := gob.NewDecoder(&buf).Decode(&y); err != nil {
		t.Fatal(err)
	}
	if Cmp(&y, x) != Equal {
		t.Fatal("large gob round trip mismatch")
	}
	if err := CheckInvariants(&y); err != nil {
		t.Fatal(err)
	}
}
