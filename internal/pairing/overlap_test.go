package pairing

import "testing"

func TestOverlapLength(t *testing.T) {
	ov := Overlap{QueryStart: 4, QueryEnd: 16, TargetStart: 7, TargetEnd: 18}
	// query span = 12, target span = 11 -> max = 12
	if got := OverlapLength(ov); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestOverlapErrorZeroWhenEqualSpans(t *testing.T) {
	ov := Overlap{QueryStart: 0, QueryEnd: 10, TargetStart: 5, TargetEnd: 15}
	if got := OverlapError(ov); got != 0 {
		t.Fatalf("expected 0 error for equal spans, got %v", got)
	}
}

func TestOverlapErrorPositive(t *testing.T) {
	ov := Overlap{QueryStart: 0, QueryEnd: 10, TargetStart: 0, TargetEnd: 20}
	got := OverlapError(ov)
	want := 1 - 10.0/20.0
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIsStrong(t *testing.T) {
	ov := Overlap{QueryStart: 0, QueryEnd: 95, TargetStart: 0, TargetEnd: 95}
	if !IsStrong(ov, 0.90, 100, 100) {
		t.Fatalf("expected strong overlap")
	}
	if IsStrong(ov, 0.96, 100, 100) {
		t.Fatalf("expected not strong when beta exceeds coverage")
	}
}

func TestReverseOverlapRoundTrip(t *testing.T) {
	ov := Overlap{QueryID: 1, QueryStart: 2, QueryEnd: 3, TargetID: 4, TargetStart: 5, TargetEnd: 6}
	rev := ReverseOverlap(ov)
	back := ReverseOverlap(rev)
	if back != ov {
		t.Fatalf("reversal not involutive: %+v vs %+v", ov, back)
	}
	if rev.QueryID != ov.TargetID || rev.TargetID != ov.QueryID {
		t.Fatalf("roles not swapped: %+v", rev)
	}
}
