package coinselect

import "testing"

func TestHistogram_AddIsBinwise(t *testing.T) {
	a := SingletonHistogram(2).Add(SingletonHistogram(3))
	b := SingletonHistogram(2)
	sum := a.Add(b)

	if sum.Count(2) != 2 {
		t.Errorf("Count(2) = %d, want 2", sum.Count(2))
	}
	if sum.Count(3) != 1 {
		t.Errorf("Count(3) = %d, want 1", sum.Count(3))
	}
	if sum.Count(99) != 0 {
		t.Errorf("Count(99) = %d, want 0 for unseen bin", sum.Count(99))
	}
}

func TestMultiSet_UnionIsAdditive(t *testing.T) {
	a := SingletonMultiSet(0.5).Union(SingletonMultiSet(0.5))
	b := SingletonMultiSet(0.5)
	union := a.Union(b)

	if union.Count(0.5) != 3 {
		t.Errorf("Count(0.5) = %d, want 3", union.Count(0.5))
	}
	if union.Len() != 3 {
		t.Errorf("Len() = %d, want 3", union.Len())
	}
}

func TestPartialTxStats_CombineMatchesHistogramAndMultiSet(t *testing.T) {
	p1 := PartialTxStats{NumInputs: 1, Ratios: SingletonMultiSet(0.2)}
	p2 := PartialTxStats{NumInputs: 2, Ratios: SingletonMultiSet(0.2)}

	combined := EmptyPartialTxStats().Combine(p1).Combine(p2)
	full := FromPartial(combined)

	if full.NumInputs.Count(3) != 1 {
		t.Errorf("NumInputs = %+v, want single bin at 3 (1+2 summed)", full.NumInputs.Bins())
	}
	if full.Ratios.Count(0.2) != 2 {
		t.Errorf("Ratios = %+v, want {0.2: 2}", full.Ratios.Elements())
	}
}

func TestTxStats_CombineAcrossRuns(t *testing.T) {
	run1 := FromPartial(PartialTxStats{NumInputs: 1, Ratios: SingletonMultiSet(0.0)})
	run2 := FromPartial(PartialTxStats{NumInputs: 3, Ratios: SingletonMultiSet(0.5)})

	combined := EmptyTxStats().Combine(run1).Combine(run2)
	if combined.NumInputs.Count(1) != 1 || combined.NumInputs.Count(3) != 1 {
		t.Errorf("NumInputs = %+v, want bins at 1 and 3", combined.NumInputs.Bins())
	}
	if combined.Ratios.Count(0.0) != 1 || combined.Ratios.Count(0.5) != 1 {
		t.Errorf("Ratios = %+v, want {0.0:1, 0.5:1}", combined.Ratios.Elements())
	}
}
