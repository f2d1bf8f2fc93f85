package trace

import "testing"

func TestBuffer_WrapsOldestFirst(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Add(Sample{Frame: i})
	}

	got := b.Samples()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []int{3, 4, 5} {
		if got[i].Frame != want {
			t.Errorf("samples[%d].Frame = %d, want %d", i, got[i].Frame, want)
		}
	}
	if b.Dropped() != 2 {
		t.Errorf("dropped = %d, want 2", b.Dropped())
	}

	tl := b.Snapshot()
	if len(tl.Samples) != 3 || tl.Dropped != 2 {
		t.Errorf("snapshot = %+v", tl)
	}
}

func TestBuffer_PartialAndReset(t *testing.T) {
	b := NewBuffer(0)
	if b.Capacity() != defaultCapacity {
		t.Errorf("capacity = %d", b.Capacity())
	}
	if b.Samples() != nil {
		t.Error("empty buffer should return nil")
	}
	b.Add(Sample{Frame: 1})
	b.Add(Sample{Frame: 2})
	if got := b.Samples(); len(got) != 2 || got[0].Frame != 1 {
		t.Errorf("samples = %+v", got)
	}
	b.Reset()
	if b.Len() != 0 || b.Dropped() != 0 {
		t.Errorf("reset left len %d dropped %d", b.Len(), b.Dropped())
	}
}
