package gpio

import (
	"errors"
	"testing"
)

func TestFakeReaderSequence(t *testing.T) {
	f := NewFakeReader([][]int{
		{0, 1},
		{1, 1},
		{1, 0},
	})

	want := [][]int{{0, 1}, {1, 1}, {1, 0}}
	for i, w := range want {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if len(got) != len(w) {
			t.Fatalf("read %d: expected %d levels, got %d", i, len(w), len(got))
		}
		for j := range w {
			if got[j] != w[j] {
				t.Errorf("read %d line %d: expected %d, got %d", i, j, w[j], got[j])
			}
		}
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([][]int{{1}, {0}})

	f.Read()
	f.Read()

	for i := 0; i < 3; i++ {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != 0 {
			t.Errorf("exhausted read %d: expected last sample 0, got %d", i, got[0])
		}
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)
	if _, err := f.Read(); err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeReaderReadError(t *testing.T) {
	f := NewFakeReader([][]int{{1}})
	f.ReadError = errors.New("boom")

	if _, err := f.Read(); err == nil {
		t.Error("expected configured read error")
	}
}

func TestFakeReaderCloseAndReset(t *testing.T) {
	f := NewFakeReader([][]int{{1}, {0}})
	f.Read()
	f.Read()

	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("Closed should be true after Close")
	}

	f.Reset()
	if f.Closed {
		t.Error("Reset should clear Closed")
	}
	got, err := f.Read()
	if err != nil {
		t.Fatalf("read after reset: %v", err)
	}
	if got[0] != 1 {
		t.Errorf("expected first sample after reset, got %d", got[0])
	}
}
