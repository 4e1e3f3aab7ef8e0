package mqtt

import (
	"fmt"
	"testing"
)

func TestRingBufferPushAndDrain(t *testing.T) {
	r := newRingBuffer(4)

	r.push(bufferedMsg{topic: "a", payload: []byte("1")})
	r.push(bufferedMsg{topic: "b", payload: []byte("2")})

	if r.len() != 2 {
		t.Fatalf("expected len 2, got %d", r.len())
	}

	msgs := r.drainAll()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].topic != "a" || msgs[1].topic != "b" {
		t.Errorf("unexpected order: %s, %s", msgs[0].topic, msgs[1].topic)
	}
	if r.len() != 0 {
		t.Errorf("expected empty buffer after drain, got %d", r.len())
	}
}

func TestRingBufferDrainEmpty(t *testing.T) {
	r := newRingBuffer(4)
	if msgs := r.drainAll(); msgs != nil {
		t.Errorf("expected nil for empty buffer, got %v", msgs)
	}
}

func TestRingBufferOverflowDropsOldest(t *testing.T) {
	r := newRingBuffer(3)

	for i := 0; i < 5; i++ {
		r.push(bufferedMsg{topic: fmt.Sprintf("t%d", i)})
	}

	if r.len() != 3 {
		t.Fatalf("expected len 3 at capacity, got %d", r.len())
	}

	msgs := r.drainAll()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	// t0 and t1 were overwritten; oldest remaining is t2.
	want := []string{"t2", "t3", "t4"}
	for i, w := range want {
		if msgs[i].topic != w {
			t.Errorf("message %d: expected %s, got %s", i, w, msgs[i].topic)
		}
	}
}

func TestRingBufferReusableAfterDrain(t *testing.T) {
	r := newRingBuffer(2)

	r.push(bufferedMsg{topic: "a"})
	r.push(bufferedMsg{topic: "b"})
	r.push(bufferedMsg{topic: "c"}) // overflow
	r.drainAll()

	r.push(bufferedMsg{topic: "d"})
	msgs := r.drainAll()
	if len(msgs) != 1 || msgs[0].topic != "d" {
		t.Errorf("unexpected messages after reuse: %v", msgs)
	}
	if r.overflow {
		t.Error("overflow flag should reset on drain")
	}
}

func TestRingBufferPreservesMessageFields(t *testing.T) {
	r := newRingBuffer(2)
	r.push(bufferedMsg{topic: "x", payload: []byte("p"), qos: 1, retained: true})

	msgs := r.drainAll()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.topic != "x" || string(m.payload) != "p" || m.qos != 1 || !m.retained {
		t.Errorf("fields not preserved: %+v", m)
	}
}
