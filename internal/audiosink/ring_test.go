package audiosink

import "testing"

func TestRingPushPop(t *testing.T) {
	r := newRing(4)
	r.push([]int16{1, 2, 3})
	for _, want := range []int16{1, 2, 3} {
		got, ok := r.pop()
		if !ok || got != want {
			t.Fatalf("pop() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := r.pop(); ok {
		t.Fatalf("pop() on empty ring returned ok=true")
	}
}

func TestRingDropsOldestOnOverrun(t *testing.T) {
	r := newRing(3)
	r.push([]int16{1, 2, 3, 4, 5})
	var got []int16
	for {
		s, ok := r.pop()
		if !ok {
			break
		}
		got = append(got, s)
	}
	want := []int16{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
