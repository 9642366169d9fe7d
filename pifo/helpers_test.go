package pifo

import "testing"

// Shared Test Helpers

func expectError(t *testing.T, got, want error) {
	t.Helper()
	if got != want {
		t.Fatalf("want err %v, got %v", want, got)
	}
}

func pushOrFatal(t *testing.T, q Queue, val, rank, tm uint32) {
	t.Helper()
	if err := q.Push(val, rank, tm); err != nil {
		t.Fatalf("Push(%d, %d, %d) failed: %v", val, rank, tm, err)
	}
}

func popExpect(t *testing.T, q Queue, want uint32) {
	t.Helper()
	v, err := q.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if v != want {
		t.Fatalf("Pop = %d, want %d", v, want)
	}
}

func peekExpect(t *testing.T, q Queue, want uint32) {
	t.Helper()
	v, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if v != want {
		t.Fatalf("Peek = %d, want %d", v, want)
	}
}

func expectLen(t *testing.T, q Queue, want int) {
	t.Helper()
	if q.Len() != want {
		t.Fatalf("expected len=%d; got %d", want, q.Len())
	}
}

// expectPeekIdempotent asserts two consecutive peeks agree and mutate
// nothing.
func expectPeekIdempotent(t *testing.T, q Queue) {
	t.Helper()
	n := q.Len()
	a, errA := q.Peek()
	b, errB := q.Peek()
	if errA != errB {
		t.Fatalf("peek errors diverge: %v vs %v", errA, errB)
	}
	if a != b {
		t.Fatalf("peek values diverge: %d vs %d", a, b)
	}
	if q.Len() != n {
		t.Fatalf("peek mutated len: %d -> %d", n, q.Len())
	}
}
