package runstore

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndLookup(t *testing.T) {
	s := openTemp(t)
	raw := []byte(`{"commands":{"data":[2,0]},"values":{"data":[9,0]}}`)
	ans := []uint32{9, 0}

	run, err := s.Record("fifo", raw, 2, ans)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if run.ID == "" {
		t.Fatalf("run id must be assigned")
	}

	got, err := s.ByFingerprint(Fingerprint(raw))
	if err != nil {
		t.Fatalf("ByFingerprint failed: %v", err)
	}
	if got.ID != run.ID || got.Variant != "fifo" || got.Commands != 2 {
		t.Fatalf("wrong run back: %+v", got)
	}
	if len(got.Answers) != 2 || got.Answers[0] != 9 || got.Answers[1] != 0 {
		t.Fatalf("answers corrupted: %v", got.Answers)
	}
}

func TestLookupMissingFingerprint(t *testing.T) {
	s := openTemp(t)
	_, err := s.ByFingerprint(Fingerprint([]byte("never recorded")))
	if err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFingerprintIsContentAddressed(t *testing.T) {
	a := Fingerprint([]byte(`{"commands":{"data":[0]}}`))
	b := Fingerprint([]byte(`{"commands":{"data":[0]}}`))
	c := Fingerprint([]byte(`{"commands":{"data":[1]}}`))
	if a != b {
		t.Fatalf("same bytes must fingerprint identically")
	}
	if a == c {
		t.Fatalf("different bytes must not collide")
	}
}

func TestSameStimulusKeepsBothRuns(t *testing.T) {
	s := openTemp(t)
	raw := []byte(`{"commands":{"data":[2]},"values":{"data":[1]}}`)

	first, err := s.Record("fifo", raw, 1, []uint32{0})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	second, err := s.Record("fifo", raw, 1, []uint32{7})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("runs must get distinct ids")
	}

	// Lookup prefers the newest row so drift shows against the latest run.
	got, err := s.ByFingerprint(Fingerprint(raw))
	if err != nil {
		t.Fatalf("ByFingerprint failed: %v", err)
	}
	if got.Answers[0] != 7 {
		t.Fatalf("expected newest run, got answers %v", got.Answers)
	}
}

func TestRecentIndexNewestFirstAndBounded(t *testing.T) {
	s := openTemp(t)
	s.bound = 3
	raws := [][]byte{
		[]byte(`{"a":1}`), []byte(`{"a":2}`), []byte(`{"a":3}`),
		[]byte(`{"a":4}`), []byte(`{"a":5}`),
	}
	var ids []string
	for _, raw := range raws {
		run, err := s.Record("heap", raw, 0, nil)
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		ids = append(ids, run.ID)
	}

	recent := s.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("recent index not bounded: %d entries", len(recent))
	}
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if recent[i].ID != want {
			t.Fatalf("recent[%d] = %s, want %s", i, recent[i].ID, want)
		}
	}

	// Evicted runs stay durable in sqlite.
	if _, err := s.ByFingerprint(Fingerprint(raws[0])); err != nil {
		t.Fatalf("evicted run lost from database: %v", err)
	}
}

func TestPackWordsRoundTrip(t *testing.T) {
	words := []uint32{0, 1, 0xdeadbeef, 1<<32 - 1}
	got := unpackWords(packWords(words))
	if len(got) != len(words) {
		t.Fatalf("length changed: %d", len(got))
	}
	for i := range words {
		if got[i] != words[i] {
			t.Fatalf("word %d corrupted: %x", i, got[i])
		}
	}
}
