// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: runstore.go — oracle run recorder
//
// Purpose:
//   - Persists each oracle invocation (stimulus fingerprint, variant,
//     answer memory) so repeated hardware validations of the same stimulus
//     can detect answer drift between tool versions.
//   - Keeps a bounded in-memory index of recent runs for quick lookups
//     inside batch drivers.
//
// Notes:
//   - Optional: the scheduling core never touches this package. The CLI
//     wires it in only behind --record.
// ─────────────────────────────────────────────────────────────────────────────

package runstore

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"time"

	"github.com/google/btree"
	"github.com/rs/xid"
	"golang.org/x/crypto/sha3"

	_ "github.com/mattn/go-sqlite3"

	"main/constants"
)

// ErrNotFound reports a fingerprint with no recorded run.
var ErrNotFound = errors.New("runstore: no run recorded for fingerprint")

// Run is one recorded oracle invocation.
type Run struct {
	ID          string
	Variant     string
	Fingerprint [32]byte
	Commands    int
	Answers     []uint32
	Created     time.Time
}

// Store is a sqlite-backed run recorder with an in-memory recent index.
// Not safe for concurrent use; each oracle invocation owns its store.
type Store struct {
	db     *sql.DB
	recent *btree.BTree
	seq    uint64
	bound  int
}

// recentRun orders the in-memory index by recording sequence, oldest first,
// so eviction is DeleteMin.
type recentRun struct {
	seq uint64
	run *Run
}

func (r *recentRun) Less(than btree.Item) bool {
	return r.seq < than.(*recentRun).seq
}

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			variant     TEXT NOT NULL,
			fingerprint BLOB NOT NULL,
			commands    INTEGER NOT NULL,
			answers     BLOB NOT NULL,
			created_at  INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS runs_fingerprint ON runs(fingerprint);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{
		db:     db,
		recent: btree.New(2),
		bound:  constants.RecentRunsCap,
	}, nil
}

// Fingerprint hashes a raw stimulus object. The same stimulus bytes always
// map to the same run row, whatever produced them.
func Fingerprint(raw []byte) [32]byte {
	return sha3.Sum256(raw)
}

// Record persists one run and returns it. raw is the undecoded stimulus
// JSON exactly as read from stdin.
func (s *Store) Record(variant string, raw []byte, commands int, answers []uint32) (*Run, error) {
	run := &Run{
		ID:          xid.New().String(),
		Variant:     variant,
		Fingerprint: Fingerprint(raw),
		Commands:    commands,
		Answers:     append([]uint32(nil), answers...),
		Created:     time.Now(),
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, variant, fingerprint, commands, answers, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Variant, run.Fingerprint[:], run.Commands,
		packWords(run.Answers), run.Created.Unix(),
	)
	if err != nil {
		return nil, err
	}

	s.seq++
	s.recent.ReplaceOrInsert(&recentRun{seq: s.seq, run: run})
	for s.recent.Len() > s.bound {
		s.recent.DeleteMin()
	}
	return run, nil
}

// ByFingerprint returns the newest recorded run for the given stimulus
// fingerprint, or ErrNotFound.
func (s *Store) ByFingerprint(fp [32]byte) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, variant, commands, answers, created_at
		 FROM runs WHERE fingerprint = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`, fp[:])

	run := &Run{Fingerprint: fp}
	var blob []byte
	var created int64
	err := row.Scan(&run.ID, &run.Variant, &run.Commands, &blob, &created)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	run.Answers = unpackWords(blob)
	run.Created = time.Unix(created, 0)
	return run, nil
}

// Recent returns up to n most recently recorded runs, newest first. Only
// runs recorded through this Store instance appear; the persisted table is
// the durable view.
func (s *Store) Recent(n int) []*Run {
	out := make([]*Run, 0, n)
	s.recent.Descend(func(i btree.Item) bool {
		if len(out) == n {
			return false
		}
		out = append(out, i.(*recentRun).run)
		return true
	})
	return out
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// packWords serializes an answer memory as little-endian 32-bit words,
// matching the hardware memory dump layout.
func packWords(words []uint32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	return buf
}

func unpackWords(buf []byte) []uint32 {
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return words
}
