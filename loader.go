package shopbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const snapshotFilename = "shopbook.json"
const setupFilename = "setup-done"

// FileStore is the persistence collaborator: it keeps one JSON snapshot per
// shop in a directory, plus a marker recording that first-run setup was
// completed.
//
// Writes are fire-and-forget from the ledger's point of view: the in-memory
// state stays authoritative, and a failed save is logged and remembered but
// never rolls a mutation back.
type FileStore struct {
	dir     string
	log     zerolog.Logger
	lastErr error
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Load reads the persisted snapshot and rebuilds the ledger from it.
// It returns ErrNoData when no snapshot exists yet.
func (fstore *FileStore) Load() (*Ledger, error) {
	path := filepath.Join(fstore.dir, snapshotFilename)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %q: %w", path, err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", path, err)
	}
	return RestoreLedger(snap), nil
}

// Save writes the ledger's snapshot, replacing any previous one.
func (fstore *FileStore) Save(l *Ledger) error {
	path := filepath.Join(fstore.dir, snapshotFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open snapshot %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeSnapshot(f, l.Snapshot())
}

// Attach subscribes a write-after-mutation hook to the ledger: every
// successful mutation triggers a save. Failures are logged and kept in
// LastErr; they do not undo the mutation.
func (fstore *FileStore) Attach(l *Ledger) {
	l.Subscribe(func() {
		if err := fstore.Save(l); err != nil {
			fstore.lastErr = err
			fstore.log.Error().Err(err).Msg("could not persist ledger snapshot")
			return
		}
		fstore.lastErr = nil
	})
}

// LastErr reports the error from the most recent save attempt, or nil.
func (fstore *FileStore) LastErr() error { return fstore.lastErr }

// SetupDone reports whether first-run setup was completed.
func (fstore *FileStore) SetupDone() bool {
	_, err := os.Stat(filepath.Join(fstore.dir, setupFilename))
	return err == nil
}

// MarkSetupDone records that first-run setup was completed.
func (fstore *FileStore) MarkSetupDone() error {
	path := filepath.Join(fstore.dir, setupFilename)
	if err := os.WriteFile(path, []byte("1\n"), 0o644); err != nil {
		return fmt.Errorf("could not write setup marker %q: %w", path, err)
	}
	return nil
}

// Wipe deletes the persisted snapshot and setup marker, used after a ledger
// reset to return to the first-run state.
func (fstore *FileStore) Wipe() error {
	var errs error
	for _, name := range []string{snapshotFilename, setupFilename} {
		if err := os.Remove(filepath.Join(fstore.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
