package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	m "github.com/mouse-blink/nego/internal/model"
)

// JournalFile is the name of the case journal inside a report folder.
const JournalFile = "cases.msgpack"

const journalVersion = 1

// ErrNoJournal is returned when a report folder holds no journal.
var ErrNoJournal = errors.New("no case journal found")

// Journal is the machine-readable record of a run, used to re-display it later.
type Journal struct {
	Version int          `msgpack:"version"`
	RunID   string       `msgpack:"run_id"`
	Count   uint32       `msgpack:"count"`
	Totals  m.Totals     `msgpack:"totals"`
	Stats   bool         `msgpack:"stats"`
	Cases   []m.TestCase `msgpack:"cases"`
}

// JournalStore persists and loads run journals.
type JournalStore interface {
	Save(dir m.Path, journal Journal) error
	Load(dir m.Path) (Journal, error)
}

// LocalJournalStore keeps journals next to the report bundle.
type LocalJournalStore struct{}

// NewLocalJournalStore constructs a LocalJournalStore.
func NewLocalJournalStore() *LocalJournalStore {
	return &LocalJournalStore{}
}

// Save writes the journal atomically: encode to a temp file, then rename.
func (s *LocalJournalStore) Save(dir m.Path, journal Journal) (err error) {
	count, err := safecast.Conv[uint32](len(journal.Cases))
	if err != nil {
		return fmt.Errorf("too many cases for journal: %w", err)
	}

	journal.Version = journalVersion
	journal.Count = count

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(string(dir), "journal-*")
	if err != nil {
		return fmt.Errorf("failed to create journal: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(journal); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode journal: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close journal: %w", err)
	}

	if err = os.Rename(f.Name(), filepath.Join(string(dir), JournalFile)); err != nil {
		return fmt.Errorf("failed to move journal into place: %w", err)
	}

	return nil
}

// Load reads the journal of the report folder dir.
func (s *LocalJournalStore) Load(dir m.Path) (Journal, error) {
	f, err := os.Open(filepath.Join(string(dir), JournalFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Journal{}, fmt.Errorf("%s: %w", dir, ErrNoJournal)
		}

		return Journal{}, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	var journal Journal
	if err := msgpack.NewDecoder(f).Decode(&journal); err != nil {
		return Journal{}, fmt.Errorf("failed to decode journal: %w", err)
	}

	if journal.Version != journalVersion {
		return Journal{}, fmt.Errorf("unsupported journal version %d", journal.Version)
	}

	if int(journal.Count) != len(journal.Cases) {
		return Journal{}, fmt.Errorf("journal is truncated: expected %d cases, found %d", journal.Count, len(journal.Cases))
	}

	return journal, nil
}
