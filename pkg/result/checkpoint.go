package result

import (
	"encoding/gob"
	"os"

	"github.com/oisee/mpint/pkg/mp"
)

// Checkpoint holds state for resuming a pkg/search range scan.
type Checkpoint struct {
	Hits        []Hit
	LastChecked *mp.Int // highest candidate fully tested so far
	RangeEnd    *mp.Int
}

// SaveCheckpoint writes search state to a file.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint loads search state from a file.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
