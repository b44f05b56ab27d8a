package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// JSON snapshot export. One-way: nothing in shoplist reads these files back.

func Marshal(snap store.Snapshot) ([]byte, error) {
	if snap.Items == nil {
		snap.Items = []model.Item{}
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}

func Write(w io.Writer, snap store.Snapshot) error {
	b, err := Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func WriteFile(path string, snap store.Snapshot) error {
	b, err := Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
