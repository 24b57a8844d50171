package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/code198x/devenv/internal/system"
)

// Write creates the system directory under root and writes its files.
// An existing directory is reused; generated files are always overwritten.
// report, if non-nil, is called after each completed step.
// Files written before a failure are left in place.
func Write(root string, info system.Info, report func(step string)) error {
	if report == nil {
		report = func(string) {}
	}

	files, err := Render(info)
	if err != nil {
		return err
	}

	dir := filepath.Join(root, info.ID)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
		report(fmt.Sprintf("Created directory: %s/", info.ID))
	} else if err != nil {
		return fmt.Errorf("checking directory: %w", err)
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		report("Created " + f.Name)
	}

	return nil
}
