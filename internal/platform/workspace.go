package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Workspace returns a filesystem rooted at dir. Paths handed to it are
// relative to dir and cannot escape it.
func Workspace(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening workspace %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace %s is not a directory", abs)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}
