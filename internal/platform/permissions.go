package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// Permission constants for generated scaffolding.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Chmod sets permissions on a workspace path. On Windows this is a no-op
// because Windows does not support Unix-style permission bits.
func Chmod(fsys afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fsys.Chmod(path, mode)
}
