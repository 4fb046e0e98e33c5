package scaffold

import (
	"fmt"

	"github.com/pdtgen-labs/pdtgen/internal/platform"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Policy decides what happens to a generated file that may already exist.
type Policy int

const (
	// CreateIfAbsent writes the file only when the path does not exist.
	CreateIfAbsent Policy = iota
	// AlwaysOverwrite writes the file on every run.
	AlwaysOverwrite
	// MergeAndOverwrite combines existing content with required content and
	// always rewrites the file.
	MergeAndOverwrite
)

func (p Policy) String() string {
	switch p {
	case CreateIfAbsent:
		return "create-if-absent"
	case AlwaysOverwrite:
		return "always-overwrite"
	case MergeAndOverwrite:
		return "merge-and-overwrite"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// MergeFunc produces new content from the current content of a file. found
// reports whether the file existed; existing is nil when it did not.
type MergeFunc func(existing []byte, found bool) ([]byte, error)

// File is one generated artifact.
type File struct {
	Path    string
	Policy  Policy
	Content []byte    // CreateIfAbsent and AlwaysOverwrite
	Merge   MergeFunc // MergeAndOverwrite
}

// apply writes f according to its policy.
func (s *Scaffolder) apply(f File) error {
	found, err := afero.Exists(s.fs, f.Path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", f.Path, err)
	}

	switch f.Policy {
	case CreateIfAbsent:
		if found {
			s.log.Debug("leaving existing file untouched", zap.String("path", f.Path), zap.Stringer("policy", f.Policy))
			s.skipped(f.Path)
			return nil
		}
		return s.write(f.Path, f.Content, found)

	case AlwaysOverwrite:
		return s.write(f.Path, f.Content, found)

	case MergeAndOverwrite:
		var existing []byte
		if found {
			existing, err = afero.ReadFile(s.fs, f.Path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", f.Path, err)
			}
		}
		content, err := f.Merge(existing, found)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		return s.write(f.Path, content, found)

	default:
		return fmt.Errorf("%s: unknown write policy %s", f.Path, f.Policy)
	}
}

func (s *Scaffolder) write(path string, content []byte, existed bool) error {
	if err := afero.WriteFile(s.fs, path, content, platform.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	s.log.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(content)), zap.Bool("existed", existed))
	s.result.Files = append(s.result.Files, path)
	if existed {
		s.out.Updated(path)
	} else {
		s.out.Created(path)
	}
	return nil
}

func (s *Scaffolder) skipped(path string) {
	s.result.Skipped = append(s.result.Skipped, path)
	s.out.Skipped(path)
}

// ensureDir creates a directory tree if it doesn't exist.
func (s *Scaffolder) ensureDir(path string) error {
	if info, err := s.fs.Stat(path); err == nil {
		if info.IsDir() {
			s.skipped(path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := s.fs.MkdirAll(path, platform.DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(s.fs, path, platform.DirPerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	s.out.Created(path)
	return nil
}
