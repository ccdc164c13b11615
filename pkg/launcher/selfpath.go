package launcher

import (
	"path/filepath"
)

// ResolveSelfPath returns the absolute path of the running executable as
// reported by executable (normally os.Executable). With follow set, symlinks
// are resolved so a launcher linked into a bin directory still finds the
// runtime next to its real location.
func ResolveSelfPath(executable func() (string, error), follow bool) (string, error) {
	p, err := executable()
	if err != nil {
		return "", &SelfPathError{Err: err}
	}
	if p == "" {
		return "", &SelfPathError{Err: ErrEmptyExecutable}
	}

	if !filepath.IsAbs(p) {
		if p, err = filepath.Abs(p); err != nil {
			return "", &SelfPathError{Err: err}
		}
	}

	if follow {
		if p, err = filepath.EvalSymlinks(p); err != nil {
			return "", &SelfPathError{Err: err}
		}
	}

	return filepath.Clean(p), nil
}

// ResolveSelfDirectory returns the directory containing the running executable.
func ResolveSelfDirectory(executable func() (string, error), follow bool) (string, error) {
	p, err := ResolveSelfPath(executable, follow)
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}
