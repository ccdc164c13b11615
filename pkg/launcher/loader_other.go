//go:build !darwin && !freebsd && !linux && !windows

package launcher

func openLibrary(path string) (Library, error) {
	return nil, &LoadError{Path: path, Err: ErrUnsupportedPlatform}
}
