package launcher

import (
	"github.com/dvincentwest/radie/internal/buildcfg"
)

// Splice returns a new slice holding original with injected inserted before
// index at. at is clamped to [0, len(original)]. Neither input is modified
// and the result shares no backing array with them.
func Splice(original, injected []string, at int) []string {
	at = max(0, min(at, len(original)))

	out := make([]string, 0, len(original)+len(injected))
	out = append(out, original[:at]...)
	out = append(out, injected...)
	out = append(out, original[at:]...)
	return out
}

// DynamicArgs builds the vector for the dynamically loaded runtime:
//
//	argv[0], modeSwitch, application, argv[1:]...
func DynamicArgs(original []string, modeSwitch, application string) []string {
	return Splice(programArgs(original), []string{modeSwitch, application}, 1)
}

// StaticArgs builds the vector for a runtime linked into the launcher so
// that the runtime treats the launcher file itself as the application.
//
//	insert:  argv[0], selfPath, argv[1:]...
//	replace: selfPath, argv[1:]...
func StaticArgs(original []string, selfPath string, policy buildcfg.SelfArgPolicy) []string {
	original = programArgs(original)
	if policy == buildcfg.SelfArgReplace {
		return Splice(original[1:], []string{selfPath}, 0)
	}
	return Splice(original, []string{selfPath}, 1)
}

// programArgs guarantees an argv[0]; some exec callers pass none.
func programArgs(original []string) []string {
	if len(original) == 0 {
		return []string{""}
	}
	return original
}
