package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dvincentwest/radie/internal/buildcfg"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Override is one environment assignment made before the runtime is loaded.
type Override struct {
	Key    string
	Value  string
	Source string
}

func (o Override) String() string {
	return o.Key + "=" + o.Value
}

// PlanEnvironment returns the assignments to make, in order. Env file and
// qt.conf entries come first so the layout variables always win.
//
// The module search path variable replaces any inherited value so a system
// wide installation cannot leak into the bundled application. The executable
// search path gets the runtime directory prepended so the runtime's own
// dependencies resolve locally first.
func PlanEnvironment(layout Layout, cfg buildcfg.Config, lookup func(string) (string, bool), logger hclog.Logger) []Override {
	fixed := map[string]bool{
		cfg.HomeVar:       true,
		cfg.ModulePathVar: true,
		cfg.SearchPathVar: true,
	}

	var overrides []Override

	if layout.EnvFile != "" {
		for _, o := range envFileOverrides(layout.EnvFile, lookup, logger) {
			if fixed[o.Key] {
				logger.Debug("🚫 Ignoring env file entry for layout variable", "key", o.Key)
				continue
			}
			overrides = append(overrides, o)
		}
	}

	if cfg.QtPluginHint {
		if dir := qtPluginDir(layout.RuntimeDir, logger); dir != "" {
			overrides = append(overrides, Override{Key: QtPluginPathVar, Value: dir, Source: SourceQtConf})
		}
	}

	prior, _ := lookup(cfg.SearchPathVar)
	overrides = append(overrides,
		Override{Key: cfg.HomeVar, Value: layout.RuntimeDir, Source: SourceLayout},
		Override{Key: cfg.ModulePathVar, Value: layout.AppsDir, Source: SourceLayout},
		Override{Key: cfg.SearchPathVar, Value: PrependPathList(layout.RuntimeDir, prior), Source: SourceLayout},
	)
	return overrides
}

// PrependPathList puts dir in front of a path list. An empty list yields dir.
func PrependPathList(dir, list string) string {
	if list == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + list
}

// Apply commits every override with setenv. A failed assignment does not stop
// the remaining ones; all failures are returned together.
func Apply(overrides []Override, setenv func(key, value string) error) error {
	var result *multierror.Error
	for _, o := range overrides {
		if err := setenv(o.Key, o.Value); err != nil {
			result = multierror.Append(result, fmt.Errorf("set %s: %w", o.Key, err))
		}
	}
	return result.ErrorOrNil()
}

// envFileOverrides reads KEY=VALUE pairs from path. Variables already present
// in the environment are left alone. A missing file is not an error.
func envFileOverrides(path string, lookup func(string) (string, bool), logger hclog.Logger) []Override {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Trace("No env file", "path", path)
		} else {
			logger.Warn("⚠️ Ignoring unreadable env file", "path", path, "error", err)
		}
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var overrides []Override
	for _, k := range keys {
		if _, set := lookup(k); set {
			logger.Debug("Env file entry already set in environment", "key", k)
			continue
		}
		overrides = append(overrides, Override{Key: k, Value: values[k], Source: SourceEnvFile})
	}
	logger.Debug("📄 Read env file", "path", path, "entries", len(overrides))
	return overrides
}

// qtPluginDir returns <prefix>/plugins when runtimeDir/qt.conf names a Prefix
// under [Paths] and that directory exists. Relative prefixes are relative to
// the qt.conf directory, as Qt resolves them.
func qtPluginDir(runtimeDir string, logger hclog.Logger) string {
	confPath := filepath.Join(runtimeDir, qtConfName)
	f, err := os.Open(confPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	section := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if section != "" && !strings.EqualFold(section, "Paths") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "Prefix") {
			continue
		}

		prefix := strings.Trim(strings.TrimSpace(value), `"`)
		if prefix == "" {
			return ""
		}
		prefix = filepath.FromSlash(prefix)
		if !filepath.IsAbs(prefix) {
			prefix = filepath.Join(runtimeDir, prefix)
		}

		plugins := filepath.Join(prefix, qtPluginsName)
		if info, err := os.Stat(plugins); err == nil && info.IsDir() {
			logger.Debug("🖼️ Found Qt plugin directory", "qtconf", confPath, "plugins", plugins)
			return plugins
		}
		logger.Debug("Qt prefix has no plugin directory", "qtconf", confPath, "prefix", prefix)
		return ""
	}
	return ""
}
