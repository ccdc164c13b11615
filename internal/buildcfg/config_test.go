package buildcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withVar swaps a link-time variable for the duration of a test.
func withVar(t *testing.T, v *string, value string) {
	t.Helper()
	old := *v
	*v = value
	t.Cleanup(func() { *v = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, runtimeSubdir, cfg.RuntimeSubdir)
	assert.Equal(t, "apps", cfg.AppsSubdir)
	assert.Equal(t, "-m", cfg.ModeSwitch)
	assert.Equal(t, "radie.qt.viewer", cfg.Application)
	assert.Equal(t, "Py_SetPath", cfg.PathSymbol)
	assert.Equal(t, SelfArgInsert, cfg.SelfArgPolicy)
	assert.True(t, cfg.QtPluginHint)
	assert.Equal(t, "PYTHONHOME", cfg.HomeVar)
	assert.Equal(t, "PYTHONPATH", cfg.ModulePathVar)
	assert.Equal(t, "PATH", cfg.SearchPathVar)
	assert.NotEmpty(t, cfg.LibraryName)
	assert.NotEmpty(t, cfg.MainSymbol)
}

func TestLoadLaunchArgs(t *testing.T) {
	withVar(t, &launchArgs, `-m "dataquick.qt.viewer"`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "-m", cfg.ModeSwitch)
	assert.Equal(t, "dataquick.qt.viewer", cfg.Application)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		v     *string
		value string
		field string
	}{
		{"one launch word", &launchArgs, "-m", "launchArgs"},
		{"three launch words", &launchArgs, "-m a b", "launchArgs"},
		{"unclosed quote", &launchArgs, `-m "a`, "launchArgs"},
		{"bad bool", &followSymlinks, "maybe", "followSymlinks"},
		{"bad hint bool", &qtPluginHint, "sometimes", "qtPluginHint"},
		{"absolute apps dir", &appsSubdir, "/opt/apps", "appsSubdir"},
		{"escaping apps dir", &appsSubdir, "../apps", "appsSubdir"},
		{"unknown policy", &selfArgPolicy, "prepend", "selfArgPolicy"},
		{"escaping env file", &envFile, "../radie.env", "envFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVar(t, tt.v, tt.value)

			_, err := Load()
			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidate(t *testing.T) {
	base, err := Load()
	require.NoError(t, err)

	t.Run("co-located runtime", func(t *testing.T) {
		cfg := base
		cfg.RuntimeSubdir = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("nested subdir", func(t *testing.T) {
		cfg := base
		cfg.RuntimeSubdir = "lib/python"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing main symbol", func(t *testing.T) {
		cfg := base
		cfg.MainSymbol = ""
		assert.ErrorIs(t, cfg.Validate(), ErrEmpty)
	})

	t.Run("library outside launcher dir", func(t *testing.T) {
		cfg := base
		cfg.LibraryName = "../python36.dll"
		assert.ErrorIs(t, cfg.Validate(), ErrNotLocal)
	})

	t.Run("replace policy", func(t *testing.T) {
		cfg := base
		cfg.SelfArgPolicy = SelfArgReplace
		assert.NoError(t, cfg.Validate())
	})
}
