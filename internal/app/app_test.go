package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Validation(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{ScenarioPath: "x.hcl", Format: "yaml"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ScenarioPath: "x.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "x.hcl", cfg.ScenarioPath)
}

func TestSelectLoader(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "hcl by extension", cfg: Config{ScenarioPath: "a.hcl"}},
		{name: "json by extension", cfg: Config{ScenarioPath: "a.json"}},
		{name: "explicit format wins", cfg: Config{ScenarioPath: "a.txt", Format: "json"}},
		{name: "unknown extension", cfg: Config{ScenarioPath: "a.txt"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader, err := selectLoader(&tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, loader)
		})
	}
}

// TestApp_RunJSONDataModel drives a full import of a legacy JSON data
// model through the app lifecycle.
func TestApp_RunJSONDataModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "mcell": {
    "define_molecules": {
      "molecule_list": [
        {"mol_name": "A", "diffusion_constant": "1e-6", "mol_type": "3D", "export_viz": true}
      ]
    },
    "initialization": {"iterations": "100", "time_step": "1e-6"}
  }
}`), 0o600))

	cfg, err := NewConfig(Config{ScenarioPath: path, LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a, err := New(out, cfg)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "species     A")
	assert.Contains(t, out.String(), "time_step   1e-06")
}
