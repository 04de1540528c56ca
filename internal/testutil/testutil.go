// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file writing worksheets under tmpDir.
// Colors are disabled so that output can be compared as plain text.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "worksheets")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`practice:
  max_acres: 10
  tolerance:
    acres: 0.0001
    square_feet: 1
display:
  color: false
outputs:
  worksheet_directory: %s
`, outputDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithTemplate creates a config file with a worksheet template of the given content.
func SetupTestConfigWithTemplate(t *testing.T, tmpDir string, template string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	templatePath := filepath.Join(tmpDir, "worksheet.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0644))

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("templates:\n  worksheet_template: %s\n", templatePath))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}
