package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const planetsCSV = `# exported from the exoplanet archive
pl_name,sy_dist,ra,dec
Alpha b,10.0,0.0,0.0
Beta c,20.0,90.0,10.0
No Dist d,,45.0,5.0
|Gamma, Jr|,5.0,180.0,-30.0
`

const starsJSON = `[
  {"ra": 0, "dec": 80, "dist": 3, "mag": 1.0},
  {"ra": 200, "dec": -60, "dist": 4, "mag": 3.5},
  {"ra": 100, "dec": 0, "dist": 0, "mag": 2.0},
  {"ra": 300, "dec": 10, "dist": 2, "mag": 5.0}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
