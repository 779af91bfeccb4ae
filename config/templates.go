package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Indic Ephemeris Configuration

# Sidereal reference frame, 0 = Lahiri. See config.Ayanamsha for the full
# 42-entry catalogue; only Lahiri is honored by the bundled reference
# oracle.
ayanamsha = 0

# Directory containing the ephemeris data files the oracle reads.
data_path = "%s"

# Number of shard workers the parallel driver spawns once a search range
# crosses concurrency_threshold samples. Defaults to the host's CPU count.
concurrency = %d

# range.duration / sampling below this value runs sequentially.
concurrency_threshold = 10000

# Deepest Vimshottari level computed: 0 = Maha, 1 = Antar, 2 = Pratyantar.
max_dasha_depth = 2

# Finest unit name (0=second .. 5=year) bisection refines an edge to.
transit_resolution = 1

# Strict=0, Largest=1, Covering=2.
transit_fringe_policy = 2
retrograde_fringe_policy = 1

log_level = "warn"
`

func writeTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	def := Default()
	content := fmt.Sprintf(configTemplate, def.DataPath, def.Concurrency)
	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
