package trace

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the run configuration the cmd/segalloc CLI loads before
// replaying a trace: which provider backs the heap, a chunk size, and
// whether every step is followed by a full invariant check.
type Config struct {
	Provider       string `yaml:"provider"`       // "slice" or "mmap"
	ChunkBytes     int    `yaml:"chunkBytes"`     // parsed but not read by Runner; the heap always grows by heap.Chunk
	CheckEveryStep bool   `yaml:"checkEveryStep"` // run Validate after each op
	FailAfterSbrk  int    `yaml:"failAfterSbrk"`  // -1 disables fault injection
}

// DefaultConfig mirrors the engine's own defaults: a portable slice
// provider, the engine's built-in chunk size, and no per-step checking
// (that's what the segalloc_debug build tag and `check` subcommand are
// for).
func DefaultConfig() Config {
	return Config{
		Provider:      "slice",
		FailAfterSbrk: -1,
	}
}

// LoadConfig reads a YAML run configuration from path, applying
// DefaultConfig for any field the file leaves unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "trace: reading config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "trace: parsing config %q", path)
	}

	return cfg, nil
}
