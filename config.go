package inkgeom

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Switches that the drawing surface exposes to users. The geometric
// thresholds are fixed and are not part of the configuration.
type Config struct {
	RecognizeShapes bool `toml:"recognize_shapes"`
}

func DefaultConfig() Config {
	return Config{RecognizeShapes: true}
}

// Read a TOML config file. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}
