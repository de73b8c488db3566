// config.go --  This file is part of goHF project.
// Mirzaeva Irina, 2023
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"example.com/gohf/internal/logger"
	"example.com/gohf/orbcheck"
)

// EnvPrefix prefixes environment overrides, e.g. GOHF_LOG_LEVEL.
const EnvPrefix = "GOHF"

// Config is the resolved configuration of a run.
type Config struct {
	Log    logger.Config
	Check  orbcheck.Tolerances
	Output OutputConfig
}

// OutputConfig controls the report.
type OutputConfig struct {
	Precision int
}

// Load resolves configuration from defaults, an optional config file,
// the environment and anything already bound to v (command-line flags).
// With file empty, gohf.yaml is looked up in ., ./config and ~/.gohf
// and its absence is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		v.SetConfigName("gohf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gohf"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	cfg := &Config{
		Log: logger.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		Check: orbcheck.Tolerances{
			Orthonormal:   v.GetFloat64("check.orthonormal_tol"),
			Normalization: v.GetFloat64("check.normalization_tol"),
		},
		Output: OutputConfig{
			Precision: v.GetInt("output.precision"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the checks and the report cannot use.
func (c *Config) Validate() error {
	for name, tol := range map[string]float64{
		"check.orthonormal_tol":   c.Check.Orthonormal,
		"check.normalization_tol": c.Check.Normalization,
	} {
		if tol < 0 || math.IsNaN(tol) {
			return fmt.Errorf("config: %s must be a non-negative number, got %v", name, tol)
		}
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("config: output.precision must be within [0, 17], got %d", c.Output.Precision)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("check.orthonormal_tol", orbcheck.DefaultOrthonormalTolerance)
	v.SetDefault("check.normalization_tol", orbcheck.DefaultNormalizationTolerance)
	v.SetDefault("output.precision", 8)
}
