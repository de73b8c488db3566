// root.go --  This file is part of goHF project.
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
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/config"
	"example.com/gohf/internal/logger"
	"example.com/gohf/population"
	"example.com/gohf/wfn"
)

// Version is set at build time
var Version = "0.1.0"

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"precision":  "output.precision",
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	closer  io.Closer
}

func newApp() *app {
	return &app{v: viper.New(), log: zap.NewNop()}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "gohf-pop",
		Short: "Population analysis of converged wavefunction records",
		Long: `gohf-pop reads a wavefunction record (YAML or msgpack) and reports
quantities derived from it.

Commands:
  charges   - Mulliken charges of every atom
  density   - total or spin density matrix
  check     - orthonormality and normalization of the orbitals
  compare   - first field in which two records differ

Example:
  gohf-pop charges water.yaml
  gohf-pop check --log-level debug water.msgpack
  gohf-pop compare water.yaml water.msgpack`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default gohf.yaml in ., ./config or ~/.gohf)")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("log-format", "console", "log format: console or json")
	f.String("log-file", "", "append log lines to this file instead of stderr")
	f.Int("precision", 8, "decimals printed in reports")
	if err := bindFlags(a.v, f); err != nil {
		panic(err)
	}

	root.AddCommand(a.chargesCmd(), a.densityCmd(), a.checkCmd(), a.compareCmd())
	return root
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Log.File == "" {
		a.log = logger.NewWriter(cfg.Log, cmd.ErrOrStderr())
	} else {
		log, closer, err := logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		a.log, a.closer = log, closer
	}
	a.log.Info("Starting goHF...", zap.String("command", cmd.Name()))
	return nil
}

func (a *app) close() {
	a.log.Info("Exiting goHF...")
	_ = a.log.Sync()
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) load(path string) (*wfn.Record, error) {
	rec, err := wfn.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("record loaded",
		zap.String("path", path),
		zap.String("title", rec.Title),
		zap.Int("natom", rec.NAtom()),
		zap.Bool("unrestricted", rec.Beta != nil))
	return rec, nil
}

// overlap returns the record's stored overlap operator, checked against
// its basis when there is one.
func overlap(rec *wfn.Record) (mat.Matrix, error) {
	engine, err := population.RecordOverlap(rec)
	if err != nil {
		return nil, err
	}
	if rec.Basis == nil {
		return engine.S, nil
	}
	return engine.Overlap(rec.Basis)
}
