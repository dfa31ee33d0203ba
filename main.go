// Command poroznost repairs a triangulated surface scan of a porous
// material sample and splits it into consistently oriented surface
// components for volumetric analysis.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregorjerse/poroznost/config"
	"github.com/gregorjerse/poroznost/logger"
	"github.com/gregorjerse/poroznost/meshio"
	"github.com/gregorjerse/poroznost/topo"
)

var (
	flagConfig   string
	flagOutDir   string
	flagBaseName string
	flagDumpOBJ  string
	flagFill     bool
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "poroznost [file]",
	Short: "Repair a scanned triangle soup and split it into oriented components",
	Long: "Reads an STL triangle soup (binary or ASCII), removes dangling " +
		"triangles, splits the surface into connected components with a " +
		"consistent winding order and writes one file per component.",
	Args: cobra.ExactArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file")
	rootCmd.Flags().StringVarP(&flagOutDir, "out-dir", "o", "", "Directory for component files")
	rootCmd.Flags().StringVarP(&flagBaseName, "base-name", "b", "", "Base name for component files")
	rootCmd.Flags().StringVar(&flagDumpOBJ, "dump-obj", "", "Dump the repaired mesh as OBJ to this path")
	rootCmd.Flags().BoolVar(&flagFill, "fill", false, "Also write a centroid tetrahedralization per component (experimental)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Also log to this file")
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("out-dir") {
		cfg.Output.Dir = flagOutDir
	}
	if cmd.Flags().Changed("base-name") {
		cfg.Output.BaseName = flagBaseName
	}
	if cmd.Flags().Changed("dump-obj") {
		cfg.Output.DumpOBJ = flagDumpOBJ
	}
	if cmd.Flags().Changed("fill") {
		cfg.Fill = flagFill
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.LogFile = flagLogFile
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	path := args[0]
	logger.Log.Info("reading mesh", zap.String("file", path))
	raw, err := meshio.ReadSTL(path)
	if err != nil {
		return err
	}

	soup := topo.NewSoup()
	dups := 0
	for _, t := range raw {
		if !soup.Add(t[0], t[1], t[2]) {
			dups++
		}
	}
	logger.Log.Info("soup ingested",
		zap.Int("records", len(raw)),
		zap.Int("triangles", soup.Len()),
		zap.Int("duplicates", dups),
		zap.Int("points", len(soup.Points)))

	res := topo.Run(soup, logger.Log)

	if cfg.Output.DumpOBJ != "" {
		if err := meshio.WriteOBJ(cfg.Output.DumpOBJ, soup.Points, soup.Tris); err != nil {
			return fmt.Errorf("dumping repaired mesh: %w", err)
		}
		logger.Log.Info("repaired mesh dumped", zap.String("file", cfg.Output.DumpOBJ))
	}

	paths, err := meshio.WriteComponents(cfg.Output.Dir, cfg.Output.BaseName, soup.Points, res.Components)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Log.Info("component written", zap.String("file", p))
	}

	if cfg.Fill {
		if err := writeFills(cfg, soup, res); err != nil {
			return err
		}
	}

	if len(res.Failed) > 0 && len(res.Components) == 0 {
		return fmt.Errorf("no component could be oriented (%d failed)", len(res.Failed))
	}
	return nil
}

// writeFills runs the experimental centroid fill-in on every oriented
// component and writes the tetrahedra next to the component files.
func writeFills(cfg *config.Config, soup *topo.Soup, res *topo.Result) error {
	for _, cr := range res.Components {
		members := make([]topo.Tri, len(cr.Tris))
		for i, t := range cr.Tris {
			members[i] = t.Canonical()
		}
		tets := topo.FillIn(soup, members)
		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%02d.tet", cfg.Output.BaseName, cr.Index))
		if err := meshio.WriteTetrahedra(path, soup.Points, tets); err != nil {
			return fmt.Errorf("writing fill for component %02d: %w", cr.Index, err)
		}
		logger.Log.Info("fill written", zap.String("file", path), zap.Int("tetrahedra", len(tets)))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
