package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/codemap/internal/app"
	"github.com/corey/codemap/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  "Shows the project root, state paths, and the exclusion/extension/cap settings in effect (defaults plus .codemap.yml).",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	paths := app.NewPaths(root)

	cfgFile := filepath.Join(root, config.FileName)
	cfgStatus := fmt.Sprintf("%snone (defaults)%s", colorGray, colorReset)
	if _, err := os.Stat(cfgFile); err == nil {
		cfgStatus = cfgFile
	}

	fmt.Printf("%s⚡ codemap config%s\n", colorBold, colorReset)
	fmt.Printf("  Project:       %s\n", filepath.Base(root))
	fmt.Printf("  Root:          %s\n", root)
	fmt.Printf("  Output:        %s\n", paths.MapFile)
	fmt.Printf("  Cache DB:      %s\n", paths.DB)
	fmt.Printf("  Config file:   %s\n", cfgStatus)
	fmt.Printf("  Extensions:    %s\n", sortedKeys(cfg.CodeExts))
	fmt.Printf("  Exclude dirs:  %s (plus hidden)\n", sortedKeys(cfg.ExcludeDirs))
	fmt.Printf("  Exclude files: %s\n", sortedKeys(cfg.ExcludeFiles))
	fmt.Printf("  Caps:          imports=%d exports=%d methods=%d functions=%d\n",
		cfg.Caps.Imports, cfg.Caps.Exports, cfg.Caps.Methods, cfg.Caps.Functions)
	return nil
}

func sortedKeys(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, " ")
}
