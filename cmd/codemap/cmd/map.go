package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/corey/codemap/internal/adapters/bbolt"
	"github.com/corey/codemap/internal/app"
	"github.com/corey/codemap/internal/config"
	"github.com/corey/codemap/internal/domain/report"
	"github.com/corey/codemap/internal/ports"
	"github.com/spf13/cobra"
)

var (
	mapStdout  bool
	mapNoCache bool
	mapOutput  string
)

var mapCmd = &cobra.Command{
	Use:   "map [dir]",
	Short: "Generate the project map",
	Long:  "Walks the tree and writes PROJECT_MAP.txt at the project root. Unchanged files reuse cached analyses.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&mapStdout, "stdout", false, "Write the map to stdout instead of a file")
	mapCmd.Flags().BoolVar(&mapNoCache, "no-cache", false, "Bypass the analysis cache")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "Output file path (default: PROJECT_MAP.txt at the root)")
}

func runMap(cmd *cobra.Command, args []string) error {
	dir := resolveDir(args)
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	paths := app.NewPaths(dir)

	mapper := &app.Mapper{Root: dir, Cfg: cfg, Cache: openCache(paths, mapNoCache)}
	if c := mapper.Cache; c != nil {
		defer c.Close()
	}

	if mapStdout {
		out := bufio.NewWriter(os.Stdout)
		if _, err := mapper.Generate(out); err != nil {
			return err
		}
		return out.Flush()
	}

	outPath := paths.MapFile
	if mapOutput != "" {
		outPath = mapOutput
	}
	res, err := mapper.WriteMap(outPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s⚡ project map written%s\n", colorBold, colorReset)
	fmt.Printf("  Output:      %s\n", outPath)
	fmt.Printf("  Files:       %d\n", res.Files)
	fmt.Printf("  Directories: %d\n", res.Dirs)
	if info, err := os.Stat(outPath); err == nil {
		fmt.Printf("  Size:        %s\n", report.FormatSize(info.Size()))
	}
	return nil
}

// openCache opens the bbolt analysis cache, or returns nil when noCache is
// set or the DB can't be opened (e.g. locked by another run). The map is
// always generated; the cache only speeds it up.
func openCache(paths *app.Paths, noCache bool) ports.Cache {
	if noCache {
		return nil
	}
	if err := os.MkdirAll(paths.Root, 0755); err != nil {
		return nil
	}
	c, err := bbolt.NewCache(paths.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%scodemap: cache unavailable (%v), continuing without it%s\n", colorYellow, err, colorReset)
		return nil
	}
	return c
}
