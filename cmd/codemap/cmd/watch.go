package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/codemap/internal/adapters/fsnotify"
	"github.com/corey/codemap/internal/app"
	"github.com/corey/codemap/internal/config"
	"github.com/spf13/cobra"
)

var watchNoCache bool

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Keep the project map current",
	Long:  "Generates the map, then regenerates it whenever files change. Ctrl-C to stop.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchNoCache, "no-cache", false, "Bypass the analysis cache")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := resolveDir(args)
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	paths := app.NewPaths(dir)

	mapper := &app.Mapper{Root: dir, Cfg: cfg, Cache: openCache(paths, watchNoCache)}
	if c := mapper.Cache; c != nil {
		defer c.Close()
	}

	if _, err := mapper.WriteMap(paths.MapFile); err != nil {
		return err
	}
	fmt.Printf("%s⚡ watching%s %s%s%s — Ctrl-C to stop\n", colorBold, colorReset, colorCyan, dir, colorReset)

	watcher, err := fsnotify.NewWatcher(cfg)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	return mapper.Watch(watcher, paths.MapFile, stop)
}
