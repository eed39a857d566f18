package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/codemap/internal/app"
	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear the analysis cache",
	Long:  "Deletes the .codemap/ state directory, including the bbolt analysis cache. The map file itself is left alone.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)

	if _, err := os.Stat(paths.Root); os.IsNotExist(err) {
		fmt.Println("⚡ no cache to wipe")
		return nil
	}

	if !wipeForce {
		fmt.Printf("⚠ This will delete the codemap cache for %s. Continue? [y/N] ", filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	if err := os.RemoveAll(paths.Root); err != nil {
		return fmt.Errorf("wipe cache: %w", err)
	}
	fmt.Println("⚡ cache wiped")
	return nil
}
