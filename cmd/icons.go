package cmd

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misternay/Poe2-SkillEye/core/config"
	"github.com/misternay/Poe2-SkillEye/feature/icons"
)

// iconsReport is the JSON shape for the icons debug dump.
type iconsReport struct {
	Embedded   []string            `json:"embedded"`
	SearchDirs map[string][]string `json:"search_dirs"`
}

// iconsCmd dumps the icon sources the cache would resolve against: the
// assets bundled into the binary and the contents of the configured
// search directories.
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List bundled icons and what the search directories hold",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		report := iconsReport{
			Embedded:   icons.EmbeddedKeys(),
			SearchDirs: make(map[string][]string),
		}

		for _, dir := range cfg.Icons.SearchDirs {
			entries, err := os.ReadDir(dir)
			if err != nil {
				report.SearchDirs[dir] = nil
				continue
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if strings.EqualFold(filepath.Ext(e.Name()), ".png") {
					names = append(names, e.Name())
				}
			}
			report.SearchDirs[dir] = names
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(iconsCmd)
}
