package cmd

import (
	"encoding/json"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/misternay/Poe2-SkillEye/core/config"
	"github.com/misternay/Poe2-SkillEye/core/logger"
	"github.com/misternay/Poe2-SkillEye/core/memory"
	"github.com/misternay/Poe2-SkillEye/core/utils"
	"github.com/misternay/Poe2-SkillEye/feature/skills"
)

var scanForce bool

// scanRow is the JSON shape for one best row in the scan dump.
type scanRow struct {
	Name      string  `json:"name"`
	Index     int     `json:"index"`
	RawHandle string  `json:"raw_handle"`
	Metrics   int     `json:"metrics"`
	Score     float64 `json:"score"`
}

// scanCmd performs a single scan and dumps the best-row mapping.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the skill vector once and dump the best rows",
	Long: `Attaches to the game process, performs one scan of the skill vector,
and prints the de-duplicated best-row mapping as JSON. Useful for
verifying layout offsets against a new game build.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		attacher := memory.NewAttacher(cfg.Memory, logg)
		defer attacher.Close()
		reader := memory.NewReader(attacher, cfg.Memory)
		scanner := skills.NewScanner(reader, cfg.Skills, logg)
		cache := skills.NewCache(scanner, logg)

		playerAddr, err := utils.ParseAddress(cfg.Watch.PlayerAddress)
		if err != nil {
			log.Fatalf("Invalid watch.player_address: %v", err)
		}
		player := &pointerOwner{reader: reader, addr: playerAddr}

		best := cache.Lookup(player, scanForce, nil)

		rows := make([]scanRow, 0, len(best))
		for _, rec := range best {
			rows = append(rows, scanRow{
				Name:      rec.Name,
				Index:     rec.Index,
				RawHandle: utils.FormatAddress(rec.RawHandle),
				Metrics:   len(rec.Metrics),
				Score:     scanner.Scorer().Score(rec),
			})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanForce, "force", false, "bypass the boundary-pair cache and rescan")
	RootCmd.AddCommand(scanCmd)
}
