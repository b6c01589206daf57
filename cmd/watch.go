package cmd

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/misternay/Poe2-SkillEye/core/config"
	"github.com/misternay/Poe2-SkillEye/core/gameclock"
	"github.com/misternay/Poe2-SkillEye/core/logger"
	"github.com/misternay/Poe2-SkillEye/core/memory"
	"github.com/misternay/Poe2-SkillEye/core/utils"
	"github.com/misternay/Poe2-SkillEye/feature/cooldown"
	"github.com/misternay/Poe2-SkillEye/feature/icons"
	"github.com/misternay/Poe2-SkillEye/feature/skills"
)

// watchCmd runs the polling loop: attach, scan, track, reconcile.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Attach to the game process and poll skill state",
	Long:  `Attaches to the configured game process and polls the skill vector, cooldown state, and icon cache until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.Load(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Wire the core components
		attacher := memory.NewAttacher(cfg.Memory, logg)
		defer attacher.Close()
		reader := memory.NewReader(attacher, cfg.Memory)
		scanner := skills.NewScanner(reader, cfg.Skills, logg)
		rows := skills.NewCache(scanner, logg)
		clock := gameclock.New()

		playerAddr, err := utils.ParseAddress(cfg.Watch.PlayerAddress)
		if err != nil {
			log.Fatalf("Invalid watch.player_address: %v", err)
		}
		player := &pointerOwner{reader: reader, addr: playerAddr}

		resolve := durationResolver(rows, scanner, player)
		tracker := cooldown.NewTracker(clock, cfg.Cooldown, resolve, logg)

		iconCache := icons.NewCache(headlessTextures{}, cfg.Icons, nil, logg)
		defer iconCache.Cleanup()

		loop := &pollLoop{
			cfg:     cfg,
			log:     logg,
			attach:  attacher,
			scanner: scanner,
			rows:    rows,
			clock:   clock,
			tracker: tracker,
			icons:   iconCache,
			player:  player,
			resolve: resolve,
		}

		// 4. Poll until interrupted
		interval := time.Duration(cfg.Watch.IntervalMS) * time.Millisecond
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		logg.Info("watching",
			zap.String("process", cfg.Memory.ProcessName),
			zap.Duration("interval", interval))

		for {
			select {
			case <-quit:
				logg.Info("shutting down")
				return
			case <-ticker.C:
				loop.tick()
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

// pollLoop is one frame's worth of coordination between the scanner, the
// tracker, and the icon cache. The components never call each other; all
// glue lives here.
type pollLoop struct {
	cfg     *config.Config
	log     *zap.Logger
	attach  *memory.Attacher
	scanner *skills.Scanner
	rows    *skills.Cache
	clock   *gameclock.Clock
	tracker *cooldown.Tracker
	icons   *icons.Cache
	player  *pointerOwner
	resolve cooldown.DurationFunc

	ticks int
}

func (l *pollLoop) tick() {
	l.ticks++

	// Game not running: freeze the cooldown clock instead of letting
	// cooldowns burn down against a dead process.
	if err := l.attach.Ping(); err != nil {
		l.clock.Pause()
		return
	}
	l.clock.Resume()

	best := l.rows.Lookup(l.player, false, nil)

	desired := make([]string, 0, len(best))
	for _, rec := range best {
		usable, useCount, ok := l.scanner.LiveStatus(rec.RawHandle)
		if !ok {
			continue
		}
		l.tracker.Observe(rec.Name, usable, useCount, l.resolve(rec.Name))
		desired = append(desired, iconKey(rec.Name))
	}

	l.icons.Reconcile(desired, l.cfg.Icons.SearchDirs)

	if l.cfg.Watch.SummaryEveryTicks > 0 && l.ticks%l.cfg.Watch.SummaryEveryTicks == 0 {
		l.summarize(best)
	}
}

func (l *pollLoop) summarize(best map[string]*skills.Record) {
	onCooldown := 0
	for _, rec := range best {
		if l.tracker.Remaining(rec.Name) > 0 {
			onCooldown++
		}
	}
	l.log.Info("poll summary",
		zap.Int("skills", len(best)),
		zap.Int("on_cooldown", onCooldown),
		zap.Bool("paused", l.clock.IsPaused()))
}

// pointerOwner resolves the player's base address through one pointer
// read at a configured deployment address.
type pointerOwner struct {
	reader *memory.Reader
	addr   uint64
}

func (o *pointerOwner) BaseAddress() (uint64, bool) {
	if o.addr == 0 {
		return 0, false
	}
	base, ok := o.reader.ReadPointer(o.addr)
	return base, ok && base != 0
}

// durationResolver builds the cooldown duration lookup with its intended
// precedence: live metrics, then cached best-row metrics, then the
// record's static fallback, then zero.
func durationResolver(rows *skills.Cache, scanner *skills.Scanner, owner skills.Owner) cooldown.DurationFunc {
	return func(name string) time.Duration {
		best := rows.Lookup(owner, false, []string{name})
		rec, ok := best[strings.ToLower(name)]
		if !ok {
			return 0
		}
		if metrics, ok := scanner.LiveMetrics(rec.RawHandle); ok {
			if d, ok := cooldownFromMetrics(metrics); ok {
				return d
			}
		}
		if v, ok := rec.Metric("cooldown"); ok && v > 0 {
			return time.Duration(v * float64(time.Second))
		}
		if rec.FallbackCooldownMS > 0 {
			return time.Duration(rec.FallbackCooldownMS) * time.Millisecond
		}
		return 0
	}
}

func cooldownFromMetrics(metrics []skills.Metric) (time.Duration, bool) {
	for _, m := range metrics {
		if strings.EqualFold(m.Label, "cooldown") && m.Value > 0 {
			return time.Duration(m.Value * float64(time.Second)), true
		}
	}
	return 0, false
}

// iconKey maps a skill name onto its icon file name.
func iconKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".png"
}

// headlessTextures stands in for the overlay renderer when running from
// the CLI without a drawing surface. It validates that files exist and
// hands out synthetic handles.
type headlessTextures struct{}

var headlessHandles uintptr

func (headlessTextures) Acquire(path string) (icons.Texture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return icons.Texture{}, err
	}
	if info.IsDir() {
		return icons.Texture{}, icons.ErrIconNotFound
	}
	headlessHandles++
	return icons.Texture{Handle: headlessHandles, Width: 64, Height: 64}, nil
}

func (headlessTextures) Release(string) bool {
	return true
}
