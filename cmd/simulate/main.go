// Command simulate runs adventures back to back against in-memory storage
// and prints how the party fared. Useful for tuning content files and
// the difficulty curve without a server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/osse101/Adventure_Go/internal/bootstrap"
	"github.com/osse101/Adventure_Go/internal/config"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/utils"
)

const groupID = "simulation"

type options struct {
	rounds     int
	party      int
	monster    string
	actions    []domain.Action
	seed       int64
	contentDir string
	openChests bool
	verbose    bool
}

type tally struct {
	success, slain, persuaded, gateFailed int
	rewarded, penalized                   int
	xp, currency                          int64
	monsters                              map[string]int
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := logger.LogLevelWarn
	if opts.verbose {
		level = logger.LogLevelDebug
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, logger.LogFormatText, "simulate", logger.DefaultVersion, logger.EnvironmentTest), os.Stderr)

	if err := run(context.Background(), opts); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	var actions string
	flag.IntVar(&opts.rounds, "rounds", 100, "number of adventures to run")
	flag.IntVar(&opts.party, "party", 3, "participants per adventure")
	flag.StringVar(&opts.monster, "monster", "", "monster template to fight every round (empty draws one)")
	flag.StringVar(&actions, "actions", "", "comma separated actions cycled across the party (empty picks at random)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")
	flag.StringVar(&opts.contentDir, "content", "", "content directory (empty uses the embedded catalog)")
	flag.BoolVar(&opts.openChests, "open", true, "open earned chests after each round")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	if opts.rounds < 1 || opts.party < 1 {
		return opts, fmt.Errorf("rounds and party must be positive")
	}
	for _, s := range strings.Split(actions, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		a, err := domain.ParseAction(s)
		if err != nil {
			return opts, err
		}
		opts.actions = append(opts.actions, a)
	}
	return opts, nil
}

func run(ctx context.Context, opts options) error {
	cfg := &config.Config{
		ContentDir:         opts.contentDir,
		SessionTTL:         config.DefaultSessionTTL,
		ResolveLockTimeout: config.DefaultResolveLockTimeout,
		SkillResetCooldown: config.DefaultSkillResetCooldown,
		RNGSeed:            opts.seed,
	}

	catalog, err := bootstrap.LoadCatalog(cfg.ContentDir)
	if err != nil {
		return err
	}
	repos, err := bootstrap.InitializeRepositories(ctx, cfg, catalog)
	if err != nil {
		return err
	}
	defer repos.Close()

	svcs := bootstrap.InitializeServices(cfg, catalog, repos, event.NewMemoryBus())
	rng := utils.NewRand(opts.seed)

	players := make([]string, opts.party)
	for i := range players {
		players[i] = fmt.Sprintf("player%d", i+1)
	}

	t := tally{monsters: make(map[string]int)}
	for round := 0; round < opts.rounds; round++ {
		s, err := svcs.Sessions.Start(ctx, groupID, players[0], opts.monster)
		if err != nil {
			return fmt.Errorf("round %d: %w", round+1, err)
		}
		t.monsters[s.Monster.DisplayName()]++

		for i, p := range players {
			if _, err := svcs.Sessions.Join(ctx, groupID, p, pickAction(opts.actions, i, rng)); err != nil {
				return fmt.Errorf("round %d: join %s: %w", round+1, p, err)
			}
		}

		res, err := svcs.Sessions.Resolve(ctx, groupID, s.ID)
		if err != nil {
			return fmt.Errorf("round %d: %w", round+1, err)
		}

		o := res.Outcome
		if o.Success {
			t.success++
		}
		if o.Slain {
			t.slain++
		}
		if o.Persuaded {
			t.persuaded++
		}
		if o.GateFailed {
			t.gateFailed++
		}
		t.rewarded += len(o.Rewarded)
		t.penalized += len(o.Penalized)
		for _, g := range res.Grants {
			t.xp += g.XP
			t.currency += g.Currency
		}

		if opts.openChests {
			for _, p := range players {
				if err := openAll(ctx, svcs, p); err != nil {
					return err
				}
			}
		}
	}

	return report(ctx, os.Stdout, opts, t, svcs, players)
}

func pickAction(actions []domain.Action, i int, rng *rand.Rand) domain.Action {
	if len(actions) > 0 {
		return actions[i%len(actions)]
	}
	return domain.AllActions[rng.Intn(len(domain.AllActions))]
}

func openAll(ctx context.Context, svcs *bootstrap.Services, userID string) error {
	profile, err := svcs.Characters.Get(ctx, userID)
	if err != nil {
		return err
	}
	for _, chest := range domain.ChestTypes {
		if n := profile.Character.Treasure.Get(chest); n > 0 {
			if _, err := svcs.Characters.OpenChests(ctx, userID, chest, n); err != nil {
				return fmt.Errorf("open %s chests for %s: %w", chest, userID, err)
			}
		}
	}
	return nil
}

func report(ctx context.Context, out io.Writer, opts options, t tally, svcs *bootstrap.Services, players []string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	pct := func(n int) float64 { return 100 * float64(n) / float64(opts.rounds) }

	fmt.Fprintf(w, "rounds\t%d\n", opts.rounds)
	fmt.Fprintf(w, "success\t%d\t%.1f%%\n", t.success, pct(t.success))
	fmt.Fprintf(w, "slain\t%d\t%.1f%%\n", t.slain, pct(t.slain))
	fmt.Fprintf(w, "persuaded\t%d\t%.1f%%\n", t.persuaded, pct(t.persuaded))
	fmt.Fprintf(w, "gate failed\t%d\t%.1f%%\n", t.gateFailed, pct(t.gateFailed))
	fmt.Fprintf(w, "rewarded / penalized\t%d / %d\n", t.rewarded, t.penalized)
	fmt.Fprintf(w, "xp / currency\t%d / %d\n", t.xp, t.currency)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "player\tlevel\tbalance\tbackpack\twins\tlosses")
	for _, p := range players {
		profile, err := svcs.Characters.Get(ctx, p)
		if err != nil {
			return err
		}
		c := profile.Character
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n", p, c.Level, profile.Balance, len(c.Backpack), c.Adventures.Wins, c.Adventures.Losses)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "monster\tencounters")
	names := make([]string, 0, len(t.monsters))
	for m := range t.monsters {
		names = append(names, m)
	}
	sort.Strings(names)
	for _, m := range names {
		fmt.Fprintf(w, "%s\t%d\n", m, t.monsters[m])
	}
	return w.Flush()
}
