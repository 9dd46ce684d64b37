package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mlejeune/soiree-tui/internal/store"
	"github.com/mlejeune/soiree-tui/internal/ui"
	"github.com/mlejeune/soiree-tui/internal/util"
)

const releaseVersion = "0.2.0"

var seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

func main() {
	log.SetFlags(0)
	// Load .env file if it exists
	_ = godotenv.Load()
	cfg := &util.Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *util.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SOIREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "soiree [migrate up|down]",
		Short:         "A terminal deck of party games: guess-the-word, drawing cards and lateral riddles.",
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runMigrate(cmd.Context(), cfg, args)
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.SeedText, "seed", "", "run seed string, random if omitted (env: SOIREE_SEED)")
	fs.StringVar(&cfg.DataDir, "data", "data", "directory holding deck and riddle files (env: SOIREE_DATA)")
	fs.StringVar(&cfg.DBPath, "db", "soiree.db", "path to the sqlite database (env: SOIREE_DB)")
	fs.StringVar(&cfg.Locale, "locale", "fr", "startup locale: fr, en or es (env: SOIREE_LOCALE)")
	fs.BoolVar(&cfg.StickyBonus, "sticky-bonus", true, "keep the same dare for a theme/difficulty pairing across restarts (env: SOIREE_STICKY_BONUS)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "display additional output (env: SOIREE_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("soiree v{{.Version}}\n")

	return cmd
}

func runMigrate(ctx context.Context, cfg *util.Config, args []string) error {
	if args[0] != "migrate" || len(args) < 2 {
		return fmt.Errorf("unknown arguments %v; use migrate up|down", args)
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(cfg.DBPath)
	if err != nil {
		return err
	}
	switch args[1] {
	case "up":
		if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
			return err
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
			return err
		}
		fmt.Println("Migrations rolled back")
	default:
		return fmt.Errorf("unknown migrate action %q; use up|down", args[1])
	}
	return nil
}

func run(ctx context.Context, cfg *util.Config) error {
	cfg.SeedText = strings.TrimSpace(cfg.SeedText)
	if cfg.SeedText == "" {
		generated, err := generateSeed()
		if err != nil {
			return fmt.Errorf("failed to generate seed: %w", err)
		}
		cfg.SeedText = generated
		fmt.Printf("New run seed: %s\n", cfg.SeedText)
	}
	if cfg.Verbose {
		log.Printf("seed=%s data=%s db=%s locale=%s", cfg.SeedText, cfg.DataDir, cfg.DBPath, cfg.Locale)
	}

	// Ensure migrations are applied before opening the UI.
	mig, err := store.NewMigrator(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("migrations init failed: %w", err)
	}
	migCtx, cancelMig := context.WithTimeout(ctx, 30*time.Second)
	defer cancelMig()
	if err := mig.Up(migCtx); err != nil && err != store.ErrNoChange {
		return fmt.Errorf("migrations failed: %w", err)
	}

	db, err := store.Open(ctx, *cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return ui.Run(ctx, db, *cfg, releaseVersion)
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
