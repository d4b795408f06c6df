package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conandweb/internal/domain"
	"conandweb/internal/repository/cache"
	"conandweb/internal/repository/postgres"
	"conandweb/internal/services"
)

var (
	seedFile  string
	seedReset bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import a YAML content document",
	Long: `Imports media, speakers, sponsors, events, site settings and translations from a
YAML document in a single transaction. References between documents are either a
key or an inline object. With --reset every content table is emptied first.

The content cache is purged afterwards when REDIS_URL is set.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "content document (YAML)")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete existing content before importing")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open content document: %w", err)
	}
	defer f.Close()
	doc, err := services.DecodeContentDocument(f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var purger domain.CachePurger = cache.NopPurger{}
	if a.cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(ctx, a.cfg.RedisURL)
		if err != nil {
			a.logger.Warn("content cache unavailable, skipping purge", "err", err)
		} else {
			defer store.Close()
			purger = cache.NewPurger(store)
		}
	}

	seeder := services.NewSeedService(postgres.NewContentImporter(db), purger)
	stats, err := seeder.Seed(ctx, doc, seedReset)
	if err != nil {
		return err
	}
	a.logger.Info("content imported",
		"file", seedFile,
		"reset", seedReset,
		"media", stats.Media,
		"speakers", stats.Speakers,
		"sponsors", stats.Sponsors,
		"events", stats.Events,
		"sessions", stats.Sessions,
		"site_settings", stats.SiteSettings,
		"translations", stats.Translations,
	)
	return nil
}
