package cmd

import (
	"fmt"
	"log"

	"tunedex/config"
	"tunedex/db"
	"tunedex/model"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	Long:  `Connect to the configured MySQL database and auto-migrate all catalog tables, then exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("Migrating database %s on %s:%s\n", cfg.DBName, cfg.DBHost, cfg.DBPort)

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.AutoMigrateModels(
			&model.User{},
			&model.Playlist{},
			&model.Song{},
			&model.Artist{},
			&model.PlaylistSong{},
			&model.SongArtist{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migration completed.")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
