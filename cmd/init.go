/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nakachan-ing/bibfmt/internal/model"
	"github.com/nakachan-ing/bibfmt/internal/store"
	"github.com/spf13/cobra"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, err := store.GetConfigPath()
		if err != nil {
			log.Fatalf("❌ Failed to get config path: %v", err)
		}

		if _, err := os.Stat(configFile); err == nil && !initForce {
			log.Fatalf("❌ Config file already exists: %s (use --force to overwrite)", configFile)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("❌ Failed to check config file: %v", err)
		}

		if err := store.SaveConfig(model.DefaultConfig()); err != nil {
			log.Fatalf("❌ Failed to create config file: %v", err)
		}

		fmt.Println("✅ bibfmt initialized successfully!")
		fmt.Println("📄 Config file created at:", configFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
