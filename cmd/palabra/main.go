package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/palabra/internal/archive"
	"codeberg.org/snonux/palabra/internal/cli"
	"codeberg.org/snonux/palabra/internal/models"
	"codeberg.org/snonux/palabra/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		archivePath, err := archive.ArchiveExports(flags.ExportDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Printf("Exports archived to: %s\n", archivePath)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), os.Stdout)
		return lister.ListAvailableModels(context.Background())
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()

	proc := processor.NewProcessor(flags, logger)

	vocabFile := ""
	if len(args) > 0 {
		vocabFile = args[0]
	}

	// Handle --anki export mode
	if flags.GenerateAnki {
		outputPath, err := proc.ExportAnki(vocabFile)
		if err != nil {
			return err
		}
		fmt.Printf("Anki deck created: %s\n", outputPath)
		return nil
	}

	return proc.RunSession(vocabFile)
}

// newLogger writes structured logs to a file in the state directory so
// they never garble the interactive terminal output
func newLogger() (*zap.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return zap.NewNop(), nil
	}

	stateDir := filepath.Join(home, ".local", "state", "palabra")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(stateDir, "palabra.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}
