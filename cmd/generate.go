package cmd

import (
	"context"
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/retrolabs/retrolog/application"
	"github.com/retrolabs/retrolog/config"
)

func runGenerate(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	author := args[0]
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid day count %q: %w", args[1], err)
	}
	if days < 0 {
		return fmt.Errorf("day count must not be negative, got %d", days)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := buildGenerateService(outputPath, dryRun)
	if err != nil {
		return err
	}

	logger.Infof("Generating changelog for %q over the last %d days...", author, days)

	return svc.Run(ctx, cfg, application.RunOptions{
		Author:     author,
		SinceDays:  days,
		SourceName: sourceName,
		Verbose:    verbose,
	})
}

// loadConfig resolves the config file path (flag or auto-detect) and loads it.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create retrolog.yaml",
				err,
			)
		}
	}

	logger.Infof("Using config file: %s", cfgPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
