// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package main is the entry point for the lessoncrew CLI.
//
// lessoncrew turns free-form teaching notes into a lesson plan, a quiz, and
// a teaching-strategies guide. The CLI analyzes the notes locally and
// dispatches generation to an external agent-orchestration framework.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lessoncrew/lessoncrew/internal/log"
	"github.com/lessoncrew/lessoncrew/internal/secrets"
	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the lessoncrew CLI.
var rootCmd = &cobra.Command{
	Use:   "lessoncrew",
	Short: "Generate teaching materials from free-form teaching notes",
	Long: `lessoncrew configures a multi-agent pipeline that turns teaching notes into
three documents: a lesson plan, an assessment quiz, and a teaching-strategies
guide.

The CLI pre-digests the notes with two local analysis tools (structured field
extraction and grade-level complexity estimation) and hands the declarative
crew definition to an external orchestration framework, which runs the agents
and the language model. Use analyze to run the local tools on their own.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetVerbose()
		}

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			log.Debug("loaded secrets", "count", len(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lessoncrew.yaml or ~/.config/lessoncrew/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of API key files")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lessoncrew")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lessoncrew"))
		}
	}

	viper.SetEnvPrefix("LESSONCREW")
	viper.AutomaticEnv()

	viper.SetDefault("orchestrator.timeout", 10*time.Minute)
	viper.SetDefault("output.results_file", "output/lessoncrew_results.txt")

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the full configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Orchestrator: types.OrchestratorConfig{
			Command: viper.GetString("orchestrator.command"),
			Args:    viper.GetStringSlice("orchestrator.args"),
			Timeout: viper.GetDuration("orchestrator.timeout"),
		},
		Crew: types.CrewConfig{
			AgentsFile: viper.GetString("crew.agents_file"),
			TasksFile:  viper.GetString("crew.tasks_file"),
		},
		Output: types.OutputConfig{
			ResultsFile: viper.GetString("output.results_file"),
		},
	}
}

// requireAPIKey fails fast when no model API key is configured, before any
// orchestrator run is attempted.
func requireAPIKey() error {
	if !secrets.HasAPIKey(loadedSecrets) {
		return fmt.Errorf("no model API key configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY, or add a key file under the secrets directory")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
