// Package main provides the CLI entry point for go-ao
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bryankaraffa/go-ao/internal/log"
	"github.com/bryankaraffa/go-ao/pkg/ao"
)

var rootCmd = &cobra.Command{
	Use:   "go-ao",
	Short: "Agent orchestrator prompt generator",
	Long:  "Render the orchestrator prompt for a configured project, and inspect the settings the dashboard is started with.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetVerbose(verbose)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

var configPath string
var verbose bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to agent-orchestrator.yaml (default: search . and $HOME/.agent-orchestrator)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	promptCmd.Flags().Int("port", 0, "Override the dashboard port from the config")
	promptCmd.Flags().StringP("output", "o", "", "Write the prompt to a file instead of stdout")
	projectsCmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	dashboardEnvCmd.Flags().Int("port", 0, "Override the dashboard port from the config")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(dashboardEnvCmd)
	rootCmd.AddCommand(webDirCmd)
}

// loadConfig loads the configuration and applies a --port override
func loadConfig(cmd *cobra.Command) (ao.OrchestratorConfig, error) {
	config, err := ao.LoadConfig(configPath)
	if err != nil {
		return ao.OrchestratorConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Lookup("port") != nil {
		port, _ := cmd.Flags().GetInt("port")
		if port < 0 {
			return ao.OrchestratorConfig{}, fmt.Errorf("invalid port: %d", port)
		}
		if port > 0 {
			config.Port = port
		}
	}
	return config, nil
}

var promptCmd = &cobra.Command{
	Use:   "prompt [project-id]",
	Short: "Print the orchestrator prompt for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		prompt, err := ao.GenerateForProject(config, args[0])
		if err != nil {
			return fmt.Errorf("failed to generate prompt: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		}

		if err := ao.NewOSFileSystem().WriteFile(output, []byte(prompt+"\n")); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		log.Info("wrote orchestrator prompt", "project", args[0], "path", output)
		return nil
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List configured projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "yaml":
			data, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		case "text":
		default:
			return fmt.Errorf("invalid output format: %s. Valid formats: text, yaml", format)
		}

		ids := config.ProjectIDs()
		fmt.Fprintf(out, "Projects (%s):\n", config.ConfigPath)
		if len(ids) == 0 {
			fmt.Fprintln(out, "  No projects configured")
			return nil
		}
		for _, id := range ids {
			p := config.Projects[id]
			fmt.Fprintf(out, "  %s - %s (%s, branch %s, sessions %s-N)\n", id, p.Name, p.Repo, p.DefaultBranch, p.SessionPrefix)
		}
		return nil
	},
}

var dashboardEnvCmd = &cobra.Command{
	Use:   "dashboard-env",
	Short: "Print the environment the dashboard is started with",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		env := ao.BuildDashboardEnv(config.Port, config.ConfigPath, config.TerminalPort, config.DirectTerminalPort)
		for _, kv := range ao.Environ(env) {
			fmt.Fprintln(cmd.OutOrStdout(), kv)
		}
		return nil
	},
}

var webDirCmd = &cobra.Command{
	Use:   "web-dir",
	Short: "Print the directory of the installed dashboard package",
	RunE: func(cmd *cobra.Command, args []string) error {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		locator := ao.NewWebDirLocator(ao.NewOSFileSystem())
		fmt.Fprintln(cmd.OutOrStdout(), locator.Locate(wd, filepath.Dir(exe)))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
