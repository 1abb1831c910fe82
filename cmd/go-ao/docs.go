package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bryankaraffa/go-ao/internal/log"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate reference documentation for the go-ao CLI",
	Long:  `Generate one page per go-ao command, as Markdown (with the root page renamed to README.md) or as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", outputDir, err)
		}

		switch format {
		case "markdown":
			if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
				return fmt.Errorf("failed to generate markdown docs: %w", err)
			}
			rootFile := filepath.Join(outputDir, rootCmd.Name()+".md")
			if err := os.Rename(rootFile, filepath.Join(outputDir, "README.md")); err != nil {
				return fmt.Errorf("failed to rename %s: %w", rootFile, err)
			}
		case "yaml":
			if err := doc.GenYamlTree(rootCmd, outputDir); err != nil {
				return fmt.Errorf("failed to generate yaml docs: %w", err)
			}
		default:
			return fmt.Errorf("invalid docs format: %s. Valid formats: markdown, yaml", format)
		}

		log.Info("generated CLI docs", "dir", outputDir, "format", format)
		return nil
	},
}

func init() {
	docsCmd.Flags().StringP("output", "o", "./docs", "Output directory for generated documentation")
	docsCmd.Flags().StringP("format", "f", "markdown", "Documentation format: markdown or yaml")
	rootCmd.AddCommand(docsCmd)
}
