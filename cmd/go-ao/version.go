package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set during build time via -ldflags
var version = "dev"

// gitSHA is set during build time via -ldflags
var gitSHA = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build details",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "go-ao version %s\n", version)
		fmt.Fprintf(out, "Git SHA: %s\n", gitSHA)
		fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
