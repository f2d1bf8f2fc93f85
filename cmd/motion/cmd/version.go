package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the motion CLI version and build time.",
		Usage: "motion version",
		Run: func(*pflag.FlagSet, []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "motion version %s (built %s)\n", Version, BuildTime)
}
