package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gosniff/imghdr/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - image format identification tool",
	}

	rootCmd.AddCommand(DefineWhatCommand())
	rootCmd.AddCommand(DefineSniffCommand())
	rootCmd.AddCommand(DefineScanCommand())
	rootCmd.AddCommand(DefineFormatsCommand())

	return rootCmd.Execute()
}
