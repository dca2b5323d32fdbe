package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site with a contact form backed by a mail relay",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Load environment variables from this file first")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newCheckConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
