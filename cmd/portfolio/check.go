package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckConfigCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the environment configuration without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK (relay: %s, port: %s)\n", cfg.Relay.Provider, cfg.Port)
			return nil
		},
	}
}
