package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List registered services and their aliases",
	Args:  cobra.NoArgs,
	RunE:  runServices,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	_, _, reg, err := setup(cmd)
	if err != nil {
		return err
	}

	for _, svc := range reg.Services() {
		line := fmt.Sprintf("%-12s %s", svc.ID, svc.Name)
		if len(svc.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(svc.Aliases, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}
