package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scholarly-commons/pureimport/mapping"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage mapping profiles",
	Long:  `List and inspect the column-mapping profiles used when reading CSV exports.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := mapping.NewRegistry()
		if err != nil {
			return err
		}

		profiles := registry.List()
		if len(profiles) == 0 {
			fmt.Println("No profiles found")
			return nil
		}

		fmt.Println("Available profiles:")
		for _, name := range profiles {
			profile, _ := registry.Get(name)
			desc := ""
			if profile.Description != "" {
				desc = " - " + profile.Description
			}
			fmt.Printf("  %s%s\n", name, desc)
		}

		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := mapping.NewRegistry()
		if err != nil {
			return err
		}

		profile, ok := registry.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown profile: %s", args[0])
		}

		out, err := yaml.Marshal(profile)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

var profilesColumnsCmd = &cobra.Command{
	Use:   "columns [profile]",
	Short: "List column mappings in a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := mapping.NewRegistry()
		if err != nil {
			return err
		}

		profile, ok := registry.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown profile: %s", args[0])
		}

		if profile.Passthrough {
			fmt.Printf("%s is a passthrough profile: every header maps to its lowercased self\n", args[0])
			return nil
		}

		fmt.Printf("Columns in %s profile:\n\n", args[0])
		fmt.Printf("%-30s -> %s\n", "Source Column", "Field")
		fmt.Printf("%-30s    %s\n", "-------------", "-----")
		for _, c := range profile.Columns {
			fmt.Printf("%-30s -> %s\n", c.Source, c.Field)
		}

		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesColumnsCmd)
}
