package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerWaitingCmd())
	cmd.AddCommand(newPlayerImportCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name, category string

	cmd := &cobra.Command{
		Use:   "add <session-id>",
		Short: "Add a player to a session's roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			if category != "" {
				req["category"] = category
			}

			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/players", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&category, "category", "", "Skill category: Beginner, Intermediate, Expert")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session-id>",
		Short: "List a session's roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/players", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from their session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/players/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerWaitingCmd() *cobra.Command {
	var sitOut bool

	cmd := &cobra.Command{
		Use:   "waiting <player-id>",
		Short: "Mark a player as waiting or sitting out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"is_waiting": !sitOut}

			var result Player

			if err := client.Patch(fmt.Sprintf("/api/v1/players/%s/waiting", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sitOut, "sit-out", false, "Sit the player out instead of marking them waiting")

	return cmd
}

func newPlayerImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <session-id>",
		Short: "Import your saved pool into a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ImportResult

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/players/import", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Saved-player pool commands",
	}

	cmd.AddCommand(newPoolSaveCmd())
	cmd.AddCommand(newPoolListCmd())

	return cmd
}

func newPoolSaveCmd() *cobra.Command {
	var name, category string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a player to your pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			if category != "" {
				req["category"] = category
			}

			var result SavedPlayer

			if err := client.Post("/api/v1/pool", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&category, "category", "", "Skill category")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPoolListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your saved pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []SavedPlayer

			if err := client.Get("/api/v1/pool", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
