package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Public booking-link commands (no login required)",
	}

	cmd.AddCommand(newBookingGetCmd())
	cmd.AddCommand(newBookingJoinCmd())

	return cmd
}

func newBookingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "View a session through its booking link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Booking

			if err := client.Get(fmt.Sprintf("/api/v1/bookings/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBookingJoinCmd() *cobra.Command {
	var name, category string

	cmd := &cobra.Command{
		Use:   "join <slug>",
		Short: "Register yourself for a session",
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

			if err := client.Post(fmt.Sprintf("/api/v1/bookings/%s/players", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name (required)")
	cmd.Flags().StringVar(&category, "category", "", "Skill category: Beginner, Intermediate, Expert")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
