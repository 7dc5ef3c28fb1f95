package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match rotation commands",
	}

	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchGenerateCmd())
	cmd.AddCommand(newMatchCompleteCmd())

	return cmd
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session-id>",
		Short: "List a session's active matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/matches", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <session-id>",
		Short: "Fill idle courts from the waiting pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GenerateResult

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/matches/generate", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func newMatchCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <match-id>",
		Short: "Complete a match and return its players to the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CompleteResult

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/complete", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
