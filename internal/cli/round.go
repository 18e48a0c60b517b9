package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round management commands",
	}

	cmd.AddCommand(newRoundCreateCmd())
	cmd.AddCommand(newRoundGetCmd())
	cmd.AddCommand(newRoundSubmitCmd())
	cmd.AddCommand(newRoundFinishCmd())

	return cmd
}

func newRoundCreateCmd() *cobra.Command {
	var lang string
	var rows, cols int
	var players []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new round",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"language":   lang,
				"rows":       rows,
				"cols":       cols,
				"player_ids": players,
			}
			var result Round

			if err := client.Post("/api/v1/rounds", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "en", "Board language tag (en, sv, he, ja)")
	cmd.Flags().IntVar(&rows, "rows", 4, "Grid rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "Grid columns")
	cmd.Flags().StringSliceVar(&players, "player", nil, "Additional player IDs (repeatable)")

	return cmd
}

func newRoundGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <round-id>",
		Short: "Show round state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round

			if err := client.Get("/api/v1/rounds/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundSubmitCmd() *cobra.Command {
	var roundID string

	cmd := &cobra.Command{
		Use:   "submit <word>",
		Short: "Submit a word to a round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if roundID == "" {
				return fmt.Errorf("--round is required")
			}

			req := map[string]string{"word": args[0]}
			var result Submission

			if err := client.Post("/api/v1/rounds/"+roundID+"/submit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&roundID, "round", "", "Round ID (required)")
	_ = cmd.MarkFlagRequired("round")

	return cmd
}

func newRoundFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish <round-id>",
		Short: "Close a round to further submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round

			if err := client.Post("/api/v1/rounds/"+args[0]+"/finish", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
