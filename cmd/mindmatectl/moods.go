package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	moodsCmd := &cobra.Command{Use: "moods", Short: "Mood tracking operations"}

	var userID, mood, note string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Record a mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().
				SetBody(map[string]string{"userId": userID, "mood": mood, "note": note}).
				Post("/api/moods")
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	saveCmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	saveCmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood label (required)")
	saveCmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	_ = saveCmd.MarkFlagRequired("user")
	_ = saveCmd.MarkFlagRequired("mood")
	moodsCmd.AddCommand(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's mood history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/moods/" + args[0])
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	moodsCmd.AddCommand(listCmd)

	rootCmd.AddCommand(moodsCmd)

	patternsCmd := &cobra.Command{
		Use:   "patterns USER_ID",
		Short: "Show mood pattern rollups for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/mood-patterns/" + args[0])
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(patternsCmd)
}
