package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	var userID, sessionID string
	chatCmd := &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "Send one chat message to the companion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"userId":  userID,
				"message": strings.Join(args, " "),
			}
			if sessionID != "" {
				body["sessionId"] = sessionID
			}
			resp, err := newClient().R().SetBody(body).Post("/api/chat")
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
	chatCmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	chatCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session ID to continue")
	_ = chatCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(chatCmd)
}
