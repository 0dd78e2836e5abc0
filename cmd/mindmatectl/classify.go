package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindmate/mindmate-server/internal/mood"
	"github.com/mindmate/mindmate-server/internal/safety"
)

func init() {
	var local bool
	classifyCmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Classify the mood of a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if local {
				_, _ = fmt.Fprintln(os.Stdout, mood.NewClassifier().Classify(text))
				return nil
			}
			resp, err := newClient().R().
				SetBody(map[string]string{"text": text}).
				Post("/api/detect-mood")
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
	classifyCmd.Flags().BoolVarP(&local, "local", "l", false, "Use the offline lexicon classifier instead of the API")
	rootCmd.AddCommand(classifyCmd)

	detectCrisisCmd := &cobra.Command{
		Use:   "detect-crisis TEXT...",
		Short: "Run the offline crisis phrase screen over text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if safety.NewDefault().Detect(strings.Join(args, " ")) {
				_, _ = fmt.Fprintln(os.Stdout, "crisis")
				return nil
			}
			_, _ = fmt.Fprintln(os.Stdout, "clear")
			return nil
		},
	}
	rootCmd.AddCommand(detectCrisisCmd)
}
