package commands

import (
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewAutopilotCommand creates the autopilot command group
func NewAutopilotCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autopilot",
		Short: "Autopilot feedback processing",
		Long:  "Submit raw feedback to autopilot, which categorizes and processes it automatically",
	}

	cmd.AddCommand(newAutopilotEnqueueCommand(rt))

	return cmd
}

func newAutopilotEnqueueCommand(rt *Runtime) *cobra.Command {
	var feedback, userID, sourceURL string

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Enqueue feedback for processing",
		Long:  "Submit feedback text on behalf of a user for autopilot processing",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Autopilot().Enqueue(cmd.Context(), &canny.AutopilotEnqueueRequest{
				Feedback:  feedback,
				UserID:    userID,
				SourceURL: optString(cmd, "source-url", sourceURL),
			})
			if err != nil {
				return err
			}

			return rt.printCreated("autopilot job", id)
		},
	}

	cmd.Flags().StringVar(&feedback, "feedback", "", "the feedback text")
	cmd.Flags().StringVar(&userID, "user-id", "", "the ID of the user giving the feedback")
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "where the feedback came from")
	_ = cmd.MarkFlagRequired("feedback")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
