package protocol

import (
	"fmt"

	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/spf13/cobra"
)

// checkCmd validates a destination config and the reachability of its bucket
var checkCmd = &cobra.Command{
	Use:   "check-destination",
	Short: "check that the destination bucket is reachable",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if destinationConfigPath == "" {
			return fmt.Errorf("--destination not passed")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := destination.NewClientFromFile(cmd.Context(), destinationConfigPath)
		if err != nil {
			emit(types.Message{Type: types.UploadMessage, Status: types.StatusFailed, Message: err.Error()})
			return nil
		}
		defer client.Close()

		emit(types.Message{
			Type:    types.UploadMessage,
			Status:  types.StatusSucceeded,
			Message: fmt.Sprintf("%s bucket %s is reachable", client.Type(), client.Bucket()),
		})
		return nil
	},
}
