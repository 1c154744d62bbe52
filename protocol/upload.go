package protocol

import (
	"fmt"

	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/service"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/spf13/cobra"
)

var (
	uploadKind string
	uploadFile string
)

// uploadCmd uploads a local file, or the newest file of a kind, to the
// configured destination
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "upload a generated or cleaned file to an object store",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if destinationConfigPath == "" {
			return fmt.Errorf("--destination not passed")
		}
		if uploadKind != string(service.Raw) && uploadKind != string(service.Cleaned) {
			return fmt.Errorf("invalid --kind [%s], expected raw or cleaned", uploadKind)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		client, err := destination.NewClientFromFile(cmd.Context(), destinationConfigPath)
		if err != nil {
			emit(types.Message{Type: types.UploadMessage, Status: types.StatusFailed, Message: err.Error()})
			return err
		}
		defer client.Close()

		path := uploadFile
		if path != "" {
			err = svc.Upload(cmd.Context(), client, destination.File{Source: path})
		} else {
			path, err = svc.UploadLatest(cmd.Context(), client, service.Kind(uploadKind))
		}
		if err != nil {
			emit(types.Message{Type: types.UploadMessage, Status: types.StatusFailed, Path: path, Message: err.Error()})
			return err
		}

		logger.Infof("uploaded %s to %s bucket %s", path, client.Type(), client.Bucket())
		emit(types.Message{
			Type:    types.UploadMessage,
			Status:  types.StatusSucceeded,
			Path:    path,
			Message: fmt.Sprintf("%s://%s", client.Type(), client.Bucket()),
		})
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadKind, "kind", "", string(service.Cleaned), "Which newest file to upload (raw or cleaned)")
	uploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Upload this file instead of the newest one")
}
