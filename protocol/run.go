package protocol

import (
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/spf13/cobra"
)

// runCmd chains generate, clean and, with --destination, upload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "generate, clean and optionally upload in one go",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		var client *destination.Client
		if destinationConfigPath != "" {
			client, err = destination.NewClientFromFile(cmd.Context(), destinationConfigPath)
			if err != nil {
				return err
			}
			defer client.Close()
		}

		result, err := svc.Run(cmd.Context(), generatorConfig(), client)
		if result != nil && result.Generate != nil {
			emit(types.Message{Type: types.GenerateMessage, Status: types.StatusSucceeded, Path: result.Generate.Path, Rows: result.Generate.Records})
		}
		if result != nil && result.Clean != nil {
			renderClean(cmd.OutOrStdout(), result.Clean)
		}
		if err != nil {
			emit(types.Message{Type: types.CleanMessage, Status: types.StatusFailed, Message: err.Error()})
			return err
		}

		emit(types.Message{Type: types.CleanMessage, Status: types.StatusSucceeded, Path: result.Clean.Save.Path, Rows: result.Clean.Save.Rows})
		for _, path := range result.Uploaded {
			emit(types.Message{Type: types.UploadMessage, Status: types.StatusSucceeded, Path: path})
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int("records", 10000, "Number of records to generate")
	runCmd.Flags().Float64("rogue-prob", 0.1, "Probability of a record being rogue")
	runCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a random one")
	runCmd.Flags().BoolVarP(&noCap, "no-price-cap", "", false, "Skip capping unrealistic prices")
	bindGeneratorFlags(runCmd)
}
