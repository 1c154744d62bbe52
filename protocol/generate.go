package protocol

import (
	"fmt"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/generator"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func generatorConfig() generator.Config {
	return generator.Config{
		Records:   viper.GetInt(constants.Records),
		RogueProb: viper.GetFloat64(constants.RogueProb),
		Seed:      viper.GetUint64(constants.Seed),
	}
}

// generateCmd writes a new raw batch of order records
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a batch of synthetic order records, some of them rogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.Generate(cmd.Context(), generatorConfig())
		if err != nil {
			emit(types.Message{Type: types.GenerateMessage, Status: types.StatusFailed, Message: err.Error()})
			return err
		}

		logger.Infof("generated %d records (%d rogue) into %s", result.Records, result.Rogue, result.Path)
		emit(types.Message{
			Type:    types.GenerateMessage,
			Status:  types.StatusSucceeded,
			Path:    result.Path,
			Rows:    result.Records,
			Message: fmt.Sprintf("job %s", result.JobID),
		})
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("records", 10000, "Number of records to generate")
	generateCmd.Flags().Float64("rogue-prob", 0.1, "Probability of a record being rogue")
	generateCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a random one")
	bindGeneratorFlags(generateCmd)
}

// bindGeneratorFlags lets flags override the RECORDS, ROGUE_PROB and SEED keys.
func bindGeneratorFlags(cmd *cobra.Command) {
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		for key, flag := range map[string]string{
			constants.Records:   "records",
			constants.RogueProb: "rogue-prob",
			constants.Seed:      "seed",
		} {
			if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
				viper.Set(key, f.Value.String())
			}
		}
		return nil
	}
}
