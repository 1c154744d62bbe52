package protocol

import (
	"fmt"
	"strings"

	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/spf13/cobra"
)

// specCmd prints the upload config shape of every registered destination, or
// of the one named as argument
var specCmd = &cobra.Command{
	Use:   "spec [destination-type]",
	Short: "print the destination config specs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		specs, err := destinationSpecs(args...)
		if err != nil {
			return err
		}

		logger.FileLogger(map[string]any{"spec": specs}, "spec", ".json")
		emit(types.Message{Type: types.SpecMessage, Status: types.StatusSucceeded, Rows: len(specs)})
		return nil
	},
}

func destinationSpecs(names ...string) (map[types.DestinationType]any, error) {
	specs := map[types.DestinationType]any{}
	if len(names) > 0 {
		destType := types.DestinationType(strings.ToUpper(names[0]))
		newFunc, found := destination.RegisteredUploaders[destType]
		if !found {
			return nil, fmt.Errorf("invalid destination type has been passed [%s]", destType)
		}
		specs[destType] = newFunc().Spec()
		return specs, nil
	}

	for destType, newFunc := range destination.RegisteredUploaders {
		specs[destType] = newFunc().Spec()
	}
	return specs, nil
}
