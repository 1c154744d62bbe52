package protocol

import (
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/goccy/go-json"
)

// emit logs the status line of a command as JSON.
func emit(message types.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("failed to marshal %s message: %s", message.Type, err)
		return
	}
	logger.Info(string(data))
}
