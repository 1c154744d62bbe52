package main

import (
	_ "github.com/datazip-inc/rogue-records/destination/blob"
	_ "github.com/datazip-inc/rogue-records/destination/gcs"
	_ "github.com/datazip-inc/rogue-records/destination/s3"
	"github.com/datazip-inc/rogue-records/protocol"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/utils/safego"
)

func main() {
	defer safego.Recovery(true)

	if err := protocol.CreateRootCommand().Execute(); err != nil {
		logger.Fatal(err)
	}
}
