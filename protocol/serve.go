package protocol

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/datazip-inc/rogue-records/api"
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/spf13/cobra"
)

var addr string

// serveCmd starts the HTTP dashboard
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the dashboard API and prometheus metrics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var client *destination.Client
		if destinationConfigPath != "" {
			client, err = destination.NewClientFromFile(ctx, destinationConfigPath)
			if err != nil {
				return err
			}
			defer client.Close()
		}

		return api.NewServer(svc, client).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&addr, "addr", "", ":8080", "Address the dashboard listens on")
}
