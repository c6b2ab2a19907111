package cli

import (
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"advdiff/model"
	"advdiff/server"
)

func newServeCommand(opts *options, logger *log.Logger) *cobra.Command {
	var (
		addr    string
		flagged model.Parameters
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream runs to websocket viewers on /ws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParameters(cmd, opts, &flagged, logger)
			if err != nil {
				return err
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return server.NewServer(addr, upgrader, p, logger).Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")
	addParameterFlags(cmd, &flagged)
	return cmd
}
