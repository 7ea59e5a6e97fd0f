package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/config"
	"github.com/ericyan/omniplayer/event"
	"github.com/ericyan/omniplayer/internal/backend"
	"github.com/ericyan/omniplayer/key"
	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/player"
	_ "github.com/ericyan/omniplayer/plugins"
)

var rootCmd = &cobra.Command{
	Use:          "omniplayer",
	Short:        "Play media on a Google Cast device or an MPRIS player",
	SilenceUsage: true,
}

var loadCmd = &cobra.Command{
	Use:   "load <url>",
	Short: "Load a URL and play it until it ends",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := url.ParseRequestURI(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return load(ctx, u.String())
	},
}

func init() {
	backend.BindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(loadCmd)
}

// load plays mediaURL and returns once it has ended, failed or ctx is
// done. With looping enabled only ctx ends it.
func load(ctx context.Context, mediaURL string) error {
	surface, name, err := backend.Open(ctx)
	if err != nil {
		return err
	}

	finished := make(chan error, 1)
	finish := func(err error) {
		select {
		case finished <- err:
		default:
		}
	}

	bus := event.NewBus()
	if !viper.GetBool(key.PlayerLoop) {
		bus.Once(event.Ended, func(event.Event) { finish(nil) })
	}
	bus.On(event.Error, func(ev event.Event) {
		if err, ok := ev.Payload.(error); ok {
			finish(err)
		}
	})

	sess, err := backend.Start(ctx, surface,
		player.WithBus(bus), player.WithURL(mediaURL), player.WithAutoplay(true))
	if err != nil {
		surface.Close()
		return err
	}
	defer sess.Close()

	log.WithFields(log.Fields{"player": name, "url": mediaURL}).Info("loading media")

	select {
	case err = <-finished:
	case <-ctx.Done():
		log.Info("interrupted, stopping")
	}

	return err
}

func main() {
	lo.Must0(config.Setup())
	log.Setup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
