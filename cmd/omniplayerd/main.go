package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ericyan/iputil"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/config"
	"github.com/ericyan/omniplayer/internal/backend"
	"github.com/ericyan/omniplayer/key"
	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/player"
	_ "github.com/ericyan/omniplayer/plugins"
	"github.com/ericyan/omniplayer/upnp"
	"github.com/ericyan/omniplayer/upnp/av"
)

var rootCmd = &cobra.Command{
	Use:          "omniplayerd",
	Short:        "Expose a Google Cast device or an MPRIS player as a DLNA media renderer",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("list-plugins")) {
			for _, name := range player.DefaultRegistry().Names() {
				fmt.Println(name)
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx)
	},
}

func init() {
	flags := rootCmd.Flags()
	backend.BindFlags(flags)

	flags.String("host", "", "Address to serve on; the default IPv4 address when empty")
	lo.Must0(viper.BindPFlag(key.RendererHost, flags.Lookup("host")))

	flags.IntP("port", "p", config.Default[key.RendererPort].Value.(int), "HTTP port")
	lo.Must0(viper.BindPFlag(key.RendererPort, flags.Lookup("port")))

	flags.StringP("name", "n", "", "Friendly name; derived from the backend when empty")
	lo.Must0(viper.BindPFlag(key.RendererName, flags.Lookup("name")))

	flags.Bool("list-plugins", false, "List the registered plugins and exit")
}

func defaultHost() string {
	if addr, _ := iputil.DefaultIPv4(); addr != nil {
		return addr.IP.String()
	}

	return ""
}

func serve(ctx context.Context) error {
	surface, backendName, err := backend.Open(ctx)
	if err != nil {
		return err
	}

	// Control points bind media first and start it with Play.
	sess, err := backend.Start(ctx, surface, player.WithAutoplay(false))
	if err != nil {
		surface.Close()
		return err
	}
	defer sess.Close()

	name := viper.GetString(key.RendererName)
	if name == "" {
		name = backendName + " (DLNA)"
	}

	host := viper.GetString(key.RendererHost)
	if host == "" {
		host = defaultHost()
	}
	addr := net.JoinHostPort(host, strconv.Itoa(viper.GetInt(key.RendererPort)))

	dev := av.NewMediaRenderer(name, av.NewPlayerRenderer(sess.Player, sess.Do))
	srv, err := upnp.NewServer(dev, addr)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"name": name, "udn": dev.UDN(), "addr": addr}).Info("media renderer started")

	err = srv.Serve(ctx)
	log.Info("media renderer stopped")

	return err
}

func main() {
	lo.Must0(config.Setup())
	log.Setup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
