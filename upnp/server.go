package upnp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ericyan/omniplayer/log"
	"github.com/ericyan/omniplayer/upnp/internal/ssdp"
)

// Server announces a device over SSDP and serves it over HTTP.
type Server struct {
	ss *ssdp.Server
	hs *http.Server
}

// NewServer returns a server for dev on addr, which must name the host
// control points can reach.
func NewServer(dev *Device, addr string) (*Server, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, err
	}

	loc := &url.URL{Scheme: "http", Host: addr, Path: "/"}
	ss, err := ssdp.NewServer(dev, loc)
	if err != nil {
		return nil, err
	}

	hs := &http.Server{
		Addr:              addr,
		Handler:           dev,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{ss, hs}, nil
}

// Serve runs both servers until ctx is done or one of them fails.
func (srv *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(srv.ss.ListenAndServe)
	g.Go(func() error {
		log.WithField("addr", srv.hs.Addr).Info("UPnP HTTP server listening")
		if err := srv.hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Close()
	})

	return g.Wait()
}

// Close says byebye and stops both servers.
func (srv *Server) Close() error {
	var g errgroup.Group

	g.Go(srv.hs.Close)
	g.Go(srv.ss.Close)

	return g.Wait()
}
