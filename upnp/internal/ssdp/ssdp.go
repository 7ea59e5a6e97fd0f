// Package ssdp announces a UPnP device and answers discovery requests.
package ssdp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/ericyan/omniplayer/log"
)

const (
	MulticastIPv4Addr     = "239.255.255.250:1900"
	MTU                   = 8192
	AliveInterval         = 15 * time.Minute
	CacheControlDirective = "max-age=1800"
	ServerName            = runtime.GOOS + "/" + runtime.GOARCH + " UPnP/1.0 omniplayer/0.1"
)

type Device interface {
	// Returns the Unique Device Name, which will be the prefix of the USN
	// header field in all discovery messages.
	UDN() string
	// Returns the URN of the device.
	URN() string
	// Returns the URNs of all services provided by the device.
	ServiceURNs() []string
}

type Server struct {
	dev    Device
	loc    *url.URL
	addr   *net.UDPAddr
	bootID string

	mu   sync.Mutex
	conn *net.UDPConn
	done chan struct{}
}

// NewServer returns a SSDP server for the given device that announces
// the URL to its UPnP description.
func NewServer(dev Device, loc *url.URL) (*Server, error) {
	addr, err := net.ResolveUDPAddr("udp4", MulticastIPv4Addr)
	if err != nil {
		return nil, err
	}

	return &Server{
		dev:    dev,
		loc:    loc,
		addr:   addr,
		bootID: strconv.FormatInt(time.Now().Unix(), 10),
		done:   make(chan struct{}),
	}, nil
}

func (srv *Server) ListenAndServe() error {
	conn, err := net.ListenMulticastUDP("udp4", nil, srv.addr)
	if err != nil {
		return err
	}
	conn.SetReadBuffer(MTU)

	srv.mu.Lock()
	srv.conn = conn
	srv.mu.Unlock()

	log.WithField("addr", conn.LocalAddr().String()).Info("SSDP server listening")

	srv.notifyAll("ssdp:alive")
	go srv.keepalive()

	buf := make([]byte, MTU)
	for {
		n, raddr, err := conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-srv.done:
				return nil
			default:
			}
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				continue
			}

			return err
		}

		req, err := http.ReadRequest(bufio.NewReader(bytes.NewReader(buf[:n])))
		if err != nil {
			log.WithError(err).Debug("ssdp: failed to parse request")
			continue
		}

		if err := srv.handleRequest(req, raddr); err != nil {
			log.WithError(err).Debug("ssdp: request not answered")
		}
	}
}

func (srv *Server) keepalive() {
	if AliveInterval <= 0 {
		return
	}

	t := time.NewTicker(AliveInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			srv.notifyAll("ssdp:alive")
		case <-srv.done:
			return
		}
	}
}

func (srv *Server) Close() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.conn == nil {
		return nil
	}

	select {
	case <-srv.done:
		return nil
	default:
	}

	srv.sendNotification(srv.conn, "ssdp:byebye")
	close(srv.done)

	return srv.conn.Close()
}

func (srv *Server) notifyAll(nts string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.sendNotification(srv.conn, nts); err != nil {
		log.WithError(err).Warn("ssdp: notify failed")
	}
}

// capabilities maps notification types to unique service names.
func (srv *Server) capabilities() map[string]string {
	udn := srv.dev.UDN()
	caps := map[string]string{udn: udn}
	for _, urn := range append([]string{"upnp:rootdevice", srv.dev.URN()}, srv.dev.ServiceURNs()...) {
		caps[urn] = udn + "::" + urn
	}

	return caps
}

func (srv *Server) commonHeader() http.Header {
	h := make(http.Header)
	h.Set("CACHE-CONTROL", CacheControlDirective)
	h.Set("LOCATION", srv.loc.String())
	h.Set("SERVER", ServerName)
	h.Set("BOOTID.UPNP.ORG", srv.bootID)
	h.Set("CONFIGID.UPNP.ORG", "1")

	return h
}

func (srv *Server) sendNotification(conn net.PacketConn, nts string) error {
	switch nts {
	case "ssdp:alive", "ssdp:byebye":
	case "ssdp:update":
		return fmt.Errorf("NTS %s not implemented", nts)
	default:
		return fmt.Errorf("invalid NTS: %s", nts)
	}

	for t, usn := range srv.capabilities() {
		req := &http.Request{
			Method: "NOTIFY",
			URL:    &url.URL{Opaque: "*"},
			Host:   MulticastIPv4Addr,
			Header: srv.commonHeader(),
		}

		req.Header.Set("NTS", nts)
		req.Header.Set("NT", t)
		req.Header.Set("USN", usn)

		buf := new(bytes.Buffer)
		req.Write(buf)

		if _, err := conn.WriteTo(buf.Bytes(), srv.addr); err != nil {
			return err
		}
	}

	return nil
}

// responses returns the M-SEARCH answers for the request.
func (srv *Server) responses(req *http.Request) ([]*http.Response, error) {
	if req.Method != "M-SEARCH" {
		return nil, fmt.Errorf("unsupported method: %s", req.Method)
	}

	if man := req.Header.Get("MAN"); man != `"ssdp:discover"` {
		return nil, fmt.Errorf("unexpected MAN: %s", man)
	}

	st := req.Header.Get("ST")
	if st == "" {
		return nil, errors.New("ST is empty")
	}

	var resps []*http.Response
	for t, usn := range srv.capabilities() {
		if st != t && st != "ssdp:all" {
			continue
		}

		resp := &http.Response{
			StatusCode:    http.StatusOK,
			ProtoMajor:    1,
			ProtoMinor:    1,
			Header:        srv.commonHeader(),
			ContentLength: -1,
			Uncompressed:  true,
		}
		resp.Header.Set("EXT", "")
		resp.Header.Set("ST", t)
		resp.Header.Set("USN", usn)

		resps = append(resps, resp)
	}

	if len(resps) == 0 {
		return nil, fmt.Errorf("ST %s not found", st)
	}

	return resps, nil
}

func (srv *Server) handleRequest(req *http.Request, raddr *net.UDPAddr) error {
	resps, err := srv.responses(req)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"from": raddr.String(), "st": req.Header.Get("ST")}).Debug("ssdp: answering M-SEARCH")

	for _, resp := range resps {
		buf := new(bytes.Buffer)
		resp.Write(buf)

		if _, err := srv.conn.WriteTo(buf.Bytes(), raddr); err != nil {
			return err
		}
	}

	return nil
}
