// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

package remotebus

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server exports a bus.Bus over websocket. It implements the http.Handler
// interface.
type Server struct {
	bus bus.Bus

	// only one client is served at a time
	crit   sync.Mutex
	active bool
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(b bus.Bus) *Server {
	return &Server{bus: b}
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.crit.Lock()
	if srv.active {
		srv.crit.Unlock()
		http.Error(w, "bus is in use", http.StatusConflict)
		return
	}
	srv.active = true
	srv.crit.Unlock()

	defer func() {
		srv.crit.Lock()
		srv.active = false
		srv.crit.Unlock()
	}()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remotebus", "upgrade: %v", err)
		return
	}
	defer conn.Close()

	logger.Logf(logger.Allow, "remotebus", "client connected from %s", r.RemoteAddr)

	err = srv.serve(conn)
	if err != nil {
		logger.Logf(logger.Allow, "remotebus", "%v", err)
	}

	logger.Logf(logger.Allow, "remotebus", "client %s disconnected", r.RemoteAddr)
}

func (srv *Server) serve(conn *websocket.Conn) error {
	for {
		mt, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return curated.Errorf(ProtocolError, err)
		}
		if mt != websocket.BinaryMessage {
			continue
		}

		var resp []uint8

		req, err := decodeRequest(p)
		if err != nil {
			resp = failResponse(err)
		} else {
			resp = srv.handle(req)
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, resp); err != nil {
			return curated.Errorf(ProtocolError, err)
		}
	}
}

func (srv *Server) handle(req request) []uint8 {
	switch req.op {
	case opSetAddr:
		if err := srv.bus.SetAddr(req.addr); err != nil {
			return failResponse(err)
		}
		return okResponse(0)
	case opReadByte:
		v, err := srv.bus.ReadByte()
		if err != nil {
			return failResponse(err)
		}
		return okResponse(v)
	case opWriteByte:
		if err := srv.bus.WriteByte(req.data); err != nil {
			return failResponse(err)
		}
		return okResponse(0)
	}
	return failResponse(fmt.Errorf("unknown operation (%#02x)", req.op))
}

// ListenAndServe serves the bus on the address until the context is
// cancelled.
func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, srv)

	hs := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(ProtocolError, err)
	}

	logger.Logf(logger.Allow, "remotebus", "serving bus at ws://%s%s", ln.Addr(), Path)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = hs.Shutdown(sctx)
	}()

	err = hs.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf(ProtocolError, err)
	}
	return nil
}
