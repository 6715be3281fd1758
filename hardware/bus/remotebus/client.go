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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

// Client implements the bus.Bus interface by sending requests to a Server.
type Client struct {
	crit sync.Mutex
	conn *websocket.Conn
	url  string

	// deadline for each request/response pair. zero means no deadline
	timeout time.Duration
}

// Dial connects to a Server. The url should be of the form
// "ws://host:port/bus".
func Dial(url string, timeout time.Duration) (*Client, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = timeout

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, curated.Errorf(ProtocolError, err)
	}

	logger.Logf(logger.Allow, "remotebus", "connected to %s", url)

	return &Client{
		conn:    conn,
		url:     url,
		timeout: timeout,
	}, nil
}

func (cl *Client) String() string {
	return fmt.Sprintf("remote bus (%s)", cl.url)
}

func (cl *Client) transact(req request) (uint8, error) {
	cl.crit.Lock()
	defer cl.crit.Unlock()

	if cl.timeout > 0 {
		cl.conn.SetWriteDeadline(time.Now().Add(cl.timeout))
		cl.conn.SetReadDeadline(time.Now().Add(cl.timeout))
	}

	if err := cl.conn.WriteMessage(websocket.BinaryMessage, req.encode()); err != nil {
		return 0, curated.Errorf(bus.BusError, curated.Errorf(ProtocolError, err))
	}

	mt, resp, err := cl.conn.ReadMessage()
	if err != nil {
		return 0, curated.Errorf(bus.BusError, curated.Errorf(ProtocolError, err))
	}
	if mt != websocket.BinaryMessage || len(resp) < 2 {
		return 0, curated.Errorf(bus.BusError, curated.Errorf(ProtocolError, "malformed response"))
	}

	if resp[0] != statusOK {
		return 0, curated.Errorf(bus.BusError, curated.Errorf(ProtocolError, errors.New(string(resp[1:]))))
	}

	return resp[1], nil
}

// SetAddr implements the bus.Bus interface.
func (cl *Client) SetAddr(address uint16) error {
	_, err := cl.transact(request{op: opSetAddr, addr: address})
	return err
}

// ReadByte implements the bus.Bus interface.
func (cl *Client) ReadByte() (byte, error) {
	return cl.transact(request{op: opReadByte})
}

// WriteByte implements the bus.Bus interface.
func (cl *Client) WriteByte(data byte) error {
	_, err := cl.transact(request{op: opWriteByte, data: data})
	return err
}

// Close the connection to the server.
func (cl *Client) Close() error {
	cl.crit.Lock()
	defer cl.crit.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = cl.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return cl.conn.Close()
}
