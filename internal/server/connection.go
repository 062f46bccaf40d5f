package server

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/holdemcore/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 64
)

// Connection wraps one websocket client: a read pump that dispatches
// protocol frames and a write pump that owns all writes to the socket.
type Connection struct {
	ws     *websocket.Conn
	server *Server
	logger *log.Logger

	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	seat  *Seat
	table *Table

	closeOnce sync.Once
}

// NewConnection wraps an upgraded websocket.
func NewConnection(ws *websocket.Conn, server *Server, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		ws:     ws,
		server: server,
		logger: logger.WithPrefix("conn").With("remote", ws.RemoteAddr().String()),
		send:   make(chan []byte, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down once; safe to call from any goroutine.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		_ = c.ws.Close()
	})
}

// Seat returns the seat and table this connection plays at, if joined.
func (c *Connection) Seat() (*Seat, *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seat, c.table
}

// Send marshals a message and queues it for the write pump. A client too
// slow to drain its buffer is disconnected rather than allowed to stall the
// table.
func (c *Connection) Send(msg any) error {
	data, err := protocol.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("send buffer full, dropping client")
		c.Close()
		return websocket.ErrCloseSent
	}
}

func (c *Connection) readPump() {
	defer func() {
		c.Close()
		c.server.unregister(c)
	}()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("read failed", "err", err)
			}
			return
		}

		env, err := protocol.Decode(data)
		if err != nil {
			c.sendError(protocol.CodeBadMessage, err.Error())
			continue
		}
		c.handle(env)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *Connection) handle(env protocol.Envelope) {
	switch env.Type {
	case protocol.TypeJoin:
		var join protocol.Join
		if err := env.Unmarshal(&join); err != nil {
			c.sendError(protocol.CodeBadMessage, err.Error())
			return
		}
		c.handleJoin(join)

	case protocol.TypeAct:
		var act protocol.Act
		if err := env.Unmarshal(&act); err != nil {
			c.sendError(protocol.CodeBadMessage, err.Error())
			return
		}
		c.handleAct(act)

	default:
		c.sendError(protocol.CodeBadMessage, "unexpected message type "+string(env.Type))
	}
}

func (c *Connection) handleJoin(join protocol.Join) {
	if join.Name == "" {
		c.sendError(protocol.CodeBadMessage, "a name is required to join")
		return
	}

	c.mu.Lock()
	already := c.seat != nil
	c.mu.Unlock()
	if already {
		c.sendError(protocol.CodeBadMessage, "already seated")
		return
	}

	table, ok := c.server.Table(join.Table)
	if !ok {
		c.sendError(protocol.CodeBadMessage, "no such table "+join.Table)
		return
	}

	seat, err := table.Join(join.Name, c)
	if err != nil {
		c.sendError(protocol.CodeTableFull, err.Error())
		return
	}

	c.mu.Lock()
	c.seat, c.table = seat, table
	c.mu.Unlock()

	c.logger.Info("joined", "player", join.Name, "table", table.Name())
	_ = c.Send(protocol.Welcome{Seat: seat.Num, Name: seat.Name, Table: table.Name()})
}

func (c *Connection) handleAct(act protocol.Act) {
	seat, _ := c.Seat()
	if seat == nil {
		c.sendError(protocol.CodeBadMessage, "join a table before acting")
		return
	}
	if !seat.submit(act) {
		c.sendError(protocol.CodeNotYourTurn, "no action is pending for this seat")
	}
}

func (c *Connection) sendError(code, message string) {
	_ = c.Send(protocol.Error{Code: code, Message: message, Recoverable: true})
}
