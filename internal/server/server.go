// Package server hosts hold'em tables over websockets. It owns everything
// the engine deliberately does not: connections, timeouts, logging and the
// ordering of concurrent submissions into engine Apply calls.
package server

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Server accepts websocket clients and routes them to tables.
type Server struct {
	cfg      *Config
	logger   *log.Logger
	clock    quartz.Clock
	upgrader websocket.Upgrader

	tables map[string]*Table
	first  string // default table for joins that name none

	mu    sync.Mutex
	conns map[*Connection]struct{}
}

// New builds a server and its tables from the config. The clock is shared by
// every table's action timeouts. Each table derives its own RNG from the one
// provided, since table run loops shuffle concurrently and *rand.Rand is not
// safe for concurrent use.
func New(cfg *Config, logger *log.Logger, rng *rand.Rand, clock quartz.Clock) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger.WithPrefix("server"),
		clock:  clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tables: make(map[string]*Table, len(cfg.Tables)),
		conns:  make(map[*Connection]struct{}),
	}
	for i, tc := range cfg.Tables {
		s.tables[tc.Name] = NewTable(tc, logger, rand.New(rand.NewSource(rng.Int63())), clock)
		if i == 0 {
			s.first = tc.Name
		}
	}
	return s
}

// Table returns the named table, falling back to the default for "".
func (s *Server) Table(name string) (*Table, bool) {
	if name == "" {
		name = s.first
	}
	t, ok := s.tables[name]
	return t, ok
}

// Run serves websocket clients and deals hands until the context is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	httpSrv := &http.Server{Addr: s.cfg.ListenAddress(), Handler: mux}

	g, ctx := errgroup.WithContext(ctx)

	for _, table := range s.tables {
		table := table
		g.Go(func() error {
			err := table.Run(ctx)
			if err == context.Canceled {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.ListenAddress())
		if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.closeAll()
		return httpSrv.Shutdown(context.Background())
	})

	return g.Wait()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "err", err)
		return
	}

	conn := NewConnection(ws, s, s.logger)
	s.register(conn)
	conn.Start()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func (s *Server) register(c *Connection) {
	s.mu.Lock()
	s.conns[c] = struct{}{}
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)
}

func (s *Server) unregister(c *Connection) {
	s.mu.Lock()
	if _, ok := s.conns[c]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.conns, c)
	total := len(s.conns)
	s.mu.Unlock()

	if seat, table := c.Seat(); seat != nil && table != nil {
		table.Leave(seat)
	}
	s.logger.Info("client disconnected", "total", total)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}
