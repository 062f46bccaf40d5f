package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"github.com/lox/holdemcore/internal/protocol"
)

// Client is the websocket side of a session. It implements Sender and its
// Recv method is the model's Receiver.
type Client struct {
	ws *websocket.Conn
}

// Dial connects to the server and joins a table.
func Dial(url, name, table string) (*Client, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}

	c := &Client{ws: ws}
	if err := c.send(protocol.Join{Name: name, Table: table}); err != nil {
		_ = ws.Close()
		return nil, err
	}
	return c, nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.ws.Close()
}

// SendAct submits an action.
func (c *Client) SendAct(act protocol.Act) error {
	return c.send(act)
}

func (c *Client) send(msg any) error {
	data, err := protocol.Marshal(msg)
	if err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Recv blocks for the next server message and returns it as a tea.Msg. The
// envelope tag picks the concrete type; unknown tags are skipped.
func (c *Client) Recv() tea.Msg {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return DisconnectedMsg{Err: err}
		}

		env, err := protocol.Decode(data)
		if err != nil {
			continue
		}

		msg, err := decodePayload(env)
		if err != nil {
			continue
		}
		if msg != nil {
			return msg
		}
	}
}

func decodePayload(env protocol.Envelope) (tea.Msg, error) {
	switch env.Type {
	case protocol.TypeWelcome:
		return unmarshalAs[protocol.Welcome](env)
	case protocol.TypeHandStart:
		return unmarshalAs[protocol.HandStart](env)
	case protocol.TypeActionRequest:
		return unmarshalAs[protocol.ActionRequest](env)
	case protocol.TypeTableUpdate:
		return unmarshalAs[protocol.TableUpdate](env)
	case protocol.TypePlayerActed:
		return unmarshalAs[protocol.PlayerActed](env)
	case protocol.TypeStreetDealt:
		return unmarshalAs[protocol.StreetDealt](env)
	case protocol.TypeHandResult:
		return unmarshalAs[protocol.HandResult](env)
	case protocol.TypeError:
		return unmarshalAs[protocol.Error](env)
	}
	return nil, nil
}

func unmarshalAs[T any](env protocol.Envelope) (tea.Msg, error) {
	var m T
	if err := env.Unmarshal(&m); err != nil {
		return nil, err
	}
	return m, nil
}
