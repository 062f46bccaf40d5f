// Package tui is the interactive terminal client: a bubbletea model that
// renders table snapshots from the server and turns typed commands into
// protocol actions. All game rules live server-side; the client only
// presents and submits.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcore/internal/engine"
	"github.com/lox/holdemcore/internal/protocol"
)

// Sender submits actions back to the server.
type Sender interface {
	SendAct(protocol.Act) error
}

// Receiver produces the next server message; it blocks until one arrives.
// DisconnectedMsg must be returned when the stream ends.
type Receiver func() tea.Msg

// DisconnectedMsg ends the session.
type DisconnectedMsg struct{ Err error }

// Model is the bubbletea model for one table session.
type Model struct {
	name   string
	sender Sender
	recv   Receiver
	logger *log.Logger

	logView viewport.Model
	input   textinput.Model

	lines []string

	seat      int
	handNum   int
	snapshot  *engine.Snapshot
	holeCards string
	pending   *protocol.ActionRequest
	errText   string

	width    int
	height   int
	quitting bool
}

// NewModel builds the model for a joined session.
func NewModel(name string, sender Sender, recv Receiver, logger *log.Logger) *Model {
	vp := viewport.New(60, 10)

	ti := textinput.New()
	ti.Placeholder = "fold, check, call, raise <to>, allin"
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Focus()

	return &Model{
		name:    name,
		sender:  sender,
		recv:    recv,
		logger:  logger.WithPrefix("tui"),
		logView: vp,
		input:   ti,
		seat:    -1,
	}
}

// Init starts the server message pump.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg { return m.recv() }
}

// Update handles terminal and server messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 2
		m.logView.Height = max(msg.Height-10, 4)
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		}

	case DisconnectedMsg:
		if msg.Err != nil {
			m.appendLine(errorStyle.Render("disconnected: " + msg.Err.Error()))
		} else {
			m.appendLine(dimStyle.Render("disconnected"))
		}
		m.quitting = true
		return m, tea.Quit

	case protocol.Welcome:
		m.seat = msg.Seat
		m.appendLine(fmt.Sprintf("seated at table %s as %s (seat %d)", msg.Table, msg.Name, msg.Seat))
		return m, m.listen()

	case protocol.HandStart:
		m.handNum = msg.HandNum
		m.seat = msg.Seat
		m.holeCards = formatCards(msg.HoleCards)
		m.pending = nil
		m.appendLine(fmt.Sprintf("--- hand %d ---", msg.HandNum))
		m.appendLine("dealt " + plainCards(msg.HoleCards))
		return m, m.listen()

	case protocol.TableUpdate:
		snap := msg.Snapshot
		m.snapshot = &snap
		return m, m.listen()

	case protocol.ActionRequest:
		// Requests only ever come addressed to our own seat.
		m.seat = msg.Seat
		m.pending = &msg
		m.errText = ""
		m.appendLine(actionsStyle.Render("your turn: " + describeLegal(msg)))
		return m, m.listen()

	case protocol.PlayerActed:
		line := fmt.Sprintf("%s %s", msg.Name, msg.Action)
		if msg.Amount > 0 {
			line = fmt.Sprintf("%s %s to %d", msg.Name, msg.Action, msg.Amount)
		}
		if msg.Timeout {
			line += " (timeout)"
		}
		m.appendLine(line)
		if msg.Seat == m.seat {
			m.pending = nil
		}
		return m, m.listen()

	case protocol.StreetDealt:
		m.appendLine(fmt.Sprintf("%s: %s", msg.Phase, plainCards(msg.Board)))
		return m, m.listen()

	case protocol.HandResult:
		m.pending = nil
		if msg.Settlement != nil {
			for _, pot := range msg.Settlement.Pots {
				names := make([]string, len(pot.Winners))
				for i, seat := range pot.Winners {
					names[i] = m.seatLabel(seat)
				}
				line := fmt.Sprintf("%d chips to %s", pot.Amount, strings.Join(names, ", "))
				if pot.Hand != "" {
					line += " with " + pot.Hand
				}
				m.appendLine(resultStyle.Render(line))
			}
		}
		return m, m.listen()

	case protocol.Error:
		m.errText = msg.Message
		m.appendLine(errorStyle.Render("error: " + msg.Message))
		return m, m.listen()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the typed command and sends it, if an action is pending.
func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if text == "" {
		return
	}
	if m.pending == nil {
		m.errText = "it is not your turn"
		return
	}

	act, err := parseCommand(text)
	if err != nil {
		m.errText = err.Error()
		return
	}

	if err := m.sender.SendAct(act); err != nil {
		m.logger.Error("send failed", "err", err)
		m.errText = "could not reach the server"
		return
	}
	m.errText = ""
}

// parseCommand turns typed input into a protocol action. Raise takes the
// raise-to total, matching the wire contract.
func parseCommand(text string) (protocol.Act, error) {
	fields := strings.Fields(strings.ToLower(text))
	switch fields[0] {
	case "fold", "f":
		return protocol.Act{Action: "fold"}, nil
	case "check", "x":
		return protocol.Act{Action: "check"}, nil
	case "call", "c":
		return protocol.Act{Action: "call"}, nil
	case "allin", "all-in", "shove":
		return protocol.Act{Action: "allin"}, nil
	case "raise", "bet", "r":
		if len(fields) < 2 {
			return protocol.Act{}, fmt.Errorf("raise needs an amount, e.g. raise 40")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil || amount <= 0 {
			return protocol.Act{}, fmt.Errorf("%q is not a valid amount", fields[1])
		}
		return protocol.Act{Action: "raise", Amount: amount}, nil
	}
	return protocol.Act{}, fmt.Errorf("unknown command %q", fields[0])
}

// describeLegal renders the legal action set of a request as a hint line.
func describeLegal(req protocol.ActionRequest) string {
	parts := make([]string, 0, len(req.Legal))
	for _, opt := range req.Legal {
		switch opt.Action {
		case engine.Call:
			parts = append(parts, fmt.Sprintf("call %d", opt.Min))
		case engine.Raise:
			parts = append(parts, fmt.Sprintf("raise %d-%d", opt.Min, opt.Max))
		case engine.AllIn:
			parts = append(parts, fmt.Sprintf("allin (%d)", opt.Min))
		default:
			parts = append(parts, opt.Action.String())
		}
	}
	return strings.Join(parts, ", ")
}

func (m *Model) seatLabel(seat int) string {
	if m.snapshot != nil && seat >= 0 && seat < len(m.snapshot.Players) {
		return m.snapshot.Players[seat].Name
	}
	return fmt.Sprintf("seat %d", seat)
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logView.SetContent(strings.Join(m.lines, "\n"))
	m.logView.GotoBottom()
}

// View renders the table header, the event log and the input line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("hold'em · %s", m.name)))
	b.WriteString("\n")

	if m.snapshot != nil {
		snap := m.snapshot
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			boardStyle.Render("board: ")+formatCardsFromSnapshot(snap),
			potStyle.Render(fmt.Sprintf("pot %d", snap.PotTotal)),
			dimStyle.Render(snap.Phase.String())))

		for _, p := range snap.Players {
			line := fmt.Sprintf("  %s %d", p.Name, p.Stack)
			if p.Bet > 0 {
				line += fmt.Sprintf(" (bet %d)", p.Bet)
			}
			if p.Status.String() != "active" {
				line += " " + dimStyle.Render(p.Status.String())
			}
			if p.Seat == snap.Current {
				line = toActStyle.Render(line)
			} else {
				line = playerStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.holeCards != "" {
		b.WriteString("your hand: " + m.holeCards + "\n")
	}

	b.WriteString(m.logView.View())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString(m.input.View())
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func formatCardsFromSnapshot(snap *engine.Snapshot) string {
	return formatCards(snap.Community)
}
