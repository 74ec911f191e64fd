package net

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// Client connects to a game server and provides a terminal REPL. It keeps
// its own copy of the match, rebuilt from init and update messages.
type Client struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	in   *bufio.Reader
	out  io.Writer

	data   game.GameData
	preset game.Preset
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn, in io.Reader, out io.Writer) *Client {
	return &Client{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Connect connects to a server, sends the join handshake, and runs the REPL.
func Connect(ctx context.Context, addr, presetName, level string, in io.Reader, out io.Writer) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	client := NewClient(conn, in, out)
	if err := client.Join(presetName, level); err != nil {
		return err
	}
	fmt.Fprintln(out, "Connected! Waiting for the match to start...")
	return client.RunREPL(ctx)
}

// Join sends the handshake choosing the preset and the bot.
func (c *Client) Join(presetName, level string) error {
	if err := c.enc.Encode(ClientMessage{Type: MsgJoin, PresetName: presetName, Bot: level}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	return nil
}

// Data returns the client's copy of the match.
func (c *Client) Data() game.GameData { return c.data }

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var msg ServerMessage
		if err := c.dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("server closed the connection")
			}
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case MsgInit:
			if msg.Data != nil {
				c.data = *msg.Data
			}
			if msg.Preset != nil {
				c.preset = *msg.Preset
			}
			fmt.Fprintf(c.out, "\nNew match: %s\n", game.PresetName(c.preset))

		case MsgUpdate:
			if msg.Changes != nil {
				c.data.Merge(*msg.Changes)
			}

		case MsgEvents:
			for _, ev := range msg.Events {
				c.renderEvent(ev)
			}

		case MsgError:
			fmt.Fprintf(c.out, "Error: %s\n", msg.Error)

		case MsgYourTurn:
			c.renderState()
			reply, err := c.readCommand()
			if err != nil {
				return err
			}
			if err := c.enc.Encode(reply); err != nil {
				return fmt.Errorf("send %s: %w", reply.Type, err)
			}
			if reply.Type == MsgQuit {
				return nil
			}

		case MsgGameOver:
			c.renderState()
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, "          GAME OVER")
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, msg.Result)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprint(c.out, "Play again? (y/n): ")
			reply := ClientMessage{Type: MsgQuit}
			if c.readYesNo() {
				reply.Type = MsgRestart
			}
			if err := c.enc.Encode(reply); err != nil {
				return fmt.Errorf("send %s: %w", reply.Type, err)
			}
			if reply.Type == MsgQuit {
				return nil
			}
		}
	}
}

func (c *Client) renderEvent(ev EventView) {
	who := "  "
	if ev.Player >= 0 {
		who = fmt.Sprintf("P%d", ev.Player+1)
	}
	fmt.Fprintf(c.out, "T%-2d %s | %s\n", ev.Turn, who, ev.Details)
}

func (c *Client) renderState() {
	opp := c.data.Players[1].Params
	you := c.data.Players[0].Params

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║  BOT    %s\n", formatParams(opp))
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  YOU    %s\n", formatParams(you))
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")

	v := c.preset
	fmt.Fprintf(c.out, "Victory: tower %d or any resource %d\n", v.TowerVictory, v.ResourceVictory)
	if you.IsDiscardMode {
		fmt.Fprintln(c.out, "Discard a card (d N)")
	}

	fmt.Fprintln(c.out, "\nHand:")
	for i, card := range c.data.Players[0].Cards {
		if card == nil {
			continue
		}
		mark := " "
		if you.Get(card.Cost.Resource.Stat()) < card.Cost.Amount {
			mark = "x"
		}
		fmt.Fprintf(c.out, "  %s[%d] %-20s %3d %-8s %s\n", mark, i+1, card.Name, card.Cost.Amount, card.Cost.Resource, card.Description)
	}
}

func formatParams(p game.Params) string {
	return fmt.Sprintf("Tower %3d  Wall %3d | Quarries %d Bricks %3d | Magic %d Gems %3d | Dungeons %d Recruits %3d",
		p.Tower, p.Wall, p.Quarries, p.Bricks, p.Magic, p.Gems, p.Dungeons, p.Recruits)
}

func (c *Client) readCommand() (ClientMessage, error) {
	fmt.Fprintln(c.out, "Commands: N or p N to play, d N to discard, s NAME for settings, r to restart, q to quit")
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return ClientMessage{Type: MsgQuit}, nil
			}
			return ClientMessage{}, fmt.Errorf("read input: %w", err)
		}
		msg, err := parseCommand(line, len(c.data.Players[0].Cards))
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return msg, nil
	}
}

func (c *Client) readYesNo() bool {
	for {
		line, err := c.in.ReadString('\n')
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprint(c.out, "Enter y or n: ")
	}
}

// parseCommand turns a REPL line into a client message. Card numbers are
// 1-based.
func parseCommand(line string, handSize int) (ClientMessage, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ClientMessage{}, errors.New("enter a command")
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	if _, err := strconv.Atoi(cmd); err == nil {
		cmd, args = "p", fields
	}

	switch cmd {
	case "q", "quit":
		return ClientMessage{Type: MsgQuit}, nil
	case "r", "restart":
		return ClientMessage{Type: MsgRestart}, nil
	case "s", "settings":
		if len(args) == 0 {
			return ClientMessage{}, errors.New("usage: s PRESET NAME")
		}
		return ClientMessage{Type: MsgSettings, PresetName: strings.Join(args, " ")}, nil
	case "p", "play", "d", "discard":
		if len(args) != 1 {
			return ClientMessage{}, fmt.Errorf("usage: %s N", cmd)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > handSize {
			return ClientMessage{}, fmt.Errorf("enter a number between 1 and %d", handSize)
		}
		typ := MsgPlay
		if cmd == "d" || cmd == "discard" {
			typ = MsgDiscard
		}
		return ClientMessage{Type: typ, Index: n - 1}, nil
	}
	return ClientMessage{}, fmt.Errorf("unknown command %q", fields[0])
}
