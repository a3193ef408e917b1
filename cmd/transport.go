//go:build !tinygo

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

// OpenTransport opens the link to the controller named by s.Transport:
// a serial device path, a ws:// or wss:// URL, or "stdout".
func OpenTransport(s Settings) (io.WriteCloser, error) {
	target := strings.TrimSpace(s.Transport)
	switch {
	case target == "":
		return nil, fmt.Errorf("%w: empty target", ErrUnknownTransport)

	case target == "stdout" || target == "-":
		return stdoutTransport{w: os.Stdout}, nil

	case strings.HasPrefix(target, "ws://") || strings.HasPrefix(target, "wss://"):
		conn, _, err := websocket.DefaultDialer.Dial(target, nil)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", target, err)
		}
		log.WithField("url", target).Info("WebSocket transport connected")
		return &wsTransport{conn: conn}, nil

	default:
		baud := s.Baud
		if baud <= 0 {
			baud = DefaultBaud
		}
		port, err := serial.OpenPort(&serial.Config{Name: target, Baud: baud})
		if err != nil {
			return nil, fmt.Errorf("open serial %s: %w", target, err)
		}
		log.WithFields(logrus.Fields{"port": target, "baud": baud}).Info("Serial transport opened")
		return port, nil
	}
}

type stdoutTransport struct {
	w io.Writer
}

func (t stdoutTransport) Write(p []byte) (int, error) { return t.w.Write(p) }
func (t stdoutTransport) Close() error                { return nil }

// wsTransport sends every write as one text frame, without the line terminator.
type wsTransport struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (t *wsTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.conn.WriteMessage(websocket.TextMessage, bytes.TrimRight(p, "\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = t.conn.WriteMessage(websocket.CloseMessage, msg)
	return t.conn.Close()
}
