//go:build !tinygo

package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTransport_Stdout(t *testing.T) {
	for _, target := range []string{"stdout", "-", " stdout "} {
		tr, err := OpenTransport(Settings{Transport: target})
		require.NoError(t, err, target)
		assert.IsType(t, stdoutTransport{}, tr)
		assert.NoError(t, tr.Close())
	}
}

func TestOpenTransport_EmptyTarget(t *testing.T) {
	_, err := OpenTransport(Settings{Transport: "  "})
	assert.ErrorIs(t, err, ErrUnknownTransport)
}

func TestOpenTransport_MissingSerialDevice(t *testing.T) {
	_, err := OpenTransport(Settings{Transport: "/dev/does-not-exist-pixel", Baud: 9600})
	assert.Error(t, err)
}

func TestOpenTransport_WebSocket(t *testing.T) {
	received := make(chan string, 8)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				close(received)
				return
			}
			received <- string(msg)
		}
	}))
	defer srv.Close()

	tr, err := OpenTransport(Settings{Transport: "ws" + strings.TrimPrefix(srv.URL, "http")})
	require.NoError(t, err)

	d := NewDispatcher(tr, 4)
	d.Emit(Command{Op: Op_SetPixel, Index: 16, G: 255})
	d.Emit(EncodeClearAll())
	require.NoError(t, d.Close())

	var got []string
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case msg, ok := <-received:
			if !ok {
				done = true
				break
			}
			got = append(got, msg)
		case <-timeout:
			t.Fatal("server never saw the close frame")
		}
	}
	assert.Equal(t, []string{"[1,16,0,255,0]", "[2,0,0,0]"}, got)
}

func TestOpenTransport_WebSocketDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := OpenTransport(Settings{Transport: "ws" + strings.TrimPrefix(srv.URL, "http")})
	assert.Error(t, err)
}
