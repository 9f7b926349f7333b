package smtp

import (
	"bufio"
	"context"
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer speaks just enough SMTP for one delivery and records it.
type fakeServer struct {
	ln   net.Listener
	rcpt chan string
	data chan string
}

func newFakeServer(t *testing.T, rejectRcpt bool) *fakeServer {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	s := &fakeServer{ln: ln, rcpt: make(chan string, 1), data: make(chan string, 1)}
	go s.serve(rejectRcpt)
	return s
}

func (s *fakeServer) port() int { return s.ln.Addr().(*net.TCPAddr).Port }

func (s *fakeServer) serve(rejectRcpt bool) {
	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 fake ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch cmd {
		case "EHLO", "HELO":
			_ = tp.PrintfLine("250 fake")
		case "MAIL":
			_ = tp.PrintfLine("250 ok")
		case "RCPT":
			if rejectRcpt {
				_ = tp.PrintfLine("550 no such user")
				continue
			}
			s.rcpt <- line
			_ = tp.PrintfLine("250 ok")
		case "DATA":
			_ = tp.PrintfLine("354 go ahead")
			r := bufio.NewReader(tp.DotReader())
			var b strings.Builder
			_, _ = r.WriteTo(&b)
			s.data <- b.String()
			_ = tp.PrintfLine("250 queued")
		case "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 not implemented")
		}
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(t, false)
	c := NewClient(Config{Host: "127.0.0.1", Port: srv.port(), From: "wash@example.com", FromName: "Car Wash", Timeout: 2 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Send(ctx, "anita@example.com", "Your Car Wash Service is Completed!", "Dear anita,\nDone."))

	assert.Contains(t, <-srv.rcpt, "anita@example.com")
	data := <-srv.data
	assert.Contains(t, data, "To: anita@example.com\n")
	assert.Contains(t, data, `From: "Car Wash" <wash@example.com>`)
	assert.Contains(t, data, "Subject: Your Car Wash Service is Completed!")
	assert.Contains(t, data, "Dear anita,\nDone.")
}

func TestClient_Send_Rejected(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(t, true)
	c := NewClient(Config{Host: "127.0.0.1", Port: srv.port(), From: "wash@example.com", Timeout: 2 * time.Second})

	err := c.Send(context.Background(), "ghost@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "550")
}

func TestClient_Send_Unreachable(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	c := NewClient(Config{Host: "127.0.0.1", Port: port, From: "wash@example.com", Timeout: time.Second})
	err = c.Send(context.Background(), "a@example.com", "s", "b")
	assert.ErrorContains(t, err, "connect")
}
