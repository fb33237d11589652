package main

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/vhrabal/planetoids/internal/config"
	"github.com/vhrabal/planetoids/internal/loop"
)

const (
	inactivityWarn  = 45 * time.Second
	inactivityLimit = 60 * time.Second
)

func main() {
	host := config.GetEnv("PLANETOIDS_HOST", "0.0.0.0")
	port := config.GetEnv("PLANETOIDS_PORT", "2222")
	hostKeyPath := config.GetEnv("PLANETOIDS_HOST_KEY", ".ssh/planetoids_ed25519")

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Keystrokes are tiny writes; do not let Nagle batch them.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	)
	if err != nil {
		log.Fatal("could not create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting ssh server", "host", host, "port", port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- os.Interrupt
		}
	}()

	<-done
	log.Info("stopping ssh server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("could not stop server", "error", err)
	}
}

// gameMiddleware runs a private game session for each connecting client.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Println(sess, "a PTY is required to play")
			_ = sess.Exit(1)
			return
		}

		tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go tracker.follow(sess.Context(), winCh)

		opts := loop.Options{
			TermSize:        tracker.size,
			InactivityWarn:  inactivityWarn,
			InactivityLimit: inactivityLimit,
		}
		if err := loop.Run(bufio.NewReader(sess), sess, opts); err != nil {
			log.Error("session ended with error", "user", sess.User(), "error", err)
		}

		next(sess)
	}
}

// sizeTracker mirrors the client's PTY dimensions as they change, so the
// render loop can poll the current size without blocking.
type sizeTracker struct {
	mu     sync.Mutex
	width  int
	height int
}

func newSizeTracker(w, h int) *sizeTracker {
	return &sizeTracker{width: w, height: h}
}

func (t *sizeTracker) follow(ctx context.Context, winCh <-chan ssh.Window) {
	for {
		select {
		case <-ctx.Done():
			return
		case win, ok := <-winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.width = win.Width
			t.height = win.Height
			t.mu.Unlock()
		}
	}
}

func (t *sizeTracker) size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height, nil
}
