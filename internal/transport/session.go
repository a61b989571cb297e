// Package transport binds the core renderer and encoder to a bidirectional
// websocket session (§5): one client, one world, a stream of camera moves
// each answered with one encoded frame.
//
// Grounded on the teacher's internal/network.Client: the same
// single-connection-plus-state-machine shape (a mutex guarding writes,
// structured logging on every state transition),
// rewritten from a client dialing out to a Hercules map server to a
// session accepting an inbound websocket connection and driving it to
// completion in a single receive loop.
package transport

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/voxelmon/server/internal/logger"
	"github.com/voxelmon/server/internal/metrics"
	"github.com/voxelmon/server/internal/render"
	"github.com/voxelmon/server/internal/teletext"
	"github.com/voxelmon/server/internal/texture"
	"github.com/voxelmon/server/internal/transport/proto"
	"github.com/voxelmon/server/internal/voxel"
	vmath "github.com/voxelmon/server/pkg/math"
)

// ErrKind distinguishes a malformed/out-of-order client message from a
// failure of the transport itself.
type ErrKind int

const (
	// ErrProtocol means the client sent something the protocol doesn't
	// allow in its current state (§5, scenario E).
	ErrProtocol ErrKind = iota
	// ErrTransport means the websocket connection itself failed.
	ErrTransport
)

// SessionError reports why a session ended.
type SessionError struct {
	Kind ErrKind
	Err  error
}

func (e *SessionError) Error() string { return e.Err.Error() }
func (e *SessionError) Unwrap() error { return e.Err }

// Session drives one accepted websocket connection end to end: the first
// message must be a world upload, every message after that is a camera
// move answered with one encoded frame.
type Session struct {
	conn     *websocket.Conn
	writeMu  sync.Mutex
	workers  int
	textures *texture.Table
	metrics  *metrics.Registry

	renderer *render.Renderer
	fb       *render.Framebuffer
}

// NewSession wraps an accepted connection. textures and a metrics registry
// are shared read-only across every session; workers is the per-frame row
// worker count (0 = runtime.NumCPU(), resolved inside render.Renderer).
func NewSession(conn *websocket.Conn, textures *texture.Table, reg *metrics.Registry, workers int) *Session {
	return &Session{
		conn:     conn,
		workers:  workers,
		textures: textures,
		metrics:  reg,
	}
}

// Run reads messages until the world has been uploaded, then loops reading
// camera moves and replying with frames, until the connection closes or a
// protocol violation is seen. The receive loop is single-threaded and
// strictly in order; only the per-frame row rendering inside Render is
// parallel.
func (s *Session) Run() error {
	defer s.teardown()

	if err := s.awaitUpload(); err != nil {
		return err
	}

	for {
		var msg proto.Camera
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return &SessionError{Kind: ErrTransport, Err: err}
		}

		s.renderer.Camera.Position = vmath.Vec3{X: msg.X, Y: msg.Y, Z: msg.Z}
		if err := s.renderer.Render(s.fb); err != nil {
			return &SessionError{Kind: ErrTransport, Err: err}
		}

		frame := teletext.Encode(s.fb)
		if err := s.writeFrame(frame); err != nil {
			return &SessionError{Kind: ErrTransport, Err: err}
		}
	}
}

// awaitUpload reads exactly one message and requires it to be a valid
// world upload; anything else is a protocol error and ends the session
// without producing a frame.
func (s *Session) awaitUpload() error {
	var msg proto.Upload
	if err := s.conn.ReadJSON(&msg); err != nil {
		var syntax *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntax) || errors.As(err, &typeErr) {
			logger.Warn("transport: malformed upload message", zap.Error(err))
			return &SessionError{Kind: ErrProtocol, Err: err}
		}
		return &SessionError{Kind: ErrTransport, Err: err}
	}

	world, err := voxel.FromRows(msg.World)
	if err != nil {
		logger.Warn("transport: rejected world upload", zap.Error(err))
		return &SessionError{Kind: ErrProtocol, Err: err}
	}

	offset := vmath.Vec3{X: msg.OffsetX, Y: msg.OffsetY, Z: msg.OffsetZ}
	s.renderer = &render.Renderer{
		World:    world,
		Textures: s.textures,
		Camera:   render.NewCamera(offset),
		Workers:  s.workers,
		Metrics:  s.metrics,
	}
	s.fb = render.NewFramebuffer()
	return nil
}

func (s *Session) writeFrame(frame []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, frame)
}

// teardown ends the session's underlying connection. It attempts a graceful
// close handshake before the hard close; both can fail independently (the
// peer may already be gone), so the two errors are combined rather than the
// second silently shadowing the first.
func (s *Session) teardown() {
	s.writeMu.Lock()
	closeErr := s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.writeMu.Unlock()

	err := multierr.Combine(closeErr, s.conn.Close())
	if err != nil {
		logger.Debug("transport: session teardown", zap.Error(err))
	}
}
