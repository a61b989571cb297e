package transport

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/voxelmon/server/internal/logger"
	"github.com/voxelmon/server/internal/metrics"
	"github.com/voxelmon/server/internal/texture"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server accepts websocket connections and runs one Session per
// connection. Textures and Metrics are shared read-only across every
// session it spawns.
type Server struct {
	Textures *texture.Table
	Metrics  *metrics.Registry
	Workers  int
}

// ServeHTTP upgrades the request to a websocket and runs a session on it
// until the client disconnects or violates the protocol.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("transport: upgrade failed", zap.Error(err))
		return
	}

	sess := NewSession(conn, s.Textures, s.Metrics, s.Workers)
	logger.Info("transport: session started", zap.String("remote", r.RemoteAddr))

	err = sess.Run()
	switch {
	case err == nil:
		logger.Info("transport: session closed normally", zap.String("remote", r.RemoteAddr))
	default:
		var sessErr *SessionError
		if e, ok := err.(*SessionError); ok {
			sessErr = e
		}
		if sessErr != nil && sessErr.Kind == ErrProtocol {
			logger.Warn("transport: session ended on protocol error",
				zap.String("remote", r.RemoteAddr), zap.Error(err))
		} else {
			logger.Warn("transport: session ended on transport error",
				zap.String("remote", r.RemoteAddr), zap.Error(err))
		}
	}
}
