package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/Ko-stant/outlook-map/internal/config"
	"github.com/Ko-stant/outlook-map/internal/dashboard"
	"github.com/Ko-stant/outlook-map/internal/protocol"
	"github.com/Ko-stant/outlook-map/internal/web/views"
	"github.com/Ko-stant/outlook-map/internal/ws"
)

// Server wires the engine, the stream hub and the occupation browser to HTTP
type Server struct {
	cfg         *config.Config
	engine      MapEngine
	handlers    *Handlers
	hub         *ws.Hub
	conns       *ConnectionManager
	sequence    SequenceGenerator
	occupations []dashboard.Occupation
	index       *dashboard.Index
	log         *zap.Logger
}

func NewServer(cfg *config.Config, engine MapEngine, occupations []dashboard.Occupation, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	logger := NewLogger(log)
	handlers := NewHandlers(engine, NewBroadcaster(hub, sequence, logger), logger)
	if !cfg.Map.AllowRegenerate {
		handlers.DisableRegenerate()
	}
	return &Server{
		cfg:         cfg,
		engine:      engine,
		handlers:    handlers,
		hub:         hub,
		conns:       NewConnectionManager(),
		sequence:    sequence,
		occupations: occupations,
		index:       dashboard.NewIndex(occupations),
		log:         log,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir(s.cfg.Server.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/api/map", s.handleMap)
	mux.HandleFunc("/api/occupations/search", s.handleSearch)
	mux.HandleFunc("/api/occupations/chart", s.handleChart)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := views.IndexData{
		Title:    views.PageTitle("Home", s.cfg.Site.Name),
		SiteName: s.cfg.Site.Name,
		SiteURL:  s.cfg.Site.URL,
		Snapshot: s.engine.Snapshot(),
		Chart:    dashboard.BuildChart(s.occupations),

		AllowRegenerate: s.cfg.Map.AllowRegenerate,
	}
	if err := views.IndexPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleStream joins a new avatar for the connection and relays its intents
// until the client goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	joined, err := s.handlers.HandleJoin()
	if err != nil {
		conn.Close(websocket.StatusInternalError, "join failed")
		return
	}
	avatarID := joined.Avatar.ID

	ctx := context.Background()
	s.hub.Add(conn)
	s.conns.AddConnection(conn, avatarID)
	defer func() {
		s.hub.Remove(conn)
		s.conns.RemoveConnection(conn)
		_ = s.handlers.HandleLeave(avatarID)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	for _, a := range s.engine.Snapshot().Avatars {
		if a.ID == avatarID {
			continue
		}
		if err := s.send(ctx, conn, protocol.PatchAvatarJoined, protocol.AvatarJoined{Avatar: a}); err != nil {
			return
		}
	}
	if err := s.send(ctx, conn, protocol.PatchAvatarJoined, protocol.AvatarJoined{Avatar: joined.Avatar, Self: true}); err != nil {
		return
	}
	if err := s.send(ctx, conn, protocol.PatchAvatarPlaced, joined.Placement); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		env, err := protocol.DecodeIntent(data)
		if err != nil {
			s.log.Debug("dropping malformed intent", zap.String("avatar", avatarID), zap.Error(err))
			continue
		}
		if err := s.handlers.HandleIntent(avatarID, env); err != nil {
			s.log.Warn("intent failed",
				zap.String("avatar", avatarID),
				zap.String("intent", env.Type),
				zap.Error(err))
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, eventType string, payload any) error {
	data, err := encodePatch(s.sequence, eventType, payload)
	if err != nil {
		return err
	}
	return s.hub.Send(ctx, conn, data)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.index.Search(r.URL.Query().Get("q"))
	if errors.Is(err, dashboard.ErrQueryTooShort) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// handleChart charts the search hits for q, or every occupation when q is
// empty.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, dashboard.BuildChart(s.occupations))
		return
	}
	results, err := s.index.Search(q)
	if errors.Is(err, dashboard.ErrQueryTooShort) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildChart(dashboard.Occupations(results)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
