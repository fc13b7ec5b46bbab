package api

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndyF-42/BattleshipOnline/db/sqlc"
	mc "github.com/AndyF-42/BattleshipOnline/models/connection"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	TransportWs  = "ws"
	TransportTcp = "tcp"
)

const (
	DuelPath = "/battleship"

	handshakeTimeout = time.Second * 5
)

var (
	defaultPort = "7171"
	upgrader    = websocket.Upgrader{
		HandshakeTimeout: handshakeTimeout,

		// duel messages are at most a board payload
		ReadBufferSize:  512,
		WriteBufferSize: 512,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Server is the local end of a duel: it either hosts and waits for exactly
// one peer, or joins a host.
type Server struct {
	port        string
	stage       string
	transport   string
	readTimeout time.Duration
	Db          *sql.DB
	DbManager   sqlc.DbManager

	mu       sync.Mutex
	listener net.Listener
	http     *http.Server
	accepted chan acceptResult
	claimed  atomic.Bool
}

type acceptResult struct {
	ch   mc.DuelChannel
	addr net.Addr
	err  error
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{transport: TransportWs, stage: StageDev}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == "" {
		server.port = defaultPort
	}

	var q sqlc.Querier
	if server.Db != nil {
		q = sqlc.New(server.Db)
	}
	server.DbManager = sqlc.NewDbManager(q)

	return &server
}

func WithPort(port string) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithTransport(transport string) Option {
	return func(s *Server) error {
		if transport != TransportWs && transport != TransportTcp {
			return fmt.Errorf("invalid transport: %s", transport)
		}
		s.transport = transport
		return nil
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) error {
		if d < 0 {
			return fmt.Errorf("read timeout must not be negative: %s", d)
		}
		s.readTimeout = d
		return nil
	}
}

func WithDb(db *sql.DB) Option {
	return func(s *Server) error {
		s.Db = db
		return nil
	}
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) channelOptions() []mc.ChannelOption {
	return []mc.ChannelOption{mc.WithReadTimeout(s.readTimeout)}
}

// Listen binds the host port. Host calls it when needed; calling it first
// lets the caller learn the bound address, e.g. for port "0".
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", net.JoinHostPort("", s.port))
	if err != nil {
		return err
	}
	s.listener = ln
	s.accepted = make(chan acceptResult, 1)

	switch s.transport {
	case TransportTcp:
		go s.acceptTcp()

	default:
		mux := http.NewServeMux()
		mux.HandleFunc("GET "+DuelPath, s.HandleWs)
		s.http = &http.Server{Handler: mux, ReadHeaderTimeout: handshakeTimeout}
		go func() {
			if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Println(err)
			}
		}()
	}

	log.Printf("Listening to port %s (%s)\n", s.port, s.transport)
	return nil
}

func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Host waits for the one peer of this duel and returns the channel to it
// together with the peer address.
func (s *Server) Host(ctx context.Context) (mc.DuelChannel, net.Addr, error) {
	if err := s.Listen(); err != nil {
		return nil, nil, err
	}

	select {
	case res := <-s.accepted:
		return res.ch, res.addr, res.err
	case <-ctx.Done():
		s.Close()
		return nil, nil, ctx.Err()
	}
}

// HandleWs upgrades the first request to a duel session. Every later peer
// is turned away while the duel lasts.
func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	if !s.claimed.CompareAndSwap(false, true) {
		http.Error(w, "a duel is already in progress", http.StatusConflict)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		s.claimed.Store(false)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	session := mc.NewSession(newSessionId(), conn, s.channelOptions()...)
	s.accepted <- acceptResult{ch: session, addr: conn.RemoteAddr()}
}

func (s *Server) acceptTcp() {
	conn, err := s.listener.Accept()
	if err != nil {
		s.accepted <- acceptResult{err: err}
		return
	}

	// one peer per duel
	s.listener.Close()

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	s.accepted <- acceptResult{ch: mc.NewStream(conn, s.channelOptions()...), addr: conn.RemoteAddr()}
}

// Join dials a host and returns the channel to it.
func (s *Server) Join(ctx context.Context, hostName string) (mc.DuelChannel, net.Addr, error) {
	addr := net.JoinHostPort(hostName, s.port)

	if s.transport == TransportTcp {
		dialer := net.Dialer{Timeout: handshakeTimeout}
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, nil, err
		}
		return mc.NewStream(conn, s.channelOptions()...), conn.RemoteAddr(), nil
	}

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, "ws://"+addr+DuelPath, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return nil, nil, fmt.Errorf("host %s already has an opponent", addr)
		}
		return nil, nil, err
	}

	log.Println("joined duel\tRemote Addr: ", conn.RemoteAddr().String())
	return mc.NewSession(newSessionId(), conn, s.channelOptions()...), conn.RemoteAddr(), nil
}

// Close stops accepting peers. Channels already handed out stay open.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.http != nil {
		return s.http.Close()
	}
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// URL compatible session id
func newSessionId() string {
	return base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
}
