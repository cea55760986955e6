package grpcserver

import (
	"net"
	"sync"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// MovieServiceName is the name the movie store reports health under.
const MovieServiceName = "moviestore.MovieService"

// Server exposes the standard gRPC health protocol so orchestrators can probe
// the movie store without going through HTTP.
type Server struct {
	Addr string

	logger    *zap.Logger
	rateLimit rate.Limit

	mu         sync.Mutex
	grpcServer *grpc.Server
	listener   net.Listener
	health     *health.Server
}

type Option func(s *Server)

// WithLogger logs every call through zap.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithRateLimit caps calls per second across all clients, zero disables it.
func WithRateLimit(limit rate.Limit) Option {
	return func(s *Server) {
		s.rateLimit = limit
	}
}

func New(addr string, options ...Option) *Server {
	s := &Server{
		Addr:   addr,
		logger: zap.NewNop(),
		health: health.NewServer(),
	}
	for _, fn := range options {
		fn(s)
	}

	unary := []grpc.UnaryServerInterceptor{
		grpc_recovery.UnaryServerInterceptor(),
		grpc_zap.UnaryServerInterceptor(s.logger),
	}
	stream := []grpc.StreamServerInterceptor{
		grpc_recovery.StreamServerInterceptor(),
		grpc_zap.StreamServerInterceptor(s.logger),
	}
	if s.rateLimit > 0 {
		l := newLimiter(s.rateLimit)
		unary = append(unary, ratelimit.UnaryServerInterceptor(l))
		stream = append(stream, ratelimit.StreamServerInterceptor(l))
	}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	reflection.Register(s.grpcServer)
	s.health.SetServingStatus(MovieServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Start listens on Addr and blocks until the server stops.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()
	return s.grpcServer.Serve(lis)
}

// ListenAddr returns the bound address once Start has been called.
func (s *Server) ListenAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// SetServing flips the movie store's reported health.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(MovieServiceName, status)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

type limiter struct {
	l *rate.Limiter
}

func newLimiter(limit rate.Limit) *limiter {
	burst := int(limit)
	if burst < 1 {
		burst = 1
	}
	return &limiter{rate.NewLimiter(limit, burst)}
}

// Limit reports whether the call should be rejected.
func (l *limiter) Limit() bool {
	return !l.l.Allow()
}
