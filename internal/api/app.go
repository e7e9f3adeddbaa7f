package api

import (
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/auth"
	"github.com/yourname/sleeplog/internal/storage"
)

// App is the dependency surface handed to every handler. It is built
// once at startup; handlers never reach for package globals.
type App interface {
	Logger() internal.Logger
	Users() storage.UserRepository
	Records() storage.SleepRecordRepository
	Sessions() *auth.Sessions
}

type Server struct {
	logger   internal.Logger
	users    storage.UserRepository
	records  storage.SleepRecordRepository
	sessions *auth.Sessions
}

func NewServer(logger internal.Logger, users storage.UserRepository, records storage.SleepRecordRepository, sessions *auth.Sessions) *Server {
	return &Server{logger: logger, users: users, records: records, sessions: sessions}
}

func (s *Server) Logger() internal.Logger                { return s.logger }
func (s *Server) Users() storage.UserRepository          { return s.users }
func (s *Server) Records() storage.SleepRecordRepository { return s.records }
func (s *Server) Sessions() *auth.Sessions               { return s.sessions }

var _ App = (*Server)(nil)
