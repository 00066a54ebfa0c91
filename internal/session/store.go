package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"booking-portal/internal/pkg/config"
	"booking-portal/internal/pkg/cookie"
	"booking-portal/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var ErrTokenRequired = errors.New("session token required")

// Listener is called after every Replace and Clear. A cleared session is the
// zero Session.
type Listener func(Session)

// Store is the single owner of the signed-in identity. It persists the
// session in two sealed cookies which are always written and removed
// together.
type Store struct {
	codec     *cookie.Codec
	cookieCfg config.CookieConfig
	maxAge    time.Duration
	logger    *slog.Logger

	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
}

func NewStore(cfg config.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		codec:     cookie.NewCodec(cfg.Session.Secret),
		cookieCfg: cfg.Cookie,
		maxAge:    cfg.Session.MaxAge,
		logger:    logger,
		listeners: make(map[uint64]Listener),
	}
}

// Load derives the session from the request cookies. A missing, tampered or
// undecodable token yields the zero Session; an undecodable one is also
// cleared from the browser.
func (s *Store) Load(c *gin.Context) Session {
	token, userInfo := cookie.GetSessionCookies(c, s.codec)
	if token == "" {
		return Session{}
	}
	sess, err := Decode(token)
	if err != nil {
		s.logger.Debug("clearing undecodable session token", "error", err.Error())
		cookie.ClearSessionCookies(c, s.cookieCfg)
		return Session{}
	}
	return sess.withProfile(userInfo)
}

// Replace stores sess for later requests and attaches it to the current one.
func (s *Store) Replace(c *gin.Context, sess Session) error {
	if sess.Token == "" || sess.User == nil {
		return ErrTokenRequired
	}
	userInfo, err := json.Marshal(sess.User)
	if err != nil {
		return errs.Wrap(err, "encode user info")
	}
	if err := cookie.SetSessionCookies(c, s.cookieCfg, s.codec, sess.Token, string(userInfo), s.maxAge); err != nil {
		return errs.Wrap(err, "write session cookies")
	}
	Attach(c, sess)
	s.notify(sess)
	return nil
}

func (s *Store) Clear(c *gin.Context) {
	cookie.ClearSessionCookies(c, s.cookieCfg)
	Attach(c, Session{})
	s.notify(Session{})
}

// Subscribe registers l and returns the function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify(sess Session) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(sess)
	}
}
