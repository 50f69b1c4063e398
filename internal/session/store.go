package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

// State is the session lifecycle position. The session cycles between
// Authenticated and Anonymous for the life of the process; there is no
// terminal state.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateResolving     State = "resolving"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// authAPI is the slice of the gateway the store depends on.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	AdminPinVerify(ctx context.Context, email, pin string) (*models.AdminPinResponse, error)
	AdminGoogleVerify(ctx context.Context, email, sessionID string) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// tokenStorage persists the opaque token under a single fixed key.
type tokenStorage interface {
	Load() (string, bool)
	Save(token string) error
	Clear() error
}

// Snapshot is a point-in-time view of the session handed to readers and
// observers. User is non-nil exactly when the token was validated against
// the backend at the last check.
type Snapshot struct {
	State       State        `json:"state"`
	User        *models.User `json:"user,omitempty"`
	Initialized bool         `json:"initialized"`
}

// Authenticated reports whether an identity is currently resolved.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// Store is the single source of truth for "who is logged in". It is the
// only writer of the persisted token; the gateway reads it per call through
// the TokenSource interface. All blocking work takes a context so callers
// can cancel on teardown.
type Store struct {
	api          authAPI
	tokens       tokenStorage
	logger       *zap.Logger
	loginTimeout time.Duration

	mu          sync.RWMutex
	state       State
	user        *models.User
	token       string
	initialized bool
	observers   []func(Snapshot)
}

// NewStore wires the session store. loginTimeout bounds Login so a hung
// backend surfaces as "server not responding" instead of blocking forever.
func NewStore(api authAPI, tokens tokenStorage, logger *zap.Logger, loginTimeout time.Duration) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loginTimeout <= 0 {
		loginTimeout = 10 * time.Second
	}
	return &Store{
		api:          api,
		tokens:       tokens,
		logger:       logger,
		loginTimeout: loginTimeout,
		state:        StateUninitialized,
	}
}

// Token implements the gateway token source. It reflects the live session
// state at call time, never a cached copy.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// State returns the current lifecycle position.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns a snapshot of the session.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, User: s.user, Initialized: s.initialized}
}

// Subscribe registers an observer invoked after every state transition.
// The store itself never navigates; a top-level router decides what a
// transition means for the UI.
func (s *Store) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Initialize restores a persisted session, if any. It always completes the
// transition out of Uninitialized: on any failure (missing token, invalid
// token, unreachable backend) the persisted token is cleared and the
// session lands in Anonymous. Role-gated views must not render before this
// returns; initialized flips to true exactly once.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		s.resolve(ctx)
		return
	}
	s.state = StateResolving
	s.mu.Unlock()
	s.notify()

	s.resolve(ctx)

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	s.notify()
}

// Refresh re-validates the persisted token against the backend without
// touching the initialized flag. A failed refresh forces Anonymous.
func (s *Store) Refresh(ctx context.Context) {
	s.resolve(ctx)
}

// resolve runs the shared token-validation path: read the persisted token,
// ask the backend who it belongs to, and fail closed on any error.
func (s *Store) resolve(ctx context.Context) {
	token, ok := s.tokens.Load()
	if !ok {
		s.becomeAnonymous(false)
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err != nil {
		// Invalid token and unreachable backend are treated alike: the
		// session is not assumed authenticated, and the token is not
		// retried automatically.
		s.logger.Info("stored session rejected", zap.String("reason", appErrors.FromError(err).Code))
		s.becomeAnonymous(true)
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()
	s.notify()
}

// Login authenticates with the backend. On success the returned token is
// persisted and the identity resolved; on any failure the previous session
// state is left untouched and a typed error carries the human-readable
// reason. The call is bounded by the configured login timeout.
func (s *Store) Login(ctx context.Context, email, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return loginError(err)
	}
	return s.completeLogin(resp)
}

// AdminPinVerify runs step one of the admin two-factor flow. It does not
// change session state; the returned session id feeds AdminGoogleVerify.
func (s *Store) AdminPinVerify(ctx context.Context, email, pin string) (*models.AdminPinResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	resp, err := s.api.AdminPinVerify(ctx, email, pin)
	if err != nil {
		return nil, loginError(err)
	}
	return resp, nil
}

// AdminGoogleVerify completes the admin two-factor flow. On success the
// session becomes authenticated exactly as a plain login would.
func (s *Store) AdminGoogleVerify(ctx context.Context, email, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	resp, err := s.api.AdminGoogleVerify(ctx, email, sessionID)
	if err != nil {
		return loginError(err)
	}
	return s.completeLogin(resp)
}

// loginError rewrites transport failures on the login path so the UI shows
// one consistent "server not responding" reason for timeouts and outages.
func loginError(err error) error {
	if appErrors.HasCode(err, appErrors.ErrUnreachable) || errors.Is(err, context.DeadlineExceeded) {
		return appErrors.Clone(appErrors.ErrUnreachable, "the server is not responding, check your connection")
	}
	return err
}

// completeLogin persists the fresh token and flips the session to
// authenticated. Shared by the plain and the two-factor login paths.
func (s *Store) completeLogin(resp *models.LoginResponse) error {
	if resp.Token == "" || resp.User == nil {
		return appErrors.Clone(appErrors.ErrBackend, "login response missing token")
	}

	if err := s.tokens.Save(resp.Token); err != nil {
		// The in-memory session still works for this process; only the
		// restore-on-restart path is degraded.
		s.logger.Warn("failed to persist session token", zap.Error(err))
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = resp.User
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.notify()

	s.logger.Info("login succeeded",
		zap.String("email", resp.User.Email),
		zap.String("role", string(resp.User.Role)),
	)
	return nil
}

// Logout clears the session. The backend notification is best-effort:
// whatever it returns, the persisted token is erased and the session is
// Anonymous when this returns.
func (s *Store) Logout(ctx context.Context) {
	if _, ok := s.Token(); ok {
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Debug("backend logout failed, clearing locally", zap.Error(err))
		}
	}
	s.becomeAnonymous(true)
}

func (s *Store) becomeAnonymous(clearPersisted bool) {
	if clearPersisted {
		if err := s.tokens.Clear(); err != nil {
			s.logger.Warn("failed to clear persisted token", zap.Error(err))
		}
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()
	s.notify()
}

// notify delivers the current snapshot to observers outside the lock.
func (s *Store) notify() {
	s.mu.RLock()
	snapshot := Snapshot{State: s.state, User: s.user, Initialized: s.initialized}
	observers := make([]func(Snapshot), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}
