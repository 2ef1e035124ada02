// Package session contiene el contenedor de estado de la sesión de administración:
// identidad autenticada, ciclo login/logout y capacidades derivadas del rol.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/pkg/jwt"
)

const (
	msgLoginFailed   = "Login failed"
	msgProfileFailed = "Failed to load profile"
)

// State instantánea de la sesión para las vistas.
type State struct {
	User    *entity.AdminUser
	Loading bool
	Error   string
}

// Store contenedor de sesión. Invariante: autenticado ⟺ User != nil.
// Se construye una vez por proceso y se comparte por referencia.
type Store struct {
	auth  ports.AuthService
	creds *CredentialStore
	log   zerolog.Logger
	now   func() time.Time

	mu      sync.Mutex
	user    *entity.AdminUser
	loading bool
	errMsg  string
}

// NewStore construye el contenedor vacío (sin identidad).
func NewStore(auth ports.AuthService, creds *CredentialStore, log zerolog.Logger) *Store {
	return &Store{auth: auth, creds: creds, log: log, now: time.Now}
}

// Login autentica contra el backend. En éxito guarda credencial e identidad; en fallo deja
// el mensaje del servidor (o "Login failed") en el campo de error y devuelve el error.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.beginLoading()
	defer s.endLoading()

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.setError(domain.MessageOf(err, msgLoginFailed))
		s.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return err
	}
	if res == nil || res.Token == "" || res.Admin == nil || res.Admin.ID == 0 {
		s.setError(msgLoginFailed)
		return fmt.Errorf("session: respuesta de login incompleta: %w", domain.ErrUnexpected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.creds.Set(ctx, res.Token); err != nil {
		s.errMsg = msgLoginFailed
		return err
	}
	s.user = res.Admin
	s.errMsg = ""
	s.log.Info().Uint("admin_id", res.Admin.ID).Str("role", string(res.Admin.Role)).Msg("sesión iniciada")
	return nil
}

// Logout intenta el logout remoto si hay credencial y, pase lo que pase, limpia credencial,
// identidad y error. Solo devuelve error si no se pudo borrar la credencial local.
func (s *Store) Logout(ctx context.Context) error {
	s.beginLoading()
	defer s.endLoading()

	if s.creds.Has(ctx) {
		if err := s.auth.Logout(ctx); err != nil {
			s.log.Warn().Err(err).Msg("logout remoto falló, se limpia la sesión local igualmente")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.errMsg = ""
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("no se pudo borrar la credencial local")
		return err
	}
	return nil
}

// LoadProfile recarga la identidad desde el backend. Sin credencial no hace nada.
// Una credencial JWT ya expirada se descarta sin llamar a la red. Un 401 limpia credencial
// e identidad; cualquier otro fallo queda en el campo de error.
func (s *Store) LoadProfile(ctx context.Context) error {
	token, err := s.creds.Token(ctx)
	if err != nil {
		s.setError(msgProfileFailed)
		return err
	}
	if token == "" {
		return nil
	}

	if claims, err := jwt.Inspect(token); err == nil && claims.Expired(s.now()) {
		s.log.Info().Msg("credencial expirada, se descarta sin consultar el backend")
		s.Discard(ctx)
		return fmt.Errorf("session: credencial expirada: %w", domain.ErrUnauthorized)
	}

	s.beginLoading()
	defer s.endLoading()

	user, err := s.auth.Profile(ctx)
	if err != nil {
		if domain.IsUnauthorized(err) {
			s.log.Info().Msg("backend rechazó la credencial, sesión limpiada")
			s.Discard(ctx)
			return err
		}
		s.setError(domain.MessageOf(err, msgProfileFailed))
		return err
	}

	s.mu.Lock()
	s.user = user
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

// InitializeAuth carga el perfil solo cuando hay credencial guardada.
func (s *Store) InitializeAuth(ctx context.Context) error {
	if !s.creds.Has(ctx) {
		return nil
	}
	return s.LoadProfile(ctx)
}

// Discard borra credencial e identidad sin llamar al backend.
func (s *Store) Discard(ctx context.Context) {
	if err := s.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("no se pudo borrar la credencial")
	}
}

// Token y Clear hacen que Store cumpla api.Credentials: un 401 en cualquier llamada
// borra la credencial y también la identidad en memoria.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.creds.Token(ctx)
}

// Clear borra credencial e identidad.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return s.creds.Clear(ctx)
}

// ClearError limpia el mensaje de error.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) beginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

func (s *Store) endLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// Snapshot devuelve el estado actual.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{User: cloneUser(s.user), Loading: s.loading, Error: s.errMsg}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) HasError() bool {
	return s.Error() != ""
}

func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// User copia de la identidad o nil.
func (s *Store) User() *entity.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user)
}

// Role rol actual o "" sin identidad.
func (s *Store) Role() entity.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Can evalúa una capacidad contra el rol actual; sin identidad siempre es false.
func (s *Store) Can(c entity.Capability) bool {
	role := s.Role()
	return role != "" && role.Can(c)
}

func (s *Store) CanManageProducts() bool { return s.Can(entity.CapManageProducts) }
func (s *Store) CanManageOrders() bool   { return s.Can(entity.CapManageOrders) }
func (s *Store) CanViewOrders() bool     { return s.Can(entity.CapViewOrders) }
func (s *Store) CanViewProducts() bool   { return s.Can(entity.CapViewProducts) }

func cloneUser(u *entity.AdminUser) *entity.AdminUser {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// HasCredential indica si hay credencial guardada.
func (s *Store) HasCredential(ctx context.Context) bool {
	return s.creds.Has(ctx)
}
