// Package guard decide si una navegación a una vista protegida procede o se redirige al login.
package guard

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"
)

// LoginPath vista de login del back office.
const LoginPath = "/admin/login"

// Session lo que el guard necesita del contenedor de sesión (lo implementa session.Store).
type Session interface {
	HasCredential(ctx context.Context) bool
	IsAuthenticated() bool
	IsLoading() bool
	InitializeAuth(ctx context.Context) error
	Discard(ctx context.Context)
}

// Route destino de la navegación.
type Route struct {
	Path         string // ruta completa, con query si la hay
	RequiresAuth bool
}

// Decision resultado del guard: Allow o Redirect (ruta de login con destino de retorno).
type Decision struct {
	Allow    bool
	Redirect string
}

// Guard intercepta las rutas que requieren autenticación.
type Guard struct {
	session Session
	log     zerolog.Logger
}

// New construye el guard.
func New(session Session, log zerolog.Logger) *Guard {
	return &Guard{session: session, log: log}
}

// Check aplica el algoritmo:
//  1. credencial sin identidad y sin carga en curso: inicializa la sesión;
//  2. si eso falla descarta la credencial y redirige al login con ?redirect=<ruta>;
//  3. si sigue sin autenticar redirige igual;
//  4. si no, deja pasar.
//
// Es idempotente y nunca dispara una segunda carga mientras otra está en curso.
func (g *Guard) Check(ctx context.Context, r Route) Decision {
	if !r.RequiresAuth {
		return Decision{Allow: true}
	}

	if g.session.HasCredential(ctx) && !g.session.IsAuthenticated() && !g.session.IsLoading() {
		if err := g.session.InitializeAuth(ctx); err != nil {
			g.log.Info().Err(err).Str("path", r.Path).Msg("no se pudo inicializar la sesión, redirigiendo al login")
			g.session.Discard(ctx)
			return Decision{Redirect: LoginURL(r.Path)}
		}
	}

	if !g.session.IsAuthenticated() {
		return Decision{Redirect: LoginURL(r.Path)}
	}
	return Decision{Allow: true}
}

// LoginURL ruta de login que conserva el destino original.
func LoginURL(returnTo string) string {
	if returnTo == "" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"redirect": {returnTo}}.Encode()
}

// SafeReturn devuelve el destino de retorno si es una ruta local; en otro caso fallback.
func SafeReturn(redirect, fallback string) string {
	if redirect == "" || redirect[0] != '/' || (len(redirect) > 1 && (redirect[1] == '/' || redirect[1] == '\\')) {
		return fallback
	}
	return redirect
}
