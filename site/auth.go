package site

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/midnamic912/Midna-Blog/database"
)

type contextKey string

const authenticatedUserKey = contextKey("authenticated_user")

// AuthPolicy decides who may author posts. The blog runs with exactly one
// authoring identity today; swapping this for real roles never touches the
// handlers.
type AuthPolicy interface {
	CanAuthor(userID uint) bool
}

type SingleAdminPolicy struct {
	AdminID uint
}

func (p SingleAdminPolicy) CanAuthor(userID uint) bool {
	return userID == p.AdminID
}

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	return token, nil
}

// signToken appends an HMAC of the token so a tampered cookie never reaches
// the database lookup.
func signToken(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verifySignedToken(secret, value string) (string, bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", false
	}
	return token, true
}

func (s *Site) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionCookie,
		Value:    signToken(s.cfg.SessionSecret, token),
		Path:     "/",
		HttpOnly: true,
	})
}

func (s *Site) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   s.cfg.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// TryPutUserInContextMiddleware resolves the session cookie into a User and
// stores it in the request context. Anonymous requests pass through as-is.
func (s *Site) TryPutUserInContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cfg.SessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := verifySignedToken(s.cfg.SessionSecret, cookie.Value)
		if !ok {
			s.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.store.GetUserBySessionToken(token)
		if err != nil {
			// Clear the invalid cookie
			s.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), authenticatedUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnlyMiddleware rejects everyone who may not author posts before any
// handler runs, so a forbidden request never touches persistence.
func (s *Site) AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.currentUser(r)
		if user == nil || !s.policy.CanAuthor(user.ID) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// currentUser returns the authenticated user or nil for anonymous callers.
func (s *Site) currentUser(r *http.Request) *database.User {
	user, _ := r.Context().Value(authenticatedUserKey).(*database.User)
	return user
}
