package site

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/midnamic912/Midna-Blog/database"
	"github.com/midnamic912/Midna-Blog/templates"
)

func (s *Site) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if s.currentUser(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, templates.RegisterPage(s.layoutProps(w, r, "Register")))
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		props := s.layoutProps(w, r, "Register")
		props.Flash = "All fields are required."
		s.render(w, templates.RegisterPage(props))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error creating account: "+err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := generateAuthToken()
	if err != nil {
		http.Error(w, "Error creating account: "+err.Error(), http.StatusInternalServerError)
		return
	}

	_, err = s.store.CreateUser(email, passwordHash, name, token)
	if errors.Is(err, database.ErrDuplicateEmail) {
		s.setFlash(w, "You've already signed up with the email. Login instead!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Error creating account: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if s.currentUser(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, templates.LoginPage(s.layoutProps(w, r, "Login")))
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := s.store.GetUserByEmail(email)
	if errors.Is(err, database.ErrUnknownEmail) {
		s.setFlash(w, "Sorry, the email doesn't exist. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.setFlash(w, "Wrong Password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Generate a new token for the session
	token, err := generateAuthToken()
	if err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}
	if err := s.store.SaveSessionToken(user, token); err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout tears down the session. Safe to call without one.
func (s *Site) Logout(w http.ResponseWriter, r *http.Request) {
	if user := s.currentUser(r); user != nil {
		// Rotate the stored token so the old cookie value is dead even if
		// someone kept a copy.
		if token, err := generateAuthToken(); err == nil {
			if err := s.store.SaveSessionToken(user, token); err != nil {
				log.Printf("Failed to rotate session token for user %d: %v", user.ID, err)
			}
		}
	}

	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
