package site

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	g "github.com/maragudk/gomponents"

	"github.com/midnamic912/Midna-Blog/config"
	"github.com/midnamic912/Midna-Blog/database"
	"github.com/midnamic912/Midna-Blog/mailer"
	"github.com/midnamic912/Midna-Blog/templates"
)

// Site holds the collaborators every handler needs. Handlers keep no state
// of their own between requests.
type Site struct {
	cfg    *config.Config
	store  *database.Store
	mailer mailer.Mailer
	policy AuthPolicy
}

func New(cfg *config.Config, store *database.Store, m mailer.Mailer) *Site {
	return &Site{
		cfg:    cfg,
		store:  store,
		mailer: m,
		policy: SingleAdminPolicy{AdminID: cfg.AdminUserID},
	}
}

func (s *Site) Routes() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.TryPutUserInContextMiddleware)

	r.Get("/", s.Home)
	r.HandleFunc("/register", s.Register)
	r.HandleFunc("/login", s.Login)
	r.Get("/logout", s.Logout)

	r.HandleFunc("/post/{postID}", s.ShowPost)

	r.Get("/about", s.About)
	r.HandleFunc("/contact", s.Contact)

	r.Group(func(r chi.Router) {
		r.Use(s.AdminOnlyMiddleware)
		r.HandleFunc("/new-post", s.CreatePost)
		r.HandleFunc("/edit-post/{postID}", s.EditPost)
		r.Get("/delete/{postID}", s.DeletePost)
	})

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}

// layoutProps builds the per-request template data: current identity, admin
// flag, and any pending flash message (popped here, so rendering consumes it).
func (s *Site) layoutProps(w http.ResponseWriter, r *http.Request, title string) templates.LayoutProps {
	props := templates.LayoutProps{
		Title: title,
		Flash: s.popFlash(w, r),
	}
	if user := s.currentUser(r); user != nil {
		props.CurrentUser = user.Name
		props.IsAdmin = s.policy.CanAuthor(user.ID)
	}
	return props
}

func (s *Site) render(w http.ResponseWriter, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		log.Printf("Failed to render page: %v", err)
	}
}
