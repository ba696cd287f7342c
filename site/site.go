// Package site implements the HTTP surface of the blog: public reading,
// registration and login, commenting, and the admin-only authoring routes.
package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	g "github.com/maragudk/gomponents"
	"github.com/rs/zerolog/log"

	"inkwell/constants"
	"inkwell/database"
	"inkwell/templates"
)

// Mailer is the outbound email collaborator: subject and body in, delivery
// to the fixed blog-owner address.
type Mailer interface {
	Send(subject, body string) error
}

// Site holds every dependency the handlers need. Nothing is reached through
// package-level state.
type Site struct {
	store    *database.Store
	mailer   Mailer
	sessions sessionManager
}

func New(store *database.Store, mailer Mailer, secretKey string) *Site {
	return &Site{
		store:    store,
		mailer:   mailer,
		sessions: newSessionManager(secretKey),
	}
}

func (s *Site) Router() *chi.Mux {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(corsMiddleware.Handler)
	r.Use(logRequests)
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.Recoverer)
	r.Use(s.withCurrentUser)

	r.Get("/", s.ListPosts)
	r.HandleFunc("/post/{postID}", s.ShowPost)
	r.HandleFunc("/register", s.Register)
	r.HandleFunc("/login", s.Login)
	r.Get("/logout", s.Logout)
	r.Get("/about", s.About)
	r.HandleFunc("/contact", s.Contact)

	r.Group(func(r chi.Router) {
		r.Use(s.adminOnly)
		r.HandleFunc("/new-post", s.NewPost)
		r.HandleFunc("/edit-post/{postID}", s.EditPost)
		r.Get("/delete/{postID}", s.DeletePost)
	})

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}

// pageProps assembles the layout data every page shares. Reading the props
// consumes any pending flash notice.
func (s *Site) pageProps(w http.ResponseWriter, r *http.Request, title string) templates.PageProps {
	user := currentUser(r)
	return templates.PageProps{
		Title:       title,
		CurrentUser: user,
		IsAdmin:     user != nil && user.ID == constants.ADMIN_USER_ID,
		Flash:       popFlash(w, r),
	}
}

func (s *Site) render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Error().Err(err).Msg("render failed")
	}
}
