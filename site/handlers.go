package site

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/midnamic912/Midna-Blog/constants"
	"github.com/midnamic912/Midna-Blog/database"
	"github.com/midnamic912/Midna-Blog/templates"
)

func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListPosts()
	if err != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	s.render(w, templates.HomePage(s.layoutProps(w, r, constants.APP_NAME), posts))
}

func (s *Site) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching post", http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case "GET":
		s.render(w, templates.PostPage(s.layoutProps(w, r, post.Title), post))

	case "POST":
		user := s.currentUser(r)
		if user == nil {
			s.setFlash(w, "Sorry, you have to login to make a comment. Login or Register now!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		text := strings.TrimSpace(r.FormValue("comment"))
		if _, err := s.store.CreateComment(text, user.ID, post.ID); err != nil {
			if errors.Is(err, database.ErrEmptyComment) || errors.Is(err, database.ErrLongComment) {
				props := s.layoutProps(w, r, post.Title)
				props.Flash = err.Error()
				s.render(w, templates.PostPage(props, post))
				return
			}
			http.Error(w, "Error creating comment", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/post/"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, templates.AboutPage(s.layoutProps(w, r, "About Me")))
}

func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.render(w, templates.ContactPage(s.layoutProps(w, r, "Contact Me"), false))

	case "POST":
		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		phone := strings.TrimSpace(r.FormValue("phone"))
		message := strings.TrimSpace(r.FormValue("message"))

		// Fire and forget: a failed delivery is logged, never surfaced as an
		// error page.
		if err := s.mailer.SendContactMessage(name, email, phone, message); err != nil {
			log.Printf("Contact message delivery failed: %v", err)
		} else {
			log.Printf("Contact message delivered for %s", email)
		}

		s.render(w, templates.ContactPage(s.layoutProps(w, r, "Contact Me"), true))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) CreatePost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.render(w, templates.MakePostPage(s.layoutProps(w, r, "New Post"), nil, false))

	case "POST":
		fields, msg := postFormFields(r)
		if msg != "" {
			props := s.layoutProps(w, r, "New Post")
			props.Flash = msg
			s.render(w, templates.MakePostPage(props, nil, false))
			return
		}

		user := s.currentUser(r)
		newPost := &database.BlogPost{
			Title:    fields.title,
			Subtitle: fields.subtitle,
			Date:     time.Now().Format(constants.POST_DATE_FORMAT),
			Body:     fields.body,
			ImgURL:   fields.imgURL,
			AuthorID: user.ID,
		}

		if err := s.store.CreatePost(newPost); err != nil {
			if errors.Is(err, database.ErrDuplicateTitle) {
				props := s.layoutProps(w, r, "New Post")
				props.Flash = "A post with the same title already exists."
				s.render(w, templates.MakePostPage(props, newPost, false))
				return
			}
			http.Error(w, "Error creating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case "GET":
		s.render(w, templates.MakePostPage(s.layoutProps(w, r, "Edit Post"), post, true))

	case "POST":
		fields, msg := postFormFields(r)
		if msg != "" {
			props := s.layoutProps(w, r, "Edit Post")
			props.Flash = msg
			s.render(w, templates.MakePostPage(props, post, true))
			return
		}

		// Date and author are assigned at creation and never change.
		post.Title = fields.title
		post.Subtitle = fields.subtitle
		post.ImgURL = fields.imgURL
		post.Body = fields.body

		if err := s.store.UpdatePost(post); err != nil {
			if errors.Is(err, database.ErrDuplicateTitle) {
				props := s.layoutProps(w, r, "Edit Post")
				props.Flash = "A post with the same title already exists."
				s.render(w, templates.MakePostPage(props, post, true))
				return
			}
			http.Error(w, "Error updating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/post/"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	if err := s.store.DeletePost(postID); err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error deleting post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parsePostID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

type postFields struct {
	title    string
	subtitle string
	imgURL   string
	body     string
}

func postFormFields(r *http.Request) (postFields, string) {
	fields := postFields{
		title:    strings.TrimSpace(r.FormValue("title")),
		subtitle: strings.TrimSpace(r.FormValue("subtitle")),
		imgURL:   strings.TrimSpace(r.FormValue("img_url")),
		body:     strings.TrimSpace(r.FormValue("body")),
	}

	if fields.title == "" || fields.subtitle == "" || fields.imgURL == "" || fields.body == "" {
		return fields, "All fields are required."
	}
	if len(fields.body) > constants.MAX_POST_LENGTH {
		return fields, "Post body is too long."
	}
	return fields, ""
}
