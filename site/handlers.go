package site

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/constants"
	"inkwell/database"
	"inkwell/templates"
)

func (s *Site) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.AllBlogPosts()
	if err != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	s.render(w, templates.Index(s.pageProps(w, r, constants.APP_NAME), posts))
}

// ShowPost renders a post with its comments; a POST with a valid comment
// from a signed-in user inserts the comment and falls through to the same
// render rather than redirecting.
func (s *Site) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	post, err := s.store.BlogPostByID(uint(postID))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	values := map[string]string{}
	problems := map[string]string{}

	if r.Method == http.MethodPost {
		values = formValues(r, commentForm)
		problems = validate(r, commentForm)

		if len(problems) == 0 {
			user := currentUser(r)
			if user == nil {
				setFlash(w, "You need to login or register to comment")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			comment := database.Comment{
				Text:   values["body"],
				PostID: post.ID,
				UserID: user.ID,
			}
			if err := s.store.CreateComment(&comment); err != nil {
				http.Error(w, "Error saving comment", http.StatusInternalServerError)
				return
			}
			values = map[string]string{}
		}
	}

	comments, err := s.store.CommentsForPost(post.ID)
	if err != nil {
		http.Error(w, "Error fetching comments", http.StatusInternalServerError)
		return
	}

	s.render(w, templates.Post(s.pageProps(w, r, post.Title), post, comments, values, problems))
}

func (s *Site) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if currentUser(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, templates.Register(s.pageProps(w, r, "Register"), nil, nil))
		return
	}

	values := formValues(r, registrationForm)
	problems := validate(r, registrationForm)
	if len(problems) > 0 {
		s.render(w, templates.Register(s.pageProps(w, r, "Register"), values, problems))
		return
	}

	existing, err := s.store.UserByEmail(values["email"])
	if err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		setFlash(w, fmt.Sprintf("%s already exists, please login", values["email"]))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	hash, err := HashPassword(values["password"])
	if err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	user := database.User{
		Email:    values["email"],
		Password: hash,
		Name:     values["name"],
	}
	if err := s.store.CreateUser(&user); err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	if err := s.sessions.establish(w, user.ID); err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if currentUser(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, templates.Login(s.pageProps(w, r, "Login"), nil, nil))
		return
	}

	values := formValues(r, loginForm)
	problems := validate(r, loginForm)
	if len(problems) > 0 {
		s.render(w, templates.Login(s.pageProps(w, r, "Login"), values, problems))
		return
	}

	user, err := s.store.UserByEmail(values["email"])
	if err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	// One notice for both failure modes: the page never says whether the
	// account exists.
	if user == nil || !CheckPassword(user.Password, values["password"]) {
		setFlash(w, "Invalid Credentials")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := s.sessions.establish(w, user.ID); err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session unconditionally; calling it signed out is fine.
func (s *Site) Logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, templates.About(s.pageProps(w, r, "About")))
}

// Contact reads the raw form fields without schema validation and relays
// them to the blog owner. A failed send is a server error, not a notice.
func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, templates.Contact(s.pageProps(w, r, "Contact"), "Contact Me"))
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	phone := r.FormValue("phone")
	message := r.FormValue("message")

	subject := fmt.Sprintf("Blog message from %s", name)
	body := fmt.Sprintf("Message:\n%s\n\nEmail: %s\n\nPhone: %s", message, email, phone)

	if err := s.mailer.Send(subject, body); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.render(w, templates.Contact(s.pageProps(w, r, "Contact"), "Successfully sent your message"))
}

func (s *Site) NewPost(w http.ResponseWriter, r *http.Request) {
	props := s.pageProps(w, r, "New Post")

	if r.Method == http.MethodGet {
		s.render(w, templates.MakePost(props, "New Post", "/new-post", false, nil, nil))
		return
	}

	values := formValues(r, createPostForm)
	problems := validate(r, createPostForm)
	if len(problems) > 0 {
		s.render(w, templates.MakePost(props, "New Post", "/new-post", false, values, problems))
		return
	}

	post := database.BlogPost{
		AuthorID: currentUser(r).ID,
		Title:    values["title"],
		Subtitle: values["subtitle"],
		Body:     values["body"],
		ImgURL:   values["img_url"],
		Date:     time.Now().Format(constants.POST_DATE_FORMAT),
	}
	// a duplicate title trips the unique constraint here; the route never
	// overwrites an existing post
	if err := s.store.CreateBlogPost(&post); err != nil {
		http.Error(w, "Error creating post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditPost pre-fills the authoring form on GET and applies the submission on
// POST. Every field is rebindable, including the author; the creation date
// is left as it was.
func (s *Site) EditPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	id, err := strconv.ParseUint(postID, 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	post, err := s.store.BlogPostByID(uint(id))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	props := s.pageProps(w, r, "Edit Post")
	action := "/edit-post/" + postID

	if r.Method == http.MethodGet {
		values := map[string]string{
			"title":     post.Title,
			"subtitle":  post.Subtitle,
			"img_url":   post.ImgURL,
			"body":      post.Body,
			"author_id": strconv.FormatUint(uint64(post.AuthorID), 10),
		}
		s.render(w, templates.MakePost(props, "Edit Post", action, true, values, nil))
		return
	}

	values := formValues(r, createPostForm)
	problems := validate(r, createPostForm)
	if len(problems) > 0 {
		values["author_id"] = r.FormValue("author_id")
		s.render(w, templates.MakePost(props, "Edit Post", action, true, values, problems))
		return
	}

	post.Title = values["title"]
	post.Subtitle = values["subtitle"]
	post.ImgURL = values["img_url"]
	post.Body = values["body"]
	if authorID, err := strconv.ParseUint(r.FormValue("author_id"), 10, 64); err == nil {
		post.AuthorID = uint(authorID)
	}

	if err := s.store.UpdateBlogPost(post); err != nil {
		http.Error(w, "Error updating post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+postID, http.StatusSeeOther)
}

func (s *Site) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	post, err := s.store.BlogPostByID(uint(id))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// comments go with the post; see DeleteBlogPost
	if err := s.store.DeleteBlogPost(post.ID); err != nil {
		http.Error(w, "Error deleting post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
