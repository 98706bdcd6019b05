// Package web serves the public site and the admin shell. Pages fetch their
// data straight from the store at request time; there is no client-visible API
// round trip for the public pages. Missing content degrades to placeholders,
// never to an error page.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jyokubov/portfolio/middleware"
	"github.com/jyokubov/portfolio/models"
	"github.com/jyokubov/portfolio/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// ContentStore is the slice of the store the render layer reads from.
type ContentStore interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	ProjectBySlugOrID(ctx context.Context, idOrSlug string) (*models.Project, error)
	GetAbout(ctx context.Context) (*models.About, error)
}

// Service is a static services-page entry.
type Service struct {
	Title       string
	Tagline     string
	Description string
}

var services = []Service{
	{"Build", "Web apps that scale", "From idea to production. Full-stack web applications with modern stack, clean architecture, and deployment that just works."},
	{"Ship", "Mobile, one codebase", "Cross-platform apps. Design, build, and get to App Store and Play Store without maintaining two codebases."},
	{"Connect", "APIs, bots, integrations", "Backends, REST APIs, Telegram bots, and integrations. Your product connected to the tools and platforms you use."},
	{"Rescue", "Refactor & modernize", "Existing codebase holding you back? I take over, untangle, and modernize so you can ship again without starting from zero."},
	{"Advise", "Architecture & direction", "Technical sparring: architecture reviews, stack decisions, and hands-on guidance. Short-term or ongoing."},
}

type Renderer struct {
	DB        ContentStore
	SiteURL   string
	JWTSecret string
	pages     map[string]*template.Template
}

var pageNames = []string{
	"home", "work", "work_detail", "about", "services", "contact", "not_found",
	"admin_login", "admin_dashboard", "admin_projects", "admin_project_form", "admin_about",
}

func NewRenderer(db ContentStore, siteURL, jwtSecret string) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return &Renderer{DB: db, SiteURL: siteURL, JWTSecret: jwtSecret, pages: pages}, nil
}

type pageData struct {
	Title    string
	SiteURL  string
	Year     int
	Projects []models.Project
	Project  *models.Project
	About    *models.About
	Services []Service
}

func (rd *Renderer) newPageData(title string) pageData {
	return pageData{Title: title, SiteURL: rd.SiteURL, Year: time.Now().Year()}
}

// render executes into a buffer first so a template failure never leaks a
// half-written page.
func (rd *Renderer) render(w http.ResponseWriter, status int, page string, data pageData) {
	t, ok := rd.pages[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render %s: %v", page, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Routes mounts the public pages and the admin shell.
func (rd *Renderer) Routes(r chi.Router) {
	r.Get("/", rd.Home)
	r.Get("/work", rd.Work)
	r.Get("/work/{slug}", rd.WorkDetail)
	r.Get("/about", rd.About)
	r.Get("/services", rd.Services)
	r.Get("/contact", rd.Contact)
	r.Get("/sitemap.xml", rd.Sitemap)
	r.Get("/robots.txt", rd.Robots)

	r.Get("/admin/login", rd.AdminLogin)
	r.Get("/admin", rd.requireAdmin(rd.AdminDashboard))
	r.Get("/admin/projects", rd.requireAdmin(rd.AdminProjects))
	r.Get("/admin/projects/new", rd.requireAdmin(rd.AdminProjectForm))
	r.Get("/admin/projects/{id}", rd.requireAdmin(rd.AdminProjectForm))
	r.Get("/admin/about", rd.requireAdmin(rd.AdminAbout))
}

func (rd *Renderer) Home(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Home")
	featured, err := rd.DB.ListProjects(r.Context(), true)
	if err != nil {
		log.Printf("home: featured projects: %v", err)
	} else {
		data.Projects = featured
	}
	if about, err := rd.DB.GetAbout(r.Context()); err == nil {
		data.About = about
	}
	rd.render(w, http.StatusOK, "home", data)
}

func (rd *Renderer) Work(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Work")
	projects, err := rd.DB.ListProjects(r.Context(), false)
	if err != nil {
		log.Printf("work: list projects: %v", err)
	} else {
		data.Projects = projects
	}
	rd.render(w, http.StatusOK, "work", data)
}

func (rd *Renderer) WorkDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, err := rd.DB.ProjectBySlugOrID(r.Context(), slug)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("work detail %s: %v", slug, err)
		}
		rd.render(w, http.StatusNotFound, "not_found", rd.newPageData("Not Found"))
		return
	}
	data := rd.newPageData(project.Title)
	data.Project = project
	rd.render(w, http.StatusOK, "work_detail", data)
}

func (rd *Renderer) About(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("About")
	about, err := rd.DB.GetAbout(r.Context())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("about: %v", err)
		}
		// Placeholder page until the admin fills the About document in
	} else {
		data.About = about
	}
	rd.render(w, http.StatusOK, "about", data)
}

func (rd *Renderer) Services(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Services")
	data.Services = services
	rd.render(w, http.StatusOK, "services", data)
}

func (rd *Renderer) Contact(w http.ResponseWriter, r *http.Request) {
	rd.render(w, http.StatusOK, "contact", rd.newPageData("Contact"))
}

// requireAdmin redirects to the login page when the session cookie is invalid.
func (rd *Renderer) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.ClaimsFromRequest(r, rd.JWTSecret); !ok {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (rd *Renderer) AdminLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Straight to the dashboard.
	if _, ok := middleware.ClaimsFromRequest(r, rd.JWTSecret); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	rd.render(w, http.StatusOK, "admin_login", rd.newPageData("Admin Login"))
}

func (rd *Renderer) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Dashboard")
	if projects, err := rd.DB.ListProjects(r.Context(), false); err == nil {
		data.Projects = projects
	}
	rd.render(w, http.StatusOK, "admin_dashboard", data)
}

func (rd *Renderer) AdminProjects(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Projects")
	if projects, err := rd.DB.ListProjects(r.Context(), false); err == nil {
		data.Projects = projects
	}
	rd.render(w, http.StatusOK, "admin_projects", data)
}

// AdminProjectForm serves both the create form (no id) and the edit form; the
// edit form loads the project through the JSON API client-side, so the handler
// only needs the id to be present in the URL.
func (rd *Renderer) AdminProjectForm(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Project")
	if id := chi.URLParam(r, "id"); id != "" {
		if project, err := rd.DB.ProjectBySlugOrID(r.Context(), id); err == nil {
			data.Project = project
		}
	}
	rd.render(w, http.StatusOK, "admin_project_form", data)
}

func (rd *Renderer) AdminAbout(w http.ResponseWriter, r *http.Request) {
	data := rd.newPageData("Edit About")
	if about, err := rd.DB.GetAbout(r.Context()); err == nil {
		data.About = about
	}
	rd.render(w, http.StatusOK, "admin_about", data)
}
