package web

import (
	"encoding/xml"
	"log"
	"net/http"
	"strings"
	"time"
)

var staticRoutes = []string{"/", "/work", "/services", "/about", "/contact"}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the static routes plus one entry per project. A failed project
// read falls back to the static routes only.
func (rd *Renderer) Sitemap(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(rd.SiteURL, "/")
	now := time.Now().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + route, LastMod: now})
	}

	projects, err := rd.DB.ListProjects(r.Context(), false)
	if err != nil {
		log.Printf("sitemap: list projects: %v", err)
	} else {
		for _, p := range projects {
			lastMod := now
			if !p.UpdatedAt.IsZero() {
				lastMod = p.UpdatedAt.Format("2006-01-02")
			}
			set.URLs = append(set.URLs, sitemapURL{Loc: base + "/work/" + p.Slug, LastMod: lastMod})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(out)
}

func (rd *Renderer) Robots(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(rd.SiteURL, "/")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nAllow: /\nDisallow: /admin\nSitemap: " + base + "/sitemap.xml\n"))
}
