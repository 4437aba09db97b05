package httpserver

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/vnclrd/folio/internal/content"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"title": func(s content.Section) string { return s.Title() },
	"year":  func() int { return time.Now().Year() },
}).ParseFS(templateFS, "templates/*.html"))

// Server serves the portfolio document as JSON and as an HTML page.
type Server struct {
	addr      string
	doc       *content.Document
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new content server for doc.
func NewServer(addr string, doc *content.Document) *Server {
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		doc:    doc,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Addr returns the address the server listens on. After Start it is the
// bound address, so a ":0" port resolves to the real one.
func (s *Server) Addr() string { return s.addr }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.handleIndex)
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/content", s.handleContent)
	r.GET("/api/content/:section", s.handleSection)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	counts := make(map[string]int)
	for sec, n := range s.doc.Counts() {
		counts[string(sec)] = n
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
		"counts": counts,
	})
}

func (s *Server) handleContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.doc)
}

func (s *Server) handleSection(c *gin.Context) {
	sec, err := content.ParseSection(c.Param("section"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"section": sec, "title": sec.Title()}
	switch sec {
	case content.SectionSkills:
		body["skills"] = s.doc.Skills
	case content.SectionEducation:
		body["education"] = s.doc.Education
	case content.SectionAbout:
		body["about"] = s.doc.About
	case content.SectionGitHub:
		body["github"] = s.doc.GitHub
	default:
		cards, err := s.doc.Cards(sec)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		body["cards"] = cards
	}
	c.JSON(http.StatusOK, body)
}

// carouselView is one carousel section as the page template sees it.
type carouselView struct {
	Section content.Section
	Cards   []content.Card
}

func (s *Server) handleIndex(c *gin.Context) {
	var carousels []carouselView
	for _, sec := range content.Carousels() {
		cards, err := s.doc.Cards(sec)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to render %s", sec)
			return
		}
		carousels = append(carousels, carouselView{Section: sec, Cards: cards})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Doc":       s.doc,
		"Carousels": carousels,
		"Skills":    content.SectionSkills,
		"Education": content.SectionEducation,
		"About":     content.SectionAbout,
	})
}
