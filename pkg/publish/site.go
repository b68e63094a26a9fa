// Package publish renders document trees into a static site, either on
// the local filesystem or in an S3 bucket.
package publish

import (
	"strings"

	"github.com/el-go/el/pkg/dom"
)

// Site is an ordered mapping from URL paths to documents. Pages render
// in insertion order, so output and logs are deterministic.
type Site struct {
	paths []string
	pages map[string]*dom.Document
}

// NewSite creates an empty site.
func NewSite() *Site {
	return &Site{pages: make(map[string]*dom.Document)}
}

// Add registers a document under the given URL path. Paths are
// normalized to start with "/". Adding a path twice replaces the
// document but keeps the original position.
func (s *Site) Add(path string, doc *dom.Document) *Site {
	path = normalizePath(path)
	if _, ok := s.pages[path]; !ok {
		s.paths = append(s.paths, path)
	}
	s.pages[path] = doc
	return s
}

// Paths returns the registered paths in insertion order.
func (s *Site) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Page returns the document registered under path, if any.
func (s *Site) Page(path string) (*dom.Document, bool) {
	doc, ok := s.pages[normalizePath(path)]
	return doc, ok
}

// Len returns the number of registered pages.
func (s *Site) Len() int {
	return len(s.paths)
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// objectPath maps a URL path to its file location within the site
// output. "/" becomes index.html, extension-less paths get a trailing
// /index.html so the published site serves clean URLs.
func objectPath(path string) string {
	path = strings.TrimPrefix(normalizePath(path), "/")
	switch {
	case path == "":
		return "index.html"
	case strings.HasSuffix(path, "/"):
		return path + "index.html"
	case strings.Contains(lastSegment(path), "."):
		return path
	default:
		return path + "/index.html"
	}
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
