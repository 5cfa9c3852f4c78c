package http

import (
	"errors"
	"io"
	iofs "io/fs"
	"net/http"
	"path"

	"github.com/3-lines-studio/greetsite/internal/core"
)

// SiteHandler serves the bundler's output directory. Request paths ending in
// "/" resolve to index.html; directories are never listed.
type SiteHandler struct {
	site iofs.FS
}

func NewSiteHandler(site iofs.FS) http.Handler {
	return &SiteHandler{site: site}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	filePath, err := core.SiteFilePath(req.URL.Path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	info, err := iofs.Stat(h.site, filePath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			http.NotFound(w, req)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if info.IsDir() {
		filePath = path.Join(filePath, "index.html")
		info, err = iofs.Stat(h.site, filePath)
		if err != nil || info.IsDir() {
			http.NotFound(w, req)
			return
		}
	}

	h.serveFile(w, req, filePath, info)
}

func (h *SiteHandler) serveFile(w http.ResponseWriter, req *http.Request, filePath string, info iofs.FileInfo) {
	file, err := h.site.Open(filePath)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	defer func() { _ = file.Close() }()

	w.Header().Set("Content-Type", core.GetContentType(filePath))

	if seeker, ok := file.(io.ReadSeeker); ok {
		http.ServeContent(w, req, info.Name(), info.ModTime(), seeker)
		return
	}

	data, err := iofs.ReadFile(h.site, filePath)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	_, _ = w.Write(data)
}
