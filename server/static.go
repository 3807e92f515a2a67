package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// Pre-rendered pages served by the static responder
const homePage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Inicio</title>
  <link rel="icon" href="/favicon.svg" type="image/svg+xml">
</head>
<body>
  <h1>Bienvenido</h1>
  <p>Este es el servidor de echosite.</p>
  <p><a href="/about">Acerca de</a></p>
</body>
</html>
`

const aboutPage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Acerca de</title>
  <link rel="icon" href="/favicon.svg" type="image/svg+xml">
</head>
<body>
  <h1>Acerca de</h1>
  <p>Un servidor HTTP pequeño: páginas estáticas y un eco JSON.</p>
  <p><a href="/">Inicio</a></p>
</body>
</html>
`

// handleStatic serves GET requests from the fixed route table
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		s.writeHTML(w, http.StatusOK, homePage)
	case "/about":
		s.writeHTML(w, http.StatusOK, aboutPage)
	case "/favicon.svg":
		s.handleFavicon(w)
	default:
		s.writeText(w, http.StatusNotFound, "Not Found")
	}
}

// handleFavicon reads the favicon asset from disk and serves it.
// A missing asset is a 404; any other read failure is a 500.
func (s *Server) handleFavicon(w http.ResponseWriter) {
	path := filepath.Join(s.config.AssetsDir, "favicon.svg")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.writeText(w, http.StatusNotFound, "Not Found")
			return
		}
		s.logger.Error("Failed to read asset %s: %v", path, err)
		s.writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
