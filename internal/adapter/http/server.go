package adapthttp

import (
	"net/http"
	"os"

	"canteen/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth      *app.AuthService
	foods     *app.FoodService
	intake    *app.IntakeService
	favorites *app.FavoriteService
	oidc      *OIDCConfig
	webDir    string
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, foods *app.FoodService, intake *app.IntakeService, favorites *app.FavoriteService, webDir string) *Server {
	return &Server{
		auth:      auth,
		foods:     foods,
		intake:    intake,
		favorites: favorites,
		oidc:      &OIDCConfig{},
		webDir:    webDir,
	}
}

// WithOIDC enables single sign-on through the given provider configuration.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	if cfg != nil {
		s.oidc = cfg
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /auth/register", s.handleRegister)
	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.Handle("GET /auth/profile", s.requireUser(s.handleProfileGet))
	api.Handle("PUT /auth/profile", s.requireUser(s.handleProfilePut))
	api.HandleFunc("GET /auth/config", s.handleConfig)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	api.HandleFunc("POST /goal/estimate", s.handleGoalEstimate)

	api.HandleFunc("GET /food", s.handleFoodList)
	api.HandleFunc("GET /food/{id}", s.handleFoodGet)
	api.Handle("GET /food/admin/all", s.requireAdmin(s.handleFoodAll))
	api.Handle("POST /food", s.requireAdmin(s.handleFoodCreate))
	api.Handle("PUT /food/{id}", s.requireAdmin(s.handleFoodUpdate))
	api.Handle("DELETE /food/{id}", s.requireAdmin(s.handleFoodDelete))

	api.Handle("POST /intake", s.requireUser(s.handleIntakeLog))
	api.Handle("GET /intake/daily", s.requireUser(s.handleIntakeDaily))
	api.Handle("GET /intake/today", s.requireUser(s.handleIntakeToday))
	api.Handle("GET /intake/history", s.requireUser(s.handleIntakeHistory))
	api.Handle("PUT /intake/{id}", s.requireUser(s.handleIntakeUpdate))
	api.Handle("DELETE /intake/{id}", s.requireUser(s.handleIntakeDelete))

	api.Handle("GET /favorites", s.requireUser(s.handleFavoritesList))
	api.Handle("POST /favorites", s.requireUser(s.handleFavoritesAdd))
	api.Handle("DELETE /favorites/{foodId}", s.requireUser(s.handleFavoritesRemove))
	api.Handle("GET /favorites/check/{foodId}", s.requireUser(s.handleFavoritesCheck))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if fi, err := os.Stat(s.webDir); err == nil && fi.IsDir() {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return withNoCache(s.loggingMiddleware(root))
}
