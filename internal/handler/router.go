package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"roomchat/internal/pkg/auth/jwt"
	"roomchat/internal/pkg/logx"
	"roomchat/internal/pkg/resp"
)

// Router builds the HTTP routing table. Register and login are public;
// everything under the authenticated group passes through RequireAuth, which
// resolves the caller before any handler runs.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "RoomChat Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Post("/register", HandleRegister(deps))
	r.Post("/token", HandleLogin(deps))

	r.Group(func(protected chi.Router) {
		protected.Use(jwt.RequireAuth(deps.Config.JWTSecret, deps.Users.GetByUsername))

		protected.Get("/users/me", HandleGetMe(deps))

		protected.Route("/rooms", func(rooms chi.Router) {
			rooms.Post("/", HandleCreateRoom(deps))
			rooms.Get("/", HandleListRooms(deps))

			rooms.Post("/{roomID}/messages", HandlePostMessage(deps))
			rooms.Get("/{roomID}/messages", HandleListMessages(deps))
		})
	})

	return r
}
