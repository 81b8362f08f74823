package server

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"starwars-server/confs"
	"starwars-server/db"
	"starwars-server/handlers"
	httpHandler "starwars-server/handlers/http"
	"starwars-server/logger"
	"starwars-server/repositories"
	"starwars-server/usecases"
	"starwars-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Server struct {
	app     *gin.Engine
	db      db.Database
	cfg     *confs.Config
	root    zerolog.Logger
	log     zerolog.Logger
	events  *ws.Manager
	limiter *RateLimiter
	http    *http.Server
}

func NewServer(cfg *confs.Config, database db.Database, log zerolog.Logger) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	s := &Server{
		app:     gin.New(),
		db:      database,
		cfg:     cfg,
		root:    log,
		log:     logger.Component(log, "server"),
		events:  ws.NewManager(log),
		limiter: NewRateLimiter(cfg.RateLimit, log),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.app
}

func (s *Server) setupMiddleware() {
	s.app.Use(gin.Recovery())
	s.app.Use(RequestID())
	s.app.Use(AccessLog(s.root))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.CORS.AllowedOrigins) == 0 || s.cfg.CORS.AllowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORS.AllowedOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	s.app.Use(cors.New(config))

	s.app.Use(s.limiter.Middleware())
}

func (s *Server) setupRoutes() {
	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	characterRepo := repositories.NewCharacterPgRepository(s.db)
	planetRepo := repositories.NewPlanetPgRepository(s.db)
	filmRepo := repositories.NewFilmPgRepository(s.db)
	favCharacterRepo := repositories.NewFavoriteCharacterPgRepository(s.db)
	favPlanetRepo := repositories.NewFavoritePlanetPgRepository(s.db)

	// Initialize use cases
	catalog := usecases.NewCatalogUseCase(userRepo, characterRepo, planetRepo, filmRepo, favCharacterRepo, favPlanetRepo, s.events, s.root)
	favorites := usecases.NewFavoritesUseCase(userRepo, characterRepo, planetRepo, favCharacterRepo, favPlanetRepo, s.events, s.root)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(catalog, s.root)
	characterHandler := httpHandler.NewCharacterHandler(catalog, s.root)
	planetHandler := httpHandler.NewPlanetHandler(catalog, s.root)
	filmHandler := httpHandler.NewFilmHandler(catalog, s.root)
	favoritesHandler := httpHandler.NewFavoritesHandler(favorites, s.root)
	wsHandler := handlers.NewWSHandler(s.events, s.root)

	s.app.GET("/", s.sitemap)
	s.app.GET("/health", s.health)

	// User routes
	s.app.GET("/users", userHandler.GetAllUsers)
	s.app.POST("/user", userHandler.CreateUser)
	s.app.DELETE("/user/:user_id", userHandler.DeleteUser)

	// Character routes
	s.app.GET("/characters", characterHandler.GetAllCharacters)
	s.app.POST("/character", characterHandler.CreateCharacter)
	s.app.GET("/character/:id", characterHandler.GetCharacter)
	s.app.DELETE("/character/:id", characterHandler.DeleteCharacter)

	// Planet routes
	s.app.GET("/planets", planetHandler.GetAllPlanets)
	s.app.POST("/planet", planetHandler.CreatePlanet)
	s.app.GET("/planet/:id", planetHandler.GetPlanet)
	s.app.DELETE("/planet/:id", planetHandler.DeletePlanet)

	// Film routes
	s.app.GET("/films", filmHandler.GetAllFilms)
	s.app.POST("/film", filmHandler.CreateFilm)
	s.app.DELETE("/film/:id", filmHandler.DeleteFilm)

	// Favorites routes
	favs := s.app.Group("/user/:user_id/favorites")
	{
		favs.GET("/character", favoritesHandler.GetFavoriteCharacters)
		favs.POST("/character/:character_id", favoritesHandler.AddFavoriteCharacter)
		favs.DELETE("/character/:character_id", favoritesHandler.RemoveFavoriteCharacter)
		favs.GET("/planet", favoritesHandler.GetFavoritePlanets)
		favs.POST("/planet/:planet_id", favoritesHandler.AddFavoritePlanet)
		favs.DELETE("/planet/:planet_id", favoritesHandler.RemoveFavoritePlanet)
	}

	// Catalog change feed
	s.app.GET("/ws/events", wsHandler.HandleEvents)
	s.app.GET("/ws/subscribers", wsHandler.GetSubscribers)
}

// sitemap lists every registered endpoint.
func (s *Server) sitemap(c *gin.Context) {
	routes := s.app.Routes()
	endpoints := make([]gin.H, 0, len(routes))
	for _, r := range routes {
		endpoints = append(endpoints, gin.H{"method": r.Method, "path": r.Path})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		pi, pj := endpoints[i]["path"].(string), endpoints[j]["path"].(string)
		if pi != pj {
			return pi < pj
		}
		return endpoints[i]["method"].(string) < endpoints[j]["method"].(string)
	})
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints, "count": len(endpoints)})
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "OK", "connected", http.StatusOK
	if err := s.db.Ping(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Database ping failed")
		status, dbStatus, code = "DEGRADED", "disconnected", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLimiter(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("Server listening")
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) cleanupLimiter(ctx context.Context) {
	if !s.cfg.RateLimit.Enabled {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.limiter.Cleanup(now)
		}
	}
}
