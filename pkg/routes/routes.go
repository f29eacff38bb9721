package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"LearnVerse/internal/auth"
	"LearnVerse/internal/config"
	"LearnVerse/internal/logging"
	"LearnVerse/internal/materials"
	"LearnVerse/internal/notes"
	"LearnVerse/internal/observability"
	"LearnVerse/internal/sessions"
	"LearnVerse/internal/store"
	"LearnVerse/internal/users"
	"LearnVerse/pkg/middleware"
)

var EchoModules = fx.Module("echo",
	fx.Provide(config.Load),
	fx.Provide(logging.NewFromConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(store.NewGateway),
	fx.Provide(NewTokenService),

	fx.Provide(users.NewUserRepository),
	fx.Provide(
		func(r *users.UserRepository) users.Store { return r },
		func(r *users.UserRepository) middleware.RoleResolver { return r },
		func(t *auth.TokenService) middleware.TokenVerifier { return t },
	),
	fx.Provide(fx.Annotate(sessions.NewSessionRepository, fx.As(new(sessions.Store)))),
	fx.Provide(fx.Annotate(materials.NewMaterialRepository, fx.As(new(materials.Store)))),
	fx.Provide(fx.Annotate(notes.NewNoteRepository, fx.As(new(notes.Store)))),

	fx.Provide(auth.NewAuthHandler),
	fx.Provide(users.NewUserHandler),
	fx.Provide(sessions.NewSessionHandler),
	fx.Provide(materials.NewMaterialHandler),
	fx.Provide(notes.NewNoteHandler),

	fx.Provide(NewEchoServer),
	fx.Invoke(InitSentry),
	fx.Invoke(EnsureIndexes),
	fx.Invoke(RegisterRoutes))

func NewTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
}

func NewEchoServer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	middleware.SetupMiddleware(e, cfg, log)

	addr := cfg.Addr()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("server listening", zap.String("addr", addr))
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func InitSentry(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) error {
	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		return err
	}
	if cfg.SentryDSN == "" {
		log.Debug("sentry disabled")
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			flush()
			return nil
		},
	})
	return nil
}

// EnsureIndexes creates the users.user_email unique index once the database
// is reachable. Failure is logged, not fatal.
func EnsureIndexes(lc fx.Lifecycle, repo *users.UserRepository, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repo.EnsureIndexes(ctx); err != nil {
				log.Warn("could not create users index", zap.Error(err))
			}
			return nil
		},
	})
}

type Handlers struct {
	fx.In

	Auth      *auth.AuthHandler
	Users     *users.UserHandler
	Sessions  *sessions.SessionHandler
	Materials *materials.MaterialHandler
	Notes     *notes.NoteHandler
}

type Gates struct {
	fx.In

	Tokens middleware.TokenVerifier
	Roles  middleware.RoleResolver
	Log    *zap.Logger
}

func RegisterRoutes(e *echo.Echo, g Gates, h Handlers) {
	authed := middleware.Authenticate(g.Tokens, g.Log)
	admin := middleware.RequireRole(g.Roles, users.RoleAdmin, g.Log)
	teacher := middleware.RequireRole(g.Roles, users.RoleTeacher, g.Log)
	student := middleware.RequireRole(g.Roles, users.RoleStudent, g.Log)
	self := middleware.RequireSelf("email", g.Log)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Learn Verse server is running!")
	})
	e.GET("/metrics", echo.WrapHandler(observability.Handler()))

	e.POST("/jwt", h.Auth.IssueToken)

	e.GET("/users", h.Users.List, authed, admin)
	e.GET("/users/admin/:email", h.Users.GetRole, authed, admin)
	e.GET("/users/:email", h.Users.GetRole, authed, self)
	e.POST("/users", h.Users.Create)
	e.PATCH("/users/:id", h.Users.UpdateRole, authed, admin)

	e.GET("/sessions", h.Sessions.List, authed, admin)
	e.GET("/sessions/:email", h.Sessions.ListByTutor, authed, teacher)
	e.POST("/sessions", h.Sessions.Create, authed, teacher)
	e.PATCH("/sessions/:id", h.Sessions.Approve, authed, admin)
	e.PATCH("/rejectSession/:id", h.Sessions.Reject, authed, admin)
	e.PATCH("/updateSession/:id", h.Sessions.Update, authed, admin)
	e.PATCH("/sessionStatus/:id", h.Sessions.UpdateStatus, authed, teacher)
	e.DELETE("/sessions/:id", h.Sessions.Delete, authed)

	e.GET("/materials/:email", h.Materials.ListByTutor, authed, teacher)
	e.POST("/materials", h.Materials.Create, authed, teacher)
	e.PATCH("/materials/:id", h.Materials.Update, authed, teacher)
	e.DELETE("/materials/:id", h.Materials.Delete, authed)

	e.GET("/student-notes/:email", h.Notes.ListByOwner, authed, student, self)
	e.POST("/student-notes", h.Notes.Create, authed, student)
	e.PATCH("/student-notes/:id", h.Notes.Update, authed, student)
	e.DELETE("/student-notes/:id", h.Notes.Delete, authed, student)
}
