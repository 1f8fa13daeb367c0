package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/61040-fa22/rec5/internal/config"
	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/http/handler"
	"github.com/61040-fa22/rec5/internal/http/handler/middleware"
	"github.com/61040-fa22/rec5/internal/http/payload"
	"github.com/61040-fa22/rec5/internal/http/server"
	"github.com/61040-fa22/rec5/internal/http/web"
	"github.com/61040-fa22/rec5/internal/repository"
	"github.com/61040-fa22/rec5/internal/session"
	"github.com/61040-fa22/rec5/pkg/jwt"
	"github.com/61040-fa22/rec5/pkg/log"

	"go.uber.org/zap/zapcore"
)

const janitorInterval = 10 * time.Minute

func Start() error {
	bootLogger := log.NewZapLogger("rec5", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		bootLogger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("rec5", config.LogLevel)
	defer logger.Sync()

	// user store
	store := repository.NewUserStore()

	// sessions
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))
	sessions := session.NewManager(
		logger,
		session.NewMemoryStore(),
		jwtService,
		config.SessionCookie,
		config.SessionTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sessions.RunJanitor(ctx, janitorInterval)

	// accounts
	accounts := core.NewAccounts(logger, store)

	templates, err := web.Templates()
	if err != nil {
		logger.Errorw("failed to load templates", "error", err)
		return err
	}

	// handlers
	accountHlr := handler.NewAccountHandler(
		logger,
		payload.Decoder{},
		accounts,
		sessions)
	pageHlr := handler.NewPageHandler(logger, templates, "Users and sessions")

	sessionMw := middleware.NewSessionMiddleware(logger, sessions, accounts)

	// register routes
	mux := handler.Routes(accountHlr, pageHlr, web.Static("/static/"), sessionMw)

	// middleware
	hdlr := sessionMw.Sessions(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
