package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"newel/internal/logutil"
)

// Serve runs the HTTP server until the context is cancelled, then shuts
// down gracefully. Request contexts inherit ctx so handlers see the
// process logger.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	log := logutil.GetOrDefault(ctx).With().Str("server.addr", addr).Logger()

	errc := make(chan error, 1)
	go func() {
		log.Info().Msg("starting HTTP server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info().Msg("shutdown completed")
		return nil
	}
}
