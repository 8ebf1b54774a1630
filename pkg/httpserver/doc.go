// Package httpserver runs the signup HTTP handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives or the
// listener fails, then drains in-flight requests within the shutdown timeout.
// Config carries the HTTP_* environment variables and NewFromConfig turns it
// into a Server:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Start failures are joined with ErrStart; drain failures with ErrShutdown.
package httpserver
