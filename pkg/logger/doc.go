// Package logger builds *slog.Logger values from functional options and
// injects request-scoped attributes from context.Context.
//
// New picks a text or JSON slog handler and, when extractors are registered,
// wraps it so every ContextExtractor runs on each record. An attribute the
// caller sets explicitly takes precedence over the extracted one. Attribute helpers in attr.go keep key
// names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "signup"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "signup submitted", logger.Component("signup"))
package logger
