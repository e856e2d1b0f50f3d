// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so keys stay consistent across the module.
//
// New picks a text or JSON handler and wraps it in a ContextHandler, which
// runs registered ContextExtractor callbacks on every record. That is how
// request-scoped values such as a request id end up in the output without
// being passed around explicitly.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "authcode-example"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id := middleware.GetReqID(ctx)
//			return logger.RequestID(id), id != ""
//		}),
//	)
//	log.ErrorContext(ctx, "profile fetch failed",
//		logger.Component("authcode"),
//		logger.Provider("facebook"),
//		logger.Error(err),
//	)
//
// Error, UserID, RequestID and Step return an empty slog.Attr for nil or
// empty input, which slog drops, so callers need no nil checks.
package logger
