package signup

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/registration"
)

// Service serves the registration page and its submit and validate
// endpoints. It stores nothing; every request is validated on its own.
type Service struct {
	log          *slog.Logger
	views        *Views
	errorHandler handler.ErrorHandler
	bindJSON     handler.Bind
	metrics      *Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithViews replaces some or all of the built-in views.
func WithViews(v *Views) Option {
	return func(s *Service) { s.views = v.withDefaults() }
}

// WithErrorHandler replaces the error handler built from the views.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) { s.errorHandler = h }
}

// WithMetrics records validation outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		log:      log.With(logger.Component("signup")),
		views:    DefaultViews(),
		bindJSON: binder.JSON(binder.WithSchema(registration.ShapeSchema)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:   s.views.ErrorPage,
			ErrorToast:  s.views.ErrorToast,
			ToastTarget: "#" + ToastID,
		})
	}
	return s
}

// Handle returns the module router:
//
//	GET  /          registration page
//	POST /          form submission (urlencoded, multipart or datastar)
//	POST /validate  JSON validation API
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[registration.Record](binder.Form()),
		handler.WithInitial(registration.NewRecord),
		handler.WithErrorHandler[registration.Record](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[registration.Record](s.bindJSON),
		handler.WithErrorHandler[registration.Record](s.errorHandler),
	))

	r.NotFound(s.fail(handler.ErrNotFound))
	r.MethodNotAllowed(s.fail(handler.ErrMethodNotAllowed))

	return r
}

func (s *Service) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), err)
	}
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{
		Form: FormParams{Action: ctx.Request().URL.Path, Form: NewForm()},
	}))
}

func (s *Service) submit(ctx handler.Context, rec registration.Record) handler.Response {
	form := NewForm()
	form.Values = rec
	res := form.Submit()
	s.metrics.observe("submit", res)

	action := ctx.Request().URL.Path
	if !res.Valid() {
		s.log.DebugContext(ctx, "registration rejected",
			logger.Handler("submit"),
			logger.Fields(res.Errors()),
		)
		fp := FormParams{Action: action, Form: form}
		return handler.TemplPartial(
			s.views.Form(fp),
			s.views.Page(PageParams{Form: fp}),
			handler.WithTarget("#"+FormID),
			handler.WithStatus(http.StatusUnprocessableEntity),
		)
	}

	s.log.InfoContext(ctx, "registration accepted",
		logger.Handler("submit"),
		logger.Event("registration_valid"),
	)
	sp := SuccessParams{Name: rec.Name}
	return handler.TemplPartial(
		s.views.Success(sp),
		s.views.Page(PageParams{Form: FormParams{Action: action}, Success: &sp}),
		handler.WithTarget("#"+FormID),
	)
}

// ValidateResponse is the data of a successful POST /validate.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (s *Service) validate(ctx handler.Context, rec registration.Record) handler.Response {
	res := registration.Validate(rec)
	s.metrics.observe("validate", res)
	if !res.Valid() {
		s.log.DebugContext(ctx, "registration rejected",
			logger.Handler("validate"),
			logger.Fields(res.Errors()),
		)
		return handler.JSONError(res.Err())
	}

	s.log.InfoContext(ctx, "registration accepted",
		logger.Handler("validate"),
		logger.Event("registration_valid"),
	)
	return handler.JSON(ValidateResponse{Valid: true})
}
