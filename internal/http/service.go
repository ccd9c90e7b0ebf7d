package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/gen"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/metric"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/swagger"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	productSvc  service.ProductService
	categorySvc service.CategoryService
	health      HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
	categorySvc service.CategoryService,
	health HealthChecker,
) *Service {
	return &Service{
		cfg:         cfg,
		logger:      log.With(slog.String("service", "http")),
		metrics:     metric.New(),
		productSvc:  productSvc,
		categorySvc: categorySvc,
		health:      health,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	handler := s.newHandler()
	strictHandlers := gen.NewStrictHandlerWithOptions(
		handler,
		[]gen.StrictMiddlewareFunc{},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)

	gen.HandlerWithOptions(strictHandlers, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.handleParamError,
		Middlewares:      []gen.MiddlewareFunc{middleware.TrackStatus()},
	})

	r.Handle(middleware.MetricsPath, s.metrics.Handler())
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	err = apperr.InvalidBodyErr.WrapParent(err)
	res := apierr.New(err)

	s.logger.WarnContext(r.Context(), "http request error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding error request",
			slog.Any("error", err))
	}
}

func (s *Service) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.InvalidParameterErr
	var formatErr *gen.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		appErr = appErr.WithMsg(fmt.Sprintf("invalid format for parameter %s", formatErr.ParamName))
	}
	s.handleResponseError(w, r, appErr.WrapParent(err))
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	if middleware.HeaderWritten(w) {
		// Too late for an error body, the status line is already out.
		s.logger.ErrorContext(r.Context(), "error writing response", slog.Any("error", err))
		return
	}

	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

var _ gen.StrictServerInterface = (*handler)(nil)

type handler struct {
	*productHandler
	*categoryHandler
	*healthHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler:  newProductHandler(s.productSvc),
		categoryHandler: newCategoryHandler(s.categorySvc),
		healthHandler:   &healthHandler{logger: s.logger, health: s.health},
	}
}
