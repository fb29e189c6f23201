package services

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/middleware"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reads the same `binding` tags gin uses and reports fields by
// their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// BaseService provides common functionality for all services
type BaseService struct {
	Activity portssvc.ActivitySvcFacade
	Clock    func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Today returns local midnight of the current day.
func (s *BaseService) Today() time.Time {
	return domain.DateOf(s.Now())
}

// RecordActivity appends an audit entry when an activity recorder is configured.
func (s *BaseService) RecordActivity(ctx context.Context, activityType domain.ActivityType, description, entityID, userID string) {
	if s.Activity == nil {
		s.LogDebug(ctx, "No activity recorder configured, skipping audit entry",
			slog.String("activity_type", string(activityType)))
		return
	}
	s.Activity.Record(ctx, activityType, description, entityID, userID)
}

// LogFailure logs err unless it is an expected client-side outcome.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogDebug(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// validateStruct runs struct tag validation for requests that did not pass
// through gin binding, reporting the first failing field.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewInvalidInput(fe.Field(), "failed %q validation", fe.Tag())
	}
	return apperrors.NewInvalidInput("request", "%v", err)
}
