package usecase_test

import (
	"context"
	"time"

	"github.com/enesozmus/betterrest/internal/sleep/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockPredictorRepo implements repository.Repository with injectable funcs.
type mockPredictorRepo struct {
	predictFunc func(opt repository.PredictSleepOptions) (time.Duration, error)
	infoFunc    func() (repository.ModelInfo, error)
}

func (m *mockPredictorRepo) PredictSleep(ctx context.Context, opt repository.PredictSleepOptions) (time.Duration, error) {
	if m.predictFunc != nil {
		return m.predictFunc(opt)
	}
	return 8 * time.Hour, nil
}

func (m *mockPredictorRepo) ModelInfo(ctx context.Context) (repository.ModelInfo, error) {
	if m.infoFunc != nil {
		return m.infoFunc()
	}
	return repository.ModelInfo{Name: "mock", Version: "0"}, nil
}
