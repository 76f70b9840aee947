package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// sugar — логгер пакета; устанавливается из main через SetLogger.
var sugar *zap.SugaredLogger

// SetLogger передаёт логгер в middleware.
func SetLogger(l *zap.SugaredLogger) {
	sugar = l
}

type responseData struct {
	status int
	size   int
}

// loggingResponseWriter перехватывает статус и размер ответа.
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// WithLogging логирует метод, путь, статус, размер и длительность запроса.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(lw, r)

		if sugar != nil {
			sugar.Infow("request",
				"method", r.Method,
				"uri", r.RequestURI,
				"status", rd.status,
				"size", rd.size,
				"duration", time.Since(start),
			)
		}
	})
}
