package middleware

import (
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var compressibleTypes = map[string]struct{}{
	"application/json": {},
	"text/html":        {},
	"text/plain":       {},
}

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// shouldCompress проверяет тип содержимого без параметров
func shouldCompress(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := compressibleTypes[mediaType]
	return ok
}

// gzipRequestBody распаковывает тело запроса и закрывает исходное тело
type gzipRequestBody struct {
	source io.ReadCloser
	*gzip.Reader
}

func (b *gzipRequestBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		return err
	}
	return b.source.Close()
}

// gzipResponseWriter сжимает только успешные ответы подходящего типа,
// еще не закодированные обработчиком. gzip.Writer берется из пула при первом сжатом Write.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices &&
		statusCode != http.StatusNoContent && w.Header().Get("Content-Encoding") == "" &&
		shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if !w.compressing {
		return w.ResponseWriter.Write(data)
	}

	if w.gz == nil {
		w.gz = gzipWriters.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}
	return w.gz.Write(data)
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Close дописывает хвост gzip и возвращает writer в пул
func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	err := w.gz.Close()
	gzipWriters.Put(w.gz)
	w.gz = nil
	return err
}

// Gzip распаковывает тела запросов с Content-Encoding: gzip и сжимает ответы
// клиентам, приславшим Accept-Encoding: gzip.
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				reader, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				body := &gzipRequestBody{source: r.Body, Reader: reader}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close gzip request body", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = body
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
