package http

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/klauspost/compress/gzip"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func hasToken(h http.Header, key string) bool {
	return strings.Contains(h.Get(key), "gzip")
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Responses without a body stay uncompressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body != nil && hasToken(req.Header, "Content-Encoding") {
			if err := inflateBody(req); err != nil {
				logger.FromRequest(req).Err(err).Msg("invalid gzip request body")
				utils.WriteMessage(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if !hasToken(req.Header, "Accept-Encoding") {
			next.ServeHTTP(w, req)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.Close()

		next.ServeHTTP(gw, req)
	})
}

// inflateBody swaps req.Body for a pooled reader; the reader returns to the
// pool when the handler closes the body.
func inflateBody(req *http.Request) error {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	req.Body = &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			zr.Close()
			gzipReaders.Put(zr)
		},
	}
	req.Header.Del("Content-Encoding")
	return nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter takes a pooled gzip.Writer on the first Write.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	status      int
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.gzipWriter == nil {
		if !w.wroteHeader {
			w.WriteHeader(http.StatusOK)
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)

		w.gzipWriter = gzipWriters.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}
	return w.gzipWriter.Write(data)
}

// Close flushes the compressed stream, or the bare status when nothing was
// written.
func (w *gzipResponseWriter) Close() error {
	if w.gzipWriter == nil {
		if w.wroteHeader {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriters.Put(w.gzipWriter)
	w.gzipWriter = nil
	return err
}
