package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

// withGZip compresses response bodies for clients that accept gzip. The
// compressor is only engaged once the handler writes body bytes, so empty
// responses (HEAD, 204) are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") || req.Method == http.MethodHead {
			next.ServeHTTP(w, req)
			return
		}

		gzipRW := &gzipResponseWriter{ResponseWriter: w}
		defer gzipRW.Close()

		next.ServeHTTP(gzipRW, req)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	status      int
	wroteHeader bool
}

// WriteHeader defers the header until the first body write, since whether
// the response is compressed is only known then.
func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader || w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.gzipWriter == nil {
		if len(data) == 0 {
			return 0, nil
		}
		w.startCompression()
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) startCompression() {
	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")

	w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
	w.gzipWriter.Reset(w.ResponseWriter)
	w.flushHeader()
}

func (w *gzipResponseWriter) flushHeader() {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(status)
}

// Close finishes the gzip stream, or sends the pending header of a response
// that never wrote a body.
func (w *gzipResponseWriter) Close() error {
	if w.gzipWriter == nil {
		if w.status != 0 {
			w.flushHeader()
		}
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
	return err
}
