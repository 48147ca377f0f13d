// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept it.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledReadCloser{Reader: zr, release: func() {
				zr.Close()
				gzipReaderPool.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		defer func() {
			// bodiless responses (204) must not get a gzip trailer
			if gw.wrote {
				zw.Close()
			}
			gzipWriterPool.Put(zw)
		}()

		next.ServeHTTP(gw, r)
	})
}

type pooledReadCloser struct {
	io.Reader
	release func()
	once    sync.Once
}

func (p *pooledReadCloser) Close() error {
	if p.release != nil {
		p.once.Do(p.release)
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	wrote       bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Del("Content-Length")
		w.Header().Set("Content-Encoding", "gzip")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.wrote = true
	return w.zw.Write(data)
}
