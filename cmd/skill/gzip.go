package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/alexa-skill/internal/logger"
)

// compressReader распаковывает тело запроса.
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

func (c *compressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// decompressMiddleware распаковывает тела запросов с Content-Encoding: gzip.
// Сжатие ответов делает middleware.Compress из chi.
func decompressMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentEncoding := r.Header.Get("Content-Encoding")
		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("cannot read gzip body", zap.Error(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer func() {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("cannot close gzip reader", zap.Error(err))
				}
			}()
		}

		h.ServeHTTP(w, r)
	}
}

// dropRefusedEncodings убирает из Accept-Encoding кодировки с q=0,
// иначе middleware.Compress примет "gzip;q=0" за согласие на gzip.
func dropRefusedEncodings(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if header := r.Header.Get("Accept-Encoding"); header != "" {
			accepted := acceptedEncodings(header)
			if len(accepted) == 0 {
				r.Header.Del("Accept-Encoding")
			} else {
				r.Header.Set("Accept-Encoding", strings.Join(accepted, ", "))
			}
		}

		next.ServeHTTP(w, r)
	})
}

func acceptedEncodings(header string) []string {
	var accepted []string
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, params, _ := strings.Cut(part, ";")
		if refused(params) {
			continue
		}
		accepted = append(accepted, strings.TrimSpace(name))
	}
	return accepted
}

func refused(params string) bool {
	for _, p := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil && q == 0
	}
	return false
}
