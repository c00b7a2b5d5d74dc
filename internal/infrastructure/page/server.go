package page

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// NumberedPagePath serves deterministic pages titled "Page N".
const NumberedPagePath = "/numberedPage.html"

// NumberedPageURL returns the URL of page n on a server rooted at base.
func NumberedPageURL(base string, n int) string {
	return fmt.Sprintf("%s%s?page=%d", base, NumberedPagePath, n)
}

// Handler returns the content server's routes.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(NumberedPagePath, numberedPage)
	return logRequests(mux)
}

func numberedPage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 0 {
		http.Error(w, "page must be a non-negative integer", http.StatusBadRequest)
		return
	}
	title := html.EscapeString(fmt.Sprintf("Page %d", n))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%[1]s</title></head>
<body>
<article>
<h1>%[1]s</h1>
<p>This is numbered page %[2]d.</p>
<p>It exists so navigation can be checked against a known title.</p>
</article>
</body>
</html>
`, title, n)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("content request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// Serve runs the content server on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("content server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("content server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
