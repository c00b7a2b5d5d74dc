// Command readmode is a terminal web browser with a reader mode.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/readmode/internal/application/usecase"
	"github.com/tesso57/readmode/internal/infrastructure/config"
	"github.com/tesso57/readmode/internal/infrastructure/feed"
	"github.com/tesso57/readmode/internal/infrastructure/page"
	"github.com/tesso57/readmode/internal/infrastructure/store"
	"github.com/tesso57/readmode/internal/presentation/tui"
)

// CLI is the command line of readmode.
type CLI struct {
	Config   string `help:"Config file path" type:"path"`
	LogFile  string `help:"Log file path (defaults next to the data file)" type:"path"`
	LogLevel string `help:"Log level" default:"info" enum:"debug,info,warn,error"`

	Browse      BrowseCmd      `cmd:"" default:"withargs" help:"Run the browser"`
	Serve       ServeCmd       `cmd:"" help:"Serve numbered test pages"`
	History     HistoryCmd     `cmd:"" help:"Print browsing history"`
	ReadingList ReadingListCmd `cmd:"" name:"reading-list" help:"Manage the reading list"`
}

// BrowseCmd runs the TUI.
type BrowseCmd struct {
	URL string `arg:"" optional:"" help:"Page to open on start"`
}

// ServeCmd runs the numbered page server.
type ServeCmd struct {
	Addr string `help:"Listen address" default:"127.0.0.1:8080"`
}

// HistoryCmd prints or clears normal-mode history.
type HistoryCmd struct {
	Clear bool `help:"Delete all history"`
}

// ReadingListCmd groups reading list commands.
type ReadingListCmd struct {
	List   ReadingListListCmd   `cmd:"" default:"1" help:"List saved articles"`
	Import ReadingListImportCmd `cmd:"" help:"Add the articles of an RSS or Atom feed"`
}

// ReadingListListCmd prints the reading list.
type ReadingListListCmd struct {
	Unread bool `help:"Only show unread articles"`
}

// ReadingListImportCmd imports a feed into the reading list.
type ReadingListImportCmd struct {
	FeedURL string `arg:"" name:"feed-url" help:"Feed to import"`
}

type session struct {
	config *config.Store
	db     *store.DB
	out    io.Writer
	close  func()
}

func (r *session) Close() {
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			slog.Warn("close database", "err", err)
		}
	}
	if r.close != nil {
		r.close()
	}
}

func (c *CLI) open(logToStderr bool) (*session, error) {
	cfgStore, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	rt := &session{config: cfgStore, out: os.Stdout}
	logPath := c.LogFile
	if logPath == "" && !logToStderr {
		logPath = filepath.Join(filepath.Dir(cfgStore.Settings.DataFile), "readmode.log")
	}
	closeLog, err := setupLogging(logPath, c.LogLevel)
	if err != nil {
		return nil, err
	}
	rt.close = closeLog

	db, err := store.Open(cfgStore.Settings.DataFile)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.db = db
	return rt, nil
}

// setupLogging installs the default slog logger. An empty path logs to stderr.
func setupLogging(path, level string) (func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return closeFn, nil
}

// Run starts the TUI, optionally opening a URL first.
func (b *BrowseCmd) Run(cli *CLI) error {
	rt, err := cli.open(false)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg := rt.config.Settings
	if b.URL != "" {
		url, err := usecase.NormalizeURL(b.URL)
		if err != nil {
			return err
		}
		cfg.HomePage = url
	}

	timeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	browsingSvc := usecase.NewBrowsingService(page.NewFetcher(timeout), rt.db.History(), time.Now, nil)
	readingListSvc := usecase.NewReadingListService(rt.db.ReadingList(), time.Now)
	m := tui.NewModelWithReaderSaver(cfg, browsingSvc, readingListSvc, rt.config.SetReader)

	slog.Info("starting browser", "config", rt.config.Path(), "data", cfg.DataFile)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Run serves the numbered test pages until interrupted.
func (s *ServeCmd) Run(cli *CLI) error {
	closeLog, err := setupLogging(cli.LogFile, cli.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("serving %s\n", page.NumberedPageURL("http://"+s.Addr, 1))
	return page.Serve(ctx, s.Addr)
}

// Run prints or clears the normal-mode history.
func (h *HistoryCmd) Run(cli *CLI) error {
	rt, err := cli.open(true)
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := usecase.NewBrowsingService(nil, rt.db.History(), time.Now, nil)
	if h.Clear {
		if err := svc.ClearHistory(); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(rt.out, "history cleared")
		return nil
	}

	entries, err := svc.History()
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", e.LastVisited.Local().Format("2006-01-02 15:04"), e.VisitCount, e.Title, e.URL)
	}
	return w.Flush()
}

// Run prints the reading list.
func (l *ReadingListListCmd) Run(cli *CLI) error {
	rt, err := cli.open(true)
	if err != nil {
		return err
	}
	defer rt.Close()

	items, err := usecase.NewReadingListService(rt.db.ReadingList(), time.Now).List()
	if err != nil {
		return fmt.Errorf("list reading list: %w", err)
	}
	w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
	for _, item := range items {
		if l.Unread && !item.Unread {
			continue
		}
		mark := " "
		if item.Unread {
			mark = "•"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", mark, item.Title, item.URL)
	}
	return w.Flush()
}

// Run adds the entries of a feed to the reading list.
func (i *ReadingListImportCmd) Run(cli *CLI) error {
	rt, err := cli.open(true)
	if err != nil {
		return err
	}
	defer rt.Close()

	timeout := time.Duration(rt.config.Settings.FetchTimeoutSeconds) * time.Second
	items, err := feed.Articles(context.Background(), i.FeedURL, timeout)
	if err != nil {
		return err
	}
	added, err := usecase.NewReadingListService(rt.db.ReadingList(), time.Now).Import(items)
	if err != nil {
		return fmt.Errorf("import %s: %w", i.FeedURL, err)
	}
	slog.Info("reading list imported", "feed", i.FeedURL, "added", added)
	fmt.Fprintf(rt.out, "added %d of %d articles\n", added, len(items))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("readmode"),
		kong.Description("A terminal web browser with a reader mode."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
