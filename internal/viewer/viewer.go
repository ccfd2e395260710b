// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows a generated HTML page in a web browser.
//
// The page is served from a local HTTP server for as long as the
// viewer is open. If asked to, the viewer watches the files the page
// is generated from and regenerates the page when they change, and
// the page reloads itself.
package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sync/errgroup"
)

// A Page writes an HTML page to w. If reload is non-empty, the page
// should poll that URL and reload when its contents change.
type Page func(w io.Writer, reload string) error

// Options control Show.
type Options struct {
	// Addr is the address to serve on. The default is
	// "127.0.0.1:0", a free port on the loopback interface.
	Addr string

	// Browser is the command used to open the page, with the
	// page URL appended as its last argument. If empty, Show
	// uses $BROWSER, or else the platform's URL opener.
	Browser string

	// Watch lists files to watch. When one changes, the page is
	// regenerated.
	Watch []string

	// Stdin, if non-nil, closes the viewer when a line is read
	// from it. If nil, os.Stdin is used if it is a terminal.
	Stdin io.Reader

	// Logf logs progress. The default is log.Printf.
	Logf func(format string, args ...interface{})
}

// errClosed is returned inside Show when the user closes the viewer.
var errClosed = errors.New("viewer closed")

// Show serves page and opens it in a browser. It blocks until ctx is
// done or the user presses Enter, and returns an error if the page
// cannot be generated, served, or opened.
func Show(ctx context.Context, page Page, opts Options) error {
	if opts.Addr == "" {
		opts.Addr = "127.0.0.1:0"
	}
	if opts.Logf == nil {
		opts.Logf = log.Printf
	}
	if opts.Stdin == nil && terminal.IsTerminal(int(os.Stdin.Fd())) {
		opts.Stdin = os.Stdin
	}

	live := len(opts.Watch) > 0
	s := &server{page: page, logf: opts.Logf}
	if err := s.rebuild(live); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}
	url := "http://" + ln.Addr().String() + "/"
	srv := &http.Server{Handler: s}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})
	if live {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			ln.Close()
			return err
		}
		g.Go(func() error {
			defer w.Close()
			return s.watch(ctx, w, opts.Watch)
		})
	}

	g.Go(func() error {
		if err := openURL(opts.Browser, url); err != nil {
			return fmt.Errorf("opening viewer: %w", err)
		}
		if opts.Stdin == nil {
			opts.Logf("serving chart at %s; interrupt to exit", url)
			<-ctx.Done()
			return nil
		}
		opts.Logf("serving chart at %s; press Enter to exit", url)
		enter := make(chan struct{})
		go func() {
			// This goroutine outlives Show if ctx finishes
			// first; it only holds Stdin.
			var line [1]byte
			for {
				n, err := opts.Stdin.Read(line[:])
				if err != nil || (n == 1 && line[0] == '\n') {
					close(enter)
					return
				}
			}
		}()
		select {
		case <-enter:
			return errClosed
		case <-ctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && err != errClosed {
		return err
	}
	return nil
}

// server serves the generated page at / and its version at /version.
type server struct {
	page Page
	logf func(format string, args ...interface{})

	mu      sync.Mutex
	html    []byte
	version int
}

func (s *server) rebuild(live bool) error {
	reload := ""
	if live {
		reload = "/version"
	}
	var buf bytes.Buffer
	if err := s.page(&buf, reload); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = buf.Bytes()
	s.version++
	return nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	html, version := s.html, s.version
	s.mu.Unlock()

	switch r.URL.Path {
	case "/":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	case "/version":
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Cache-Control", "no-store")
		io.WriteString(w, strconv.Itoa(version))
	default:
		http.NotFound(w, r)
	}
}

// watch regenerates the page whenever one of files is written or
// replaced. It watches the containing directories, since editors
// often replace a file rather than write it in place.
func (s *server) watch(ctx context.Context, w *fsnotify.Watcher, files []string) error {
	want := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		want[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, err := filepath.Abs(ev.Name); err != nil || !want[abs] {
				continue
			}
			if err := s.rebuild(true); err != nil {
				// Keep serving the last good page.
				s.logf("%s changed: %v", ev.Name, err)
				continue
			}
			s.logf("%s changed; reloaded chart", ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logf("watching: %v", err)
		}
	}
}

// launch starts a command without waiting for it to exit.
var launch = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

func openURL(browser, url string) error {
	args, err := browserCommand(browser)
	if err != nil {
		return err
	}
	return launch(args[0], append(args[1:], url)...)
}

// browserCommand returns the command line that opens a URL.
func browserCommand(browser string) ([]string, error) {
	if browser == "" {
		browser = os.Getenv("BROWSER")
	}
	if browser != "" {
		args, err := shellquote.Split(browser)
		if err != nil {
			return nil, fmt.Errorf("browser command %q: %w", browser, err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("empty browser command")
		}
		return args, nil
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}, nil
	}
	return []string{"xdg-open"}, nil
}
