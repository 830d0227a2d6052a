package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/client"
	"github.com/dmitrijs2005/jobwizard/internal/client/config"
	"github.com/dmitrijs2005/jobwizard/internal/client/services"
	"github.com/dmitrijs2005/jobwizard/internal/cryptox"
	"github.com/dmitrijs2005/jobwizard/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	client   client.Client
	session  *services.DraftSession
	cache    *client.Cache
	Mode     Mode
	reader   *bufio.Reader
	out      io.Writer
	readFile func(string) ([]byte, error)
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewDraftClient(c.ServerEndpointAddr, c.AccessToken, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:   c,
		client:   apiClient,
		session:  services.NewDraftSession(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		readFile: os.ReadFile,
	}

	if c.CacheDir != "" {
		dir, err := filex.EnsureSubdDir(c.CacheDir)
		if err != nil {
			_ = apiClient.Close()
			return nil, err
		}
		cache, err := client.OpenCache(context.Background(), filepath.Join(dir, "cache.db"))
		if err != nil {
			_ = apiClient.Close()
			return nil, fmt.Errorf("open cache: %w", err)
		}
		app.cache = cache
	}

	return app, nil
}

// cacheKey separates cached drafts per server and per token, since the
// token decides which actor's draft the server returns.
func cacheKey(addr, token string) string {
	h, err := cryptox.ContentHash(token)
	if err != nil {
		return addr
	}
	return addr + "#" + h[:16]
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	if a.cache != nil {
		defer a.cache.Close()
	}

	token := a.config.AccessToken
	if token == "" {
		v, err := GetSecret("Paste access token", a.out)
		if err != nil {
			log.Printf("reading token: %v", err)
			return
		}
		token = strings.TrimSpace(string(v))
		a.client.SetAccessToken(token)
	}
	if a.cache != nil {
		a.session.WithCache(a.cache.Snapshots, cacheKey(a.config.ServerEndpointAddr, token))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if err := a.Get(ctx); err != nil {
		a.loadFailed(ctx, err)
	}

	fmt.Fprintln(a.out, "Welcome to jobwizard CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// loadFailed falls back to the cached draft when the server is down.
func (a *App) loadFailed(ctx context.Context, err error) {
	if !errors.Is(err, client.ErrUnavailable) {
		log.Printf("loading draft: %v", err)
		return
	}
	a.setMode(ModeOffline)
	d, savedAt, rerr := a.session.Restore(ctx)
	if rerr != nil {
		log.Printf("loading draft: %v", err)
		return
	}
	fmt.Fprintf(a.out, "Server unreachable, showing the draft cached at %s\n", savedAt.Local().Format(time.DateTime))
	printDraft(a, d)
}

func (a *App) getStatus() string {
	var parts []string
	if d := a.session.Current(); d != nil {
		parts = append(parts, fmt.Sprintf("%s v%d", d.CurrentStep, d.Version))
	}
	if a.Mode != "" {
		parts = append(parts, string(a.Mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.session.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
