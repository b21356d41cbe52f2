package sitemap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/nDmitry/mediafeeds/internal/entity"
	"github.com/nDmitry/mediafeeds/internal/settings"
)

// CrossDomainRelPath is the location of the policy file relative to the application directory
const CrossDomainRelPath = "public/crossdomain.xml"

// CrossDomain serves the legacy crossdomain.xml policy file used by the embedded
// video widget. The file handler is built once and dropped whenever the widget
// setting is found disabled.
type CrossDomain struct {
	settings settings.Store
	path     string

	// open builds the file handler, replaced in tests
	open func(path string) http.Handler

	mu     sync.Mutex
	handle atomic.Pointer[fileHandle]
}

type fileHandle struct {
	http.Handler
}

// NewCrossDomain creates a CrossDomain serving the policy file under baseDir
func NewCrossDomain(store settings.Store, baseDir string) *CrossDomain {
	return &CrossDomain{
		settings: store,
		path:     filepath.Join(baseDir, CrossDomainRelPath),
		open:     serveFile,
	}
}

// Handler returns the handler serving the policy file, or ErrNotFound while the widget is disabled
func (c *CrossDomain) Handler(ctx context.Context) (http.Handler, error) {
	enabled, err := settings.Enabled(ctx, c.settings, entity.SettingEnableCooliris)

	if err != nil {
		return nil, err
	}

	if !enabled {
		c.handle.Store(nil)
		return nil, fmt.Errorf("%w: %s is disabled", ErrNotFound, entity.SettingEnableCooliris)
	}

	return c.loadOrCreate(), nil
}

func (c *CrossDomain) loadOrCreate() *fileHandle {
	if h := c.handle.Load(); h != nil {
		return h
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if h := c.handle.Load(); h != nil {
		return h
	}

	h := &fileHandle{Handler: c.open(c.path)}
	c.handle.Store(h)

	return h
}

func serveFile(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	})
}
