package cli

import (
	"io"
	"os"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/notify"
	"github.com/xolan/timers/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is nil when they could not be opened; ServicesErr says why.
	Services    *service.Services
	ServicesErr error

	Config   config.Config
	Notifier notify.Notifier
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	services, err := service.NewServices()

	cfg := config.DefaultConfig()
	if services != nil {
		cfg = services.Config.Get()
	}

	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		Services:    services,
		ServicesErr: err,
		Config:      cfg,
		Notifier:    notify.New(os.Stdout, cfg.Notifications),
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services, cfg config.Config) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   cfg,
		Notifier: notify.New(os.Stdout, cfg.Notifications),
	}
}

// Global deps instance for CLI, created on first use so that help and
// completion output never touch storage.
var deps *Deps

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps drops the global deps; the next GetDeps creates default ones.
func ResetDeps() {
	if deps != nil && deps.Services != nil {
		_ = deps.Services.Close()
	}
	deps = nil
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	if deps == nil {
		deps = DefaultDeps()
	}
	return deps
}
