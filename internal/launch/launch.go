// Package launch hands URIs (tel:, mailto:) to the host's default handler.
package launch

import (
	"io"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// OS opens URIs with the platform opener. Open returns as soon as the opener has
// been started; failures are only logged.
type OS struct {
	// GOOS overrides runtime.GOOS (tests).
	GOOS string
	// Start overrides process start (tests). It must not block on the child.
	Start func(name string, args ...string) error
}

func (o OS) Open(uri string) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return
	}
	name, args := Command(o.goos(), uri)
	start := o.Start
	if start == nil {
		start = startDetached
	}
	if err := start(name, args...); err != nil {
		log.Printf("launch: %s %q: %v", name, uri, err)
	}
}

func (o OS) goos() string {
	if o.GOOS != "" {
		return o.GOOS
	}
	return runtime.GOOS
}

// Command returns the opener invocation for goos.
func Command(goos, uri string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	// Prevent any output from flashing in the terminal.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("launch: %s exited: %v", name, err)
		}
	}()
	return nil
}

// Recorder keeps issued URIs instead of opening them (dry runs, tests).
type Recorder struct {
	mu   sync.Mutex
	uris []string
}

func (r *Recorder) Open(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, uri)
}

func (r *Recorder) URIs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.uris))
	copy(out, r.uris)
	return out
}
