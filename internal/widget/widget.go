// Package widget builds the embed configuration for the third-party chat
// widget and models its launcher contract.
package widget

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
)

// Persona parameterizes the embedded agent's display identity.
type Persona struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Embed describes one embeddable chat widget.
type Embed struct {
	baseURL string
	agentID string
	persona Persona
}

// NewEmbed creates an embed descriptor.
func NewEmbed(baseURL, agentID string, persona Persona) *Embed {
	return &Embed{baseURL: baseURL, agentID: agentID, persona: persona}
}

// Persona returns the embed's persona.
func (e *Embed) Persona() Persona {
	return e.persona
}

// URL renders the iframe source: the platform chat path for the agent
// with the persona JSON in the "custom" query parameter.
func (e *Embed) URL() string {
	custom, _ := json.Marshal(e.persona)
	return fmt.Sprintf("%s/embed/chat/%s?custom=%s",
		e.baseURL, e.agentID, url.QueryEscape(string(custom)))
}

// Launcher tracks the widget's lazy lifecycle: it is initialized at most
// once, on first user interaction, and a toggle requested before
// initialization is remembered and replayed once the widget is ready.
type Launcher struct {
	mu          sync.Mutex
	initialized bool
	open        bool
	pendingOpen bool
}

// Init marks the widget as loaded. It returns true only on the first
// call; repeated calls are no-ops. A pending open request is consumed and
// applied.
func (l *Launcher) Init() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return false
	}
	l.initialized = true
	if l.pendingOpen {
		l.pendingOpen = false
		l.open = true
	}
	return true
}

// Toggle flips visibility when the widget is initialized, otherwise it
// records a pending open. It returns the resulting open state.
func (l *Launcher) Toggle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		l.pendingOpen = true
		return false
	}
	l.open = !l.open
	return l.open
}

// Open reports whether the widget is currently visible.
func (l *Launcher) Open() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}
