package cli

import (
	"sync"

	"go.uber.org/zap"
)

// Navigator tracks the active client-side route. The console has no view
// layer, so navigation records the destination and logs it; guard and
// session redirects land here.
type Navigator struct {
	logger *zap.Logger

	mu      sync.Mutex
	current string
}

// NewNavigator creates a navigator starting at no route.
func NewNavigator(logger *zap.Logger) *Navigator {
	return &Navigator{logger: logger}
}

// NavigateTo implements session.Navigator.
func (n *Navigator) NavigateTo(route string) {
	n.mu.Lock()
	n.current = route
	n.mu.Unlock()
	n.logger.Info("navigate", zap.String("route", route))
}

// Current returns the last route navigated to.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
