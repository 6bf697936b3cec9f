package models

import (
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"github.com/harune/mediasqueeze-go/types"
)

// ResultPanelTTL bounds how long a compression result stays visible without
// any user action. Results are display state, not session state: they are
// gone after a reset and never feed later requests.
const ResultPanelTTL = time.Hour

var resultPanels = ttlworker.NewCache[string, *types.CompressResult](ResultPanelTTL)

// SetResultPanel records the kind's latest compression result for the UI.
// Overlapping compressions for one kind are last-response-wins.
func SetResultPanel(kind types.MediaKind, result *types.CompressResult) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	resultPanels.Set(string(kind), result)
}

// GetResultPanel returns the kind's visible compression result, if any.
func GetResultPanel(kind types.MediaKind) (*types.CompressResult, bool) {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	r := resultPanels.Get(string(kind))
	if r == nil {
		return nil, false
	}
	copied := *r
	return &copied, true
}

// HideResultPanel clears the kind's result panel. Called when a fresh upload
// lands so a stale result is never shown next to a new file.
func HideResultPanel(kind types.MediaKind) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	resultPanels.Delete(string(kind))
}

// clearResultPanelsLocked removes every panel. Caller holds sessionMu.
func clearResultPanelsLocked() {
	for _, kind := range types.AllMediaKinds {
		resultPanels.Delete(string(kind))
	}
}
