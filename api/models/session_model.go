package models

import (
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"github.com/harune/mediasqueeze-go/types"
)

// InflightNameTTL is a leak backstop on duplicate-submission tokens. Tokens
// are cleared explicitly when a submission settles; the TTL only matters if
// the process somehow never reaches the terminal path.
const InflightNameTTL = 10 * time.Minute

var (
	sessionMu        sync.RWMutex
	uploadInProgress bool
	uploadedFiles    = map[types.MediaKind]*types.UploadedFile{}
	settings         = map[types.MediaKind]types.CompressorSettings{
		types.MediaKindImage: types.DefaultCompressorSettings(types.MediaKindImage),
		types.MediaKindVideo: types.DefaultCompressorSettings(types.MediaKindVideo),
	}
	// resetEpoch invalidates in-flight submissions: a response that settles
	// after a reset must not repopulate the cleared session.
	resetEpoch    uint64
	inflightNames = ttlworker.NewCache[string, string](InflightNameTTL)
)

// IsUploadInProgress reports whether any upload, for either kind, is
// currently between dispatch and settlement.
func IsUploadInProgress() bool {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return uploadInProgress
}

// TryBeginUpload atomically claims the global upload slot and records the
// duplicate-submission token for the kind. Returns the epoch the submission
// runs under and false when another upload is already in flight.
func TryBeginUpload(kind types.MediaKind, fileName string) (uint64, bool) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if uploadInProgress {
		return 0, false
	}
	uploadInProgress = true
	inflightNames.Set(string(kind), fileName)
	return resetEpoch, true
}

// FinishUpload releases the global upload slot and clears the
// duplicate-submission token. Safe to call from a deferred terminal path.
func FinishUpload(kind types.MediaKind) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	uploadInProgress = false
	inflightNames.Delete(string(kind))
}

// IsDuplicateSubmission reports whether fileName is the name of the kind's
// still-unsettled submission. Checked before anything else so a double-fired
// selection event is dropped silently.
func IsDuplicateSubmission(kind types.MediaKind, fileName string) bool {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return fileName != "" && inflightNames.Get(string(kind)) == fileName
}

// StoreUploadedFile writes the accepted file into the kind's slot,
// overwriting any prior value. The write is discarded when a reset happened
// after the submission was dispatched (stale response policy: discard).
func StoreUploadedFile(epoch uint64, kind types.MediaKind, file *types.UploadedFile) bool {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if epoch != resetEpoch {
		return false
	}
	uploadedFiles[kind] = file
	return true
}

// GetUploadedFile returns the accepted file for the kind, if any.
func GetUploadedFile(kind types.MediaKind) (*types.UploadedFile, bool) {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	f, ok := uploadedFiles[kind]
	if !ok || f == nil {
		return nil, false
	}
	copied := *f
	return &copied, true
}

// GetSettings returns the compressor settings the compress flow reads.
func GetSettings(kind types.MediaKind) types.CompressorSettings {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return settings[kind]
}

// SetSettings stores user-chosen compressor settings for the kind.
func SetSettings(kind types.MediaKind, s types.CompressorSettings) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	settings[kind] = s
}

// Snapshot returns a copy of the session for the state endpoint.
func Snapshot() types.SessionSnapshot {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	snap := types.SessionSnapshot{
		UploadInProgress: uploadInProgress,
		Files:            make(map[types.MediaKind]*types.UploadedFile, len(types.AllMediaKinds)),
		Settings:         make(map[types.MediaKind]types.CompressorSettings, len(types.AllMediaKinds)),
	}
	for _, kind := range types.AllMediaKinds {
		if f := uploadedFiles[kind]; f != nil {
			copied := *f
			snap.Files[kind] = &copied
		}
		snap.Settings[kind] = settings[kind]
	}
	return snap
}

// ResetAll empties both slots, drops the in-flight flag and tokens, restores
// default settings and bumps the reset epoch. Idempotent; runs at startup
// and on every tab switch in the UI.
func ResetAll() {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	uploadInProgress = false
	resetEpoch++
	for _, kind := range types.AllMediaKinds {
		delete(uploadedFiles, kind)
		settings[kind] = types.DefaultCompressorSettings(kind)
		inflightNames.Delete(string(kind))
	}
	clearResultPanelsLocked()
}
