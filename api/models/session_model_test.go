package models

import (
	"testing"

	"github.com/harune/mediasqueeze-go/types"
)

func TestTryBeginUploadSerializesAcrossKinds(t *testing.T) {
	ResetAll()

	epoch, ok := TryBeginUpload(types.MediaKindImage, "photo.png")
	if !ok {
		t.Fatal("Expected first upload to claim the slot")
	}
	if !IsUploadInProgress() {
		t.Error("Expected uploadInProgress to be true after begin")
	}

	// The flag is global: a video upload is refused while an image upload
	// is in flight.
	if _, ok := TryBeginUpload(types.MediaKindVideo, "clip.mp4"); ok {
		t.Error("Expected second upload to be refused while one is in flight")
	}

	FinishUpload(types.MediaKindImage)
	if IsUploadInProgress() {
		t.Error("Expected uploadInProgress to be false after finish")
	}

	if _, ok := TryBeginUpload(types.MediaKindVideo, "clip.mp4"); !ok {
		t.Error("Expected upload to be accepted after previous one settled")
	}
	FinishUpload(types.MediaKindVideo)
	_ = epoch
}

func TestDuplicateSubmissionToken(t *testing.T) {
	ResetAll()

	if IsDuplicateSubmission(types.MediaKindImage, "photo.png") {
		t.Error("Expected no duplicate before any submission")
	}

	_, ok := TryBeginUpload(types.MediaKindImage, "photo.png")
	if !ok {
		t.Fatal("Expected to claim upload slot")
	}
	if !IsDuplicateSubmission(types.MediaKindImage, "photo.png") {
		t.Error("Expected same name to be flagged as duplicate while in flight")
	}
	if IsDuplicateSubmission(types.MediaKindImage, "other.png") {
		t.Error("Expected different name not to be flagged")
	}
	if IsDuplicateSubmission(types.MediaKindVideo, "photo.png") {
		t.Error("Expected token to be scoped per kind")
	}

	// Terminal outcome clears the token, so a genuinely repeated upload of
	// the same name is accepted later.
	FinishUpload(types.MediaKindImage)
	if IsDuplicateSubmission(types.MediaKindImage, "photo.png") {
		t.Error("Expected token to be cleared after settle")
	}
}

func TestStoreUploadedFileOverwrites(t *testing.T) {
	ResetAll()

	epoch, _ := TryBeginUpload(types.MediaKindImage, "a.png")
	StoreUploadedFile(epoch, types.MediaKindImage, &types.UploadedFile{StorageName: "first.png"})
	FinishUpload(types.MediaKindImage)

	epoch, _ = TryBeginUpload(types.MediaKindImage, "b.png")
	StoreUploadedFile(epoch, types.MediaKindImage, &types.UploadedFile{StorageName: "second.png"})
	FinishUpload(types.MediaKindImage)

	f, ok := GetUploadedFile(types.MediaKindImage)
	if !ok {
		t.Fatal("Expected image slot to be populated")
	}
	if f.StorageName != "second.png" {
		t.Errorf("Expected slot to be overwritten, got %q", f.StorageName)
	}
}

func TestStoreUploadedFileDiscardsStaleEpoch(t *testing.T) {
	ResetAll()

	epoch, ok := TryBeginUpload(types.MediaKindImage, "photo.png")
	if !ok {
		t.Fatal("Expected to claim upload slot")
	}

	// Reset while the submission is in flight (tab switch). The response
	// settling afterwards must not repopulate the session.
	ResetAll()

	if StoreUploadedFile(epoch, types.MediaKindImage, &types.UploadedFile{StorageName: "stale.png"}) {
		t.Error("Expected stale store to be discarded")
	}
	if _, ok := GetUploadedFile(types.MediaKindImage); ok {
		t.Error("Expected image slot to stay empty after stale response")
	}
}

func TestResetAllIdempotent(t *testing.T) {
	ResetAll()

	epoch, _ := TryBeginUpload(types.MediaKindVideo, "clip.mp4")
	StoreUploadedFile(epoch, types.MediaKindVideo, &types.UploadedFile{StorageName: "v.mp4"})
	SetSettings(types.MediaKindImage, types.CompressorSettings{Quality: 50, MaxWidth: 800})
	SetResultPanel(types.MediaKindVideo, &types.CompressResult{CompressedSize: "1.00 MB"})

	ResetAll()
	ResetAll() // second call must change nothing

	if IsUploadInProgress() {
		t.Error("Expected uploadInProgress false after reset")
	}
	for _, kind := range types.AllMediaKinds {
		if _, ok := GetUploadedFile(kind); ok {
			t.Errorf("Expected %s slot to be empty after reset", kind)
		}
		if _, ok := GetResultPanel(kind); ok {
			t.Errorf("Expected %s result panel to be hidden after reset", kind)
		}
	}
	if got := GetSettings(types.MediaKindImage); got.Quality != types.DefaultImageQuality || got.MaxWidth != 0 || got.MaxHeight != 0 {
		t.Errorf("Expected image defaults after reset, got %+v", got)
	}
	if got := GetSettings(types.MediaKindVideo); got.Quality != types.DefaultVideoQuality {
		t.Errorf("Expected video quality default 70 after reset, got %+v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ResetAll()

	epoch, _ := TryBeginUpload(types.MediaKindImage, "a.png")
	StoreUploadedFile(epoch, types.MediaKindImage, &types.UploadedFile{StorageName: "abc123.png"})
	FinishUpload(types.MediaKindImage)

	snap := Snapshot()
	snap.Files[types.MediaKindImage].StorageName = "mutated"

	f, _ := GetUploadedFile(types.MediaKindImage)
	if f.StorageName != "abc123.png" {
		t.Error("Expected snapshot mutation not to leak into the session")
	}
	if _, ok := snap.Files[types.MediaKindVideo]; ok {
		t.Error("Expected empty video slot to be absent from snapshot")
	}
	if snap.Settings[types.MediaKindVideo].Quality != types.DefaultVideoQuality {
		t.Error("Expected snapshot to carry settings for both kinds")
	}
}
