package entities

import (
	"path/filepath"
	"strings"
	"time"
)

// StoredNameLayout is the UTC timestamp prefix of a stored upload name
const StoredNameLayout = "20060102_150405"

// Media kinds accepted for upload
const (
	MediaKindAudio = "audio"
	MediaKindVideo = "video"
)

var allowedExtensions = map[string]string{
	".mp3":  MediaKindAudio,
	".wav":  MediaKindAudio,
	".m4a":  MediaKindAudio,
	".aac":  MediaKindAudio,
	".mp4":  MediaKindVideo,
	".avi":  MediaKindVideo,
	".mov":  MediaKindVideo,
	".wmv":  MediaKindVideo,
	".webm": MediaKindVideo,
}

// StoredUpload describes a file held in the scratch store between the
// upload and transcription requests
type StoredUpload struct {
	Name         string    `json:"filename"`
	OriginalName string    `json:"original_filename"`
	Extension    string    `json:"extension"`
	Kind         string    `json:"kind"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"upload_time"`
}

// Extension returns the lower-cased extension of filename including the dot
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// MediaKind reports whether filename has an accepted extension and which kind it is
func MediaKind(filename string) (string, bool) {
	kind, ok := allowedExtensions[Extension(filename)]
	return kind, ok
}

// AllowedExtensions returns the accepted extensions in a stable order
func AllowedExtensions() []string {
	return []string{".mp3", ".wav", ".m4a", ".aac", ".mp4", ".avi", ".mov", ".wmv", ".webm"}
}

// StoredName builds the scratch-store name for an upload received at t.
// Only the base name of original is kept.
func StoredName(t time.Time, original string) string {
	return t.UTC().Format(StoredNameLayout) + "_" + BaseName(original)
}

// BaseName strips any client-supplied directory components, treating both
// slash styles as separators
func BaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(name)
}

// ValidStoredName reports whether name can refer to an entry of the scratch
// store. Names with separators, "." or ".." never can.
func ValidStoredName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return !strings.ContainsRune(name, 0)
}
