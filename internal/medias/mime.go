package medias

import (
	"path"
	"strings"
)

var mimeTypes = map[string]string{
	// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Basics_of_HTTP/MIME_types/Common_types
	".apng": "image/apng",
	".avif": "image/avif",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".ico":  "image/vnd.microsoft.icon",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
	".avi":  "video/x-msvideo",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".ogv":  "video/ogg",
	".webm": "video/webm",
	".3gp":  "video/3gpp",
}

// MimeType returns the mime type for common image and video extensions.
func MimeType(extension string) string {
	mime, ok := mimeTypes[strings.ToLower(extension)]
	if !ok {
		// RFC 2046 declares:
		// The "octet-stream" subtype is used to indicate that a body contains arbitrary binary data.
		return "application/octet-stream"
	}
	return mime
}

// Extension returns the extension of a local path or a URL, ignoring the query and the fragment.
func Extension(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	return path.Ext(location)
}

// IsVideo reports if a path or a URL targets a video file.
func IsVideo(location string) bool {
	return strings.HasPrefix(MimeType(Extension(location)), "video/")
}

// IsImage reports if a path or a URL targets an image file.
func IsImage(location string) bool {
	return strings.HasPrefix(MimeType(Extension(location)), "image/")
}
