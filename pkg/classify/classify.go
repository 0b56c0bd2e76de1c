// Package classify maps raw Blackboard type tags to human-readable kind labels.
package classify

import (
	"strings"

	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/utils"
)

// Irregular internal handler names that the generic transform would mangle.
var handlerOverrides = map[string]string{
	"asmt-test-link": "Assessment",
	"externallink":   "Link",
	"youtube-mashup": "YouTube Mashup",
	"blankpage":      "Page",
	"document":       "Item",
}

const (
	KindFolder        = "Content Folder"
	KindUnknown       = "Unknown"
	KindAssessment    = "Assessment"
	KindYoutubeMashup = "YouTube Mashup"
	KindApplication   = "Application"
)

// ByContentHandler classifies a raw CONTENTHANDLER value, e.g.
// "resource/x-bb-asmt-test-link" -> "Assessment", "resource/x-bb-lesson" -> "Lesson".
func ByContentHandler(value string) string {
	name := strings.TrimSpace(strings.TrimPrefix(value, constants.ContentHandlerPrefix))
	if label, ok := handlerOverrides[name]; ok {
		return label
	}

	return utils.TitleWords(strings.ReplaceAll(name, "-", " "))
}

// ByTargetType classifies a raw TARGETTYPE value. "URL" passes through
// unchanged, everything else gets underscores replaced and title-cased.
func ByTargetType(value string) string {
	if value == "URL" {
		return value
	}

	return utils.TitleWords(strings.ReplaceAll(value, "_", " "))
}

func Folder() string {
	return KindFolder
}
