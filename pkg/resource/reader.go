// Package resource reads per-resource descriptor documents into normalized
// summary records.
package resource

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/archive"
	"github.com/coursetools/bbexport-go/pkg/assessment"
	"github.com/coursetools/bbexport-go/pkg/classify"
	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/utils"
)

// Info is the transient summary of one resource descriptor. Every field is
// optional; an empty string means "not applicable", never an error.
type Info struct {
	Kind        string
	Link        string
	Description string
	Start       string
	End         string
	Due         string
}

type Reader struct {
	Archive   *archive.Archive
	Manifest  *archive.Manifest
	Gradebook *etree.Document
	Converter *assessment.Converter
}

// Read loads <identifier>.dat and extracts what it can. It never fails: a
// missing descriptor or missing fields degrade to absent values, warning
// only when the resource kind cannot be determined at all.
func (r *Reader) Read(identifier string) Info {
	info := Info{}
	doc, err := r.Archive.Doc(identifier)
	if err != nil {
		slog.Warn("[resource] could not load descriptor", "identifier", identifier, "error", err)
		return info
	}

	root := doc.Root()
	if root == nil {
		slog.Warn("[resource] empty descriptor", "identifier", identifier)
		return info
	}

	info.Kind = kindOf(root, identifier)
	info.Link = fileLink(root)
	switch info.Kind {
	case classify.KindYoutubeMashup:
		info.Link = mashupLink(root, identifier)
	case classify.KindAssessment:
		info.Link = r.assessmentLink(root)
	}

	info.Description = utils.TextOf(root, ".//BODY/TEXT")
	info.Start = utils.ValueOf(root, ".//AVAILABILITY/DATES/START")
	info.End = utils.ValueOf(root, ".//AVAILABILITY/DATES/END")
	info.Due = r.dueDate(root.SelectAttrValue("id", ""))

	return info
}

// kindOf applies the classification priority: target type, then content
// handler, then the folder flag.
func kindOf(root *etree.Element, identifier string) string {
	if v := utils.ValueOf(root, ".//TARGETTYPE"); v != "" {
		return classify.ByTargetType(v)
	}
	if v := utils.ValueOf(root, ".//CONTENTHANDLER"); v != "" {
		return classify.ByContentHandler(v)
	}
	if strings.EqualFold(utils.ValueOf(root, ".//ISFOLDER"), "true") {
		return classify.Folder()
	}

	slog.Warn("[resource] could not determine resource kind", "identifier", identifier)
	return classify.KindUnknown
}

// fileLink resolves the descriptor's link: a direct URL when present, else a
// path under the csfiles storage convention built from the referenced file's
// internal name (minus its leading character) and the original extension.
func fileLink(root *etree.Element) string {
	if url := utils.ValueOf(root, ".//URL"); url != "" {
		return url
	}

	file := root.FindElement(".//FILES/FILE")
	if file == nil {
		return ""
	}

	name := utils.TextOf(file, "NAME")
	if len(name) < 2 {
		return ""
	}

	ext := path.Ext(utils.ValueOf(file, "LINKNAME"))
	return constants.CsFilesPrefix + name[1:] + ext
}

// mashupLink digs the real link out of the HTML blob embedded in a YouTube
// mashup descriptor: the blob holds an anchor whose href is the target. Any
// failure leaves the link absent.
func mashupLink(root *etree.Element, identifier string) string {
	blob := utils.TextOf(root, ".//BODY/TEXT")
	if blob == "" {
		return ""
	}

	doc, err := utils.LoadLocalHtml([]byte(blob))
	if err != nil {
		slog.Warn("[resource] could not parse mashup body, leaving link absent", "identifier", identifier, "error", err)
		return ""
	}

	href, ok := doc.Find("a").First().Attr("href")
	if !ok {
		slog.Warn("[resource] mashup body has no anchor, leaving link absent", "identifier", identifier)
		return ""
	}

	return href
}

// assessmentLink matches the descriptor's title against the manifest resource
// table, converts that assessment to TSV and links the generated file.
func (r *Reader) assessmentLink(root *etree.Element) string {
	if r.Manifest == nil || r.Converter == nil {
		return ""
	}

	title := utils.ValueOf(root, ".//TITLE")
	if title == "" {
		return ""
	}

	res, ok := r.Manifest.ResourceByTitle(title)
	if !ok {
		slog.Warn("[resource] no manifest resource matches assessment title", "title", title)
		return ""
	}

	if err := r.Converter.Convert(res.Identifier); err != nil {
		slog.Warn("[resource] could not convert assessment", "identifier", res.Identifier, "error", err)
		return ""
	}

	return assessment.TsvFilename(res.Identifier)
}

func (r *Reader) dueDate(contentID string) string {
	if contentID == "" || r.Gradebook == nil {
		return ""
	}

	el := r.Gradebook.FindElement(fmt.Sprintf("//OUTCOMEDEFINITION/CONTENTID[@value='%s']", contentID))
	if el == nil {
		return ""
	}

	due := utils.ValueOf(el.Parent(), "DUEDATE")
	if due == "" {
		return ""
	}

	return utils.DropClock(due)
}
