// Package render emits the browsable HTML view of the course hierarchy.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/classify"
	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/resource"
	"github.com/coursetools/bbexport-go/pkg/utils"
)

type Walker struct {
	Out           io.Writer
	Resources     *resource.Reader
	Announcements []*etree.Document
}

// RenderItem renders one organization node and recurses into its children in
// document order. A node without a title still recurses.
func (w *Walker) RenderItem(item *etree.Element) {
	title := ""
	if t := item.SelectElement("title"); t != nil {
		title = strings.TrimSpace(t.Text())
	}

	if title != "" {
		w.renderEntry(item, title)
	}

	children := item.SelectElements("item")
	if len(children) == 0 {
		return
	}

	fmt.Fprintln(w.Out, "<ul>")
	for _, child := range children {
		fmt.Fprintln(w.Out, "<li>")
		w.RenderItem(child)
		fmt.Fprintln(w.Out, "</li>")
	}
	fmt.Fprintln(w.Out, "</ul>")
}

func (w *Walker) renderEntry(item *etree.Element, title string) {
	var info resource.Info
	if ref := item.SelectAttrValue("identifierref", ""); ref != "" {
		info = w.Resources.Read(ref)
	}

	escaped := html.EscapeString(title)
	switch {
	case info.Link != "":
		fmt.Fprintf(w.Out, "<a href=\"%s\">%s</a>", html.EscapeString(info.Link), escaped)
	case strings.Contains(info.Kind, "Folder"):
		fmt.Fprintf(w.Out, "<span class=\"folder\">%s</span>", escaped)
	default:
		fmt.Fprint(w.Out, escaped)
	}

	if info.Start != "" {
		fmt.Fprintf(w.Out, " <small>from %s</small>", html.EscapeString(info.Start))
	}
	if info.End != "" {
		fmt.Fprintf(w.Out, " <small>until %s</small>", html.EscapeString(info.End))
	}
	if info.Due != "" {
		fmt.Fprintf(w.Out, " <small>due %s</small>", html.EscapeString(info.Due))
	}
	fmt.Fprintln(w.Out)

	// mashup descriptions are autogenerated embed markup, not worth showing
	if info.Description != "" && info.Kind != classify.KindYoutubeMashup {
		fmt.Fprintf(w.Out, "<blockquote>%s</blockquote>\n", info.Description)
	}

	// the announcement tool carries no children in the manifest; its content
	// lives in separate announcement resources matched by this literal title
	if info.Kind == classify.KindApplication && title == constants.AnnouncementsTitle {
		w.renderAnnouncements()
	}
}

func (w *Walker) renderAnnouncements() {
	if len(w.Announcements) == 0 {
		return
	}

	fmt.Fprintln(w.Out, "<ul>")
	for _, doc := range w.Announcements {
		root := doc.Root()
		if root == nil {
			continue
		}

		text := utils.StripTags(utils.TextOf(root, ".//TEXT"))
		fmt.Fprintf(w.Out, "<li>%s</li>\n", html.EscapeString(text))
	}
	fmt.Fprintln(w.Out, "</ul>")
}
