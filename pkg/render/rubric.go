package render

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/utils"
)

// RenderRubric writes one table per rubric in the document: a header row with
// title and description, then one row per rubric row holding its cells.
// Percentages are trusted from source, no range validation.
func RenderRubric(out io.Writer, doc *etree.Document) {
	for _, rubric := range doc.FindElements("//RUBRIC") {
		title := utils.ValueOf(rubric, "TITLE")
		desc := utils.ValueOf(rubric, "DESCRIPTION")

		fmt.Fprintln(out, `<table border="1">`)
		fmt.Fprintf(out, "<tr><th>%s</th><th>%s</th></tr>\n", html.EscapeString(title), html.EscapeString(desc))

		for _, row := range rubric.FindElements(".//RUBRICROW") {
			fmt.Fprintf(out, "<tr><td>%s (%g%%)</td>", html.EscapeString(utils.ValueOf(row, "HEADER")), percentage(row))
			for _, cell := range row.FindElements(".//RUBRICCELL") {
				fmt.Fprintf(out, "<td>%s (%g%%)<br>%s</td>",
					html.EscapeString(utils.ValueOf(cell, "HEADER")),
					percentage(cell),
					html.EscapeString(utils.ValueOf(cell, "DESCRIPTION")))
			}
			fmt.Fprintln(out, "</tr>")
		}

		fmt.Fprintln(out, "</table>")
	}
}

func percentage(el *etree.Element) float64 {
	v, _ := strconv.ParseFloat(utils.ValueOf(el, "PERCENTAGE"), 64)
	return v
}
