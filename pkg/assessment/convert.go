// Package assessment converts Blackboard assessment descriptors (a QTI-like
// grammar) into tab-separated question-import files.
package assessment

import (
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/archive"
	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/utils"
	"github.com/coursetools/bbexport-go/pkg/writer"
)

type Converter struct {
	arch *archive.Archive
	out  writer.Writer
}

func NewConverter(arch *archive.Archive) *Converter {
	return &Converter{arch: arch, out: arch.Writer()}
}

// TsvFilename is the output file name for one converted assessment.
func TsvFilename(identifier string) string {
	return constants.TsvPrefix + identifier + constants.TsvExtension
}

// Convert reads <identifier>.dat and writes index_<identifier>.txt, one
// tab-separated line per supported question, in document order. Questions of
// an unrecognized kind are skipped with a warning; the file is overwritten
// wholesale on every run.
func (c *Converter) Convert(identifier string) error {
	doc, err := c.arch.Doc(identifier)
	if err != nil {
		return err
	}

	rows := make([]string, 0)
	for _, item := range doc.FindElements("//item") {
		qtype := utils.TextOf(item, ".//bbmd_questiontype")
		qt, ok := questionTypes[qtype]
		if !ok {
			slog.Warn("[assessment] unsupported question type, skipping", "assessment", identifier, "type", qtype)
			continue
		}

		answers, err := qt.extract(item)
		if err != nil {
			slog.Warn("[assessment] could not extract answers, skipping question", "assessment", identifier, "type", qtype, "error", err)
			continue
		}

		row := append([]string{qt.code, questionText(item)}, answers...)
		rows = append(rows, strings.Join(row, "\t"))
	}

	return c.out.WriteLines(TsvFilename(identifier), rows)
}

// questionText locates the question body inside the QUESTION_BLOCK flow and
// returns its formatted text with markup stripped.
func questionText(item *etree.Element) string {
	block := item.FindElement(".//flow[@class='QUESTION_BLOCK']")
	if block == nil {
		return ""
	}

	return utils.StripTags(utils.TextOf(block, ".//mat_formattedtext"))
}
