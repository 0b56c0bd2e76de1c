package main

import (
	"log/slog"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/archive"
	"github.com/coursetools/bbexport-go/pkg/assessment"
	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/logger"
	"github.com/coursetools/bbexport-go/pkg/render"
	"github.com/coursetools/bbexport-go/pkg/resource"
	"github.com/coursetools/bbexport-go/pkg/utils"
)

func main() {
	slog.SetDefault(logger.GetDefaultLogger())
	opts := ParseOpts()
	slog.Info("argv validation", "dir", opts.dir)

	arch, err := archive.Open(opts.dir)
	if err != nil {
		panic(err)
	}

	man, err := arch.Manifest()
	if err != nil {
		panic(err)
	}

	// foundational documents: their absence aborts the run
	gbRes, err := man.FirstResourceByType(constants.ResTypeGradebook)
	if err != nil {
		panic(err)
	}
	gradebook, err := arch.Doc(gbRes.Identifier)
	if err != nil {
		panic(err)
	}

	csRes, err := man.FirstResourceByType(constants.ResTypeCourseSetting)
	if err != nil {
		panic(err)
	}
	setting, err := arch.Doc(csRes.Identifier)
	if err != nil {
		panic(err)
	}

	courseTitle := utils.ValueOf(setting.Root(), ".//TITLE")
	if courseTitle == "" {
		courseTitle = "Course"
	}

	announcements := make([]*etree.Document, 0)
	for _, res := range man.ResourcesByType(constants.ResTypeAnnouncement) {
		doc, err := arch.Doc(res.Identifier)
		if err != nil {
			slog.Warn("[render] skipping unreadable announcement", "identifier", res.Identifier, "error", err)
			continue
		}
		announcements = append(announcements, doc)
	}

	rubrics := make([]*etree.Document, 0)
	for _, res := range man.ResourcesByType(constants.ResTypeRubrics) {
		doc, err := arch.Doc(res.Identifier)
		if err != nil {
			slog.Warn("[render] skipping unreadable rubric", "identifier", res.Identifier, "error", err)
			continue
		}
		rubrics = append(rubrics, doc)
	}

	org, err := man.Organization()
	if err != nil {
		panic(err)
	}

	reader := &resource.Reader{
		Archive:   arch,
		Manifest:  man,
		Gradebook: gradebook,
		Converter: assessment.NewConverter(arch),
	}

	w := arch.Writer()
	out, err := w.Stream(constants.IndexFilename)
	if err != nil {
		panic(err)
	}

	walker := &render.Walker{Out: out, Resources: reader, Announcements: announcements}

	render.WriteHeader(out, courseTitle)
	walker.RenderItem(org)
	for _, doc := range rubrics {
		render.RenderRubric(out, doc)
	}
	render.WriteFooter(out)

	if err := out.Close(); err != nil {
		slog.Error("[render] error while writing index.html (PANIC)", "error", err)
		panic(err)
	}

	slog.Info("[render] successful write", "filename", w.GetFilePath(constants.IndexFilename), "course", courseTitle)
}
