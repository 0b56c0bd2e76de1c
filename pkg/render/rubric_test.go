package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetools/bbexport-go/pkg/utils"
)

func TestRenderRubric(t *testing.T) {
	doc, err := utils.LoadLocalXml([]byte(`<RUBRICS>
  <RUBRIC id="_10_1">
    <TITLE value="Essay Rubric"/>
    <DESCRIPTION value="Grading for the final essay"/>
    <RUBRICROWS>
      <RUBRICROW id="_11_1">
        <HEADER value="Argument"/>
        <PERCENTAGE value="60.0"/>
        <RUBRICCELLS>
          <RUBRICCELL><HEADER value="Strong"/><PERCENTAGE value="100.0"/><DESCRIPTION value="Clear thesis"/></RUBRICCELL>
          <RUBRICCELL><HEADER value="Weak"/><PERCENTAGE value="50.0"/><DESCRIPTION value="Thesis unclear"/></RUBRICCELL>
        </RUBRICCELLS>
      </RUBRICROW>
      <RUBRICROW id="_11_2">
        <HEADER value="Style"/>
        <PERCENTAGE value="40.0"/>
        <RUBRICCELLS>
          <RUBRICCELL><HEADER value="Polished"/><PERCENTAGE value="100.0"/><DESCRIPTION value="Reads well"/></RUBRICCELL>
        </RUBRICCELLS>
      </RUBRICROW>
    </RUBRICROWS>
  </RUBRIC>
</RUBRICS>`))
	require.NoError(t, err)

	var out bytes.Buffer
	RenderRubric(&out, doc)

	html := out.String()
	assert.Contains(t, html, "<th>Essay Rubric</th><th>Grading for the final essay</th>")
	assert.Contains(t, html, "<td>Argument (60%)</td>")
	assert.Contains(t, html, "<td>Strong (100%)<br>Clear thesis</td>")
	assert.Contains(t, html, "<td>Style (40%)</td>")
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("<table")))
}

func TestWritePageShell(t *testing.T) {
	var out bytes.Buffer
	WriteHeader(&out, "Intro to Go")
	WriteFooter(&out)

	html := out.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Intro to Go</title>")
	assert.Contains(t, html, "<h1>Intro to Go</h1>")
	assert.Contains(t, html, "</html>")
}
