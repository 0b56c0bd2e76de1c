package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetools/bbexport-go/pkg/archive"
	"github.com/coursetools/bbexport-go/pkg/assessment"
	"github.com/coursetools/bbexport-go/pkg/utils"
)

func fixtureArchive(t *testing.T, files map[string]string) *archive.Archive {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o664))
	}

	arch, err := archive.Open(dir)
	require.NoError(t, err)
	return arch
}

func TestReadItemDescriptor(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<?xml version="1.0"?>
<CONTENT id="_101_1">
  <TITLE value="Syllabus"/>
  <CONTENTHANDLER value="resource/x-bb-document"/>
  <BODY><TEXT>&lt;p&gt;Read this first&lt;/p&gt;</TEXT><TYPE value="H"/></BODY>
  <FILES><FILE><NAME>!syllabus</NAME><LINKNAME value="syllabus.pdf"/></FILE></FILES>
  <AVAILABILITY><DATES><START value="2020-01-15 00:00:00"/><END value="2020-06-01 00:00:00"/></DATES></AVAILABILITY>
</CONTENT>`,
	})

	r := &Reader{Archive: arch}
	info := r.Read("res1")

	assert.Equal(t, "Item", info.Kind)
	assert.Equal(t, "./csfiles/home_dir/__syllabus.pdf", info.Link)
	assert.Equal(t, "<p>Read this first</p>", info.Description)
	assert.Equal(t, "2020-01-15 00:00:00", info.Start)
	assert.Equal(t, "2020-06-01 00:00:00", info.End)
	assert.Empty(t, info.Due)
}

func TestReadDirectUrlWins(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_1_1">
  <CONTENTHANDLER value="resource/x-bb-externallink"/>
  <URL value="https://example.com/page"/>
  <FILES><FILE><NAME>!ignored</NAME><LINKNAME value="ignored.html"/></FILE></FILES>
</CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "Link", info.Kind)
	assert.Equal(t, "https://example.com/page", info.Link)
}

func TestReadFolderFlag(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_2_1"><ISFOLDER value="true"/></CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "Content Folder", info.Kind)
	assert.Empty(t, info.Link)
}

func TestKindPriorityTargetTypeFirst(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<COURSETOC id="_8_1">
  <TARGETTYPE value="APPLICATION"/>
  <CONTENTHANDLER value="resource/x-bb-document"/>
  <ISFOLDER value="true"/>
</COURSETOC>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "Application", info.Kind)
}

func TestKindPriorityContentHandlerBeforeFolderFlag(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_8_2">
  <CONTENTHANDLER value="resource/x-bb-document"/>
  <ISFOLDER value="true"/>
</CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "Item", info.Kind)
}

func TestReadUnknownKind(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_3_1"><TITLE value="Mystery"/></CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "Unknown", info.Kind)
}

func TestReadMissingDescriptor(t *testing.T) {
	arch := fixtureArchive(t, nil)
	info := (&Reader{Archive: arch}).Read("nope")
	assert.Equal(t, Info{}, info)
}

func TestReadMashupLink(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_4_1">
  <CONTENTHANDLER value="resource/x-bb-youtube-mashup"/>
  <BODY><TEXT>&lt;div&gt;&lt;a href="https://youtu.be/xyz123"&gt;Video&lt;/a&gt;&lt;/div&gt;</TEXT></BODY>
</CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "YouTube Mashup", info.Kind)
	assert.Equal(t, "https://youtu.be/xyz123", info.Link)
}

func TestReadMashupWithoutAnchor(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_5_1">
  <CONTENTHANDLER value="resource/x-bb-youtube-mashup"/>
  <BODY><TEXT>no anchor in here</TEXT></BODY>
</CONTENT>`,
	})

	info := (&Reader{Archive: arch}).Read("res1")
	assert.Equal(t, "YouTube Mashup", info.Kind)
	assert.Empty(t, info.Link)
}

func TestReadDueDateFromGradebook(t *testing.T) {
	arch := fixtureArchive(t, map[string]string{
		"res1.dat": `<CONTENT id="_101_1"><CONTENTHANDLER value="resource/x-bb-document"/></CONTENT>`,
	})

	gradebook, err := utils.LoadLocalXml([]byte(`<GRADEBOOK><OUTCOMEDEFINITIONS>
  <OUTCOMEDEFINITION id="_9_1"><CONTENTID value="_101_1"/><DUEDATE value="2020-05-01 23:59:00"/></OUTCOMEDEFINITION>
</OUTCOMEDEFINITIONS></GRADEBOOK>`))
	require.NoError(t, err)

	info := (&Reader{Archive: arch, Gradebook: gradebook}).Read("res1")
	assert.Equal(t, "2020-05-01", info.Due)
}

func TestReadAssessmentConvertsAndLinks(t *testing.T) {
	quiz := `<?xml version="1.0"?><questestinterop><assessment title="Quiz 1"><section>
<item><itemmetadata><bbmd_questiontype>True/False</bbmd_questiontype></itemmetadata>
<presentation><flow class="Block"><flow class="QUESTION_BLOCK"><material><mat_extension>
<mat_formattedtext>&lt;p&gt;Go is compiled.&lt;/p&gt;</mat_formattedtext>
</mat_extension></material></flow></flow></presentation>
<resprocessing><respcondition title="correct"><conditionvar><varequal respident="response">true</varequal></conditionvar></respcondition></resprocessing>
</item></section></assessment></questestinterop>`

	arch := fixtureArchive(t, map[string]string{
		"res_link.dat": `<CONTENT id="_6_1">
  <TITLE value="Quiz 1"/>
  <CONTENTHANDLER value="resource/x-bb-asmt-test-link"/>
</CONTENT>`,
		"res_quiz.dat": quiz,
	})

	manDoc, err := utils.LoadLocalXml([]byte(`<manifest xmlns:bb="http://www.blackboard.com/content-packaging/">
  <resources>
    <resource identifier="res_quiz" type="assessment/x-bb-qti-test" bb:title="Quiz 1" bb:file="res_quiz.dat"/>
  </resources>
</manifest>`))
	require.NoError(t, err)
	man, err := archive.NewManifest(manDoc)
	require.NoError(t, err)

	r := &Reader{Archive: arch, Manifest: man, Converter: assessment.NewConverter(arch)}
	info := r.Read("res_link")

	assert.Equal(t, "Assessment", info.Kind)
	assert.Equal(t, "index_res_quiz.txt", info.Link)

	data, err := os.ReadFile(filepath.Join(arch.Dir, "index_res_quiz.txt"))
	require.NoError(t, err)
	assert.Equal(t, "TF\tGo is compiled.\ttrue\n", string(data))
}
