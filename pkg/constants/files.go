package constants

const (
	ManifestFilename = "imsmanifest.xml"
	IndexFilename    = "index.html"

	DatExtension = ".dat"
	TsvPrefix    = "index_"
	TsvExtension = ".txt"

	// Blackboard stores binary content under this convention; descriptor file
	// references resolve to it (internal name minus its leading character,
	// plus the original file's extension).
	CsFilesPrefix = "./csfiles/home_dir/__"
)
