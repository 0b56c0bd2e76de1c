package archive

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/constants"
	"github.com/coursetools/bbexport-go/pkg/utils"
	"github.com/coursetools/bbexport-go/pkg/writer"
)

// Archive is a handle on an exported course directory. Every document read
// goes through it; nothing is cached, each call reparses from disk.
type Archive struct {
	Dir    string
	reader writer.Writer
}

func Open(dir string) (*Archive, error) {
	ok, err := utils.DoFolderExists(dir)
	if !ok || err != nil {
		return nil, fmt.Errorf("Cannot open the archive because the directory specified does not exist. dir: %s", dir)
	}

	reader, err := writer.NewWriter(dir)
	if err != nil {
		return nil, err
	}

	return &Archive{Dir: dir, reader: reader}, nil
}

// Doc loads the resource descriptor <identifier>.dat.
func (a *Archive) Doc(identifier string) (*etree.Document, error) {
	data, err := a.reader.Read(identifier + constants.DatExtension)
	if err != nil {
		return nil, fmt.Errorf("Could not read descriptor for %q: %w", identifier, err)
	}

	doc, err := utils.LoadLocalXml(data)
	if err != nil {
		return nil, fmt.Errorf("Could not parse descriptor for %q: %w", identifier, err)
	}

	return doc, nil
}

func (a *Archive) Manifest() (*Manifest, error) {
	data, err := a.reader.Read(constants.ManifestFilename)
	if err != nil {
		return nil, fmt.Errorf("Could not read %s: %w", constants.ManifestFilename, err)
	}

	doc, err := utils.LoadLocalXml(data)
	if err != nil {
		return nil, fmt.Errorf("Could not parse %s: %w", constants.ManifestFilename, err)
	}

	return NewManifest(doc)
}

// Writer exposes the directory-scoped writer for generated output files.
func (a *Archive) Writer() writer.Writer {
	return a.reader
}
