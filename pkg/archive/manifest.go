package archive

import (
	"fmt"

	"github.com/beevik/etree"
)

// Resource is one row of the manifest's resource table.
type Resource struct {
	Identifier string
	Type       string
	Title      string
	File       string
}

// Manifest wraps a parsed imsmanifest.xml, read-only after load.
type Manifest struct {
	doc *etree.Document
}

func NewManifest(doc *etree.Document) (*Manifest, error) {
	if doc.FindElement("//resources") == nil {
		return nil, fmt.Errorf("Manifest has no <resources> table")
	}

	return &Manifest{doc: doc}, nil
}

func resourceOf(el *etree.Element) Resource {
	return Resource{
		Identifier: el.SelectAttrValue("identifier", ""),
		Type:       el.SelectAttrValue("type", ""),
		Title:      el.SelectAttrValue("bb:title", ""),
		File:       el.SelectAttrValue("bb:file", ""),
	}
}

func (m *Manifest) Resources() []Resource {
	els := m.doc.FindElements("//resources/resource")
	out := make([]Resource, 0, len(els))
	for _, el := range els {
		out = append(out, resourceOf(el))
	}

	return out
}

func (m *Manifest) ResourcesByType(resType string) []Resource {
	out := make([]Resource, 0)
	for _, r := range m.Resources() {
		if r.Type == resType {
			out = append(out, r)
		}
	}

	return out
}

// FirstResourceByType is for the foundational documents (gradebook, course
// setting): their absence makes the run meaningless.
func (m *Manifest) FirstResourceByType(resType string) (Resource, error) {
	for _, r := range m.Resources() {
		if r.Type == resType {
			return r, nil
		}
	}

	return Resource{}, fmt.Errorf("Manifest has no resource of type %q", resType)
}

func (m *Manifest) ResourceByTitle(title string) (Resource, bool) {
	for _, r := range m.Resources() {
		if r.Title == title {
			return r, true
		}
	}

	return Resource{}, false
}

// Organization returns the root of the display hierarchy: the default
// organization when one is declared, else the first.
func (m *Manifest) Organization() (*etree.Element, error) {
	orgs := m.doc.FindElement("//organizations")
	if orgs == nil {
		return nil, fmt.Errorf("Manifest has no <organizations> node")
	}

	if def := orgs.SelectAttrValue("default", ""); def != "" {
		for _, org := range orgs.SelectElements("organization") {
			if org.SelectAttrValue("identifier", "") == def {
				return org, nil
			}
		}
	}

	org := orgs.SelectElement("organization")
	if org == nil {
		return nil, fmt.Errorf("Manifest has no <organization> node")
	}

	return org, nil
}
