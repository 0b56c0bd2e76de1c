package utils

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
)

func LoadLocalXml(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	return doc, nil
}

func LoadLocalHtml(data []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ValueOf returns the "value" attribute of the first element matched by path
// under el, or "" when the element or attribute is missing.
func ValueOf(el *etree.Element, path string) string {
	found := el.FindElement(path)
	if found == nil {
		return ""
	}

	return found.SelectAttrValue("value", "")
}

// TextOf returns the trimmed character data of the first element matched by
// path under el, or "".
func TextOf(el *etree.Element, path string) string {
	found := el.FindElement(path)
	if found == nil {
		return ""
	}

	return strings.TrimSpace(found.Text())
}
