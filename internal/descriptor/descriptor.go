// Package descriptor reads and writes the Eclipse .project file. The document
// is kept as a generic element tree so that anything a user or the IDE added
// survives a rename untouched.
package descriptor

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// FileName is the project descriptor at the project root.
const FileName = ".project"

// ErrMalformedDescriptor is returned when existing descriptor content cannot
// be parsed as an XML document with a root element.
var ErrMalformedDescriptor = errors.New("malformed project descriptor")

//go:embed project.xml
var template []byte

// Document is a parsed project descriptor.
type Document struct {
	doc *etree.Document
}

// New builds a descriptor for a new project from the built-in template:
// empty comment and project references, the validation, DLTK script and
// facet builders, and the facet and PHP natures.
func New(name string) (*Document, error) {
	d, err := Parse(template)
	if err != nil {
		return nil, fmt.Errorf("built-in template: %w", err)
	}
	d.SetName(name)
	return d, nil
}

// Parse reads descriptor content.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDescriptor)
	}
	return &Document{doc: doc}, nil
}

// Name returns the text of the root's <name> child, or "" when absent.
func (d *Document) Name() string {
	el := d.doc.Root().SelectElement("name")
	if el == nil {
		return ""
	}
	return el.Text()
}

// SetName replaces the text of the root's <name> child, creating the child
// if the document has none.
func (d *Document) SetName(name string) {
	root := d.doc.Root()
	el := root.SelectElement("name")
	if el == nil {
		el = root.CreateElement("name")
	}
	el.SetText(name)
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	out, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing project descriptor: %w", err)
	}
	return out, nil
}
