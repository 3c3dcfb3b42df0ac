package types

import "encoding/xml"

// Node is a generic XML element tree. Slicer vendors qualify 3MF elements
// with arbitrary namespaces, so all lookups go through LocalName and
// attribute matching ignores namespace prefixes.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// LocalName returns the element name with any namespace stripped.
func (n *Node) LocalName() string {
	return n.XMLName.Local
}

// Attr returns the value of the first attribute whose local name matches,
// or the empty string when the attribute is absent.
func (n *Node) Attr(name string) string {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// HasAttr reports whether an attribute with the given local name exists,
// regardless of its value.
func (n *Node) HasAttr(name string) bool {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}
