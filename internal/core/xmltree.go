package core

import (
	"encoding/xml"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"print-bom/internal/types"
)

// ParseDocument decodes an XML byte stream into a generic element tree.
func ParseDocument(data []byte) (*types.Node, error) {
	var root types.Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse xml document").
			WithCause(err)
	}
	return &root, nil
}

// FirstChild returns the first direct child with the given local name, or
// nil when no such child exists.
func FirstChild(node *types.Node, name string) *types.Node {
	if node == nil {
		return nil
	}
	for i := range node.Children {
		if node.Children[i].LocalName() == name {
			return &node.Children[i]
		}
	}
	return nil
}

// AllChildren returns every direct child with the given local name, in
// document order.
func AllChildren(node *types.Node, name string) []*types.Node {
	if node == nil {
		return nil
	}
	var found []*types.Node
	for i := range node.Children {
		if node.Children[i].LocalName() == name {
			found = append(found, &node.Children[i])
		}
	}
	return found
}

// MetadataValue searches the whole subtree rooted at node, node included,
// for a metadata element whose key attribute matches. A non-empty value
// attribute wins over element text; a matching element with neither keeps
// the search going. The first hit in document order is returned.
//
// The unbounded descent mirrors how slicer tools nest metadata at varying
// depths. It can pick up a nested child object's metadata when object
// subtrees overlap; metadataValueBounded is the candidate replacement once
// representative packages confirm which behavior is intended.
func MetadataValue(node *types.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	if node.LocalName() == "metadata" && node.Attr("key") == key {
		if value := node.Attr("value"); value != "" {
			return value, true
		}
		if text := strings.TrimSpace(node.Text); text != "" {
			return text, true
		}
	}
	for i := range node.Children {
		if value, ok := MetadataValue(&node.Children[i], key); ok {
			return value, true
		}
	}
	return "", false
}

// metadataValueBounded is MetadataValue with the descent stopped at nested
// object boundaries, so an inner object's metadata can never satisfy an
// outer object's lookup.
func metadataValueBounded(node *types.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	if node.LocalName() == "metadata" && node.Attr("key") == key {
		if value := node.Attr("value"); value != "" {
			return value, true
		}
		if text := strings.TrimSpace(node.Text); text != "" {
			return text, true
		}
	}
	for i := range node.Children {
		if node.Children[i].LocalName() == "object" {
			continue
		}
		if value, ok := metadataValueBounded(&node.Children[i], key); ok {
			return value, true
		}
	}
	return "", false
}
