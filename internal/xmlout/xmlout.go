// Package xmlout provides deterministic markup serialization for
// configuration trees, in the format the consuming CI server reads.
//
// Output rules: two-space indentation, attributes in sorted key order,
// scalar leaves inline, childless valueless elements self-closed.
package xmlout

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scmforge/node"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Marshal renders one tree as indented markup with a trailing newline.
func Marshal(n *node.Node) []byte {
	var buf bytes.Buffer

	writeNode(&buf, n, 0)

	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *node.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(n.Label)

	for _, key := range sortedKeys(n.Attrs) {
		buf.WriteString(" " + key + `="` + escape(n.Attrs[key]) + `"`)
	}

	switch {
	case len(n.Children) > 0:
		buf.WriteString(">\n")

		for _, c := range n.Children {
			writeNode(buf, c, depth+1)
		}

		buf.WriteString(indent)
		buf.WriteString("</" + n.Label + ">\n")

	case n.HasValue:
		buf.WriteString(">" + escape(n.Value) + "</" + n.Label + ">\n")

	default:
		buf.WriteString("/>\n")
	}
}

func sortedKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func escape(s string) string {
	var buf bytes.Buffer

	// EscapeText never fails on a bytes.Buffer.
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}

// WriteFiles writes one scm-N.xml file per tree to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(trees []*node.Node, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i, tree := range trees {
		outputPath := filepath.Join(outputDir, fmt.Sprintf("scm-%d.xml", i+1))

		err := os.WriteFile(outputPath, Marshal(tree), filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
