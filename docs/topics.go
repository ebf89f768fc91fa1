// Package docs holds the embedded help topics of the n2d command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the topic listing all other topics.
const Readme = "readme"

// Topic returns the markdown content of a topic.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the names of all topics but the readme, sorted.
func Topics() []string {
	files, _ := fs.Glob(docs, "*.md")
	var topics []string
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".md")
		if name != Readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics
}

// Get concatenates the given topics. "*" expands to all topics.
func Get(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			expanded = Topics()
		}
		for _, t := range expanded {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
