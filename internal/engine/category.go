package engine

import (
	"path/filepath"
	"strings"

	"javakg/internal/extract"
)

// Category classifies a file for extractor dispatch.
type Category string

const (
	CategorySource        Category = "source"
	CategoryMaven         Category = "maven-descriptor"
	CategoryGradle        Category = "gradle-descriptor"
	CategoryConfig        Category = "config"
	CategoryLocalization  Category = "localization"
	CategoryDocumentation Category = "documentation"
	CategoryGeneric       Category = "generic"
)

// Classify determines the processing category of a file from its name.
// Classification precedence: build descriptors by exact name, then source,
// then locale-suffixed resource bundles, then config, then documentation.
func Classify(relPath string) Category {
	base := filepath.Base(relPath)
	ext := strings.ToLower(filepath.Ext(base))

	switch base {
	case "pom.xml":
		return CategoryMaven
	case "build.gradle", "build.gradle.kts", "settings.gradle", "settings.gradle.kts":
		return CategoryGradle
	}

	if ext == ".java" {
		return CategorySource
	}

	if _, ok := extract.LocaleFromFilename(base); ok {
		return CategoryLocalization
	}

	switch ext {
	case ".properties", ".yml", ".yaml", ".xml", ".json", ".conf", ".ini", ".env":
		return CategoryConfig
	case ".md", ".txt", ".rst", ".adoc":
		return CategoryDocumentation
	}

	return CategoryGeneric
}
