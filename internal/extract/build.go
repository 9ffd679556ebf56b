package extract

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

// Pom is the subset of a Maven pom.xml the graph cares about.
type Pom struct {
	GroupID    string
	ArtifactID string
	Version    string
	Deps       []Dependency
	Plugins    []Dependency
	Properties map[string]string
}

type pomProject struct {
	GroupID    string          `xml:"groupId"`
	ArtifactID string          `xml:"artifactId"`
	Version    string          `xml:"version"`
	Deps       []pomDependency `xml:"dependencies>dependency"`
	Managed    []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
	Plugins    []pomDependency `xml:"build>plugins>plugin"`
	Properties pomProperties   `xml:"properties"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

// pomProperties decodes the free-form <properties> block into a map.
type pomProperties struct {
	pairs map[string]string
}

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.pairs = map[string]string{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			p.pairs[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// ParsePom parses a Maven descriptor. Dependencies missing a version keep an
// empty version string; a missing scope defaults to "compile". Entries from
// dependencyManagement are included alongside direct dependencies.
func ParsePom(data []byte) (*Pom, error) {
	var proj pomProject
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}

	pom := &Pom{
		GroupID:    strings.TrimSpace(proj.GroupID),
		ArtifactID: strings.TrimSpace(proj.ArtifactID),
		Version:    strings.TrimSpace(proj.Version),
		Properties: proj.Properties.pairs,
	}
	for _, d := range append(proj.Deps, proj.Managed...) {
		dep, ok := normalizePomDep(d)
		if !ok {
			continue
		}
		pom.Deps = append(pom.Deps, dep)
	}
	for _, d := range proj.Plugins {
		dep, ok := normalizePomDep(d)
		if !ok {
			continue
		}
		dep.Scope = "plugin"
		pom.Plugins = append(pom.Plugins, dep)
	}
	return pom, nil
}

func normalizePomDep(d pomDependency) (Dependency, bool) {
	group := strings.TrimSpace(d.GroupID)
	artifact := strings.TrimSpace(d.ArtifactID)
	if group == "" || artifact == "" {
		return Dependency{}, false
	}
	scope := strings.TrimSpace(d.Scope)
	if scope == "" {
		scope = "compile"
	}
	return Dependency{
		GroupID:    group,
		ArtifactID: artifact,
		Version:    strings.TrimSpace(d.Version),
		Scope:      scope,
	}, true
}

var (
	gradleDepRe = regexp.MustCompile(
		`(implementation|api|compile|runtimeOnly|testImplementation|annotationProcessor)` +
			`(?:\s*\(\s*|\s+)['"]([\w.\-]+):([\w.\-]+):([\w.\-${}]+)['"]`)

	gradlePluginRe = regexp.MustCompile(`(?:apply\s+plugin:\s*|\bid\s+)['"]([^'"]+)['"]`)

	gradlePropRefRe = regexp.MustCompile(`^\$\{?([\w.]+)\}?$`)
)

// GradleDependencies matches line-oriented Gradle dependency declarations,
// both Groovy ("implementation 'g:a:v'") and Kotlin DSL
// ("implementation(\"g:a:v\")") shapes. The configuration keyword is recorded
// as the dependency scope. Version placeholders like "$fooVersion" are
// resolved against props when a matching key exists.
func GradleDependencies(src string, props map[string]string) []Dependency {
	var out []Dependency
	for _, m := range gradleDepRe.FindAllStringSubmatch(src, -1) {
		version := m[4]
		if ref := gradlePropRefRe.FindStringSubmatch(version); ref != nil {
			if v, ok := props[ref[1]]; ok {
				version = v
			}
		}
		out = append(out, Dependency{
			GroupID:    m[2],
			ArtifactID: m[3],
			Version:    version,
			Scope:      m[1],
		})
	}
	return out
}

// GradlePlugins matches both "apply plugin: 'x'" and plugins-block "id 'x'"
// declarations.
func GradlePlugins(src string) []string {
	var out []string
	for _, m := range gradlePluginRe.FindAllStringSubmatch(src, -1) {
		out = append(out, m[1])
	}
	return out
}
