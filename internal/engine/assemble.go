package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"javakg/internal/extract"
	"javakg/internal/graph"
)

// processFile reads one file, creates its File node, and dispatches to the
// category-specific assembler. Binary files get a File node only.
func (e *Engine) processFile(root, rel string) error {
	abs := filepath.Join(root, rel)
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	relSlash := filepath.ToSlash(rel)
	cat := Classify(relSlash)

	fileKey := graph.NodeKey(graph.KindFile, relSlash, "")
	e.g.UpsertNode(fileKey, graph.KindFile, relSlash, map[string]any{
		"path":     relSlash,
		"category": string(cat),
		"size":     len(data),
	})

	if !utf8.Valid(data) {
		return nil
	}
	src := string(data)

	switch cat {
	case CategorySource:
		e.processSource(fileKey, src)
	case CategoryMaven:
		if e.cfg.IsAnalyzerEnabled("build") {
			return e.processMaven(fileKey, relSlash, data)
		}
	case CategoryGradle:
		if e.cfg.IsAnalyzerEnabled("build") {
			e.processGradle(filepath.Dir(abs), fileKey, relSlash, src)
		}
	case CategoryConfig:
		if e.cfg.IsAnalyzerEnabled("config") {
			return e.processConfig(fileKey, relSlash, data)
		}
	case CategoryLocalization:
		if e.cfg.IsAnalyzerEnabled("localization") {
			e.processLocalizationFile(fileKey, relSlash, data)
		}
	case CategoryDocumentation:
		if e.cfg.IsAnalyzerEnabled("docs") {
			e.processDocumentation(fileKey, relSlash, src)
		}
	}
	return nil
}

// processSource assembles graph entities from a Java source file in a fixed
// order: package, imports, classes (recursing into members), comments, logs,
// integrations, versions, localizations.
func (e *Engine) processSource(fileKey, src string) {
	if name, ok := extract.Package(src); ok {
		pkgKey := graph.NodeKey(graph.KindPackage, name, "")
		e.g.UpsertNode(pkgKey, graph.KindPackage, name, nil)
		e.g.UpsertEdge(pkgKey, fileKey, graph.RelContainsFile)
	}

	for _, imp := range extract.Imports(src) {
		impKey := graph.NodeKey(graph.KindImport, imp.Path, "")
		e.g.UpsertNode(impKey, graph.KindImport, imp.Path, map[string]any{
			"wildcard": imp.Wildcard,
			"static":   imp.Static,
		})
		e.g.UpsertEdge(fileKey, impKey, graph.RelImports)
	}

	if e.cfg.IsAnalyzerEnabled("source") {
		for _, cls := range extract.Classes(src) {
			e.addClass(fileKey, cls, 0, true, 1)
		}
	}

	if e.cfg.IsAnalyzerEnabled("comments") {
		for _, c := range extract.Comments(src) {
			name := fmt.Sprintf("L%d", c.Line)
			key := graph.NodeKey(graph.KindComment, name, fileKey)
			e.g.UpsertNode(key, graph.KindComment, name, map[string]any{
				"kind": string(c.Kind),
				"tag":  string(c.Tag),
				"text": c.Text,
				"line": c.Line,
			})
			e.g.UpsertEdge(fileKey, key, graph.RelHasComment)
		}
	}

	if e.cfg.IsAnalyzerEnabled("logging") {
		for _, l := range extract.LogStatements(src) {
			name := fmt.Sprintf("%s L%d", l.Level, l.Line)
			key := graph.NodeKey(graph.KindLogStatement, name, fileKey)
			e.g.UpsertNode(key, graph.KindLogStatement, name, map[string]any{
				"framework": l.Framework,
				"level":     l.Level,
				"message":   l.Message,
				"line":      l.Line,
			})
			e.g.UpsertEdge(fileKey, key, graph.RelUses)
		}
	}

	if e.cfg.IsAnalyzerEnabled("integrations") {
		for _, in := range extract.Integrations(src) {
			key := graph.NodeKey(graph.KindIntegration, in.Name, "")
			e.g.UpsertNode(key, graph.KindIntegration, in.Name, map[string]any{
				"kind":   in.Kind,
				"detail": in.Detail,
			})
			e.g.UpsertEdge(fileKey, key, graph.RelIntegratesWith)
		}
	}

	if e.cfg.IsAnalyzerEnabled("versions") {
		for _, v := range extract.VersionConstraints(src) {
			name := fmt.Sprintf("%s %s", v.Kind, v.Value)
			key := graph.NodeKey(graph.KindVersion, name, fileKey)
			e.g.UpsertNode(key, graph.KindVersion, name, map[string]any{
				"kind":  v.Kind,
				"value": v.Value,
				"line":  v.Line,
			})
			e.g.UpsertEdge(fileKey, key, graph.RelHasVersion)
		}
	}

	if e.cfg.IsAnalyzerEnabled("localization") {
		for _, l := range extract.Localizations(src) {
			key := graph.NodeKey(graph.KindLocalization, l.Value, "")
			e.g.UpsertNode(key, graph.KindLocalization, l.Value, map[string]any{
				"kind":   l.Kind,
				"locale": l.Locale,
			})
			e.g.UpsertEdge(fileKey, key, graph.RelUses)
		}
	}
}

// addClass records one class/interface/enum declaration under parentKey and
// recurses into its members. topLevel controls the edge relation: files
// DEFINE their top-level declarations, classes HAVE their inner ones. base
// is the file line of the scanned span's first line; extractor line numbers
// are span-relative and get rebased against it, so nested declarations carry
// file coordinates.
func (e *Engine) addClass(parentKey string, cls extract.Class, depth int, topLevel bool, base int) {
	kind := classKind(cls.Kind)
	key := graph.NodeKey(kind, cls.Name, parentKey)

	attrs := map[string]any{
		"line": base + cls.Line - 1,
	}
	if len(cls.Modifiers) > 0 {
		attrs["modifiers"] = cls.Modifiers
	}
	if len(cls.Annotations) > 0 {
		attrs["annotations"] = cls.Annotations
	}
	if cls.Extends != "" {
		attrs["extends"] = cls.Extends
	}
	if len(cls.Implements) > 0 {
		attrs["implements"] = cls.Implements
	}
	if fields := extract.Fields(cls.Body); len(fields) > 0 {
		var fs []string
		for _, f := range fields {
			fs = append(fs, f.Type+" "+f.Name)
		}
		attrs["fields"] = fs
	}
	e.g.UpsertNode(key, kind, cls.Name, attrs)

	rel := graph.RelDefines
	if !topLevel {
		rel = graph.RelHasInnerClass
	}
	e.g.UpsertEdge(parentKey, key, rel)

	e.addAnnotations(key, cls.Annotations)

	// Body line 1 is the remainder of the opening-brace line.
	bodyBase := base + cls.BodyLine - 1

	for _, m := range extract.Methods(cls.Body) {
		e.addMethod(key, cls.Name, m, bodyBase)
	}

	if depth < e.cfg.MaxNestingDepth {
		for _, inner := range extract.Classes(cls.Body) {
			e.addClass(key, inner, depth+1, false, bodyBase)
		}
	}
}

// addMethod records one method declaration under classKey, plus its return
// type, parameters, and parameter types. base rebases the body-relative line
// to file coordinates.
func (e *Engine) addMethod(classKey, className string, m extract.Method, base int) {
	key := graph.NodeKey(graph.KindMethod, m.Name, classKey)
	isConstructor := m.Name == className && m.ReturnType == ""

	attrs := map[string]any{
		"line":           base + m.Line - 1,
		"is_constructor": isConstructor,
		"abstract":       m.Abstract,
	}
	if m.ReturnType != "" {
		attrs["return_type"] = m.ReturnType
	}
	if len(m.Modifiers) > 0 {
		attrs["modifiers"] = m.Modifiers
	}
	if len(m.Annotations) > 0 {
		attrs["annotations"] = m.Annotations
	}
	if len(m.Throws) > 0 {
		attrs["throws"] = m.Throws
	}
	e.g.UpsertNode(key, graph.KindMethod, m.Name, attrs)
	e.g.UpsertEdge(classKey, key, graph.RelHasMethod)

	e.addAnnotations(key, m.Annotations)

	if m.ReturnType != "" && !isConstructor {
		typeKey := e.addType(m.ReturnType)
		e.g.UpsertEdge(key, typeKey, graph.RelReturns)
	}

	for _, p := range m.Params {
		pKey := graph.NodeKey(graph.KindParameter, p.Name, key)
		pAttrs := map[string]any{"type": p.Type}
		if len(p.Annotations) > 0 {
			pAttrs["annotations"] = p.Annotations
		}
		e.g.UpsertNode(pKey, graph.KindParameter, p.Name, pAttrs)
		e.g.UpsertEdge(key, pKey, graph.RelHasParameter)

		typeKey := e.addType(p.Type)
		e.g.UpsertEdge(pKey, typeKey, graph.RelOfType)
	}
}

func (e *Engine) addAnnotations(ownerKey string, names []string) {
	for _, name := range names {
		key := graph.NodeKey(graph.KindAnnotation, name, "")
		e.g.UpsertNode(key, graph.KindAnnotation, name, nil)
		e.g.UpsertEdge(ownerKey, key, graph.RelAnnotatedWith)
	}
}

func (e *Engine) addType(name string) string {
	key := graph.NodeKey(graph.KindType, name, "")
	e.g.UpsertNode(key, graph.KindType, name, nil)
	return key
}

func classKind(k extract.ClassKind) graph.Kind {
	switch k {
	case extract.ClassKindInterface:
		return graph.KindInterface
	case extract.ClassKindEnum:
		return graph.KindEnum
	default:
		return graph.KindClass
	}
}

// processMaven assembles BuildScript and Dependency nodes from a pom.xml.
func (e *Engine) processMaven(fileKey, rel string, data []byte) error {
	pom, err := extract.ParsePom(data)
	if err != nil {
		return err
	}

	bsKey := graph.NodeKey(graph.KindBuildScript, rel, "")
	bsAttrs := map[string]any{"tool": "maven"}
	if pom.GroupID != "" {
		bsAttrs["group_id"] = pom.GroupID
	}
	if pom.ArtifactID != "" {
		bsAttrs["artifact_id"] = pom.ArtifactID
	}
	if pom.Version != "" {
		bsAttrs["version"] = pom.Version
	}
	e.g.UpsertNode(bsKey, graph.KindBuildScript, rel, bsAttrs)
	e.g.UpsertEdge(fileKey, bsKey, graph.RelContains)

	for _, d := range pom.Deps {
		depKey := e.addDependency(d)
		e.g.UpsertEdge(fileKey, depKey, graph.RelDependsOn)
	}
	for _, p := range pom.Plugins {
		depKey := e.addDependency(p)
		e.g.UpsertEdge(bsKey, depKey, graph.RelUses)
	}
	return nil
}

// processGradle assembles BuildScript and Dependency nodes from a Gradle
// build file. A sibling gradle.properties, when present, supplies values for
// version placeholders.
func (e *Engine) processGradle(dir, fileKey, rel, src string) {
	var props map[string]string
	if data, err := os.ReadFile(filepath.Join(dir, "gradle.properties")); err == nil {
		props = extract.PropertiesPairs(data)
	}

	bsKey := graph.NodeKey(graph.KindBuildScript, rel, "")
	bsAttrs := map[string]any{"tool": "gradle"}
	if plugins := extract.GradlePlugins(src); len(plugins) > 0 {
		bsAttrs["plugins"] = plugins
	}
	e.g.UpsertNode(bsKey, graph.KindBuildScript, rel, bsAttrs)
	e.g.UpsertEdge(fileKey, bsKey, graph.RelContains)

	for _, d := range extract.GradleDependencies(src, props) {
		depKey := e.addDependency(d)
		e.g.UpsertEdge(fileKey, depKey, graph.RelDependsOn)
	}
}

func (e *Engine) addDependency(d extract.Dependency) string {
	coord := d.Coordinate()
	key := graph.NodeKey(graph.KindDependency, coord, "")
	e.g.UpsertNode(key, graph.KindDependency, coord, map[string]any{
		"group_id":    d.GroupID,
		"artifact_id": d.ArtifactID,
		"version":     d.Version,
		"scope":       d.Scope,
	})
	return key
}

// processConfig assembles a Config node from a configuration file's flat
// key/value view.
func (e *Engine) processConfig(fileKey, rel string, data []byte) error {
	pairs, err := extract.ConfigPairs(rel, data)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cfgKey := graph.NodeKey(graph.KindConfig, rel, "")
	e.g.UpsertNode(cfgKey, graph.KindConfig, rel, map[string]any{
		"format":  configFormat(rel),
		"entries": len(pairs),
		"keys":    keys,
	})
	e.g.UpsertEdge(fileKey, cfgKey, graph.RelConfiguredBy)
	return nil
}

func configFormat(rel string) string {
	ext := filepath.Ext(rel)
	if ext == "" {
		return "properties"
	}
	return ext[1:]
}

// processLocalizationFile assembles Localization nodes from a
// locale-suffixed ResourceBundle file, one node per translation key. Keys
// are global, so the same key seen across locales resolves to one node.
func (e *Engine) processLocalizationFile(fileKey, rel string, data []byte) {
	locale, _ := extract.LocaleFromFilename(filepath.Base(rel))

	for key := range extract.PropertiesPairs(data) {
		locKey := graph.NodeKey(graph.KindLocalization, key, "")
		e.g.UpsertNode(locKey, graph.KindLocalization, key, map[string]any{
			"kind":   "resource_key",
			"locale": locale,
		})
		e.g.UpsertEdge(fileKey, locKey, graph.RelContains)
	}
}

// processDocumentation assembles a Documentation node and its section
// hierarchy from a markdown file.
func (e *Engine) processDocumentation(fileKey, rel, src string) {
	docKey := graph.NodeKey(graph.KindDocumentation, rel, "")
	attrs := map[string]any{
		"type": extract.DocType(filepath.Base(rel)),
	}
	if overview := extract.DocOverview(src); overview != "" {
		attrs["overview"] = overview
	}
	if deps := extract.DocDependencies(src); len(deps) > 0 {
		attrs["dependencies"] = deps
	}
	e.g.UpsertNode(docKey, graph.KindDocumentation, rel, attrs)
	e.g.UpsertEdge(fileKey, docKey, graph.RelHasDocumentation)

	for _, s := range extract.DocSections(src) {
		secKey := graph.NodeKey(graph.KindDocumentation, s.Title, docKey)
		e.g.UpsertNode(secKey, graph.KindDocumentation, s.Title, map[string]any{
			"level": s.Level,
			"line":  s.Line,
		})
		e.g.UpsertEdge(docKey, secKey, graph.RelContains)
	}
}
