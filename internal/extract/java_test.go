package extract

import (
	"strings"
	"testing"
)

func TestPackage(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  string
		found bool
	}{
		{"simple", "package com.acme;\n", "com.acme", true},
		{"nested", "package com.acme.billing.core;", "com.acme.billing.core", true},
		{"with leading comment", "// header\npackage org.example ;\n", "org.example", true},
		{"missing", "public class Foo {}", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Package(tt.src)
			if ok != tt.found || got != tt.want {
				t.Errorf("Package() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestImports(t *testing.T) {
	src := `package com.acme;

import java.util.List;
import java.util.*;
import static org.junit.Assert.assertEquals;
`
	imps := Imports(src)
	if len(imps) != 3 {
		t.Fatalf("got %d imports, want 3", len(imps))
	}
	if imps[0].Path != "java.util.List" || imps[0].Wildcard || imps[0].Static {
		t.Errorf("imps[0] = %+v", imps[0])
	}
	if imps[1].Path != "java.util" || !imps[1].Wildcard {
		t.Errorf("imps[1] = %+v", imps[1])
	}
	if imps[2].Path != "org.junit.Assert.assertEquals" || !imps[2].Static {
		t.Errorf("imps[2] = %+v", imps[2])
	}
	if imps[0].Line != 3 {
		t.Errorf("imps[0].Line = %d, want 3", imps[0].Line)
	}
}

func TestClasses_Declaration(t *testing.T) {
	src := `package com.acme;

@Service
@Deprecated
public final class OrderService extends BaseService implements Closeable, Runnable {
	private int count;
}
`
	classes := Classes(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	c := classes[0]
	if c.Name != "OrderService" || c.Kind != ClassKindClass {
		t.Errorf("name/kind = %s/%s", c.Name, c.Kind)
	}
	if len(c.Annotations) != 2 || c.Annotations[0] != "Service" || c.Annotations[1] != "Deprecated" {
		t.Errorf("annotations = %v", c.Annotations)
	}
	if len(c.Modifiers) != 2 || c.Modifiers[0] != "public" || c.Modifiers[1] != "final" {
		t.Errorf("modifiers = %v", c.Modifiers)
	}
	if c.Extends != "BaseService" {
		t.Errorf("extends = %q", c.Extends)
	}
	if len(c.Implements) != 2 || c.Implements[0] != "Closeable" || c.Implements[1] != "Runnable" {
		t.Errorf("implements = %v", c.Implements)
	}
	if !strings.Contains(c.Body, "private int count;") {
		t.Errorf("body = %q", c.Body)
	}
}

func TestClasses_InterfaceAndEnum(t *testing.T) {
	src := `
public interface Repository {
	void save();
}

enum Color { RED, GREEN }
`
	classes := Classes(src)
	if len(classes) != 2 {
		t.Fatalf("got %d declarations, want 2", len(classes))
	}
	if classes[0].Name != "Repository" || classes[0].Kind != ClassKindInterface {
		t.Errorf("classes[0] = %s/%s", classes[0].Name, classes[0].Kind)
	}
	if classes[1].Name != "Color" || classes[1].Kind != ClassKindEnum {
		t.Errorf("classes[1] = %s/%s", classes[1].Name, classes[1].Kind)
	}
}

// Inner declarations must not surface at the outer level: the scan resumes
// past each declaration's body, and recursion into Body finds them instead.
func TestClasses_InnerNotReportedAtTopLevel(t *testing.T) {
	src := `
public class Outer {
	public class Inner {
		void m() {}
	}
}

class Second {}
`
	top := Classes(src)
	if len(top) != 2 {
		t.Fatalf("got %d top-level classes, want 2", len(top))
	}
	if top[0].Name != "Outer" || top[1].Name != "Second" {
		t.Errorf("top-level names = %s, %s", top[0].Name, top[1].Name)
	}

	inner := Classes(top[0].Body)
	if len(inner) != 1 || inner[0].Name != "Inner" {
		t.Fatalf("inner = %+v", inner)
	}
}

func TestClasses_BodyLine(t *testing.T) {
	src := `package com.acme;

public class Wide
		extends Base {
	void a() {}
}
`
	classes := Classes(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes", len(classes))
	}
	if classes[0].Line != 3 {
		t.Errorf("declaration line = %d, want 3", classes[0].Line)
	}
	if classes[0].BodyLine != 4 {
		t.Errorf("body line = %d, want 4", classes[0].BodyLine)
	}
}

func TestClasses_UnclosedBody(t *testing.T) {
	src := "public class Broken {\n\tvoid m() {\n" // missing closes
	classes := Classes(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	if classes[0].Body != "" {
		t.Errorf("expected empty body for unclosed declaration, got %q", classes[0].Body)
	}
}

func TestMethods_Basics(t *testing.T) {
	body := `
	@Override
	public String render(int width, boolean wrap) throws IOException, TemplateException {
		return helper(width);
	}

	private static void reset() {}
`
	methods := Methods(body)
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2: %+v", len(methods), methods)
	}

	m := methods[0]
	if m.Name != "render" || m.ReturnType != "String" {
		t.Errorf("methods[0] = %s/%s", m.Name, m.ReturnType)
	}
	if len(m.Annotations) != 1 || m.Annotations[0] != "Override" {
		t.Errorf("annotations = %v", m.Annotations)
	}
	if len(m.Modifiers) != 1 || m.Modifiers[0] != "public" {
		t.Errorf("modifiers = %v", m.Modifiers)
	}
	if len(m.Throws) != 2 || m.Throws[0] != "IOException" || m.Throws[1] != "TemplateException" {
		t.Errorf("throws = %v", m.Throws)
	}
	if len(m.Params) != 2 {
		t.Fatalf("params = %+v", m.Params)
	}
	if m.Params[0].Type != "int" || m.Params[0].Name != "width" {
		t.Errorf("params[0] = %+v", m.Params[0])
	}
	if m.Abstract {
		t.Error("concrete method reported abstract")
	}

	if methods[1].Name != "reset" || methods[1].ReturnType != "void" {
		t.Errorf("methods[1] = %+v", methods[1])
	}
}

// Constructors have no return type, so the last modifier lands in the
// return-type slot; it must be folded back into the modifiers.
func TestMethods_Constructor(t *testing.T) {
	body := `
	public Foo(String name) {
		this.name = name;
	}
`
	methods := Methods(body)
	if len(methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(methods))
	}
	m := methods[0]
	if m.Name != "Foo" {
		t.Errorf("name = %q", m.Name)
	}
	if m.ReturnType != "" {
		t.Errorf("return type = %q, want empty", m.ReturnType)
	}
	if len(m.Modifiers) != 1 || m.Modifiers[0] != "public" {
		t.Errorf("modifiers = %v", m.Modifiers)
	}
}

func TestMethods_AbstractDeclaration(t *testing.T) {
	body := `
	String name();
	int count(boolean distinct);
`
	methods := Methods(body)
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(methods))
	}
	for _, m := range methods {
		if !m.Abstract {
			t.Errorf("%s not reported abstract", m.Name)
		}
	}
}

// Statements inside method bodies must not be misread as declarations, and
// members of nested types must not be attributed to the enclosing level.
func TestMethods_SkipsBodiesAndNestedTypes(t *testing.T) {
	body := `
	public int outer() {
		int total = compute(1);
		return combine(total);
	}

	public static class Nested {
		public void hidden() {}
	}

	void after() {}
`
	methods := Methods(body)
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2: %+v", len(methods), methods)
	}
	if methods[0].Name != "outer" || methods[1].Name != "after" {
		t.Errorf("names = %s, %s", methods[0].Name, methods[1].Name)
	}
}

func TestMethods_Varargs(t *testing.T) {
	methods := Methods("void log(String fmt, Object... args) {}\n")
	if len(methods) != 1 || len(methods[0].Params) != 2 {
		t.Fatalf("methods = %+v", methods)
	}
	p := methods[0].Params[1]
	if p.Type != "Object[]" || p.Name != "args" {
		t.Errorf("varargs param = %+v", p)
	}
}

func TestMethods_ParamAnnotations(t *testing.T) {
	methods := Methods("void save(@NotNull @Valid User user) {}\n")
	if len(methods) != 1 || len(methods[0].Params) != 1 {
		t.Fatalf("methods = %+v", methods)
	}
	p := methods[0].Params[0]
	if p.Type != "User" || p.Name != "user" {
		t.Errorf("param = %+v", p)
	}
	if len(p.Annotations) != 2 || p.Annotations[0] != "NotNull" || p.Annotations[1] != "Valid" {
		t.Errorf("annotations = %v", p.Annotations)
	}
}

// Generic type arguments mis-split on their inner comma; the half with no
// whitespace boundary is dropped. Documented limitation.
func TestMethods_GenericParamMisSplit(t *testing.T) {
	methods := Methods("void put(Map<String, Integer> counts) {}\n")
	if len(methods) != 1 {
		t.Fatalf("methods = %+v", methods)
	}
	params := methods[0].Params
	if len(params) != 1 {
		t.Fatalf("params = %+v", params)
	}
	if params[0].Name != "counts" {
		t.Errorf("param name = %q", params[0].Name)
	}
}

func TestFields(t *testing.T) {
	body := `
	private static final Logger log = LoggerFactory.getLogger(App.class);
	protected String name;
	int localLooking;
`
	fields := Fields(body)
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2 (unmodified declarations are skipped): %+v", len(fields), fields)
	}
	if fields[0].Name != "log" || fields[0].Type != "Logger" || !fields[0].HasInitializer {
		t.Errorf("fields[0] = %+v", fields[0])
	}
	if fields[1].Name != "name" || fields[1].Type != "String" || fields[1].HasInitializer {
		t.Errorf("fields[1] = %+v", fields[1])
	}
}

func TestAnnotations(t *testing.T) {
	got := Annotations(`@Service @Transactional(readOnly = true) @com.acme.Audit`)
	want := []string{"Service", "Transactional", "com.acme.Audit"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("[%d] got %q, want %q", i, got[i], want[i])
		}
	}
}
