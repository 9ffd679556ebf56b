package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"pom.xml", CategoryMaven},
		{"core/pom.xml", CategoryMaven},
		{"build.gradle", CategoryGradle},
		{"build.gradle.kts", CategoryGradle},
		{"settings.gradle", CategoryGradle},
		{"src/main/java/com/acme/Foo.java", CategorySource},
		{"src/main/resources/messages_en_US.properties", CategoryLocalization},
		{"src/main/resources/application.properties", CategoryConfig},
		{"src/main/resources/application.yml", CategoryConfig},
		{"src/main/resources/logback.xml", CategoryConfig},
		{"config.json", CategoryConfig},
		{".env", CategoryConfig},
		{"README.md", CategoryDocumentation},
		{"NOTES.txt", CategoryDocumentation},
		{"app.jar", CategoryGeneric},
		{"Makefile", CategoryGeneric},
	}
	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
