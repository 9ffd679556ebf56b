package extract

import (
	"testing"
)

func TestComments_KindsAndOrder(t *testing.T) {
	src := `/**
 * Entry point for the billing service.
 */
public class App {
	/* plain block */
	// trailing note
	void run() {}
}
`
	comments := Comments(src)
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3: %+v", len(comments), comments)
	}

	if comments[0].Kind != CommentDoc {
		t.Errorf("comments[0].Kind = %s, want doc", comments[0].Kind)
	}
	if comments[0].Text != "Entry point for the billing service." {
		t.Errorf("doc text = %q", comments[0].Text)
	}
	if comments[1].Kind != CommentBlock || comments[1].Text != "plain block" {
		t.Errorf("comments[1] = %+v", comments[1])
	}
	if comments[2].Kind != CommentLine || comments[2].Text != "trailing note" {
		t.Errorf("comments[2] = %+v", comments[2])
	}

	for i := 1; i < len(comments); i++ {
		if comments[i].Line < comments[i-1].Line {
			t.Errorf("comments out of line order: %d before %d", comments[i].Line, comments[i-1].Line)
		}
	}
}

func TestComments_Tags(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want CommentTag
	}{
		{"todo upper", "// TODO handle retries", TagTodo},
		{"todo lower", "// todo: clean up", TagTodo},
		{"fixme", "/* FIXME leaks the connection */", TagFixme},
		{"fixme beats todo", "// FIXME then TODO", TagFixme},
		{"plain", "// just a note", TagPlain},
		{"todo substring not tagged", "// mastodon client", TagPlain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := Comments(tt.src)
			if len(comments) != 1 {
				t.Fatalf("got %d comments, want 1", len(comments))
			}
			if comments[0].Tag != tt.want {
				t.Errorf("tag = %s, want %s", comments[0].Tag, tt.want)
			}
		})
	}
}

// The line-comment pattern also fires on "//" sequences inside block
// comments; those must be suppressed.
func TestComments_NoLineMatchInsideBlock(t *testing.T) {
	src := "/* see https://example.com/docs */\n"
	comments := Comments(src)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1: %+v", len(comments), comments)
	}
	if comments[0].Kind != CommentBlock {
		t.Errorf("kind = %s, want block", comments[0].Kind)
	}
}

func TestComments_DocStarStripping(t *testing.T) {
	src := `/**
 * First line.
 * Second line.
 */
`
	comments := Comments(src)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Text != "First line. Second line." {
		t.Errorf("text = %q", comments[0].Text)
	}
}
