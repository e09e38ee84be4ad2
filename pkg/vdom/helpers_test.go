package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v, want '<strong>Bold</strong>'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Text("a"), nil, "b", []*VNode{Text("c")})
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Errorf("Children len = %v, want 3", len(node.Children))
	}
}

func TestIfWhen(t *testing.T) {
	node := Text("x")
	if If(true, node) != node || If(false, node) != nil {
		t.Error("If mismatch")
	}

	called := false
	When(false, func() *VNode { called = true; return node })
	if called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *VNode { return node }) != node {
		t.Error("When(true) should return fn result")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "", "c"}, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Text(s)
	})
	if len(nodes) != 2 {
		t.Errorf("Range len = %d, want 2", len(nodes))
	}
}
