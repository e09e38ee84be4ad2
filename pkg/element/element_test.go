package element

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	vserrors "github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/props"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

func childTexts(n *vdom.VNode) []string {
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Text)
	}
	return out
}

func TestCreateTag(t *testing.T) {
	div := New("div")
	node, err := div.Create(vdom.Props{
		"id":        "main",
		"class":     "b",
		"className": "a",
		"data":      map[string]any{"userId": 7, "hidden": false},
	}, "hello")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if node.Kind != vdom.KindElement || node.Tag != "div" || node.NS != vdom.NamespaceHTML {
		t.Errorf("node = %v %q %v", node.Kind, node.Tag, node.NS)
	}
	want := vdom.Props{"id": "main", "className": "a b", "data-user-id": "7"}
	if !reflect.DeepEqual(node.Props, want) {
		t.Errorf("Props = %v, want %v", node.Props, want)
	}
	if got := childTexts(node); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("children = %v", got)
	}
}

func TestCreateStringMapProps(t *testing.T) {
	node := New("div").El(map[string]string{"id": "x", "class": "a"})
	want := vdom.Props{"id": "x", "className": "a"}
	if !reflect.DeepEqual(node.Props, want) {
		t.Errorf("Props = %#v, want %#v", node.Props, want)
	}
	if len(node.Children) != 0 {
		t.Errorf("children = %v, want none", childTexts(node))
	}
}

func TestCreateChildrenOrder(t *testing.T) {
	node, err := New("ul").Create(vdom.Props{"children": []any{"A", "B"}}, "C")
	if err != nil {
		t.Fatal(err)
	}
	if got := childTexts(node); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("children = %v, want [A B C]", got)
	}
	if node.Props != nil {
		t.Errorf("Props = %v, want nil once children are taken out", node.Props)
	}
}

func TestCreateBareChild(t *testing.T) {
	span := New("span")
	inner := New("b").El(nil, "x")

	tests := []struct {
		name string
		arg  any
	}{
		{"string", "text"},
		{"number", 42},
		{"element", inner},
		{"explicit child", props.Child(vdom.Props{"not": "props"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viaArg, err := span.Create(tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			viaBag, err := span.Create(vdom.Props{"children": routedChild(tt.arg)})
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(viaArg, viaBag) {
				t.Errorf("bare child %v differs from {children: child}", tt.arg)
			}
			if viaArg.Props != nil {
				t.Errorf("Props = %v, want nil", viaArg.Props)
			}
			if len(viaArg.Children) != 1 {
				t.Errorf("children = %d, want 1", len(viaArg.Children))
			}
		})
	}
}

func routedChild(arg any) any {
	return props.Route(arg)[props.KeyChildren]
}

func TestCreateNilArg(t *testing.T) {
	node, err := New("br").Create(nil)
	if err != nil {
		t.Fatal(err)
	}
	if node.Props != nil || len(node.Children) != 0 {
		t.Errorf("node = %+v, want bare element", node)
	}
}

func TestCreateDoesNotMutate(t *testing.T) {
	in := vdom.Props{
		"class":    []string{"a"},
		"data":     map[string]any{"x": 1},
		"children": "c",
	}
	snapshot := vdom.Props{
		"class":    []string{"a"},
		"data":     map[string]any{"x": 1},
		"children": "c",
	}
	f := Styled("p", WithCompiler(style.NewSheet(style.SheetConfig{})))(style.Declarations{"color": "red"})
	if _, err := f.Create(in); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestCreateDataError(t *testing.T) {
	_, err := New("div").Create(vdom.Props{"data": map[string]any{"fn": func() {}}})
	var unsupported *json.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *json.UnsupportedTypeError", err)
	}
}

func TestElPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("El should panic when Create fails")
		}
	}()
	New("div").El(vdom.Props{"data": map[string]any{"ch": make(chan int)}})
}

func TestFuncMatchesEl(t *testing.T) {
	li := New("li")
	fn := li.Func()
	if !reflect.DeepEqual(fn(nil, "x"), li.El(nil, "x")) {
		t.Error("Func() should behave like El")
	}
}

func TestZeroFactory(t *testing.T) {
	var f Factory
	if !f.IsZero() {
		t.Fatal("zero Factory should report IsZero")
	}
	node, err := f.Create(vdom.Props{"id": "x"}, "child")
	if node != nil || err != nil {
		t.Errorf("Create() = %v, %v, want nil, nil", node, err)
	}
	if !f.Extend(style.Declarations{"color": "red"}).IsZero() {
		t.Error("extending the zero factory should stay zero")
	}
	if f.ClassName() != "" || f.Selector() != "" {
		t.Error("zero factory should have no class")
	}
}

func TestNamespaceOption(t *testing.T) {
	node := New("circle", WithNamespace(vdom.NamespaceSVG)).El(vdom.Props{"r": 4})
	if node.NS != vdom.NamespaceSVG {
		t.Errorf("NS = %v, want svg", node.NS)
	}
}

func TestComponentFactory(t *testing.T) {
	var got vdom.Props
	card := vdom.ComponentFunc(func(p vdom.Props) *vdom.VNode {
		got = p
		return New("section").El(nil)
	})

	node, err := NewComponent(card).Create(vdom.Props{
		"class": "raw",
		"data":  map[string]any{"x": 1},
	}, "body")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != vdom.KindComponent {
		t.Fatalf("Kind = %v, want component", node.Kind)
	}
	if _, ok := node.Props["data"]; !ok {
		t.Error("component should receive the raw data prop")
	}
	if node.Props["class"] != "raw" {
		t.Errorf("class = %v, want raw", node.Props["class"])
	}

	node.Expand()
	if children, ok := got["children"].([]*vdom.VNode); !ok || len(children) != 1 {
		t.Errorf("component children = %v", got["children"])
	}
}

func TestStyledClassAppendedLast(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	button := Styled("button", WithCompiler(sheet))(style.Declarations{"padding": 8})

	node := button.El(vdom.Props{"className": "x", "class": []any{"y", nil}}, "Go")
	want := "x y " + string(button.ClassName())
	if node.Props["className"] != want {
		t.Errorf("className = %v, want %q", node.Props["className"], want)
	}
	if _, ok := node.Props["class"]; ok {
		t.Error("class key should not survive")
	}
	if !sheet.Has(button.ClassName()) {
		t.Error("factory class should be registered in its sheet")
	}
	if button.Selector() != "."+string(button.ClassName()) {
		t.Errorf("Selector() = %q", button.Selector())
	}
	if button.Tag() != "button" {
		t.Errorf("Tag() = %q", button.Tag())
	}
}

func TestStyledWithoutCallerClasses(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	box := Styled("div", WithCompiler(sheet))(style.Declarations{"margin": 0})
	node := box.El(nil)
	if node.Props["className"] != string(box.ClassName()) {
		t.Errorf("className = %v, want %q", node.Props["className"], box.ClassName())
	}
}

func TestExtendDoesNotAffectBase(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	base := Styled("a", WithCompiler(sheet))(style.Declarations{"color": "red"})
	ext := base.Extend(style.Declarations{"color": "blue"})

	if v, _ := sheet.Resolve(ext.ClassName(), "color"); v != "blue" {
		t.Errorf("extended color = %q, want blue", v)
	}
	if v, _ := sheet.Resolve(base.ClassName(), "color"); v != "red" {
		t.Errorf("base color = %q, want red", v)
	}

	baseNode := base.El(nil)
	if strings.Contains(baseNode.Props["className"].(string), string(ext.ClassName())) {
		t.Error("base factory should not carry the extension class")
	}
	if ext.Tag() != base.Tag() {
		t.Error("extension should keep the target")
	}
}

func TestExtendUnstyled(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	plain := New("em", WithCompiler(sheet))
	styled := plain.Extend(style.Declarations{"fontStyle": "normal"})

	if plain.ClassName() != "" {
		t.Error("plain factory should stay unstyled")
	}
	if styled.ClassName() == "" || !sheet.Has(styled.ClassName()) {
		t.Error("extending an unstyled factory should create a style")
	}
}

func TestStyledComponent(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	comp := vdom.ComponentFunc(func(p vdom.Props) *vdom.VNode {
		return New("div").El(vdom.Props{"className": p["className"]})
	})
	f := StyledComponent(comp, WithCompiler(sheet))(style.Declarations{"gap": 4})

	node := f.El(vdom.Props{"class": "outer"})
	want := "outer " + string(f.ClassName())
	if node.Props["className"] != want {
		t.Errorf("className = %v, want %q", node.Props["className"], want)
	}
	if out := node.Expand(); out.Props["className"] != want {
		t.Errorf("rendered className = %v", out.Props["className"])
	}
}

func TestCreateFree(t *testing.T) {
	p := vdom.Props{"class": "a", "key": 3}
	node, err := Create("p", p, "x")
	if err != nil {
		t.Fatal(err)
	}
	if node.Props["className"] != "a" || node.Key != "3" {
		t.Errorf("node = %+v", node)
	}
	if _, ok := p["className"]; ok {
		t.Error("Create should not mutate its props")
	}

	comp, err := Create(func(vdom.Props) *vdom.VNode { return nil }, vdom.Props{"class": "a"})
	if err != nil {
		t.Fatal(err)
	}
	if comp.Kind != vdom.KindComponent || comp.Props["class"] != "a" {
		t.Errorf("component node = %+v", comp)
	}

	for _, tag := range []any{42, nil, []string{"div"}} {
		node, err := Create(tag, nil)
		if node != nil || !vserrors.HasCode(err, "E003") {
			t.Errorf("Create(%#v) = %v, %v; want E003", tag, node, err)
		}
	}
}
