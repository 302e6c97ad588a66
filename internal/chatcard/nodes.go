package chatcard

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Button is a card action button
type Button struct {
	Action string
	Label  string

	// Data holds extra data-* attributes without the "data-" prefix
	Data map[string]string
}

// Node builds the <button> element
func (b Button) Node() *html.Node {
	attrs := map[string]string{"data-action": b.Action}
	for k, v := range b.Data {
		attrs["data-"+k] = v
	}
	n := Element(atom.Button, attrs)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: b.Label})
	return n
}

func buttonFromNode(n *html.Node) Button {
	b := Button{
		Action: attrOr(n, "data-action", ""),
		Label:  textOf(n),
		Data:   map[string]string{},
	}
	for _, a := range n.Attr {
		if strings.HasPrefix(a.Key, "data-") && a.Key != "data-action" {
			b.Data[strings.TrimPrefix(a.Key, "data-")] = a.Val
		}
	}
	return b
}

// Element creates an element. Attributes are written in key order so the
// rendered markup is stable.
func Element(a atom.Atom, attrs map[string]string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	return n
}

// Separator creates an <hr> element
func Separator() *html.Node {
	return Element(atom.Hr, nil)
}

// RollBlock creates the block showing a titled roll. rendered is the roll's own markup.
func RollBlock(title, rendered string) (*html.Node, error) {
	block := Element(atom.Div, map[string]string{"class": ClassRoll})

	flavor := Element(atom.Span, map[string]string{"class": ClassFlavor})
	flavor.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	block.AppendChild(flavor)

	nodes, err := html.ParseFragment(strings.NewReader(rendered), block)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered roll: %w", err)
	}
	for _, n := range nodes {
		block.AppendChild(n)
	}
	return block, nil
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attrOr(n, "class", "")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if match(n) {
			return n
		}
		if found := findFirst(n, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(parent *html.Node) {
		for n := parent.FirstChild; n != nil; n = n.NextSibling {
			if match(n) {
				out = append(out, n)
			}
			walk(n)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

func insertAfter(ref, n *html.Node) {
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrOr(n *html.Node, key, fallback string) string {
	if v, ok := getAttr(n, key); ok {
		return v
	}
	return fallback
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
