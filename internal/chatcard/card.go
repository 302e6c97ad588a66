// Package chatcard is a typed view over chat card markup. Cards are parsed once,
// edited through explicit insert/remove operations and serialized by Render.
package chatcard

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names of the card regions
const (
	ClassCard    = "chat-card"
	ClassContent = "card-content"
	ClassButtons = "card-buttons"
	ClassRoll    = "card-roll"
	ClassFlavor  = "flavor-text"
	ClassName    = "item-name"
)

// Card is a parsed chat card
type Card struct {
	root *html.Node
}

// Parse parses card markup
func Parse(markup string) (*Card, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat card: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Card{root: root}, nil
}

// Render serializes the card
func (c *Card) Render() (string, error) {
	var buf bytes.Buffer
	for n := c.root.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render chat card: %w", err)
		}
	}
	return buf.String(), nil
}

// Container returns the .chat-card element, falling back to the first element
func (c *Card) Container() *html.Node {
	if n := findFirst(c.root, hasClass(ClassCard)); n != nil {
		return n
	}
	return findFirst(c.root, func(n *html.Node) bool { return n.Type == html.ElementNode })
}

// Attr reads an attribute of the card container
func (c *Card) Attr(name string) (string, bool) {
	container := c.Container()
	if container == nil {
		return "", false
	}
	return getAttr(container, name)
}

// AddClass adds a class to the card container once
func (c *Card) AddClass(class string) {
	container := c.Container()
	if container == nil {
		return
	}
	classes := strings.Fields(attrOr(container, "class", ""))
	if slices.Contains(classes, class) {
		return
	}
	setAttr(container, "class", strings.Join(append(classes, class), " "))
}

// HasClass reports whether the card container carries class
func (c *Card) HasClass(class string) bool {
	container := c.Container()
	return container != nil && hasClass(class)(container)
}

// Title returns the text of the item name heading
func (c *Card) Title() string {
	return textOf(findFirst(c.root, hasClass(ClassName)))
}

// FlavorText returns the title of the first roll block
func (c *Card) FlavorText() string {
	return textOf(findFirst(c.root, hasClass(ClassFlavor)))
}

// ContentText returns the text of the descriptive content
func (c *Card) ContentText() string {
	return textOf(c.content())
}

// RemoveActions removes every element whose data-action is one of actions and
// returns how many were removed
func (c *Card) RemoveActions(actions ...string) int {
	matches := findAll(c.root, func(n *html.Node) bool {
		action, ok := getAttr(n, "data-action")
		return ok && slices.Contains(actions, action)
	})
	for _, n := range matches {
		n.Parent.RemoveChild(n)
	}
	return len(matches)
}

// Buttons returns the buttons of the button area in document order
func (c *Card) Buttons() []Button {
	area := c.buttonArea()
	if area == nil {
		return nil
	}
	nodes := findAll(area, func(n *html.Node) bool { return n.DataAtom == atom.Button })
	buttons := make([]Button, 0, len(nodes))
	for _, n := range nodes {
		buttons = append(buttons, buttonFromNode(n))
	}
	return buttons
}

// AppendToContent appends nodes to the end of the descriptive content.
// It is a no-op when the card has no content region.
func (c *Card) AppendToContent(nodes ...*html.Node) {
	content := c.content()
	if content == nil {
		return
	}
	for _, n := range nodes {
		content.AppendChild(n)
	}
}

// InsertAfterContent inserts n directly after the descriptive content, or at
// the end of the container when there is no content region
func (c *Card) InsertAfterContent(n *html.Node) {
	if content := c.content(); content != nil {
		insertAfter(content, n)
		return
	}
	if container := c.Container(); container != nil {
		container.AppendChild(n)
	}
}

// InsertBeforeButtons inserts n directly before the button area, if there is one
func (c *Card) InsertBeforeButtons(n *html.Node) bool {
	area := c.buttonArea()
	if area == nil {
		return false
	}
	area.Parent.InsertBefore(n, area)
	return true
}

// PrependButtons places buttons ahead of any existing buttons, creating the
// button area when the card has none
func (c *Card) PrependButtons(buttons ...Button) {
	area := c.ensureButtonArea()
	if area == nil {
		return
	}
	first := area.FirstChild
	for _, b := range buttons {
		area.InsertBefore(b.Node(), first)
	}
}

// Find returns the nodes carrying class, for read-only inspection
func (c *Card) Find(class string) []*html.Node {
	return findAll(c.root, hasClass(class))
}

func (c *Card) content() *html.Node {
	return findFirst(c.root, hasClass(ClassContent))
}

func (c *Card) buttonArea() *html.Node {
	return findFirst(c.root, hasClass(ClassButtons))
}

func (c *Card) ensureButtonArea() *html.Node {
	if area := c.buttonArea(); area != nil {
		return area
	}
	container := c.Container()
	if container == nil {
		return nil
	}
	area := Element(atom.Div, map[string]string{"class": ClassButtons})
	container.AppendChild(area)
	return area
}
