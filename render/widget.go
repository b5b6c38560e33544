package render

import (
	"fmt"
	"io"
	"strings"
)

type ElementKind string

const (
	ElementText   ElementKind = "text"
	ElementSpacer ElementKind = "spacer"
)

// Element is one entry of a widget, either a text block or a spacer.
type Element struct {
	Kind   ElementKind `json:"kind"`
	Text   *TextBlock  `json:"text,omitempty"`
	Spacer int         `json:"spacer,omitempty"`
}

// Widget is a Surface that records everything drawn on it.
type Widget struct {
	URL        string    `json:"url,omitempty"`
	Background Gradient  `json:"background"`
	Elements   []Element `json:"elements"`
}

func NewWidget() *Widget {
	return &Widget{Elements: []Element{}}
}

func (w *Widget) AddText(block TextBlock) {
	w.Elements = append(w.Elements, Element{Kind: ElementText, Text: &block})
}

func (w *Widget) AddSpacer(size int) {
	w.Elements = append(w.Elements, Element{Kind: ElementSpacer, Spacer: size})
}

func (w *Widget) SetBackgroundGradient(gradient Gradient) {
	w.Background = gradient
}

func (w *Widget) SetURL(url string) {
	w.URL = url
}

// Texts returns the text of all text blocks in order.
func (w *Widget) Texts() []string {
	var texts []string
	for _, e := range w.Elements {
		if e.Kind == ElementText {
			texts = append(texts, e.Text.Text)
		}
	}
	return texts
}

// sectionSpacer is the spacer size placed between canteens.
const sectionSpacer = 4

// WriteText prints the widget as plain text, one line per text block and a blank line between sections.
func WriteText(out io.Writer, w *Widget) error {
	var b strings.Builder
	for i, e := range w.Elements {
		switch e.Kind {
		case ElementText:
			b.WriteString(e.Text.Text)
			b.WriteByte('\n')
		case ElementSpacer:
			if e.Spacer >= sectionSpacer && i < len(w.Elements)-1 {
				b.WriteByte('\n')
			}
		}
	}
	_, err := fmt.Fprint(out, b.String())
	return err
}
