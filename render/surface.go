package render

type FontWeight string

const (
	FontRegular FontWeight = "regular"
	FontBold    FontWeight = "bold"
	FontItalic  FontWeight = "italic"
)

type Font struct {
	Size   int        `json:"size"`
	Weight FontWeight `json:"weight"`
}

// TextBlock is a styled line (or lines) of text. Color is a hex string without '#'.
type TextBlock struct {
	Text  string `json:"text"`
	Font  Font   `json:"font"`
	Color string `json:"color"`
}

// Gradient is a two color vertical background.
type Gradient struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Surface is the drawing capability offered by the widget host.
type Surface interface {
	AddText(block TextBlock)
	AddSpacer(size int)
	SetBackgroundGradient(gradient Gradient)
	SetURL(url string)
}
