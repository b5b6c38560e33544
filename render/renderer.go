package render

import (
	"strings"
	"time"

	"canteen-widget/menu"
	"canteen-widget/models"
)

const (
	defaultGradientColor = "ffffff"

	titleFontSize    = 12
	messageFontSize  = 14
	headerFontSize   = 14
	counterFontSize  = 12
	mealFontSize     = 12
	allergenFontSize = 10
)

// Renderer draws menus and messages of one widget config onto a Surface.
type Renderer struct {
	cfg models.WidgetConfig
}

func NewRenderer(cfg models.WidgetConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// GradientFor returns the background of a config: white without colors, a plain color with one,
// the first two colors otherwise.
func GradientFor(colors []string) Gradient {
	switch len(colors) {
	case 0:
		return Gradient{Start: defaultGradientColor, End: defaultGradientColor}
	case 1:
		return Gradient{Start: colors[0], End: colors[0]}
	default:
		return Gradient{Start: colors[0], End: colors[1]}
	}
}

func (r *Renderer) style(s Surface) {
	if r.cfg.OpenURL != "" {
		s.SetURL(r.cfg.OpenURL)
	}
	s.SetBackgroundGradient(GradientFor(r.cfg.GradientColors))
}

func (r *Renderer) text(key string) string {
	return Text(r.cfg.Language, key)
}

// Menu draws the menu of date. An empty view draws the localized "no menu" message,
// worded for today when date and today are the same day.
func (r *Renderer) Menu(s Surface, view models.MenuView, date, today time.Time) {
	r.style(s)

	if len(view) == 0 {
		r.NoMenu(s, date, today)
		return
	}

	s.AddText(TextBlock{
		Text:  r.text(KeyTitle) + " (" + menu.FormatDate(date) + ")",
		Font:  Font{Size: titleFontSize, Weight: FontRegular},
		Color: r.cfg.TextColor,
	})
	s.AddSpacer(2)

	if len(r.cfg.UserAllergens) > 0 {
		names := menu.AllergenNames(r.cfg.UserAllergens, r.cfg.Language)
		s.AddText(TextBlock{
			Text:  r.text(KeyAllergenMessage) + "\n" + strings.TrimSuffix(strings.Join(names, ", "), ", "),
			Font:  Font{Size: allergenFontSize, Weight: FontItalic},
			Color: r.cfg.TextColor,
		})
		s.AddSpacer(1)
	}

	for _, canteen := range view {
		s.AddText(TextBlock{
			Text:  canteen.Canteen,
			Font:  Font{Size: headerFontSize, Weight: FontBold},
			Color: r.cfg.HeaderColor,
		})
		for _, counter := range canteen.Counters {
			s.AddText(TextBlock{
				Text:  counter.Counter,
				Font:  Font{Size: counterFontSize, Weight: FontBold},
				Color: r.cfg.TextColor,
			})
			for _, meal := range counter.Meals {
				s.AddText(TextBlock{
					Text:  meal,
					Font:  Font{Size: mealFontSize, Weight: FontRegular},
					Color: r.cfg.TextColor,
				})
				s.AddSpacer(1)
			}
		}
		s.AddSpacer(sectionSpacer)
	}
}

// NoMenu draws only the "no menu" message.
func (r *Renderer) NoMenu(s Surface, date, today time.Time) {
	key := KeyNoMenuTomorrow
	if menu.IsSameDay(date, today) {
		key = KeyNoMenuToday
	}
	s.AddText(TextBlock{
		Text:  r.text(key),
		Font:  Font{Size: messageFontSize, Weight: FontRegular},
		Color: r.cfg.TextColor,
	})
}

// Error draws the localized error message. The error itself is only shown when the config asks for details.
func (r *Renderer) Error(s Surface, err error) {
	r.style(s)

	s.AddText(TextBlock{
		Text:  r.text(KeyErrorMessage),
		Font:  Font{Size: messageFontSize, Weight: FontRegular},
		Color: r.cfg.ErrorColor,
	})
	if r.cfg.ShowErrorDetails && err != nil {
		s.AddSpacer(1)
		s.AddText(TextBlock{
			Text:  err.Error(),
			Font:  Font{Size: allergenFontSize, Weight: FontItalic},
			Color: r.cfg.ErrorColor,
		})
	}
}
