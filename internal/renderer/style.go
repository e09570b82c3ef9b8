package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/config"
)

// KindStyle is how one bookmark kind is drawn.
type KindStyle struct {
	// Highlight is applied to the bookmark's text span.
	Highlight tcell.Style

	// Sign is applied to the bookmark's gutter glyph.
	Sign tcell.Style
}

// Styles maps bookmark kinds to their styles.
type Styles map[bookmark.Kind]KindStyle

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		bookmark.KindBookmark: {
			Highlight: tcell.StyleDefault.Background(tcell.ColorNavy),
			Sign:      tcell.StyleDefault.Foreground(tcell.ColorAqua),
		},
		bookmark.KindBreakpoint: {
			Highlight: tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite),
			Sign:      tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
		bookmark.KindDisabledBreakpoint: {
			Highlight: tcell.StyleDefault.Underline(true),
			Sign:      tcell.StyleDefault.Foreground(tcell.ColorGray),
		},
		bookmark.KindCurrentStatement: {
			Highlight: tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack),
			Sign:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
		},
	}
}

// For returns the style of a kind, falling back to the default styles.
func (s Styles) For(k bookmark.Kind) KindStyle {
	if ks, ok := s[k]; ok {
		return ks
	}
	return DefaultStyles()[k]
}

// StylesFromConfig applies the configured colours on top of DefaultStyles.
func StylesFromConfig(cfg config.Config) Styles {
	styles := DefaultStyles()
	for name, spec := range cfg.Styles {
		k, ok := bookmark.ParseKind(name)
		if !ok {
			continue
		}
		ks := styles[k]
		if spec.Background != "" || spec.Foreground != "" {
			ks.Highlight = applyColors(tcell.StyleDefault, spec.Foreground, spec.Background)
		}
		if spec.Sign != "" {
			ks.Sign = applyColors(tcell.StyleDefault, spec.Sign, "")
		}
		styles[k] = ks
	}
	return styles
}

func applyColors(style tcell.Style, fg, bg string) tcell.Style {
	if fg != "" {
		style = style.Foreground(tcell.GetColor(fg))
	}
	if bg != "" {
		style = style.Background(tcell.GetColor(bg))
	}
	return style
}
