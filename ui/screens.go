package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/bigfish/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ScreenUI is a full-screen ebitenui page: a centred column with a title,
// an optional message and a row of buttons.
type ScreenUI struct {
	UI *ebitenui.UI

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// Action is one button on a screen.
type Action struct {
	Label   string
	OnClick func()
}

// NewStartUI builds the start screen.
func NewStartUI(onStart func()) *ScreenUI {
	return newScreenUI(cfg.UI.Title, "Eat smaller fish. Avoid bigger ones.",
		Action{Label: "Start", OnClick: onStart},
	)
}

// NewEndUI builds the end screen with the win or lose message.
func NewEndUI(won bool, onRestart, onHome func()) *ScreenUI {
	msg := cfg.UI.LoseMessage
	if won {
		msg = cfg.UI.WinMessage
	}
	return newScreenUI(msg, "",
		Action{Label: "Restart", OnClick: onRestart},
		Action{Label: "Home", OnClick: onHome},
	)
}

func newScreenUI(title, subtitle string, actions ...Action) *ScreenUI {
	s := &ScreenUI{}
	s.loadFonts()
	s.buildUI(title, subtitle, actions)
	return s
}

func (s *ScreenUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	s.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleFontSize,
	}
	s.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
}

func (s *ScreenUI) buildUI(title, subtitle string, actions []Action) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor.RGBA())),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &s.titleFace, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor.RGBA(),
		}),
	))

	if subtitle != "" {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(subtitle, &s.normalFace, &widget.LabelColor{
				Idle: color.RGBA{200, 220, 255, 255},
			}),
		))
	}

	buttonRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	for _, a := range actions {
		buttonRow.AddChild(s.button(a))
	}
	contentContainer.AddChild(buttonRow)

	rootContainer.AddChild(contentContainer)
	s.UI = &ebitenui.UI{Container: rootContainer}
}

func (s *ScreenUI) button(a Action) *widget.Button {
	onClick := a.OnClick
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(a.Label, &s.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 140, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 180, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 110, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
