package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultsStyle holds the colors of the results screen.
type ResultsStyle struct {
	Background    color.RGBA
	Panel         color.RGBA
	Title         color.RGBA
	Text          color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
}

// ResultsUI shows the end-of-run counters with buttons to play again, go
// back to the menu or leave the game.
type ResultsUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnMainMenu  func()
	OnQuit     func()

	style ResultsStyle

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewResultsUI builds the screen. lines are the run summary; record, when
// not empty, is shown below them.
func NewResultsUI(style ResultsStyle, title string, lines []string, record string, onPlayAgain, onMainMenu, onQuit func()) *ResultsUI {
	ui := &ResultsUI{
		OnPlayAgain: onPlayAgain,
		OnMainMenu:  onMainMenu,
		OnQuit:      onQuit,
		style:       style,
	}
	ui.loadFonts()
	ui.buildUI(title, lines, record)
	return ui
}

func (ui *ResultsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *ResultsUI) buildUI(title string, lines []string, record string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(ui.style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 14, Bottom: 14, Left: 20, Right: 20}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(ui.style.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: ui.style.Title,
		}),
	))

	for _, line := range lines {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{
				Idle: ui.style.Text,
			}),
		))
	}

	if record != "" {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(record, &ui.smallFace, &widget.LabelColor{
				Idle: ui.style.Title,
			}),
		))
	}

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ResultsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.button("Play Again", func() {
		if ui.OnPlayAgain != nil {
			ui.OnPlayAgain()
		}
	}))
	container.AddChild(ui.button("Main Menu", func() {
		if ui.OnMainMenu != nil {
			ui.OnMainMenu()
		}
	}))
	container.AddChild(ui.button("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	return container
}

func (ui *ResultsUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(ui.style.ButtonIdle),
			Hover:   image.NewNineSliceColor(ui.style.ButtonHover),
			Pressed: image.NewNineSliceColor(ui.style.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    ui.style.Text,
			Hover:   ui.style.Text,
			Pressed: ui.style.Text,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ResultsUI) Update() {
	ui.UI.Update()
}
