package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/canopy-ui/canopy/pkg/dom"
	"github.com/canopy-ui/canopy/pkg/middleware"
	"github.com/canopy-ui/canopy/pkg/serve"
	"github.com/canopy-ui/canopy/pkg/theme"
	"github.com/canopy-ui/canopy/pkg/upload"
	"github.com/canopy-ui/canopy/pkg/widgets"
)

func galleryCmd() *cobra.Command {
	var (
		addr      string
		uploadDir string
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Serve a demo page with every widget kind",
		Long: `Serve a demo page exercising every widget kind.

The gallery is a live playground: each connected browser gets its own
widget state, and /metrics exposes event and session metrics.

Examples:
  canopy gallery
  canopy gallery --addr=:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(addr, uploadDir)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":3000", "Listen address")
	cmd.Flags().StringVarP(&uploadDir, "uploads", "u", "", "Upload staging directory (default: temp dir)")

	return cmd
}

func runGallery(addr, uploadDir string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if uploadDir == "" {
		uploadDir = os.TempDir() + "/canopy-uploads"
	}
	store, err := upload.NewDiskStore(uploadDir, 10<<20)
	if err != nil {
		return fmt.Errorf("upload store: %w", err)
	}

	srv := serve.New(&serve.Config{
		Address: addr,
		Logger:  logger,
	})
	srv.SetUploadStore(store)
	srv.Use(middleware.Prometheus(), middleware.OpenTelemetry())
	srv.SetPage(galleryPage)

	return srv.Run()
}

// galleryPage builds a fresh widget set per session.
func galleryPage() dom.Component {
	th := theme.Default()

	sizes := widgets.NewOptions(
		widgets.Pair("Small", 1),
		widgets.Pair("Medium", 2),
		widgets.Pair("Large", 3),
	)
	colors := widgets.NewOptions(
		widgets.Pair("Red", "red"),
		widgets.Pair("Green", "green"),
		widgets.Pair("Blue", "blue"),
	)
	toppings := widgets.NewOptions(
		widgets.Pair("Cheese", "cheese"),
		widgets.Pair("Olives", "olives"),
		widgets.Pair("Onions", "onions"),
	)
	volumes := widgets.OptionsFromValues([]int{0, 25, 50, 75, 100})

	dropdown := must(widgets.Dropdown(th, sizes).Label("Size").Build())
	radio := must(widgets.RadioButtons(th, colors).Label("Color").Build())
	checks := must(widgets.Checkboxes(th, toppings).Label("Toppings").Build())
	toggle := must(widgets.ToggleButtons(th, volumes).Label("Volume").Build())
	slider := must(widgets.Slider(th, volumes).Label("Volume (slider)").Build())
	textbox := must(widgets.Textbox(th).Label("Name").Placeholder("your name").Build())
	spin := must(widgets.Spinbox(th).Label("Quantity").Range(0, 99).Step(1).Build())
	picker := must(widgets.FilePicker(th).Label("Attachment").Accept("image/*").Build())
	clicker := must(widgets.Button(th, "Click me").Build())

	tabs := must(widgets.Tabulator(th,
		[]string{"Summary", "Details"},
		[]*dom.VNode{
			dom.P("Pick options on the left and watch the server re-render."),
			dom.P("Every widget keeps its state in a reactive cell."),
		},
	).Build())

	return dom.Func(func() *dom.VNode {
		return dom.Div(dom.Class("gallery"),
			dom.H1("canopy gallery"),
			section("Selection", dropdown.Render(), radio.Render(), toggle.Render()),
			section("Multi-selection", checks.Render()),
			section("Ranges", slider.Render(), spin.Render()),
			section("Text", textbox.Render()),
			section("Files", picker.Render()),
			section("Actions",
				clicker.Render(),
				dom.Span(dom.Textf(" clicks: %d", clicker.Value().Get())),
			),
			section("Tabs", tabs.Render()),
		)
	})
}

func section(title string, nodes ...*dom.VNode) *dom.VNode {
	children := []any{dom.Class("gallery-section"), dom.H2(title)}
	for _, n := range nodes {
		children = append(children, n)
	}
	return dom.Section(children...)
}

func must[W any](w W, err error) W {
	if err != nil {
		panic(err)
	}
	return w
}
