// Command popmenu-demo shows a button that opens an anchored popup menu.
//
// Usage:
//
//	popmenu-demo [--config menu.toml] [--lang zh] [--theme cannoli|nextui]
package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/i18n"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/platform/cannoli"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/platform/nextui"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/sdlhost"
	"github.com/spf13/cobra"
)

//go:embed resources
var resources embed.FS

var (
	configPath string
	lang       string
	themeName  string
	fontPath   string
	logLevel   string
	mask       bool
)

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	root := &cobra.Command{
		Use:          "popmenu-demo",
		Short:        "Anchored popup menu demo",
		SilenceUsage: true,
		RunE:         run,
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "menu config file (.toml or .json)")
	root.Flags().StringVar(&lang, "lang", "en", "language for item titles")
	root.Flags().StringVar(&themeName, "theme", "", "theme preset: cannoli or nextui")
	root.Flags().StringVar(&fontPath, "font", "", "TTF font path, falls back to FALLBACK_FONT")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.Flags().BoolVar(&mask, "mask", false, "dim the screen and dismiss on outside taps")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	popmenu.SetLogFilename("popmenu-demo.log")
	popmenu.SetRawLogLevel(logLevel)
	logger := popmenu.GetLogger()

	config, err := loadMenuConfig(cmd)
	if err != nil {
		return err
	}

	if err := initMessages(lang); err != nil {
		logger.Warn("Failed to load translations, using defaults", "lang", lang, "error", err)
	}

	options := sdlhost.DefaultOptions("popmenu")
	options.FontPath = fontPath
	switch themeName {
	case "cannoli":
		theme := cannoli.InitCannoliTheme(fontPath)
		options.Theme = &theme
	case "nextui":
		theme := nextui.InitNextUITheme()
		options.Theme = &theme
	case "":
	default:
		return fmt.Errorf("unknown theme %q", themeName)
	}

	if err := sdlhost.Init(options); err != nil {
		return err
	}
	defer sdlhost.Close()

	screen := sdlhost.NewScreen()

	model := popmenu.NewMenuModel(config)
	model.SetItems(menuItems())
	controller := screen.NewMenuController(model)

	button := sdlhost.NewButton("menu", i18n.Localize(messageOpenMenu, nil), screen, popmenu.Rect{X: 10, Y: 88, Width: 100, Height: 50})
	button.OnTap = func(b *sdlhost.Button) {
		if err := controller.Show(b, nil); err != nil {
			logger.Warn("Unable to show menu", "error", err)
		}
	}
	screen.AddButton(button)

	logger.Info("Demo started", "anchor", config.Anchor, "items", model.Len())
	screen.Run()
	return nil
}

func loadMenuConfig(cmd *cobra.Command) (popmenu.MenuConfig, error) {
	var config popmenu.MenuConfig
	var err error

	if configPath != "" {
		config, err = popmenu.LoadConfig(configPath)
	} else {
		var data []byte
		if data, err = resources.ReadFile("resources/menu.toml"); err == nil {
			config, err = popmenu.ParseConfig(data, popmenu.ConfigFormatTOML)
		}
	}
	if err != nil {
		return config, fmt.Errorf("error loading menu config: %w", err)
	}

	if cmd.Flags().Changed("mask") {
		config.HasDismissMask = mask
	}
	return config, nil
}

var (
	messageOptionOne   = &i18n.Message{ID: "option_one", Other: "Option 1"}
	messageOptionTwo   = &i18n.Message{ID: "option_two", Other: "Option 2"}
	messageOptionThree = &i18n.Message{ID: "option_three", Other: "Option 3 (no icon)"}
	messageOpenMenu    = &i18n.Message{ID: "open_menu", Other: "Menu"}
)

func initMessages(code string) error {
	var files []i18n.MessageFile
	for _, name := range []string{"active.en.toml", "active.zh.toml"} {
		data, err := resources.ReadFile("resources/" + name)
		if err != nil {
			return err
		}
		files = append(files, i18n.MessageFile{Name: name, Content: data})
	}
	if err := i18n.InitI18NFromBytes(files); err != nil {
		return err
	}
	return i18n.SetWithCode(code)
}

func menuItems() []popmenu.MenuItem {
	logger := popmenu.GetLogger()
	house := readIcon("house.svg")
	person := readIcon("person.svg")

	one := popmenu.LocalizedItem(messageOptionOne, func() { logger.Info("Selected option 1") })
	one.IconBytes = house
	two := popmenu.LocalizedItem(messageOptionTwo, func() { logger.Info("Selected option 2") })
	two.IconBytes = person
	three := popmenu.LocalizedItem(messageOptionThree, func() { logger.Info("Selected option 3") })

	return []popmenu.MenuItem{one, two, three}
}

// readIcon returns nil when the icon is missing, which leaves the row without one.
func readIcon(name string) []byte {
	data, err := resources.ReadFile("resources/" + name)
	if err != nil {
		popmenu.GetLogger().Warn("Failed to read menu icon", "icon", name, "error", err)
		return nil
	}
	return data
}
