package ui

import (
	"log"

	"classlauncher/config"
	"classlauncher/icon"
	"classlauncher/launcher"
	"classlauncher/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Sidebar is the main launcher window: one column of tool buttons
type Sidebar struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.Service
	launcher *launcher.Manager
	resolver *icon.Resolver
	cache    *icon.Cache

	buttonBox *fyne.Container
	collapsed bool

	toolWindows *toolWindows
}

// NewSidebar creates the sidebar window over an already-loaded config
// service.
func NewSidebar(cfg *config.Service, cache *icon.Cache, resolver *icon.Resolver) *Sidebar {
	myApp := app.New()
	myApp.SetIcon(theme.HomeIcon())

	window := myApp.NewWindow("ClassLauncher")

	sb := &Sidebar{
		app:      myApp,
		window:   window,
		cfg:      cfg,
		launcher: launcher.NewManager(),
		resolver: resolver,
		cache:    cache,
	}
	sb.toolWindows = newToolWindows(sb)
	sb.registerBuiltins()
	sb.setupTray()
	sb.rebuild()

	settings := cfg.Settings()
	window.Resize(fyne.NewSize(float32(settings.SidebarWidth), 480))
	if settings.StartCollapsed {
		sb.collapsed = true
		sb.rebuild()
	}
	if !settings.FirstRunCompleted {
		sb.showFirstRunWizard()
	}
	if settings.ShowAttendanceSummaryOnStart {
		sb.toolWindows.openAttendance()
	}

	// Prefetch runs off the startup path so first paint never waits on the
	// network.
	go cache.EnsureCachePopulated()

	return sb
}

// ShowAndRun shows the window and runs the application
func (sb *Sidebar) ShowAndRun() {
	sb.window.ShowAndRun()
}

func (sb *Sidebar) registerBuiltins() {
	handlers := map[string]launcher.BuiltinFunc{
		models.BuiltinAttendance:  sb.toolWindows.openAttendance,
		models.BuiltinRandomCall:  sb.toolWindows.openRandomCall,
		models.BuiltinClassTimer:  sb.toolWindows.openClassTimer,
		models.BuiltinClassNote:   sb.toolWindows.openClassNote,
		models.BuiltinGroupSplit:  sb.toolWindows.openGroupSplit,
		models.BuiltinScoreBoard:  sb.toolWindows.openScoreBoard,
		models.BuiltinAIAssistant: sb.toolWindows.openAIAssistant,
		models.BuiltinSettings:    sb.showSettings,
	}
	for id, fn := range handlers {
		if err := sb.launcher.RegisterBuiltin(id, fn); err != nil {
			log.Printf("builtin registration: %v", err)
		}
	}
}

func (sb *Sidebar) setupTray() {
	desk, ok := sb.app.(desktop.App)
	if !ok {
		return
	}
	menu := fyne.NewMenu("ClassLauncher",
		fyne.NewMenuItem("打开", func() {
			if sb.cfg.Settings().TrayClickToOpen {
				sb.window.Show()
			}
		}),
		fyne.NewMenuItem("随机点名", sb.toolWindows.openRandomCall),
		fyne.NewMenuItem("课堂笔记", sb.toolWindows.openClassNote),
		fyne.NewMenuItem("AI 助手", sb.toolWindows.openAIAssistant),
		fyne.NewMenuItem("设置", sb.showSettings),
	)
	desk.SetSystemTrayMenu(menu)
}

// rebuild recreates the button column from the current config
func (sb *Sidebar) rebuild() {
	settings := sb.cfg.Settings()
	iconSize := float32(settings.IconSize)
	if settings.CompactMode {
		iconSize = iconSize * 0.75
	}

	sb.buttonBox = container.NewVBox()
	if !sb.collapsed {
		for _, btn := range sb.cfg.Buttons() {
			sb.buttonBox.Add(sb.makeButton(btn, iconSize))
		}
	}

	toggleText := "收起"
	if sb.collapsed {
		toggleText = "展开"
	}
	toggle := widget.NewButton(toggleText, func() {
		sb.collapsed = !sb.collapsed
		if sb.collapsed && sb.cfg.Settings().CollapseHidesToolWindows {
			sb.toolWindows.hideAll()
		}
		sb.rebuild()
	})

	content := container.NewBorder(nil, toggle, nil, nil, container.NewVScroll(sb.buttonBox))
	sb.window.SetContent(content)
}

func (sb *Sidebar) makeButton(btn models.Button, iconSize float32) fyne.CanvasObject {
	res := sb.buttonResource(btn.Icon)
	launch := func() {
		if err := sb.launcher.Launch(btn, sb.cfg.Settings()); err != nil {
			dialog.ShowError(err, sb.window)
		}
	}
	var w *widget.Button
	if res != nil {
		w = widget.NewButtonWithIcon(btn.Name, res, launch)
	} else {
		w = widget.NewButton(btn.Name, launch)
	}
	w.Resize(fyne.NewSize(iconSize+40, iconSize))
	return w
}

// buttonResource resolves an icon reference to a fyne resource, or nil for
// the text-only fallback.
func (sb *Sidebar) buttonResource(iconRef string) fyne.Resource {
	path := sb.resolver.Resolve(iconRef)
	if path == "" {
		return nil
	}
	ref := models.ParseIconRef(path)
	if ref.Kind == models.IconRefBundled {
		return bundledResource(models.NormalizeIconRef(path))
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil
	}
	return res
}

// bundledResource maps a bundled icon name to a shipped theme icon
func bundledResource(name string) fyne.Resource {
	switch name {
	case "icon_seewo.png":
		return theme.DocumentCreateIcon()
	case "icon_attendance.png":
		return theme.ConfirmIcon()
	case "icon_random.png":
		return theme.MediaReplayIcon()
	case "icon_ai.png":
		return theme.QuestionIcon()
	case "icon_settings.png":
		return theme.SettingsIcon()
	case "icon_collapse.png":
		return theme.MoveUpIcon()
	case "icon_expand.png":
		return theme.MoveDownIcon()
	default:
		return theme.FileApplicationIcon()
	}
}

func (sb *Sidebar) showFirstRunWizard() {
	opacity := widget.NewSlider(35, 100)
	opacity.Value = float64(sb.cfg.Settings().FloatingOpacity)
	startCollapsed := widget.NewCheck("启动时收起侧边栏", nil)
	noRepeat := widget.NewCheck("点名不重复", nil)
	noRepeat.Checked = sb.cfg.Settings().RandomNoRepeat
	seewoPath := widget.NewEntry()
	seewoPath.SetText(sb.cfg.Settings().SeewoPath)

	if detected, err := launcher.DetectSeewoPath(); err == nil {
		seewoPath.SetText(detected)
	}

	form := dialog.NewForm("欢迎使用 ClassLauncher", "完成", "跳过",
		[]*widget.FormItem{
			widget.NewFormItem("悬浮球透明度", opacity),
			widget.NewFormItem("启动行为", startCollapsed),
			widget.NewFormItem("随机点名", noRepeat),
			widget.NewFormItem("希沃白板路径", seewoPath),
		},
		func(confirmed bool) {
			err := sb.cfg.UpdateSettings(func(s *models.Settings) {
				if confirmed {
					s.FloatingOpacity = int(opacity.Value)
					s.StartCollapsed = startCollapsed.Checked
					s.RandomNoRepeat = noRepeat.Checked
					s.SeewoPath = seewoPath.Text
				}
				s.FirstRunCompleted = true
			})
			if err != nil {
				log.Printf("first-run save: %v", err)
			}
		}, sb.window)
	form.Show()
}
