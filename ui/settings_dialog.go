package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"classlauncher/icon"
	"classlauncher/launcher"
	"classlauncher/models"
	"classlauncher/registry"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettings opens the settings window
func (sb *Sidebar) showSettings() {
	win := sb.app.NewWindow("设置")
	win.Resize(fyne.NewSize(560, 520))

	tabs := container.NewAppTabs(
		container.NewTabItem("显示与启动", sb.displayPage(win)),
		container.NewTabItem("课堂工具", sb.toolsPage(win)),
		container.NewTabItem("数据管理", sb.dataPage(win)),
		container.NewTabItem("AI 助手", sb.aiPage(win)),
	)
	win.SetContent(tabs)
	win.Show()
}

func (sb *Sidebar) displayPage(win fyne.Window) fyne.CanvasObject {
	settings := sb.cfg.Settings()

	iconSize := widget.NewSlider(28, 72)
	iconSize.Value = float64(settings.IconSize)
	opacity := widget.NewSlider(35, 100)
	opacity.Value = float64(settings.FloatingOpacity)
	summaryWidth := widget.NewSlider(300, 520)
	summaryWidth.Value = float64(settings.AttendanceSummaryWidth)
	sidebarWidth := widget.NewSlider(84, 128)
	sidebarWidth.Value = float64(settings.SidebarWidth)
	animDuration := widget.NewSlider(120, 600)
	animDuration.Value = float64(settings.AnimationDurationMs)

	startCollapsed := widget.NewCheck("启动时收起侧边栏", nil)
	startCollapsed.Checked = settings.StartCollapsed
	trayClick := widget.NewCheck("点击托盘图标打开", nil)
	trayClick.Checked = settings.TrayClickToOpen
	summaryOnStart := widget.NewCheck("启动时显示考勤面板", nil)
	summaryOnStart.Checked = settings.ShowAttendanceSummaryOnStart
	compact := widget.NewCheck("紧凑模式", nil)
	compact.Checked = settings.CompactMode
	collapseHides := widget.NewCheck("收起时隐藏工具窗口", nil)
	collapseHides.Checked = settings.CollapseHidesToolWindows

	apply := widget.NewButton("保存并应用", func() {
		err := sb.cfg.UpdateSettings(func(s *models.Settings) {
			s.IconSize = int(iconSize.Value)
			s.FloatingOpacity = int(opacity.Value)
			s.AttendanceSummaryWidth = int(summaryWidth.Value)
			s.SidebarWidth = int(sidebarWidth.Value)
			s.AnimationDurationMs = int(animDuration.Value)
			s.StartCollapsed = startCollapsed.Checked
			s.TrayClickToOpen = trayClick.Checked
			s.ShowAttendanceSummaryOnStart = summaryOnStart.Checked
			s.CompactMode = compact.Checked
			s.CollapseHidesToolWindows = collapseHides.Checked
		})
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		sb.rebuild()
	})

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("图标大小", iconSize),
			widget.NewFormItem("悬浮球透明度", opacity),
			widget.NewFormItem("考勤面板宽度", summaryWidth),
			widget.NewFormItem("侧边栏宽度", sidebarWidth),
			widget.NewFormItem("动画时长(ms)", animDuration),
		),
		startCollapsed, trayClick, summaryOnStart, compact, collapseHides,
		apply,
	)
}

func (sb *Sidebar) toolsPage(win fyne.Window) fyne.CanvasObject {
	settings := sb.cfg.Settings()

	noRepeat := widget.NewCheck("点名不重复(抽完一轮再重置)", nil)
	noRepeat.Checked = settings.RandomNoRepeat
	historySize := widget.NewSlider(3, 10)
	historySize.Value = float64(settings.RandomHistorySize)
	groupSize := widget.NewSlider(2, 12)
	groupSize.Value = float64(settings.GroupSplitSize)
	allowLinks := widget.NewCheck("允许打开外部链接", nil)
	allowLinks.Checked = settings.AllowExternalLinks
	teamA := widget.NewEntry()
	teamA.SetText(settings.ScoreTeamAName)
	teamB := widget.NewEntry()
	teamB.SetText(settings.ScoreTeamBName)

	seewoPath := widget.NewEntry()
	seewoPath.SetText(settings.SeewoPath)
	detect := widget.NewButton("自动检测", func() {
		detected, err := launcher.DetectSeewoPath()
		if err != nil {
			dialog.ShowInformation("未找到", "未检测到希沃白板安装，请手动填写路径。", win)
			return
		}
		seewoPath.SetText(detected)
	})

	apply := widget.NewButton("保存并应用", func() {
		err := sb.cfg.UpdateSettings(func(s *models.Settings) {
			s.RandomNoRepeat = noRepeat.Checked
			s.RandomHistorySize = int(historySize.Value)
			s.GroupSplitSize = int(groupSize.Value)
			s.AllowExternalLinks = allowLinks.Checked
			s.ScoreTeamAName = teamA.Text
			s.ScoreTeamBName = teamB.Text
			s.SeewoPath = seewoPath.Text
		})
		if err != nil {
			dialog.ShowError(err, win)
		}
	})

	return container.NewVBox(
		noRepeat,
		widget.NewForm(
			widget.NewFormItem("点名历史条数", historySize),
			widget.NewFormItem("分组人数", groupSize),
			widget.NewFormItem("A队名称", teamA),
			widget.NewFormItem("B队名称", teamB),
			widget.NewFormItem("希沃路径", container.NewBorder(nil, nil, nil, detect, seewoPath)),
		),
		allowLinks,
		apply,
	)
}

func (sb *Sidebar) dataPage(win fyne.Window) fyne.CanvasObject {
	buttons := sb.cfg.Buttons()
	selected := -1

	buttonList := widget.NewList(
		func() int { return len(buttons) },
		func() fyne.CanvasObject { return widget.NewLabel("按钮") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if int(id) >= len(buttons) {
				return
			}
			b := buttons[id]
			label := b.Name
			if b.IsSystem {
				label += " (系统)"
			}
			obj.(*widget.Label).SetText(label)
		},
	)
	buttonList.OnSelected = func(id widget.ListItemID) { selected = int(id) }

	persist := func() {
		if err := sb.cfg.SetButtons(buttons); err != nil {
			dialog.ShowError(err, win)
		}
		buttons = sb.cfg.Buttons()
		buttonList.Refresh()
		sb.rebuild()
	}

	addBtn := widget.NewButton("添加", func() { sb.showAddButton(win, func(b models.Button) {
		buttons = registry.Add(buttons, b)
		persist()
	}) })
	removeBtn := widget.NewButton("删除", func() {
		updated, err := registry.RemoveUnprotected(buttons, selected)
		if err != nil {
			if errors.Is(err, registry.ErrProtected) {
				dialog.ShowInformation("无法删除", "系统按钮不可删除。", win)
				return
			}
			dialog.ShowError(err, win)
			return
		}
		buttons = updated
		selected = -1
		persist()
	})
	upBtn := widget.NewButton("上移", func() {
		buttons = registry.MoveUp(buttons, selected)
		if selected > 0 {
			selected--
		}
		persist()
	})
	downBtn := widget.NewButton("下移", func() {
		buttons = registry.MoveDown(buttons, selected)
		if selected >= 0 && selected < len(buttons)-1 {
			selected++
		}
		persist()
	})
	restoreBtn := widget.NewButton("恢复默认按钮", func() {
		restored, err := sb.cfg.RestoreDefaultButtons()
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		buttons = sb.cfg.Buttons()
		buttonList.Refresh()
		sb.rebuild()
		dialog.ShowInformation("完成", fmt.Sprintf("已恢复 %d 个默认按钮。", restored), win)
	})

	importBtn := widget.NewButton("导入班级名单 (TXT/CSV)", func() { sb.importRoster(win) })

	resetBtn := widget.NewButton("恢复全部默认设置", func() {
		dialog.ShowConfirm("确认", "将重置所有设置、按钮和名单，是否继续？", func(ok bool) {
			if !ok {
				return
			}
			if err := sb.cfg.ResetToDefaults(true); err != nil {
				dialog.ShowError(err, win)
				return
			}
			buttons = sb.cfg.Buttons()
			buttonList.Refresh()
			sb.rebuild()
		}, win)
	})

	controls := container.NewHBox(addBtn, removeBtn, upBtn, downBtn, restoreBtn)
	return container.NewBorder(
		importBtn,
		container.NewVBox(controls, resetBtn),
		nil, nil,
		buttonList,
	)
}

func (sb *Sidebar) aiPage(win fyne.Window) fyne.CanvasObject {
	settings := sb.cfg.Settings()

	apiKey := widget.NewPasswordEntry()
	apiKey.SetText(settings.AIAPIKey)
	model := widget.NewEntry()
	model.SetText(settings.AIModel)
	endpoint := widget.NewEntry()
	endpoint.SetText(settings.AIEndpoint)

	apply := widget.NewButton("保存", func() {
		err := sb.cfg.UpdateSettings(func(s *models.Settings) {
			s.AIAPIKey = apiKey.Text
			s.AIModel = model.Text
			s.AIEndpoint = endpoint.Text
		})
		if err != nil {
			dialog.ShowError(err, win)
		}
	})

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("API Key", apiKey),
			widget.NewFormItem("模型", model),
			widget.NewFormItem("接口地址", endpoint),
		),
		apply,
	)
}

// showAddButton collects a new button from the user. For URL targets the
// page title and favicon are discovered to prefill name and icon.
func (sb *Sidebar) showAddButton(win fyne.Window, onAdd func(models.Button)) {
	name := widget.NewEntry()
	iconRef := widget.NewEntry()
	target := widget.NewEntry()
	kind := widget.NewSelect([]string{"程序", "网址", "内置工具"}, nil)
	kind.SetSelectedIndex(0)

	fill := widget.NewButton("从网页获取名称和图标", func() {
		pageURL := strings.TrimSpace(target.Text)
		if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
			dialog.ShowInformation("提示", "请先在目标栏填写网址。", win)
			return
		}
		go func() {
			info, err := icon.DiscoverPage(pageURL)
			if err != nil {
				log.Printf("page discovery: %v", err)
				return
			}
			if info.Title != "" && strings.TrimSpace(name.Text) == "" {
				name.SetText(info.Title)
			}
			if info.IconURL != "" {
				iconRef.SetText(info.IconURL)
				if err := sb.cache.PrefetchURL(info.IconURL); err != nil {
					log.Printf("favicon prefetch: %v", err)
				}
			}
		}()
	})

	form := dialog.NewForm("添加按钮", "添加", "取消",
		[]*widget.FormItem{
			widget.NewFormItem("名称", name),
			widget.NewFormItem("类型", kind),
			widget.NewFormItem("目标", target),
			widget.NewFormItem("图标", container.NewBorder(nil, nil, nil, fill, iconRef)),
		},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			action := models.ActionExecutable
			switch kind.SelectedIndex() {
			case 1:
				action = models.ActionURL
			case 2:
				action = models.ActionBuiltin
			}
			b := models.NewButton(name.Text, iconRef.Text, action, target.Text)
			if b.Name == "" || b.Target == "" {
				dialog.ShowInformation("提示", "名称和目标不能为空。", win)
				return
			}
			if action == models.ActionBuiltin && !models.IsKnownBuiltin(b.Target) {
				dialog.ShowInformation("提示", "未知的内置工具标识。", win)
				return
			}
			onAdd(b)
		}, win)
	form.Resize(fyne.NewSize(480, 320))
	form.Show()
}

// importRoster runs the roster file import flow
func (sb *Sidebar) importRoster(win fyne.Window) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		if impErr := sb.cfg.ImportStudents(path); impErr != nil {
			dialog.ShowInformation("导入失败", impErr.Message, win)
			return
		}
		dialog.ShowInformation("成功", fmt.Sprintf("已导入 %d 名学生。", len(sb.cfg.Students())), win)
	}, win)
	fd.Show()
}
