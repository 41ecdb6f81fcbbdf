package ui

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"classlauncher/ai"
	"classlauncher/models"
	"classlauncher/tools"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// toolWindows owns the builtin tool surfaces dispatched from buttons
type toolWindows struct {
	sb   *Sidebar
	open map[string]fyne.Window
	rng  *rand.Rand
}

func newToolWindows(sb *Sidebar) *toolWindows {
	return &toolWindows{
		sb:   sb,
		open: make(map[string]fyne.Window),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// show creates (or refocuses) the named tool window
func (tw *toolWindows) show(key, title string, build func(win fyne.Window) fyne.CanvasObject) {
	if win, ok := tw.open[key]; ok {
		win.Show()
		win.RequestFocus()
		return
	}
	win := tw.sb.app.NewWindow(title)
	win.SetOnClosed(func() { delete(tw.open, key) })
	win.SetContent(build(win))
	tw.open[key] = win
	win.Show()
}

// hideAll hides every open tool window, used when the sidebar collapses
func (tw *toolWindows) hideAll() {
	for _, win := range tw.open {
		win.Hide()
	}
}

func (tw *toolWindows) openAttendance() {
	tw.show("attendance", "班级考勤", func(win fyne.Window) fyne.CanvasObject {
		settings := tw.sb.cfg.Settings()
		students := tw.sb.cfg.Students()
		absent := make(map[string]bool)

		summary := widget.NewLabel("")
		refresh := func() {
			count := 0
			var names []string
			for _, s := range students {
				if absent[s] {
					count++
					names = append(names, s)
				}
			}
			text := fmt.Sprintf("应到: %d  实到: %d  缺勤: %d", len(students), len(students)-count, count)
			if count > 0 {
				text += "\n缺勤: " + strings.Join(names, "、")
			}
			summary.SetText(text)
		}

		filtered := append([]string(nil), students...)
		list := widget.NewList(
			func() int { return len(filtered) },
			func() fyne.CanvasObject { return widget.NewCheck("姓名", nil) },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				if int(id) >= len(filtered) {
					return
				}
				name := filtered[id]
				check := obj.(*widget.Check)
				check.Text = name
				check.Checked = absent[name]
				check.OnChanged = func(on bool) {
					absent[name] = on
					refresh()
				}
				check.Refresh()
			},
		)

		search := widget.NewEntry()
		search.SetPlaceHolder("搜索学生...")
		search.OnChanged = func(keyword string) {
			keyword = strings.TrimSpace(keyword)
			filtered = filtered[:0]
			for _, s := range students {
				if keyword == "" || strings.Contains(s, keyword) {
					filtered = append(filtered, s)
				}
			}
			list.Refresh()
		}

		refresh()
		win.Resize(fyne.NewSize(float32(settings.AttendanceSummaryWidth), 420))
		return container.NewBorder(search, summary, nil, nil, list)
	})
}

func (tw *toolWindows) openRandomCall() {
	tw.show("random", "随机点名", func(win fyne.Window) fyne.CanvasObject {
		settings := tw.sb.cfg.Settings()
		picker := tools.NewRandomPicker(tw.sb.cfg.Students(), settings.RandomNoRepeat, settings.RandomHistorySize, tw.rng)

		card := NewNameCard("准备点名...", color.NRGBA{R: 0x2E, G: 0x86, B: 0xC1, A: 0xFF}, color.White, 40)
		history := widget.NewLabel("")
		rolling := false

		roll := func() {
			if rolling {
				return
			}
			names := tw.sb.cfg.Students()
			if len(names) == 0 {
				card.SetText("无名单")
				return
			}
			rolling = true
			// brief name-shuffling animation before settling on the draw
			steps := settings.AnimationDurationMs / 50
			if steps < 4 {
				steps = 4
			}
			go func() {
				for i := 0; i < steps; i++ {
					card.SetText(names[tw.rng.Intn(len(names))])
					time.Sleep(50 * time.Millisecond)
				}
				card.SetText(picker.Pick())
				history.SetText("最近: " + strings.Join(picker.History(), "、"))
				rolling = false
			}()
		}

		start := widget.NewButton("开始点名", roll)
		win.Resize(fyne.NewSize(400, 220))
		return container.NewBorder(nil, container.NewVBox(history, start), nil, nil, card)
	})
}

func (tw *toolWindows) openClassTimer() {
	tw.show("timer", "课堂计时", func(win fyne.Window) fyne.CanvasObject {
		remaining := 0
		running := false
		countdown := widget.NewLabel("00:00")
		countdown.Alignment = fyne.TextAlignCenter

		minutes := widget.NewSlider(1, 45)
		minutes.Value = 5

		update := func() {
			countdown.SetText(fmt.Sprintf("%02d:%02d", remaining/60, remaining%60))
		}

		var startPause *widget.Button
		startPause = widget.NewButton("开始", func() {
			if running {
				running = false
				startPause.SetText("开始")
				return
			}
			if remaining == 0 {
				remaining = int(minutes.Value) * 60
			}
			running = true
			startPause.SetText("暂停")
			go func() {
				ticker := time.NewTicker(time.Second)
				defer ticker.Stop()
				for range ticker.C {
					if !running {
						return
					}
					remaining--
					update()
					if remaining <= 0 {
						running = false
						startPause.SetText("开始")
						countdown.SetText("时间到!")
						return
					}
				}
			}()
		})
		reset := widget.NewButton("重置", func() {
			running = false
			remaining = 0
			startPause.SetText("开始")
			update()
		})

		update()
		win.Resize(fyne.NewSize(320, 200))
		return container.NewVBox(countdown, minutes, container.NewHBox(startPause, reset))
	})
}

func (tw *toolWindows) openClassNote() {
	tw.show("note", "课堂笔记", func(win fyne.Window) fyne.CanvasObject {
		note := widget.NewMultiLineEntry()
		note.SetText(tw.sb.cfg.Settings().ClassNote)

		save := widget.NewButton("保存", func() {
			_ = tw.sb.cfg.UpdateSettings(func(s *models.Settings) {
				s.ClassNote = note.Text
			})
		})

		win.Resize(fyne.NewSize(420, 320))
		return container.NewBorder(nil, save, nil, nil, note)
	})
}

func (tw *toolWindows) openGroupSplit() {
	tw.show("groups", "随机分组", func(win fyne.Window) fyne.CanvasObject {
		output := widget.NewLabel("点击分组生成结果")
		output.Wrapping = fyne.TextWrapWord

		split := widget.NewButton("分组", func() {
			settings := tw.sb.cfg.Settings()
			groups := tools.SplitGroups(tw.sb.cfg.Students(), settings.GroupSplitSize, tw.rng)
			if len(groups) == 0 {
				output.SetText("名单为空")
				return
			}
			var lines []string
			for i, g := range groups {
				lines = append(lines, fmt.Sprintf("第 %d 组: %s", i+1, strings.Join(g, "、")))
			}
			output.SetText(strings.Join(lines, "\n"))
		})

		win.Resize(fyne.NewSize(420, 360))
		return container.NewBorder(nil, split, nil, nil, container.NewVScroll(output))
	})
}

func (tw *toolWindows) openScoreBoard() {
	tw.show("score", "计分板", func(win fyne.Window) fyne.CanvasObject {
		settings := tw.sb.cfg.Settings()
		scoreA, scoreB := 0, 0

		score := widget.NewLabel("")
		score.Alignment = fyne.TextAlignCenter
		refresh := func() {
			score.SetText(fmt.Sprintf("%s %d : %d %s", settings.ScoreTeamAName, scoreA, scoreB, settings.ScoreTeamBName))
		}

		plusA := widget.NewButton(settings.ScoreTeamAName+" +1", func() { scoreA++; refresh() })
		plusB := widget.NewButton(settings.ScoreTeamBName+" +1", func() { scoreB++; refresh() })
		clear := widget.NewButton("清零", func() { scoreA, scoreB = 0, 0; refresh() })

		refresh()
		win.Resize(fyne.NewSize(360, 180))
		return container.NewVBox(score, container.NewHBox(plusA, plusB, clear))
	})
}

func (tw *toolWindows) openAIAssistant() {
	tw.show("ai", "AI 助手", func(win fyne.Window) fyne.CanvasObject {
		output := widget.NewMultiLineEntry()
		output.Wrapping = fyne.TextWrapWord

		prompt := widget.NewEntry()
		prompt.SetPlaceHolder("输入问题...")

		send := widget.NewButton("发送", func() {
			question := strings.TrimSpace(prompt.Text)
			if question == "" {
				return
			}
			output.SetText("思考中...")
			client := ai.NewClient(tw.sb.cfg.Settings())
			go func() {
				output.SetText(client.CompleteOrFallback(question))
			}()
		})

		win.Resize(fyne.NewSize(460, 360))
		return container.NewBorder(nil, container.NewBorder(nil, nil, nil, send, prompt), nil, nil, output)
	})
}
