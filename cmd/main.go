package main

import (
	"context"
	"errors"
	"log"

	"timerapp/internal/core/reminder"
	"timerapp/internal/notify"
	"timerapp/internal/platform"
	"timerapp/internal/storage"
	"timerapp/internal/ui/apptheme"
	"timerapp/internal/ui/mainwindow"
	"timerapp/internal/ui/tray"
	"timerapp/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName     = "Timer App"
	appID       = "com.timerapp.app"
	inputBuffer = 64
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("load config, using defaults: %v", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon())
	fyneApp.Settings().SetTheme(apptheme.New())

	inputs := reminder.NewInputStream(inputBuffer)
	pushInput := func(event reminder.InputEvent) {
		inputs.Push(event)
	}

	var program *reminder.Program
	mainWindow := mainwindow.New(fyneApp, appName, func(msg reminder.Message) {
		program.Dispatch(msg)
	}, pushInput)

	renderers := reminder.Renderers{mainWindow}
	if desktopApp, ok := fyneApp.(desktop.App); ok && config.Tray {
		trayManager := tray.New(desktopApp, appName, fyneApp.Icon(), tray.Callbacks{
			OnShow: mainWindow.Show,
			OnQuit: fyneApp.Quit,
		})
		renderers = append(renderers, trayManager)
	}

	var player notify.Player
	if sound, err := resources.ReminderSound(); err == nil {
		player = notify.NewChime(sound)
	} else {
		log.Printf("Reminder sound unavailable: %v", err)
	}
	notifier := notify.New(config.Notifications, player)

	program = reminder.NewProgram(config.InitialState(), notifier, renderers, reminder.Options{
		FailFast: config.Notifications.FailFast,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnStarted(func() {
		go func() {
			err := program.Run(ctx, reminder.Every(config.TickInterval), inputs)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("run loop: %v", err)
			}
		}()
	})
	lifecycle.SetOnEnteredForeground(func() {
		pushInput(reminder.InputEvent{Kind: reminder.InputWindowFocused})
	})
	lifecycle.SetOnExitedForeground(func() {
		pushInput(reminder.InputEvent{Kind: reminder.InputWindowUnfocused})
	})
	lifecycle.SetOnStopped(cancel)

	mainWindow.ShowAndRun()
}
