package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"ringtimer/internal/core/countdown"
	"ringtimer/internal/logging"
	"ringtimer/internal/platform"
	"ringtimer/internal/storage"
	"ringtimer/internal/ui/preferences"
	"ringtimer/internal/ui/ringview"
	"ringtimer/internal/ui/tray"
	"ringtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	appName = "ringtimer"
	appID   = "com.ringtimer.app"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Desktop countdown ring",
		Long:         `ringtimer shows a circular progress ring that counts down once, with the remaining time as MM:SS in its centre.`,
		Version:      version,
		Args:         cobra.NoArgs,
		RunE:         runRoot,
		SilenceUsage: true,
	}
	registerFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool(FlagVerbose)
	logFile, _ := cmd.Flags().GetString(FlagLogFile)
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logResult := logging.Setup(logging.Options{FilePath: logFile, Level: level})
	defer func() { _ = logResult.Close() }()
	logger := logResult.Logger
	slog.SetDefault(logger)

	lock, err := platform.AcquireInstanceLock(appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is running", "error", err)
			return nil
		}
		return err
	}
	defer func() { _ = lock.Release() }()

	configPath, _ := cmd.Flags().GetString(FlagConfig)
	if configPath == "" {
		configPath, err = storage.SettingsPath(appName)
		if err != nil {
			return err
		}
	}
	settings, err := storage.LoadSettingsFile(configPath)
	if err != nil {
		logger.Warn("failed to load settings", "path", configPath, "error", err)
	}
	settings, err = applyFlags(cmd, settings)
	if err != nil {
		return err
	}

	ringHost, err := newHost(settings, configPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return storage.WatchSettings(groupCtx, configPath, logger, ringHost.reload)
	})

	ringHost.run()
	cancel()
	if err := group.Wait(); err != nil {
		logger.Warn("settings watcher stopped", "error", err)
	}
	return nil
}

type desktopHost struct {
	app        fyne.App
	window     fyne.Window
	view       *ringview.RateRing
	startBtn   *widget.Button
	prefs      *preferences.Window
	tray       *tray.Manager
	settings   preferences.Settings
	configPath string
	logger     *slog.Logger
}

func newHost(settings preferences.Settings, configPath string, logger *slog.Logger) (*desktopHost, error) {
	config, err := settings.WidgetConfig()
	if err != nil {
		return nil, fmt.Errorf("build widget config: %w", err)
	}

	fyneApp := app.NewWithID(appID)
	icon := resources.MustIcon(resources.AppIcon)
	fyneApp.SetIcon(icon)

	host := &desktopHost{
		app:        fyneApp,
		window:     fyneApp.NewWindow("Ring Timer"),
		view:       ringview.New(config, countdown.Config{Logger: logger}),
		settings:   settings,
		configPath: configPath,
		logger:     logger,
	}
	host.view.SetTime(settings.Minutes, settings.Seconds)
	host.view.SetText(countdown.FormatTime(settings.TotalSeconds()))

	host.startBtn = widget.NewButton("Start", host.start)
	host.prefs = preferences.New(fyneApp, settings, host.save)
	settingsBtn := widget.NewButton("Settings", host.prefs.Show)

	host.window.SetContent(container.NewBorder(nil, container.NewGridWithColumns(2, host.startBtn, settingsBtn), nil, nil, host.view))
	host.window.Resize(fyne.NewSize(240, 280))

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		host.tray = tray.New(desktopApp, tray.Callbacks{
			OnShow:        host.window.Show,
			OnPreferences: host.prefs.Show,
			OnStart:       host.start,
			OnQuit:        fyneApp.Quit,
		})
		host.tray.SetStatus(countdown.FormatTime(settings.TotalSeconds()))
		desktopApp.SetSystemTrayIcon(icon)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	host.view.Controller().SetOnComplete(func() {
		host.logger.Info("countdown finished")
	})
	go host.forwardEvents(host.view.Controller().Subscribe(8))
	return host, nil
}

func (host *desktopHost) run() {
	host.window.Show()
	host.app.Run()
}

func (host *desktopHost) start() {
	if err := host.view.Start(); err != nil {
		dialog.ShowError(err, host.window)
		return
	}
	host.logger.Info("countdown requested", "duration", host.settings.Duration())
	host.startBtn.Disable()
	if host.tray != nil {
		host.tray.SetStarted(true)
	}
}

func (host *desktopHost) save(settings preferences.Settings) {
	if err := storage.SaveSettingsFile(host.configPath, settings); err != nil {
		host.logger.Error("failed to save settings", "error", err)
		dialog.ShowError(err, host.window)
		return
	}
	host.apply(settings)
}

// reload runs on the watcher goroutine.
func (host *desktopHost) reload(settings preferences.Settings) {
	fyne.Do(func() {
		host.prefs.UpdateSettings(settings)
		host.apply(settings)
	})
}

func (host *desktopHost) apply(settings preferences.Settings) {
	config, err := settings.WidgetConfig()
	if err != nil {
		host.logger.Warn("ignoring settings", "error", err)
		return
	}
	host.view.Apply(config)
	host.settings = settings

	if host.view.Controller().State() != countdown.StateIdle {
		return
	}
	host.view.SetTime(settings.Minutes, settings.Seconds)
	host.view.SetText(countdown.FormatTime(settings.TotalSeconds()))
	if host.tray != nil {
		host.tray.SetStatus(countdown.FormatTime(settings.TotalSeconds()))
	}
}

func (host *desktopHost) forwardEvents(events <-chan countdown.Event) {
	for event := range events {
		status := event.Text
		if event.Type == countdown.EventComplete {
			status = "done"
		}
		fyne.Do(func() {
			if host.tray != nil {
				host.tray.SetStatus(status)
			}
		})
	}
}
