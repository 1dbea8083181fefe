package main

import (
	"fmt"

	"github.com/dshills/termstack/internal/app"
	"github.com/dshills/termstack/internal/config"
	"github.com/dshills/termstack/internal/driver"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/logging"
	"github.com/dshills/termstack/internal/script"
)

// newApplication creates the application for cfg and applies the
// configured binding files and scripts. Binding and script failures are
// logged and returned together; the application is usable either way.
func newApplication(cfg *config.Config, drv driver.Driver, logger *logging.Logger) (*app.Application, *script.Engine, error) {
	a, err := app.New(app.Options{
		Driver:  drv,
		Logger:  logger,
		QuitKey: cfg.QuitKey(),
		Mouse:   cfg.MouseSettings(),
	})
	if err != nil {
		return nil, nil, err
	}

	engine, err := script.NewEngine(script.Options{Host: a, Logger: logger})
	if err != nil {
		return nil, nil, err
	}

	errs := app.NewErrorList()
	errs.Add(applyBindingFiles(a.KeyBindings(), cfg.KeyBindings.Files))
	errs.Add(engine.LoadFiles(cfg.Scripts.Files))
	if errs.HasErrors() {
		logger.Warn("startup: %v", errs)
	}
	return a, engine, errs.AsError()
}

// applyBindingFiles applies each file in order. A file that fails to
// load or resolve leaves the bindings untouched.
func applyBindingFiles(b *keybinding.Bindings, files []string) error {
	errs := app.NewErrorList()
	for _, path := range files {
		errs.Add(applyBindingFile(b, path))
	}
	return errs.AsError()
}

func applyBindingFile(b *keybinding.Bindings, path string) error {
	f, err := keybinding.LoadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Apply(b); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// watchBindingFiles reapplies binding files on the main loop whenever
// they change on disk. The returned watcher must be closed.
func watchBindingFiles(a *app.Application, files []string, logger *logging.Logger) (*config.Watcher, error) {
	w, err := config.NewWatcher(config.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		if err := w.Watch(path); err != nil {
			w.Close()
			return nil, err
		}
	}
	w.OnChange(func(path string) {
		a.Invoke(func() {
			if err := applyBindingFile(a.KeyBindings(), path); err != nil {
				logger.Warn("reload bindings: %v", err)
				return
			}
			logger.Info("reloaded bindings from %s", path)
		})
	})
	return w, nil
}
