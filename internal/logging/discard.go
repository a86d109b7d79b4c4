package logging

// Discard drops every message, and ignores any args updaters.
var Discard Interface = discard{}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any) {}
func (discard) Warn(string, ...any) {}
func (discard) Error(string, ...any) {}
func (discard) AddArgsUpdater(ArgsUpdater) {}
