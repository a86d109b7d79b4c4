package logging

// enricher enriches a log record with further meaningful attributes that aren't
// readily available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, en := range e.updaters {
		args = en.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// ReferenceUpdater checks log arguments for a reference to T by its index,
// i.e. a key matching Key followed by an int, and replaces the index with T.
type ReferenceUpdater[T any] struct {
	Getter[T]

	Key string
}

type Getter[T any] interface {
	Get(index int) (T, error)
}

func (e *ReferenceUpdater[T]) UpdateArgs(args ...any) []any {
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); !ok || key != e.Key {
			continue
		}
		index, ok := args[i+1].(int)
		if !ok {
			continue
		}
		t, err := e.Get(index)
		if err != nil {
			// leave the index as it is
			continue
		}
		args[i+1] = t
	}
	return args
}
