package driver

import (
	"fortio.org/safecast"

	"lust/internal/observ"
)

// Options управляет одним прогоном драйвера.
type Options struct {
	// MaxDiagnostics ограничивает число диагностик на файл; 0 — без ограничений.
	MaxDiagnostics int
	// Jobs — число параллельных воркеров ParseDir; 0 — GOMAXPROCS.
	Jobs int
	// Timer собирает длительности фаз; nil — не меряем.
	Timer *observ.Timer
	// Cache хранит только диагностики: при попадании FileResult.Program == nil.
	Cache Cache
	// Progress вызывается из воркеров конкурентно.
	Progress ProgressFunc
}

func (o Options) maxErrors() uint {
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		return 0
	}
	return n
}
