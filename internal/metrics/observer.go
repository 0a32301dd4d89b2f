package metrics

import (
	"errors"
	"time"

	"github.com/jukebox-go/jukebox/internal/ports"
)

// StorageTimer mesure une opération de stockage ; appeler Done avec l'erreur
// renvoyée par l'opération.
type StorageTimer struct {
	backend   string
	operation string
	start     time.Time
}

func NewStorageTimer(backend, operation string) *StorageTimer {
	return &StorageTimer{backend: backend, operation: operation, start: time.Now()}
}

func (t *StorageTimer) Done(err error) {
	status := "success"
	switch {
	case errors.Is(err, ports.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	StorageOpDuration.WithLabelValues(t.backend, t.operation).Observe(time.Since(t.start).Seconds())
	StorageOpsTotal.WithLabelValues(t.backend, t.operation, status).Inc()
}
