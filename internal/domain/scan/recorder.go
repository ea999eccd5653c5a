package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const DefaultTimeout = 5 * time.Second

// Observer receives the outcome of every recording attempt.
type Observer interface {
	ScanRecorded(d time.Duration)
	ScanFailed()
}

type noopObserver struct{}

func (noopObserver) ScanRecorded(time.Duration) {}
func (noopObserver) ScanFailed()                {}

// Recorder persists scan events off the request path.
// Failures are logged and dropped; they never reach the caller.
type Recorder struct {
	repo     Repository
	log      *slog.Logger
	observer Observer
	timeout  time.Duration
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewRecorder(repo Repository, log *slog.Logger, observer Observer, timeout time.Duration) *Recorder {
	if observer == nil {
		observer = noopObserver{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recorder{
		repo:     repo,
		log:      log.With("component", "scan_recorder"),
		observer: observer,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Record starts persisting a scan and returns immediately.
// The write outlives ctx: a client that hangs up does not cancel it.
func (r *Recorder) Record(ctx context.Context, qrCodeID uuid.UUID, md Metadata) {
	detached := context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				r.observer.ScanFailed()
				r.log.Error("scan recording panicked", "qr_code_id", qrCodeID, "panic", p)
			}
		}()

		wctx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()

		start := time.Now()
		if err := r.RecordSync(wctx, qrCodeID, md); err != nil {
			r.observer.ScanFailed()
			r.log.Warn("failed to record scan", "qr_code_id", qrCodeID, "error", err)
			return
		}
		r.observer.ScanRecorded(time.Since(start))
	}()
}

// RecordSync builds the event and writes it, returning the store error.
func (r *Recorder) RecordSync(ctx context.Context, qrCodeID uuid.UUID, md Metadata) error {
	event := NewEvent(qrCodeID, md, r.now())
	if err := r.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	r.log.Debug("scan recorded", "qr_code_id", qrCodeID, "device", event.DeviceType, "browser", event.Browser)
	return nil
}

// Wait blocks until every started recording has finished or ctx is done.
func (r *Recorder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for scan recordings: %w", ctx.Err())
	}
}

// NewEvent derives a scan event from request metadata.
func NewEvent(qrCodeID uuid.UUID, md Metadata, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		QRCodeID:   qrCodeID,
		IPHash:     Fingerprint(ClientAddress(md)),
		DeviceType: ClassifyDevice(md.UserAgent),
		OS:         ClassifyOS(md.UserAgent),
		Browser:    ClassifyBrowser(md.UserAgent),
		Referrer:   md.Referrer,
		ScannedAt:  at.UTC(),
	}
}
