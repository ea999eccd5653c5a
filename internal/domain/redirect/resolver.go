package redirect

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/scan"
)

// Outcome is the terminal state of one resolution.
type Outcome string

const (
	OutcomeRedirect      Outcome = "redirect"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeNoDestination Outcome = "no_destination"
	// OutcomeLookupFailed is a store error; the client sees the same thing as NotFound.
	OutcomeLookupFailed Outcome = "lookup_failed"
)

// Decision is where the client goes. Location is always set.
type Decision struct {
	Outcome  Outcome
	Location string
	RecordID uuid.UUID
}

// Lookup finds a QR code by its short code and returns qrcode.ErrNotFound when absent.
type Lookup interface {
	FindByShortCode(ctx context.Context, code string) (*qrcode.Record, error)
}

// ScanRecorder persists a scan without making the caller wait.
type ScanRecorder interface {
	Record(ctx context.Context, qrCodeID uuid.UUID, md scan.Metadata)
}

type Observer interface {
	Resolved(outcome Outcome)
}

type noopObserver struct{}

func (noopObserver) Resolved(Outcome) {}

type Resolver struct {
	lookup   Lookup
	recorder ScanRecorder
	observer Observer
	home     string
	log      *slog.Logger
}

func NewResolver(lookup Lookup, recorder ScanRecorder, observer Observer, home string, log *slog.Logger) *Resolver {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Resolver{
		lookup:   lookup,
		recorder: recorder,
		observer: observer,
		home:     home,
		log:      log.With("component", "redirect_resolver"),
	}
}

// Resolve decides where a scan of code goes. It never fails: every miss,
// malformed record or store error sends the client home.
func (r *Resolver) Resolve(ctx context.Context, code string) Decision {
	d := r.resolve(ctx, code)
	r.observer.Resolved(d.Outcome)
	return d
}

// Handle resolves code and, on a successful redirect, starts recording the scan.
func (r *Resolver) Handle(ctx context.Context, code string, md scan.Metadata) Decision {
	d := r.Resolve(ctx, code)
	if d.Outcome == OutcomeRedirect {
		r.recorder.Record(ctx, d.RecordID, md)
	}
	return d
}

func (r *Resolver) resolve(ctx context.Context, code string) Decision {
	if !qrcode.IsShortCode(code) {
		return r.fallback(OutcomeNotFound, uuid.Nil)
	}

	rec, err := r.lookup.FindByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, qrcode.ErrNotFound) {
			r.log.Debug("unknown short code", "code", code)
			return r.fallback(OutcomeNotFound, uuid.Nil)
		}
		r.log.Error("short code lookup failed", "code", code, "error", err)
		return r.fallback(OutcomeLookupFailed, uuid.Nil)
	}
	if rec == nil {
		return r.fallback(OutcomeNotFound, uuid.Nil)
	}

	dest, ok := Destination(rec)
	if !ok {
		r.log.Warn("qr code has no destination", "qr_code_id", rec.ID)
		return r.fallback(OutcomeNoDestination, rec.ID)
	}

	return Decision{Outcome: OutcomeRedirect, Location: dest, RecordID: rec.ID}
}

func (r *Resolver) fallback(o Outcome, id uuid.UUID) Decision {
	return Decision{Outcome: o, Location: r.home, RecordID: id}
}

// Destination returns the live target of rec: the explicit destination, else
// the encoded url content. Targets without a scheme get https.
func Destination(rec *qrcode.Record) (string, bool) {
	if rec.DestinationURL != nil {
		if dest := strings.TrimSpace(*rec.DestinationURL); dest != "" {
			return withScheme(dest), true
		}
	}
	if u, ok := rec.Content.(content.URL); ok {
		if dest := strings.TrimSpace(content.Encode(u)); dest != "" {
			return withScheme(dest), true
		}
	}
	return "", false
}

func withScheme(dest string) string {
	// "host:8080/x" parses as scheme "host" with an opaque rest.
	if u, err := url.Parse(dest); err == nil && u.Scheme != "" && u.Opaque == "" {
		return dest
	}
	return "https://" + dest
}
