package submission

import "github.com/pribehari/forms-api/internal/apperr"

// Kind is the submission type.
type Kind string

const (
	KindOrder    Kind = "order"
	KindDonation Kind = "donation"
)

// Stage is one step of a submission pipeline.
type Stage string

const (
	StageValidate Stage = "validate"
	StageCompute  Stage = "compute"
	StageQR       Stage = "qr"
	StageLedger   Stage = "ledger"
	StageNotify   Stage = "notify"
)

// Severity says whether a failed stage aborts the request.
type Severity int

const (
	Fatal Severity = iota
	Recoverable
)

func (s Severity) String() string {
	if s == Recoverable {
		return "recoverable"
	}
	return "fatal"
}

// Policy decides, per kind and stage, what a failure means. Stages missing
// from the table are fatal.
type Policy map[Kind]map[Stage]Severity

// DefaultPolicy: an order is still useful without a ledger row because the
// customer can pay from the QR code; a donation has no other record, so
// its ledger write must succeed. Emails never fail a request.
var DefaultPolicy = Policy{
	KindOrder: {
		StageValidate: Fatal,
		StageCompute:  Fatal,
		StageQR:       Fatal,
		StageLedger:   Recoverable,
	},
	KindDonation: {
		StageValidate: Fatal,
		StageLedger:   Fatal,
		StageNotify:   Recoverable,
	},
}

// Severity looks up the severity of a failure in stage for kind.
func (p Policy) Severity(kind Kind, stage Stage) Severity {
	if sev, ok := p[kind][stage]; ok {
		return sev
	}
	return Fatal
}

// Result is the outcome of one stage.
type Result struct {
	Stage    Stage
	Severity Severity
	Err      error
}

// Failed reports whether the stage returned an error.
func (r Result) Failed() bool { return r.Err != nil }

// Fatal reports whether the failure aborts the request.
func (r Result) Fatal() bool { return r.Err != nil && r.Severity == Fatal }

// Classify turns a stage error into a Result. Errors from external stages
// are wrapped as apperr.UpstreamServiceError; validation errors pass through.
func (p Policy) Classify(kind Kind, stage Stage, err error) Result {
	res := Result{Stage: stage, Severity: p.Severity(kind, stage)}
	if err == nil {
		return res
	}
	if _, ok := apperr.AsValidation(err); ok || stage == StageValidate {
		res.Err = err
		return res
	}
	res.Err = apperr.Upstream(string(stage), err)
	return res
}
