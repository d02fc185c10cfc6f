package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pribehari/forms-api/internal/aws"
)

// Recorder counts submissions and failed pipeline stages. Prometheus
// counters are always kept; CloudWatch gets the same events when a
// namespace is configured.
type Recorder struct {
	submissions   *prometheus.CounterVec
	stageFailures *prometheus.CounterVec

	cw        aws.CloudWatchAPI
	namespace string
	log       *zap.Logger
}

// New registers the counters on reg. cw may be nil.
func New(reg prometheus.Registerer, cw aws.CloudWatchAPI, namespace string, log *zap.Logger) *Recorder {
	r := &Recorder{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forms_submissions_total",
			Help: "Submissions handled, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forms_stage_failures_total",
			Help: "Failed pipeline stages, by kind, stage and severity.",
		}, []string{"kind", "stage", "severity"}),
		cw:        cw,
		namespace: namespace,
		log:       log,
	}
	reg.MustRegister(r.submissions, r.stageFailures)
	return r
}

// Submission records the final outcome of one request.
func (r *Recorder) Submission(ctx context.Context, kind, outcome string) {
	r.submissions.WithLabelValues(kind, outcome).Inc()
	r.push(ctx, "Submissions", map[string]string{"Kind": kind, "Outcome": outcome})
}

// StageFailure records a failed stage.
func (r *Recorder) StageFailure(ctx context.Context, kind, stage, severity string) {
	r.stageFailures.WithLabelValues(kind, stage, severity).Inc()
	r.push(ctx, "StageFailures", map[string]string{"Kind": kind, "Stage": stage, "Severity": severity})
}

// push is best-effort; a failed PutMetricData is only logged.
func (r *Recorder) push(ctx context.Context, name string, dims map[string]string) {
	if r.cw == nil || r.namespace == "" {
		return
	}
	dimensions := make([]cwtypes.Dimension, 0, len(dims))
	for k, v := range dims {
		dimensions = append(dimensions, cwtypes.Dimension{Name: awsString(k), Value: awsString(v)})
	}
	now := time.Now()
	value := 1.0
	_, err := r.cw.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &r.namespace,
		MetricData: []cwtypes.MetricDatum{{
			MetricName: &name,
			Dimensions: dimensions,
			Timestamp:  &now,
			Unit:       cwtypes.StandardUnitCount,
			Value:      &value,
		}},
	})
	if err != nil {
		r.log.Warn("put metric data failed", zap.String("metric", name), zap.Error(err))
	}
}

func awsString(s string) *string { return &s }
