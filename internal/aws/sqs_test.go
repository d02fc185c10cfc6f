package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestQueueSender_Standard(t *testing.T) {
	q := &fakeSQS{}
	s := NewQueueSender(q, "https://sqs.local/000000000000/notify")

	err := s.Send(context.Background(), `{"type":"donation_recap"}`, map[string]string{"correlation_id": "r-1", "empty": ""})
	require.NoError(t, err)
	require.Len(t, q.inputs, 1)

	in := q.inputs[0]
	assert.Equal(t, "https://sqs.local/000000000000/notify", *in.QueueUrl)
	assert.Equal(t, `{"type":"donation_recap"}`, *in.MessageBody)
	assert.Equal(t, "r-1", *in.MessageAttributes["correlation_id"].StringValue)
	assert.Equal(t, "String", *in.MessageAttributes["correlation_id"].DataType)
	assert.NotContains(t, in.MessageAttributes, "empty")
	assert.Nil(t, in.MessageGroupId)
	assert.Nil(t, in.MessageDeduplicationId)
}

func TestQueueSender_FIFO(t *testing.T) {
	tests := []struct {
		name      string
		attrs     map[string]string
		wantGroup string
		wantDedup string
	}{
		{"type and correlation id", map[string]string{AttrGroup: "donation_recap", AttrDedupe: "req-7"}, "donation_recap", "req-7"},
		{"no attributes", nil, defaultGroupID, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeSQS{}
			require.NoError(t, NewQueueSender(q, "https://sqs.local/1/notify.fifo").Send(context.Background(), "{}", tt.attrs))

			in := q.inputs[0]
			require.NotNil(t, in.MessageGroupId)
			assert.Equal(t, tt.wantGroup, *in.MessageGroupId)
			if tt.wantDedup == "" {
				assert.Nil(t, in.MessageDeduplicationId)
			} else {
				require.NotNil(t, in.MessageDeduplicationId)
				assert.Equal(t, tt.wantDedup, *in.MessageDeduplicationId)
			}
		})
	}
}

func TestQueueSender_Error(t *testing.T) {
	q := &fakeSQS{err: errors.New("throttled")}
	err := NewQueueSender(q, "https://sqs.local/1/notify").Send(context.Background(), "{}", nil)
	assert.ErrorContains(t, err, "sqs send to notify")
	assert.ErrorContains(t, err, "throttled")
}

func TestStringAttributes_AllEmpty(t *testing.T) {
	assert.Nil(t, stringAttributes(map[string]string{"a": ""}))
	assert.Nil(t, stringAttributes(nil))
}
