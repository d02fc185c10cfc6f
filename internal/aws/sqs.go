package aws

import (
	"context"
	"fmt"
	"strings"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Attribute names with a meaning on FIFO queues.
const (
	AttrGroup       = "type"
	AttrDedupe      = "correlation_id"
	defaultGroupID  = "notifications"
	fifoQueueSuffix = ".fifo"
)

// QueueSender implements notify.Sender on top of SQS. For FIFO queues the
// "type" attribute becomes the message group and "correlation_id" the
// deduplication id, so a retried request does not enqueue a second recap.
type QueueSender struct {
	client SQSAPI
	url    string
	fifo   bool
}

func NewQueueSender(client SQSAPI, queueURL string) *QueueSender {
	return &QueueSender{
		client: client,
		url:    queueURL,
		fifo:   strings.HasSuffix(queueURL, fifoQueueSuffix),
	}
}

func (s *QueueSender) Send(ctx context.Context, messageBody string, attributes map[string]string) error {
	if _, err := s.client.SendMessage(ctx, s.input(messageBody, attributes)); err != nil {
		return fmt.Errorf("sqs send to %s: %w", queueName(s.url), err)
	}
	return nil
}

func (s *QueueSender) input(body string, attributes map[string]string) *sqs.SendMessageInput {
	in := &sqs.SendMessageInput{
		QueueUrl:          sdkaws.String(s.url),
		MessageBody:       sdkaws.String(body),
		MessageAttributes: stringAttributes(attributes),
	}
	if s.fifo {
		group := attributes[AttrGroup]
		if group == "" {
			group = defaultGroupID
		}
		in.MessageGroupId = sdkaws.String(group)
		// empty falls back to content-based deduplication on the queue
		if id := attributes[AttrDedupe]; id != "" {
			in.MessageDeduplicationId = sdkaws.String(id)
		}
	}
	return in
}

// stringAttributes converts attrs to SQS String attributes. SQS rejects empty
// values, so those are left out; nil is returned when nothing remains.
func stringAttributes(attrs map[string]string) map[string]sqstypes.MessageAttributeValue {
	var out map[string]sqstypes.MessageAttributeValue
	for k, v := range attrs {
		if v == "" {
			continue
		}
		if out == nil {
			out = make(map[string]sqstypes.MessageAttributeValue, len(attrs))
		}
		out[k] = sqstypes.MessageAttributeValue{
			DataType:    sdkaws.String("String"),
			StringValue: sdkaws.String(v),
		}
	}
	return out
}

// queueName is the last path segment of a queue URL.
func queueName(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
