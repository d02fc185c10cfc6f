package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAWSConfig_DefaultRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
}

func TestLoadAWSConfig_WithEndpointOverride(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), "eu-central-1", "http://localhost:4566")
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.Region)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)
}

func TestNewClients(t *testing.T) {
	c, err := NewClients(context.Background(), "eu-central-1", "http://localhost:4566")
	require.NoError(t, err)
	assert.NotNil(t, c.DynamoDB)
	assert.NotNil(t, c.SQS)
	assert.NotNil(t, c.CloudWatch)
}
