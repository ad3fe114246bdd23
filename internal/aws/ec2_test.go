package aws

import (
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstance(t *testing.T) {
	launched := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

	inst, err := toInstance(ec2types.Instance{
		InstanceId:       awssdk.String("i-0abc123def456"),
		InstanceType:     ec2types.InstanceTypeT3Medium,
		State:            &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
		PrivateIpAddress: awssdk.String("10.0.1.5"),
		PublicIpAddress:  awssdk.String("52.4.10.20"),
		Placement:        &ec2types.Placement{AvailabilityZone: awssdk.String("us-east-1a")},
		LaunchTime:       &launched,
		Tags: []ec2types.Tag{
			{Key: awssdk.String("Name"), Value: awssdk.String("prod-api-01")},
			{Key: awssdk.String("env"), Value: awssdk.String("prd")},
		},
	}, "myprod")

	require.NoError(t, err)
	assert.Equal(t, "i-0abc123def456", inst.ID)
	assert.Equal(t, "prod-api-01", inst.Name)
	assert.Equal(t, "running", inst.State)
	assert.Equal(t, "t3.medium", inst.Type)
	assert.Equal(t, "10.0.1.5", inst.PrivateIP)
	assert.Equal(t, "52.4.10.20", inst.PublicIP)
	assert.Equal(t, "us-east-1a", inst.AZ)
	assert.Equal(t, launched, inst.LaunchTime)
	assert.Equal(t, "myprod", inst.Account)
	assert.Equal(t, map[string]string{"Name": "prod-api-01", "env": "prd"}, inst.Tags)
}

func TestToInstanceOptionalFieldsAbsent(t *testing.T) {
	inst, err := toInstance(ec2types.Instance{
		InstanceId: awssdk.String("i-0abc"),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
	}, "mystaging")

	require.NoError(t, err)
	assert.Equal(t, "i-0abc", inst.ID)
	assert.Empty(t, inst.Name)
	assert.Empty(t, inst.PrivateIP)
	assert.Empty(t, inst.PublicIP)
	assert.Empty(t, inst.AZ)
	assert.True(t, inst.LaunchTime.IsZero())
	assert.Equal(t, "mystaging", inst.Account)
}

func TestToInstanceMissingRequiredFields(t *testing.T) {
	_, err := toInstance(ec2types.Instance{}, "myprod")
	assert.ErrorContains(t, err, "InstanceId")

	_, err = toInstance(ec2types.Instance{InstanceId: awssdk.String("i-0abc")}, "myprod")
	assert.ErrorContains(t, err, "State")
}
