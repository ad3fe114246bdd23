package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/rmacduff/awssearch/pkg/types"
)

// ListInstancesInput contains parameters for listing EC2 instances
type ListInstancesInput struct {
	// States filters instances server-side by instance-state-name.
	// Empty means no state filter.
	States []string
}

// ListInstances returns the EC2 instances visible to the client's profile in
// its region, stamped with the owning account.
func (c *Client) ListInstances(input *ListInstancesInput) ([]types.Instance, error) {
	if input == nil {
		input = &ListInstancesInput{}
	}

	describeInput := &ec2.DescribeInstancesInput{}
	if len(input.States) > 0 {
		describeInput.Filters = []ec2types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: input.States,
			},
		}
	}

	output, err := c.EC2.DescribeInstances(c.ctx, describeInput)
	if err != nil {
		return nil, err
	}

	var instances []types.Instance
	for _, reservation := range output.Reservations {
		for _, inst := range reservation.Instances {
			converted, err := toInstance(inst, c.profile)
			if err != nil {
				return nil, err
			}
			instances = append(instances, converted)
		}
	}

	return instances, nil
}

// toInstance converts an EC2 instance to our Instance type. Required fields
// missing from the API response are an error rather than a silent blank row.
func toInstance(i ec2types.Instance, account string) (types.Instance, error) {
	if i.InstanceId == nil {
		return types.Instance{}, fmt.Errorf("instance response missing InstanceId")
	}
	if i.State == nil {
		return types.Instance{}, fmt.Errorf("instance %s: response missing State", *i.InstanceId)
	}

	inst := types.Instance{
		ID:      *i.InstanceId,
		State:   string(i.State.Name),
		Type:    string(i.InstanceType),
		Tags:    make(map[string]string),
		Account: account,
	}

	if i.PrivateIpAddress != nil {
		inst.PrivateIP = *i.PrivateIpAddress
	}

	if i.PublicIpAddress != nil {
		inst.PublicIP = *i.PublicIpAddress
	}

	if i.Placement != nil && i.Placement.AvailabilityZone != nil {
		inst.AZ = *i.Placement.AvailabilityZone
	}

	if i.LaunchTime != nil {
		inst.LaunchTime = *i.LaunchTime
	}

	for _, tag := range i.Tags {
		key := deref(tag.Key)
		value := deref(tag.Value)
		inst.Tags[key] = value

		if key == "Name" {
			inst.Name = value
		}
	}

	return inst, nil
}
