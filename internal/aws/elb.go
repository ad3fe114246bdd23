package aws

import (
	"fmt"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing/types"

	"github.com/rmacduff/awssearch/pkg/types"
)

// ListClassicLoadBalancers returns all classic ELBs visible to the client's
// profile in its region, stamped with the owning account.
func (c *Client) ListClassicLoadBalancers() ([]types.ClassicLB, error) {
	output, err := c.ELB.DescribeLoadBalancers(c.ctx, &elb.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, err
	}

	var lbs []types.ClassicLB
	for _, lb := range output.LoadBalancerDescriptions {
		converted, err := toClassicLB(lb, c.profile)
		if err != nil {
			return nil, err
		}
		lbs = append(lbs, converted)
	}

	return lbs, nil
}

// toClassicLB converts an ELB LoadBalancerDescription to our ClassicLB type.
func toClassicLB(lb elbtypes.LoadBalancerDescription, account string) (types.ClassicLB, error) {
	if lb.LoadBalancerName == nil {
		return types.ClassicLB{}, fmt.Errorf("load balancer response missing LoadBalancerName")
	}

	result := types.ClassicLB{
		Name:    *lb.LoadBalancerName,
		DNSName: deref(lb.DNSName),
		Account: account,
	}

	if lb.CreatedTime != nil {
		result.CreatedAt = *lb.CreatedTime
	}

	for _, inst := range lb.Instances {
		if inst.InstanceId != nil {
			result.InstanceIDs = append(result.InstanceIDs, *inst.InstanceId)
		}
	}

	return result, nil
}
