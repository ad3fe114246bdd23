package aws

import (
	"fmt"

	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/rmacduff/awssearch/pkg/types"
)

// ListLoadBalancers returns all ELBv2 load balancers (ALB/NLB) visible to the
// client's profile in its region, stamped with the owning account.
func (c *Client) ListLoadBalancers() ([]types.LoadBalancer, error) {
	output, err := c.ELBv2.DescribeLoadBalancers(c.ctx, &elbv2.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, err
	}

	var lbs []types.LoadBalancer
	for _, lb := range output.LoadBalancers {
		converted, err := toLoadBalancer(lb, c.profile)
		if err != nil {
			return nil, err
		}
		lbs = append(lbs, converted)
	}

	return lbs, nil
}

// toLoadBalancer converts an ELBv2 LoadBalancer to our LoadBalancer type.
func toLoadBalancer(lb elbv2types.LoadBalancer, account string) (types.LoadBalancer, error) {
	if lb.LoadBalancerName == nil {
		return types.LoadBalancer{}, fmt.Errorf("load balancer response missing LoadBalancerName")
	}

	result := types.LoadBalancer{
		Name:    *lb.LoadBalancerName,
		DNSName: deref(lb.DNSName),
		Type:    string(lb.Type),
		Scheme:  string(lb.Scheme),
		Account: account,
	}

	if lb.State != nil {
		result.State = string(lb.State.Code)
	}

	if lb.CreatedTime != nil {
		result.CreatedAt = *lb.CreatedTime
	}

	for _, az := range lb.AvailabilityZones {
		if az.ZoneName != nil {
			result.AZs = append(result.AZs, *az.ZoneName)
		}
	}

	return result, nil
}
