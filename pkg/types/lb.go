package types

import (
	"strings"
	"time"
)

// ClassicLB represents a classic Elastic Load Balancer.
type ClassicLB struct {
	Name        string
	DNSName     string
	InstanceIDs []string
	CreatedAt   time.Time
	Account     string
}

// Match reports whether the load balancer matches a substring on the given
// field. Matching is case-sensitive.
func (lb ClassicLB) Match(field, value string) bool {
	switch field {
	case MatchName:
		return strings.Contains(lb.Name, value)
	case MatchDNS:
		return strings.Contains(lb.DNSName, value)
	default:
		return false
	}
}

// InstanceString returns the attached instance IDs comma-joined.
func (lb ClassicLB) InstanceString() string {
	return strings.Join(lb.InstanceIDs, ", ")
}

// LoadBalancer represents an ELBv2 load balancer (ALB/NLB).
type LoadBalancer struct {
	Name      string
	DNSName   string
	Type      string // application, network, gateway
	Scheme    string // internet-facing, internal
	State     string
	AZs       []string
	CreatedAt time.Time
	Account   string
}

// Match reports whether the load balancer matches a substring on the given
// field. Matching is case-sensitive.
func (lb LoadBalancer) Match(field, value string) bool {
	switch field {
	case MatchName:
		return strings.Contains(lb.Name, value)
	case MatchDNS:
		return strings.Contains(lb.DNSName, value)
	default:
		return false
	}
}
