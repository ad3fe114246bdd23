package types

import (
	"sort"
	"strings"
	"time"
)

// Instance represents an EC2 instance fetched from one account.
type Instance struct {
	ID         string
	Name       string
	PrivateIP  string
	PublicIP   string
	State      string
	Type       string
	AZ         string
	Tags       map[string]string
	LaunchTime time.Time
	Account    string
}

// Match fields accepted by the row types.
const (
	MatchName  = "name"
	MatchID    = "id"
	MatchIP    = "ip"
	MatchTag   = "tag"
	MatchState = "state"
	MatchDNS   = "dns"
)

// Match reports whether the instance matches a substring on the given field.
// Matching is case-sensitive.
func (i Instance) Match(field, value string) bool {
	switch field {
	case MatchName:
		return strings.Contains(i.Name, value)
	case MatchID:
		return strings.Contains(i.ID, value)
	case MatchIP:
		return strings.Contains(i.PrivateIP, value) ||
			(i.PublicIP != "" && strings.Contains(i.PublicIP, value))
	case MatchTag:
		for k, v := range i.Tags {
			if k == "Name" {
				continue
			}
			if strings.Contains(k+":"+v, value) {
				return true
			}
		}
		return false
	case MatchState:
		return strings.Contains(i.State, value)
	default:
		return false
	}
}

// TagString returns the non-Name tags as a sorted, comma-joined
// "key:value" list.
func (i Instance) TagString() string {
	var tags []string
	for k, v := range i.Tags {
		if k == "Name" {
			continue
		}
		tags = append(tags, k+":"+v)
	}
	sort.Strings(tags)
	return strings.Join(tags, ", ")
}
