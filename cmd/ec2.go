package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmacduff/awssearch/internal/aws"
	"github.com/rmacduff/awssearch/internal/search"
	"github.com/rmacduff/awssearch/internal/ui"
	"github.com/rmacduff/awssearch/pkg/types"
)

var ec2Cmd = &cobra.Command{
	Use:   "ec2",
	Short: "Search for EC2 instances",
	Long: `Search for EC2 instances across the configured accounts and regions.

All filters are case-sensitive substring matches.

Examples:
  awssearch ec2                        # all running instances
  awssearch ec2 --name prod-api        # Name tag contains prod-api
  awssearch ec2 --ip 10.1.             # private or public IP contains 10.1.
  awssearch ec2 -t env:prd             # a tag key:value contains env:prd
  awssearch ec2 -s stopped             # stopped instances
  awssearch ec2 --name web --interactive`,
	RunE: runEC2Search,
}

var (
	ec2Name        string
	ec2InstanceID  string
	ec2IP          string
	ec2Tag         string
	ec2State       string
	ec2Interactive bool
)

func init() {
	rootCmd.AddCommand(ec2Cmd)

	ec2Cmd.Flags().StringVarP(&ec2Name, "name", "n", "", "Filter by Name tag substring")
	ec2Cmd.Flags().StringVarP(&ec2InstanceID, "instance-id", "i", "", "Filter by instance ID substring")
	ec2Cmd.Flags().StringVar(&ec2IP, "ip", "", "Filter by private or public IP substring")
	ec2Cmd.Flags().StringVarP(&ec2Tag, "tag", "t", "", "Filter by tag key:value substring")
	ec2Cmd.Flags().StringVarP(&ec2State, "state", "s", "running", "Instance state (running, stopped, terminated, all)")
	ec2Cmd.Flags().BoolVar(&ec2Interactive, "interactive", false, "Interactive selection of a matching instance")
}

// ec2States maps the -s flag to the server-side instance-state-name filter.
func ec2States(state string) ([]string, error) {
	switch state {
	case "running", "stopped", "terminated":
		return []string{state}, nil
	case "all":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid state %q (choose running, stopped, terminated or all)", state)
	}
}

func runEC2Search(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	states, err := ec2States(ec2State)
	if err != nil {
		return err
	}

	accounts, regions, err := resolveScope()
	if err != nil {
		return err
	}

	logAccountIdentities(ctx, accounts, regions[0])

	pairs := search.Pairs(accounts, regions)

	fetch := func(ctx context.Context, pair search.Pair) ([]types.Instance, error) {
		client, err := aws.NewClient(ctx,
			aws.WithProfile(pair.Account),
			aws.WithRegion(pair.Region),
		)
		if err != nil {
			return nil, err
		}

		logrus.Debugf("describing EC2 instances in %s/%s", pair.Account, pair.Region)
		return client.ListInstances(&aws.ListInstancesInput{States: states})
	}

	rows, failures := search.Run(ctx, pairs, fetch)
	if err := reportFailures(pairs, failures); err != nil {
		return err
	}

	filter := search.Filter{}
	if ec2Name != "" {
		filter[types.MatchName] = ec2Name
	}
	if ec2InstanceID != "" {
		filter[types.MatchID] = ec2InstanceID
	}
	if ec2IP != "" {
		filter[types.MatchIP] = ec2IP
	}
	if ec2Tag != "" {
		filter[types.MatchTag] = ec2Tag
	}
	rows = search.Apply(rows, filter)

	if ec2Interactive {
		if len(rows) == 0 {
			fmt.Println("No EC2 instances found")
			return nil
		}
		inst, err := ui.SelectInstance(rows)
		if err != nil {
			return nil // cancelled — silent exit
		}
		ui.PrintInstanceDetails(inst)
		return nil
	}

	ui.PrintInstanceTable(rows, verbose)
	return nil
}
