package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmacduff/awssearch/internal/aws"
	"github.com/rmacduff/awssearch/internal/search"
	"github.com/rmacduff/awssearch/internal/ui"
	"github.com/rmacduff/awssearch/pkg/types"
)

var elbCmd = &cobra.Command{
	Use:   "elb",
	Short: "Search for classic load balancers",
	Long: `Search for classic Elastic Load Balancers across the configured
accounts and regions.

All filters are case-sensitive substring matches.

Examples:
  awssearch elb                  # all classic ELBs
  awssearch elb --dns staging    # DNS name contains staging
  awssearch elb -n api           # name contains api`,
	RunE: runELBSearch,
}

var (
	elbDNS  string
	elbName string
)

func init() {
	rootCmd.AddCommand(elbCmd)

	elbCmd.Flags().StringVar(&elbDNS, "dns", "", "Filter by DNS name substring")
	elbCmd.Flags().StringVarP(&elbName, "name", "n", "", "Filter by load balancer name substring")
}

func runELBSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	accounts, regions, err := resolveScope()
	if err != nil {
		return err
	}

	logAccountIdentities(ctx, accounts, regions[0])

	pairs := search.Pairs(accounts, regions)

	fetch := func(ctx context.Context, pair search.Pair) ([]types.ClassicLB, error) {
		client, err := aws.NewClient(ctx,
			aws.WithProfile(pair.Account),
			aws.WithRegion(pair.Region),
		)
		if err != nil {
			return nil, err
		}

		logrus.Debugf("describing classic ELBs in %s/%s", pair.Account, pair.Region)
		return client.ListClassicLoadBalancers()
	}

	rows, failures := search.Run(ctx, pairs, fetch)
	if err := reportFailures(pairs, failures); err != nil {
		return err
	}

	filter := search.Filter{}
	if elbDNS != "" {
		filter[types.MatchDNS] = elbDNS
	}
	if elbName != "" {
		filter[types.MatchName] = elbName
	}
	rows = search.Apply(rows, filter)

	ui.PrintClassicLBTable(rows, verbose)
	return nil
}
