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

var albCmd = &cobra.Command{
	Use:   "alb",
	Short: "Search for ALB/NLB load balancers",
	Long: `Search for ELBv2 load balancers (application, network, gateway)
across the configured accounts and regions.

All filters are case-sensitive substring matches.

Examples:
  awssearch alb                  # all ALB/NLB
  awssearch alb --dns internal   # DNS name contains internal
  awssearch alb -n edge          # name contains edge`,
	RunE: runALBSearch,
}

var (
	albDNS  string
	albName string
)

func init() {
	rootCmd.AddCommand(albCmd)

	albCmd.Flags().StringVar(&albDNS, "dns", "", "Filter by DNS name substring")
	albCmd.Flags().StringVarP(&albName, "name", "n", "", "Filter by load balancer name substring")
}

func runALBSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	accounts, regions, err := resolveScope()
	if err != nil {
		return err
	}

	logAccountIdentities(ctx, accounts, regions[0])

	pairs := search.Pairs(accounts, regions)

	fetch := func(ctx context.Context, pair search.Pair) ([]types.LoadBalancer, error) {
		client, err := aws.NewClient(ctx,
			aws.WithProfile(pair.Account),
			aws.WithRegion(pair.Region),
		)
		if err != nil {
			return nil, err
		}

		logrus.Debugf("describing ELBv2 load balancers in %s/%s", pair.Account, pair.Region)
		return client.ListLoadBalancers()
	}

	rows, failures := search.Run(ctx, pairs, fetch)
	if err := reportFailures(pairs, failures); err != nil {
		return err
	}

	filter := search.Filter{}
	if albDNS != "" {
		filter[types.MatchDNS] = albDNS
	}
	if albName != "" {
		filter[types.MatchName] = albName
	}
	rows = search.Apply(rows, filter)

	ui.PrintLBTable(rows, verbose)
	return nil
}
