package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmacduff/awssearch/internal/aws"
	"github.com/rmacduff/awssearch/internal/config"
	"github.com/rmacduff/awssearch/internal/search"
)

var (
	// Global flags
	accountFlags []string
	regionFlags  []string
	configPath   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "awssearch",
	Short: "Search AWS inventory across accounts and regions",
	Long: `awssearch queries EC2 instances and load balancers across every
account and region pair listed in ~/.aws-search.yml and prints the matching
resources as a table.

Accounts are named credential profiles; resolution of a profile to actual
credentials is left to the AWS SDK.

Examples:
  awssearch ec2 --name prod-api        # EC2 instances whose Name tag contains prod-api
  awssearch -a myprod ec2 -s stopped   # stopped instances, one account only
  awssearch elb --dns staging          # classic ELBs whose DNS name contains staging
  awssearch -r us-west-2 alb           # ALB/NLB in one region, all accounts`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringArrayVarP(&accountFlags, "account", "a", nil, "AWS account profile to search (repeatable, replaces configured list)")
	rootCmd.PersistentFlags().StringArrayVarP(&regionFlags, "region", "r", nil, "AWS region to search (repeatable, replaces configured list)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.aws-search.yml)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Read from environment variables (AWSSEARCH_CONFIG, AWSSEARCH_VERBOSE)
	viper.SetEnvPrefix("AWSSEARCH")
	viper.AutomaticEnv()

	verbose = viper.GetBool("verbose")

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if configPath == "" {
		configPath = viper.GetString("config")
	}
}

// resolveScope loads the config file and applies the CLI overrides. Overrides
// replace the configured lists, they never merge.
func resolveScope() (accounts, regions []string, err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	accounts, regions = cfg.Scope(accountFlags, regionFlags)
	return accounts, regions, nil
}

// reportFailures logs skipped pairs. A run in which every single pair failed
// is a fatal error: there is nothing left to aggregate.
func reportFailures(pairs []search.Pair, failures []search.FetchError) error {
	for _, f := range failures {
		logrus.WithFields(logrus.Fields{
			"account": f.Pair.Account,
			"region":  f.Pair.Region,
		}).Warnf("skipping: %v", f.Err)
	}

	if len(pairs) > 0 && len(failures) == len(pairs) {
		return fmt.Errorf("all %d account/region pairs failed", len(pairs))
	}
	return nil
}

// logAccountIdentities resolves each account profile via STS and logs the
// identity. Diagnostics only; failures here never affect the run.
func logAccountIdentities(ctx context.Context, accounts []string, region string) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	for _, account := range accounts {
		client, err := aws.NewClient(ctx, aws.WithProfile(account), aws.WithRegion(region))
		if err != nil {
			logrus.Debugf("account %s: %v", account, err)
			continue
		}
		identity, err := client.CallerIdentity()
		if err != nil {
			logrus.Debugf("account %s: %v", account, err)
			continue
		}
		logrus.Debugf("account %s resolves to %s (%s)", account, identity.Account, identity.Arn)
	}
}
