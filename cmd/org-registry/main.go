package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"k8s.io/klog"

	"github.com/openshift/org-registry/pkg/console"
	"github.com/openshift/org-registry/pkg/orgdata"
	registryversion "github.com/openshift/org-registry/pkg/version"
)

type options struct {
	Prompt         bool
	LogLevel       string
	MetricsSummary bool
	ShowVersion    bool

	logLevel logrus.Level
}

func (o *options) Validate() error {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	o.logLevel = level
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// addFlags registers the program flags together with every klog flag on fs
func (o *options) addFlags(fs *pflag.FlagSet) {
	emptyFlags := flag.NewFlagSet("empty", flag.ContinueOnError)
	klog.InitFlags(emptyFlags)

	fs.BoolVar(&o.Prompt, "prompt", o.Prompt, "Print a prompt before reading each command.")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Level of the command log written to stderr (debug, info, warning, error).")
	fs.BoolVar(&o.MetricsSummary, "metrics-summary", o.MetricsSummary, "Log how many commands of each kind ran when the session ends.")
	fs.BoolVar(&o.ShowVersion, "version", o.ShowVersion, "Print the version and exit.")
	fs.AddGoFlagSet(emptyFlags)
}

func run() error {
	opt := &options{
		Prompt:   true,
		LogLevel: logrus.WarnLevel.String(),
	}
	opt.addFlags(pflag.CommandLine)
	pflag.Parse()
	klog.SetOutput(os.Stderr)

	if opt.ShowVersion {
		fmt.Printf("org-registry %s\n", registryversion.Get())
		return nil
	}

	if err := opt.Validate(); err != nil {
		return fmt.Errorf("unable to validate program arguments: %w", err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(opt.logLevel)

	// the session may be blocked reading stdin, so exit directly
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		klog.Infof("Received %s, exiting", sig)
		os.Exit(0)
	}()

	session := console.NewSession(orgdata.NewOrganization(), os.Stdin, os.Stdout, opt.Prompt)
	klog.V(2).Infof("Starting session, version %s", registryversion.Get())
	if err := session.Run(context.Background()); err != nil {
		return fmt.Errorf("session ended: %w", err)
	}

	if opt.MetricsSummary {
		summaryLogger := logrus.New()
		summaryLogger.SetOutput(os.Stderr)
		if err := logSummary(summaryLogger, prometheus.DefaultGatherer); err != nil {
			logrus.WithError(err).Warn("Unable to summarize commands")
		}
	}
	return nil
}

func logSummary(logger *logrus.Logger, gatherer prometheus.Gatherer) error {
	summary, err := console.CommandSummary(gatherer)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(summary))
	for key := range summary {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		logger.WithField("command", key).WithField("count", summary[key]).Info("Command summary")
	}
	return nil
}
