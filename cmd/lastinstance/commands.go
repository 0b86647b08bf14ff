package main

import (
	"fmt"
	"os"
	"time"

	"lastinstance/config"
	"lastinstance/keepalive"
	"lastinstance/predecessor"
	"lastinstance/process"
	"lastinstance/report"
	"lastinstance/taskmanager"
	"lastinstance/terminate"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cli holds what the persistent pre-run builds for the subcommands.
type cli struct {
	v          *viper.Viper
	configPath string
	once       bool

	cfg     config.Config
	backend process.Backend
	manager *taskmanager.Manager
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{
		v:   config.New(),
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "lastinstance")),
	}

	root := &cobra.Command{
		Use:   "lastinstance",
		Short: "Kill older running instances of this program and keep running as the only one",
		Long: `lastinstance looks up every running process that shares its own name,
force-kills the ones that started earlier and then stays alive until interrupted.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runPredecessors,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (yaml, json or toml)")
	pf.String("backend", config.BackendAuto, "process backend: auto, procfs or gopsutil")
	pf.String("proc-mount", "/proc", "procfs mount point")
	pf.String("exclude-by", string(predecessor.ExcludePosition), "how the calling process is excluded: position or pid")
	pf.Bool("fold-case", predecessor.DefaultFoldCase(), "match process names case-insensitively")
	pf.Duration("kill-timeout", 5*time.Second, "upper bound for each kill attempt (0 disables)")
	pf.Bool("wait-exit", true, "wait for killed processes to leave the process table")
	pf.Bool("no-color", false, "disable colored output")
	pf.Bool("debug", false, "log the effective configuration")

	c.bind(pf.Lookup("backend"), "backend")
	c.bind(pf.Lookup("proc-mount"), "procMount")
	c.bind(pf.Lookup("exclude-by"), "excludeBy")
	c.bind(pf.Lookup("fold-case"), "foldCase")
	c.bind(pf.Lookup("kill-timeout"), "killTimeout")
	c.bind(pf.Lookup("wait-exit"), "waitExit")
	c.bind(pf.Lookup("debug"), "debug")

	root.Flags().BoolVar(&c.once, "once", false, "exit after the cleanup pass instead of idling")
	root.Flags().Duration("idle-interval", 10*time.Second, "wake-up interval of the idle loop")
	c.bind(root.Flags().Lookup("idle-interval"), "idleInterval")

	root.AddCommand(
		&cobra.Command{
			Use:   "kill NAME",
			Short: "Kill every process whose name starts with NAME (never this process)",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runKill,
		},
		&cobra.Command{
			Use:   "list [NAME]",
			Short: "List processes whose name starts with NAME (default: own name) without killing",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.runList,
		},
	)

	return root
}

func (c *cli) bind(f *pflag.Flag, key string) {
	if err := c.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(c.v, c.configPath)
	if err != nil {
		return err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	c.cfg = cfg

	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	c.backend = backend

	self := process.ProcessID(os.Getpid())
	opts := predecessor.DefaultOptions(self)
	opts.FoldCase = cfg.FoldCase
	opts.ExcludeBy = cfg.ExcludeMode()

	execOpts := []terminate.Option{terminate.WithKillTimeout(cfg.KillTimeout)}
	if cfg.WaitExit {
		execOpts = append(execOpts, terminate.WithExitWait(backend))
	}

	c.manager = taskmanager.New(
		predecessor.NewResolver(backend, opts),
		terminate.NewExecutor(backend, self, execOpts...),
	)

	if cfg.Debug {
		c.log.Infoln("Config:", fmt.Sprintf("%+v", cfg), "backend:", backend.Name(), "pid:", self)
	}
	return nil
}

func (c *cli) runPredecessors(cmd *cobra.Command, _ []string) error {
	ctx, stop := keepalive.SignalContext(cmd.Context())
	defer stop()

	res, err := c.manager.TerminatePredecessors(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Start process...%s\n", res.Name)
	if err := report.PrintProcesses(out, res.Targets); err != nil {
		return err
	}
	if err := report.PrintReport(out, res.Report, c.cfg.Color); err != nil {
		return err
	}

	if c.once {
		return nil
	}

	fmt.Fprintln(out, "Running, press Ctrl+C to exit")
	keepalive.Run(ctx, c.cfg.IdleInterval, nil)
	c.log.Infoln("Interrupted, exiting")
	return nil
}

func (c *cli) runKill(cmd *cobra.Command, args []string) error {
	res, err := c.manager.TerminateProcess(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.PrintProcesses(out, res.Targets); err != nil {
		return err
	}
	return report.PrintReport(out, res.Report, c.cfg.Color)
}

func (c *cli) runList(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	name, targets, err := c.manager.Query(cmd.Context(), name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processes matching %q (excluding this one):\n", name)
	return report.PrintProcesses(out, targets)
}
