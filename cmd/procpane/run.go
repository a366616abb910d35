package main

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/procpane/procpane"
)

var runCmd = &cobra.Command{
	Use:   "run <name=command> [name=command...]",
	Short: "Run commands under the dashboard",
	Long: `Run starts each named command through the shell and shows its output
live. Processes keep running until they exit on their own; closing the
dashboard leaves them alone.`,
	Example: `  procpane run 'web=python -m http.server' 'tail=tail -f /var/log/syslog'
  procpane run --both 'build=make -j4'
  procpane run --pty --strip-ansi 'tests=go test ./...'
  procpane run --scroll 'web=i,k' 'web=python -m http.server'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDashboard,
}

func init() {
	runCmd.Flags().Bool("pty", false, "run commands under a pseudo-terminal (merges stderr into stdout)")
	runCmd.Flags().Bool("both", false, "show stdout and stderr in separate panes")
	runCmd.Flags().Bool("stderr", false, "show only stderr")
	runCmd.Flags().Bool("strip-ansi", false, "strip ANSI escape sequences from captured output")
	runCmd.Flags().StringArray("scroll", nil, "scroll keys for a process, as name=back,forward (repeatable)")

	rootCmd.AddCommand(runCmd)
}

type processSpec struct {
	name    string
	command string
}

// parseSpecs splits name=command arguments, rejecting duplicates early so
// the dashboard never starts with half the processes registered.
func parseSpecs(args []string) ([]processSpec, error) {
	specs := make([]processSpec, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		name, command, ok := strings.Cut(arg, "=")
		if !ok || name == "" || command == "" {
			return nil, fmt.Errorf("invalid process spec %q, want name=command", arg)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate process name %q", name)
		}
		seen[name] = true
		specs = append(specs, processSpec{name: name, command: command})
	}
	return specs, nil
}

// parseScrollFlags maps --scroll name=back,forward values by process name.
func parseScrollFlags(values []string) (map[string]procpane.ScrollKeys, error) {
	keys := make(map[string]procpane.ScrollKeys, len(values))
	for _, v := range values {
		name, pair, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid scroll spec %q, want name=back,forward", v)
		}
		back, forward, ok := strings.Cut(pair, ",")
		if !ok || back == "" || forward == "" {
			return nil, fmt.Errorf("invalid scroll keys %q for %q, want back,forward", pair, name)
		}
		keys[name] = procpane.ScrollKeys{Back: back, Forward: forward}
	}
	return keys, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	specs, err := parseSpecs(args)
	if err != nil {
		return err
	}

	usePTY, _ := cmd.Flags().GetBool("pty")
	both, _ := cmd.Flags().GetBool("both")
	stderrOnly, _ := cmd.Flags().GetBool("stderr")
	stripANSI, _ := cmd.Flags().GetBool("strip-ansi")
	scrollValues, _ := cmd.Flags().GetStringArray("scroll")

	if both && stderrOnly {
		return fmt.Errorf("--both and --stderr are mutually exclusive")
	}
	if usePTY && (both || stderrOnly) {
		return fmt.Errorf("--pty merges stderr into stdout and cannot split streams")
	}

	scrollKeys, err := parseScrollFlags(scrollValues)
	if err != nil {
		return err
	}
	for name := range scrollKeys {
		found := false
		for _, spec := range specs {
			if spec.name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("--scroll names unknown process %q", name)
		}
	}

	streams := procpane.StreamOutput
	switch {
	case both:
		streams = procpane.StreamBoth
	case stderrOnly:
		streams = procpane.StreamError
	}

	opts := buildDashboardOptions(cmd)
	d, err := procpane.New(opts...)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		child := exec.Command("sh", "-c", spec.command)

		var src procpane.Source
		if usePTY {
			src, err = procpane.StartCommandPTY(child)
		} else {
			src, err = procpane.StartCommand(child)
		}
		if err != nil {
			d.Printf("failed to start '%s': %v", spec.name, err)
			continue
		}

		settings := procpane.Settings{
			Streams:   streams,
			StripANSI: stripANSI,
		}
		if sk, ok := scrollKeys[spec.name]; ok {
			settings.Scroll = &sk
		}

		if err := d.Register(spec.name, src, settings); err != nil {
			return err
		}
		d.Printf("started '%s': %s", spec.name, spec.command)
	}

	d.Wait()
	return nil
}

func buildDashboardOptions(cmd *cobra.Command) []procpane.Option {
	var opts []procpane.Option

	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		opts = append(opts, procpane.WithConfigPath(cfgPath))
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		opts = append(opts, procpane.WithTheme(theme))
	}
	if tick, _ := cmd.Flags().GetInt("tick"); tick > 0 {
		opts = append(opts, procpane.WithTickInterval(time.Duration(tick)*time.Millisecond))
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opts = append(opts, procpane.WithDebug())
	}
	if logDir, _ := cmd.Flags().GetString("log-dir"); logDir != "" {
		opts = append(opts, procpane.WithLogDir(logDir))
	}

	return opts
}
