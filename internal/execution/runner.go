package execution

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"ngrun/internal/config"
	"ngrun/internal/domain"
)

var _ Executor = (*Runner)(nil)

// Runner launches the TestNG runner in a JVM
type Runner struct {
	config *config.Config
	output io.Writer
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// SetOutput streams the runner's console output to w while it runs
func (r *Runner) SetOutput(w io.Writer) {
	r.output = w
}

// Command returns the full command line for a run configuration
func (r *Runner) Command(rc *domain.RunConfig, classpath string) []string {
	mainClass := rc.MainClass
	if mainClass == "" {
		mainClass = r.config.RunnerClass
	}

	cmd := []string{r.config.JavaBin}
	cmd = append(cmd, r.config.JVMArgs...)
	if classpath != "" {
		cmd = append(cmd, "-cp", classpath)
	}
	cmd = append(cmd, mainClass)
	return append(cmd, rc.Args.Values()...)
}

// Execute runs the configuration and waits for the JVM to exit
func (r *Runner) Execute(ctx context.Context, rc *domain.RunConfig, classpath string) domain.RunResult {
	command := r.Command(rc, classpath)
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)

	// Set environment variables
	cmd.Env = os.Environ()

	// Set working directory
	cmd.Dir = r.config.ProjectPath
	if rc.Project != nil && rc.Project.Root != "" {
		cmd.Dir = rc.Project.Root
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	if r.output != nil {
		w = io.MultiWriter(&buf, r.output)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	start := time.Now()
	err := cmd.Run()

	return domain.RunResult{
		Config:   rc.Name,
		Command:  command,
		Success:  err == nil,
		Output:   buf.String(),
		Error:    err,
		Duration: time.Since(start),
	}
}
