package agents

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// AiderAgent shells out to a locally installed aider binary. When the binary
// is absent the request fails and the dispatcher falls through.
type AiderAgent struct {
	appsDir string
}

// NewAiderAgent creates the aider agent. appsDir, when non-empty, is where
// app generation runs so emitted files land in one place per app.
func NewAiderAgent(appsDir string) *AiderAgent {
	return &AiderAgent{appsDir: appsDir}
}

func (a *AiderAgent) Name() string { return "Aider" }

func (a *AiderAgent) Process(ctx context.Context, req Request) Result {
	if _, err := exec.LookPath("aider"); err != nil {
		return failure(a.Name(), "aider is not installed")
	}

	args := []string{"--yes", "--message", req.Prompt}
	if req.Explain {
		args = append(args, "--verbose")
	}
	cmd := exec.CommandContext(ctx, "aider", args...)

	var appDir string
	if req.Task == TaskAppGen && a.appsDir != "" {
		appDir = filepath.Join(a.appsDir, appDirName(req.Prompt))
		if err := os.MkdirAll(appDir, 0o755); err != nil {
			return failure(a.Name(), err.Error())
		}
		cmd.Dir = appDir
	}

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		msg := err.Error()
		if output != "" {
			msg += ": " + output
		}
		return failure(a.Name(), msg)
	}

	res := success(a.Name(), output)
	res.Dir = appDir
	return res
}
