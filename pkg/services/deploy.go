package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Phase names one state of the deploy pipeline.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseBuilding       Phase = "building"
	PhaseBuilt          Phase = "built"
	PhaseClearingRemote Phase = "clearing_remote"
	PhaseRemoteCleared  Phase = "remote_cleared"
	PhasePackaging      Phase = "packaging"
	PhasePackaged       Phase = "packaged"
	PhaseTransferring   Phase = "transferring"
	PhaseExtracting     Phase = "extracting"
	PhaseDone           Phase = "done"
	PhaseFailed         Phase = "failed"
)

const archiveName = "site.tar.gz"

// StepError records which pipeline phase failed.
type StepError struct {
	Phase Phase
	Err   error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Phase, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Deployer runs the publish sequence: build, clear remote, package, transfer,
// extract. Steps run strictly in order; the first failure aborts the rest.
// There is no retry and no rollback: a failed transfer or extraction can
// leave the remote directory empty.
type Deployer struct {
	Runner     RemoteRunner
	PublicPath string
	RemotePath string

	// BuildSite and PackageSite are swappable for tests.
	Build   func() (string, error)
	Package func(srcDir, destFile string) error

	Log zerolog.Logger

	phase       Phase
	archivePath string
}

// NewDeployer wires a Deployer against the real builder and packager.
func NewDeployer(runner RemoteRunner, publicPath, remotePath string, log zerolog.Logger) *Deployer {
	return &Deployer{
		Runner:     runner,
		PublicPath: publicPath,
		RemotePath: remotePath,
		Build:      BuildSite,
		Package:    PackageSite,
		Log:        log,
		phase:      PhaseIdle,
	}
}

// Phase reports the pipeline's current state.
func (d *Deployer) Phase() Phase { return d.phase }

// Run executes the full pipeline. The returned error wraps the failing
// phase in a *StepError.
func (d *Deployer) Run(ctx context.Context) error {
	steps := []struct {
		active Phase
		after  Phase // intermediate state; empty when the next step follows directly
		run    func() error
	}{
		{PhaseBuilding, PhaseBuilt, d.build},
		{PhaseClearingRemote, PhaseRemoteCleared, d.clearRemote},
		{PhasePackaging, PhasePackaged, d.pack},
		{PhaseTransferring, "", d.transfer},
		{PhaseExtracting, "", d.extract},
	}

	defer d.cleanupLocalArchive()

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			d.phase = PhaseFailed
			return &StepError{Phase: step.active, Err: err}
		}

		d.phase = step.active
		d.Log.Info().Str("phase", string(step.active)).Msg("deploy")
		if err := step.run(); err != nil {
			d.phase = PhaseFailed
			d.Log.Error().Str("phase", string(step.active)).Err(err).Msg("deploy failed")
			return &StepError{Phase: step.active, Err: err}
		}
		if step.after != "" {
			d.phase = step.after
		}
	}

	d.phase = PhaseDone
	d.Log.Info().Msg("deploy done")
	return nil
}

func (d *Deployer) build() error {
	out, err := d.Build()
	if err != nil {
		return fmt.Errorf("hugo build: %w\n%s", err, out)
	}
	return nil
}

func (d *Deployer) clearRemote() error {
	target := shellQuote(d.RemotePath)
	_, err := d.Runner.Run(fmt.Sprintf("rm -rf %s && mkdir -p %s", target, target))
	return err
}

func (d *Deployer) pack() error {
	d.archivePath = filepath.Join(os.TempDir(), archiveName)
	return d.Package(d.PublicPath, d.archivePath)
}

func (d *Deployer) transfer() error {
	return d.Runner.Upload(d.archivePath, d.remoteArchive())
}

func (d *Deployer) extract() error {
	remote := shellQuote(d.remoteArchive())
	target := shellQuote(d.RemotePath)
	_, err := d.Runner.Run(fmt.Sprintf("tar -xzf %s -C %s && rm -f %s", remote, target, remote))
	return err
}

func (d *Deployer) remoteArchive() string {
	return path.Join(d.RemotePath, archiveName)
}

// The archive exists for the duration of one run only.
func (d *Deployer) cleanupLocalArchive() {
	if d.archivePath != "" {
		os.Remove(d.archivePath)
	}
}
