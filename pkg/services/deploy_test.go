package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records remote operations instead of touching a host.
type fakeRunner struct {
	ops     []string
	runErr  error
	sendErr error
}

func (f *fakeRunner) Run(cmd string) (string, error) {
	f.ops = append(f.ops, "run: "+cmd)
	return "", f.runErr
}

func (f *fakeRunner) Upload(localPath, remotePath string) error {
	f.ops = append(f.ops, fmt.Sprintf("upload: %s -> %s", localPath, remotePath))
	return f.sendErr
}

func (f *fakeRunner) Close() error { return nil }

func testDeployer(runner *fakeRunner, order *[]string) *Deployer {
	d := NewDeployer(runner, "/tmp/public", "/var/www/blog", zerolog.Nop())
	d.Build = func() (string, error) {
		*order = append(*order, "build")
		return "", nil
	}
	d.Package = func(src, dest string) error {
		*order = append(*order, "package")
		return os.WriteFile(dest, []byte("archive"), 0644)
	}
	return d
}

func TestDeployer_SuccessRunsStepsInOrder(t *testing.T) {
	runner := &fakeRunner{}
	var order []string
	d := testDeployer(runner, &order)

	err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseDone, d.Phase())

	assert.Equal(t, []string{"build", "package"}, order)
	require.Len(t, runner.ops, 3)
	assert.Contains(t, runner.ops[0], "rm -rf '/var/www/blog' && mkdir -p '/var/www/blog'")
	assert.Contains(t, runner.ops[1], "upload: ")
	assert.Contains(t, runner.ops[1], "/var/www/blog/site.tar.gz")
	assert.Contains(t, runner.ops[2], "tar -xzf '/var/www/blog/site.tar.gz' -C '/var/www/blog'")
	assert.Contains(t, runner.ops[2], "rm -f '/var/www/blog/site.tar.gz'")
}

func TestDeployer_BuildFailureHaltsPipeline(t *testing.T) {
	runner := &fakeRunner{}
	var order []string
	d := testDeployer(runner, &order)
	d.Build = func() (string, error) { return "hugo exploded", errors.New("exit status 1") }

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, PhaseFailed, d.Phase())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, PhaseBuilding, stepErr.Phase)

	// No remote operation and no packaging after a failed build.
	assert.Empty(t, runner.ops)
	assert.Empty(t, order)
}

func TestDeployer_ClearFailureStopsBeforeTransfer(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("permission denied")}
	var order []string
	d := testDeployer(runner, &order)

	err := d.Run(context.Background())
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, PhaseClearingRemote, stepErr.Phase)

	// The build ran, the clear was attempted, nothing was uploaded.
	assert.Equal(t, []string{"build"}, order)
	require.Len(t, runner.ops, 1)
	assert.True(t, strings.HasPrefix(runner.ops[0], "run: rm -rf"))
}

func TestDeployer_PackageFailureStopsBeforeTransfer(t *testing.T) {
	runner := &fakeRunner{}
	var order []string
	d := testDeployer(runner, &order)
	d.Package = func(src, dest string) error { return ErrEmptyArtifact }

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyArtifact)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, PhasePackaging, stepErr.Phase)

	// Remote clear happened, upload did not.
	require.Len(t, runner.ops, 1)
	assert.True(t, strings.HasPrefix(runner.ops[0], "run: rm -rf"))
}

func TestDeployer_TransferFailure(t *testing.T) {
	runner := &fakeRunner{sendErr: errors.New("connection reset")}
	var order []string
	d := testDeployer(runner, &order)

	err := d.Run(context.Background())
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, PhaseTransferring, stepErr.Phase)

	// Clear and upload attempt only, no extraction.
	require.Len(t, runner.ops, 2)
}

func TestDeployer_RemovesLocalArchive(t *testing.T) {
	runner := &fakeRunner{}
	var order []string
	d := testDeployer(runner, &order)

	require.NoError(t, d.Run(context.Background()))

	_, err := os.Stat(d.archivePath)
	assert.True(t, os.IsNotExist(err), "local archive must not outlive the run")
}

func TestDeployer_CancelledContext(t *testing.T) {
	runner := &fakeRunner{}
	var order []string
	d := testDeployer(runner, &order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, PhaseFailed, d.Phase())
	assert.Empty(t, order)
	assert.Empty(t, runner.ops)
}

func TestStepError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &StepError{Phase: PhaseExtracting, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "extracting: boom", err.Error())
}
