package cli

import (
	"github.com/spf13/cobra"

	"blogship/pkg/config"
	"blogship/pkg/services"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build the site and publish it to the remote host",
	Long: `Runs the full publish pipeline: hugo build, remote directory clear,
archive packaging, SFTP transfer, and remote extraction. Steps run strictly
in order and the first failure aborts the rest. The remote clear is
destructive and has no confirmation.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	runner, err := services.DialRemote(services.RemoteConfig{
		Host:       config.DeployHost,
		Port:       config.DeployPort,
		User:       config.DeployUser,
		KeyFile:    config.DeployKeyFile,
		KnownHosts: config.DeployKnownHosts,
	})
	if err != nil {
		return err
	}
	defer runner.Close()

	deployer := services.NewDeployer(runner, config.PublicPath, config.DeployPath, logger)
	return deployer.Run(cmd.Context())
}
