package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/twala-io/aws-cdk-amplify-with-waf/config"
	"github.com/twala-io/aws-cdk-amplify-with-waf/lib/amplify_utils"
	"github.com/twala-io/aws-cdk-amplify-with-waf/scripts/renderer"
)

func main() {
	log := zap.Must(zap.NewProduction()).Named("runbook")
	defer log.Sync() //nolint:errcheck

	app := &cli.App{
		Name:  "runbook",
		Usage: "Render per-environment deploy runbooks and smoke-test scripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "environments",
				Usage:    "path to the environments registry YAML",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "config",
				Usage:    "environment id to render",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "web-acl-arn",
				Usage: "already deployed Web ACL ARN, if any",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory",
				Value: ".",
			},
		},
		Action: render,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("rendering failed", zap.Error(err))
	}
}

func render(c *cli.Context) error {
	registryPath := c.String("environments")
	reg, err := config.LoadRegistry(registryPath)
	if err != nil {
		return err
	}

	envID := c.String("config")
	params, ok := reg[envID]
	if !ok {
		return fmt.Errorf("unknown environment %q in %s", envID, registryPath)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("environment %q: %w", envID, err)
	}

	runbook, err := renderer.Render(renderer.TplDeployRunbook, renderer.RunbookData{
		EnvironmentID:   envID,
		WebAclStackName: config.WebAclStackName(envID),
		StackName:       params.DistributionStackName,
		AppID:           params.AppID,
		BranchName:      params.BranchName,
		WebACLArn:       c.String("web-acl-arn"),
	})
	if err != nil {
		return err
	}

	smoke, err := renderer.Render(renderer.TplSmokeTest, renderer.SmokeTestData{
		EnvironmentID: envID,
		OriginDomain:  amplify_utils.OriginDomain(params.AppID, params.BranchName),
		Username:      params.Username,
		Password:      params.Password,
	})
	if err != nil {
		return err
	}

	outDir := c.String("out")
	runbookPath := filepath.Join(outDir, envID+"-runbook.md")
	if err := os.WriteFile(runbookPath, []byte(runbook), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", runbookPath, err)
	}

	// The smoke test embeds the branch credentials, keep it owner-only.
	smokePath := filepath.Join(outDir, envID+"-smoke-test.sh")
	if err := os.WriteFile(smokePath, []byte(smoke), 0o700); err != nil {
		return fmt.Errorf("writing %s: %w", smokePath, err)
	}

	fmt.Println(runbookPath)
	fmt.Println(smokePath)
	return nil
}
